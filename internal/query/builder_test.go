package query

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

const artistBase = "SELECT artists.id, artists.name_native, artists.name_romanized, " +
	"artists.name_english, artists.alt_names, artists.external_sites, artists.description, " +
	"artists.based_in, artists.founded_in, artists.artist_type FROM artists"

func TestBuildArtistEmpty(t *testing.T) {
	sql, args := BuildArtist(ArtistOptions{})
	assert.Equal(t, artistBase, sql)
	assert.Empty(t, args)
}

func TestBuildArtistByID(t *testing.T) {
	sql, args := BuildArtist(ArtistOptions{ID: ptr("01ARZ3NDEKTSV4RRFFQ69G5FAV")})
	assert.Equal(t, artistBase+" WHERE artists.id = $1", sql)
	assert.Equal(t, []any{"01ARZ3NDEKTSV4RRFFQ69G5FAV"}, args)
}

func TestBuildArtistSearch(t *testing.T) {
	sql, args := BuildArtist(ArtistOptions{Search: ptr("angel")})
	assert.Equal(t, artistBase+
		" WHERE (lower(artists.name_native) ~ lower($1)"+
		" OR lower(artists.name_romanized) ~ lower($1)"+
		" OR lower(artists.name_english) ~ lower($1))", sql)
	// One bound parameter backs all three sub-field comparisons.
	assert.Equal(t, []any{"angel"}, args)
}

func TestBuildArtistBySongProjectsJoinPhrase(t *testing.T) {
	sql, args := BuildArtist(ArtistOptions{SongID: ptr("S1")})
	assert.Equal(t, "SELECT artists.id, artists.name_native, artists.name_romanized, "+
		"artists.name_english, artists.alt_names, artists.external_sites, artists.description, "+
		"artists.based_in, artists.founded_in, artists.artist_type, songs_artists.join_phrase "+
		"FROM artists LEFT JOIN songs_artists ON songs_artists.artist_id = artists.id "+
		"WHERE songs_artists.song_id = $1", sql)
	assert.Equal(t, []any{"S1"}, args)
}

func TestBuildArtistByRelease(t *testing.T) {
	sql, args := BuildArtist(ArtistOptions{ReleaseID: ptr("R1")})
	assert.Equal(t, artistBase+
		" LEFT JOIN songs_artists ON songs_artists.artist_id = artists.id"+
		" LEFT JOIN songs_releases ON songs_releases.song_id = songs_artists.song_id"+
		" WHERE songs_releases.release_id = $1", sql)
	assert.Equal(t, []any{"R1"}, args)
}

func TestBuildArtistCombinesWithAnd(t *testing.T) {
	sql, args := BuildArtist(ArtistOptions{ID: ptr("A1"), Search: ptr("x")})
	assert.Contains(t, sql, "artists.id = $1 AND (lower(")
	assert.Len(t, args, 2)
}

func TestPagination(t *testing.T) {
	cases := []struct {
		name    string
		page    *int
		perPage *int
		suffix  string
	}{
		{"page and per_page", ptr(1), ptr(10), " LIMIT 10 OFFSET 10"},
		{"zero page", ptr(0), ptr(10), " LIMIT 10 OFFSET 0"},
		{"per_page only", nil, ptr(25), " LIMIT 25 OFFSET 0"},
		{"page only defaults per_page", ptr(2), nil, " LIMIT 50 OFFSET 100"},
		// Negative values read as absent so the rendered SQL stays valid.
		{"negative page", ptr(-1), ptr(10), " LIMIT 10 OFFSET 0"},
		{"negative per_page", ptr(2), ptr(-5), " LIMIT 50 OFFSET 100"},
		{"both negative", ptr(-3), ptr(-5), " LIMIT 50 OFFSET 0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sql, args := BuildArtist(ArtistOptions{Page: tc.page, PerPage: tc.perPage})
			assert.Equal(t, artistBase+tc.suffix, sql)
			assert.Empty(t, args)
		})
	}
}

func TestBuildArtistUnpaginatedIsUnbounded(t *testing.T) {
	sql, _ := BuildArtist(ArtistOptions{ID: ptr("A1")})
	assert.NotContains(t, sql, "LIMIT")
	assert.NotContains(t, sql, "OFFSET")
}

const tagBase = "SELECT tags.id, tags.name, tags.description, tags.created_at, tags.updated_at FROM tags"

func TestBuildTagByID(t *testing.T) {
	sql, args := BuildTag(TagOptions{ID: ptr(int32(0))})
	assert.Equal(t, tagBase+" WHERE tags.id = $1", sql)
	assert.Equal(t, []any{int32(0)}, args)
}

func TestBuildTagByName(t *testing.T) {
	sql, args := BuildTag(TagOptions{Name: ptr("test")})
	assert.Equal(t, tagBase+" WHERE tags.name = $1", sql)
	assert.Equal(t, []any{"test"}, args)
}

func TestBuildTagBySongID(t *testing.T) {
	sql, args := BuildTag(TagOptions{SongID: ptr("00000000000000000000000000")})
	assert.Equal(t, "SELECT tags.id, tags.name, tags.description, tags.created_at, "+
		"tags.updated_at, song_tags.song_id FROM tags "+
		"LEFT JOIN song_tags ON tags.id = song_tags.tag_id WHERE song_tags.song_id = $1", sql)
	assert.Equal(t, []any{"00000000000000000000000000"}, args)
}

func TestBuildTagByReleaseID(t *testing.T) {
	sql, args := BuildTag(TagOptions{ReleaseID: ptr("00000000000000000000000000")})
	assert.Equal(t, "SELECT tags.id, tags.name, tags.description, tags.created_at, "+
		"tags.updated_at, release_tags.release_id FROM tags "+
		"LEFT JOIN release_tags ON tags.id = release_tags.tag_id WHERE release_tags.release_id = $1", sql)
	assert.Equal(t, []any{"00000000000000000000000000"}, args)
}

// Tag filters are exclusive: the first populated field wins and the rest are
// ignored even when set.
func TestBuildTagFiltersAreExclusive(t *testing.T) {
	sql, args := BuildTag(TagOptions{ID: ptr(int32(1)), Name: ptr("x"), SongID: ptr("S1")})
	assert.Equal(t, tagBase+" WHERE tags.id = $1", sql)
	assert.Equal(t, []any{int32(1)}, args)
}

func TestBuildTagEmpty(t *testing.T) {
	sql, args := BuildTag(TagOptions{})
	assert.Equal(t, tagBase, sql)
	assert.Empty(t, args)
}

func TestBuildSongByGenres(t *testing.T) {
	sql, args := BuildSong(SongOptions{Genres: []string{"rock", "anime"}})
	assert.Contains(t, sql, "LEFT JOIN song_tags ON song_tags.song_id = songs.id")
	assert.Contains(t, sql, "LEFT JOIN tags ON tags.id = song_tags.tag_id")
	assert.Contains(t, sql, "tags.name = ANY($1)")
	require.Len(t, args, 1)
	assert.Equal(t, pq.Array([]string{"rock", "anime"}), args[0])
}

func TestBuildSongByArtistProjectsJoinPhrase(t *testing.T) {
	sql, args := BuildSong(SongOptions{ArtistID: ptr("A1")})
	assert.Contains(t, sql, "songs_artists.join_phrase")
	assert.Contains(t, sql, "LEFT JOIN songs_artists ON songs_artists.song_id = songs.id")
	assert.Contains(t, sql, "WHERE songs_artists.artist_id = $1")
	assert.Equal(t, []any{"A1"}, args)
}

func TestBuildReleaseCarriesTotalLength(t *testing.T) {
	sql, args := BuildRelease(ReleaseOptions{})
	assert.Contains(t, sql, "tl.total_length")
	assert.Contains(t, sql, "SUM(songs.track_length) AS total_length")
	assert.NotContains(t, sql, "WHERE")
	assert.Empty(t, args)
}

func TestBuildReleaseBySong(t *testing.T) {
	sql, args := BuildRelease(ReleaseOptions{SongID: ptr("S1")})
	assert.Contains(t, sql, "LEFT JOIN songs_releases ON songs_releases.release_id = releases.id")
	assert.Contains(t, sql, "WHERE songs_releases.song_id = $1")
	assert.Equal(t, []any{"S1"}, args)
}

func TestBuildUserCombinesIDAndEmail(t *testing.T) {
	sql, args := BuildUser(UserOptions{ID: ptr("U1"), Email: ptr("a@b.c")})
	assert.Equal(t, "SELECT users.id, users.username, users.email, users.password_hash, "+
		"users.access_level, users.created_at, users.updated_at FROM users "+
		"WHERE users.id = $1 AND users.email = $2", sql)
	assert.Equal(t, []any{"U1", "a@b.c"}, args)
}

// Building twice from the same options must yield the identical statement.
func TestBuildIsDeterministic(t *testing.T) {
	o := ArtistOptions{Search: ptr("a"), SongID: ptr("S1"), Page: ptr(1), PerPage: ptr(5)}
	sql1, args1 := BuildArtist(o)
	sql2, args2 := BuildArtist(o)
	assert.Equal(t, sql1, sql2)
	assert.Equal(t, args1, args2)
}
