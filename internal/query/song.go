package query

import "github.com/lib/pq"

// SongOptions narrows a song lookup.
type SongOptions struct {
	ID        *string
	Search    *string
	ArtistID  *string
	ReleaseID *string
	Genres    []string
	Page      *int
	PerPage   *int
}

var songColumns = []string{
	"songs.id",
	"songs.name_native",
	"songs.name_romanized",
	"songs.name_english",
	"songs.external_sites",
	"songs.track_length",
	"songs.release_date",
}

// BuildSong constructs the song lookup statement. Filtering by artist
// projects the credit's join_phrase; a genre filter matches songs tagged with
// any of the given tag names.
func BuildSong(o SongOptions) (string, []any) {
	s := newStatement("songs", songColumns...)

	if o.ID != nil {
		s.and("songs.id = " + s.arg(*o.ID))
	}
	if o.Search != nil {
		s.searchName("songs", *o.Search)
	}
	if o.ArtistID != nil {
		s.project("songs_artists.join_phrase")
		s.leftJoin("songs_artists", "songs_artists.song_id = songs.id")
		s.and("songs_artists.artist_id = " + s.arg(*o.ArtistID))
	}
	if o.ReleaseID != nil {
		s.leftJoin("songs_releases", "songs_releases.song_id = songs.id")
		s.and("songs_releases.release_id = " + s.arg(*o.ReleaseID))
	}
	if len(o.Genres) > 0 {
		s.leftJoin("song_tags", "song_tags.song_id = songs.id")
		s.leftJoin("tags", "tags.id = song_tags.tag_id")
		s.and("tags.name = ANY(" + s.arg(pq.Array(o.Genres)) + ")")
	}

	s.paginate(o.Page, o.PerPage)
	return s.SQL(), s.args
}
