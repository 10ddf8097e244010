package query

import "github.com/lib/pq"

// ReleaseOptions narrows a release lookup.
type ReleaseOptions struct {
	ID       *string
	Search   *string
	ArtistID *string
	SongID   *string
	Genres   []string
	Page     *int
	PerPage  *int
}

var releaseColumns = []string{
	"releases.id",
	"releases.name_native",
	"releases.name_romanized",
	"releases.name_english",
	"releases.release_type",
	"releases.total_tracks",
	"releases.release_date",
	"releases.external_sites",
	"releases.label",
	"releases.script_language",
	"tl.total_length",
}

// totalLengthJoin sums the track lengths of every song on a release, so each
// returned row carries the release's playing time without a second query.
const totalLengthJoin = "LEFT JOIN (" +
	"SELECT sr.release_id, SUM(songs.track_length) AS total_length " +
	"FROM songs_releases sr INNER JOIN songs ON sr.song_id = songs.id " +
	"GROUP BY sr.release_id" +
	") tl ON tl.release_id = releases.id"

// BuildRelease constructs the release lookup statement, always carrying the
// aggregated total_length column.
func BuildRelease(o ReleaseOptions) (string, []any) {
	s := newStatement("releases", releaseColumns...)
	s.joins = append(s.joins, totalLengthJoin)

	if o.ID != nil {
		s.and("releases.id = " + s.arg(*o.ID))
	}
	if o.Search != nil {
		s.searchName("releases", *o.Search)
	}
	if o.SongID != nil {
		s.leftJoin("songs_releases", "songs_releases.release_id = releases.id")
		s.and("songs_releases.song_id = " + s.arg(*o.SongID))
	}
	if o.ArtistID != nil {
		if o.SongID == nil {
			s.leftJoin("songs_releases", "songs_releases.release_id = releases.id")
		}
		s.leftJoin("songs_artists", "songs_artists.song_id = songs_releases.song_id")
		s.and("songs_artists.artist_id = " + s.arg(*o.ArtistID))
	}
	if len(o.Genres) > 0 {
		s.leftJoin("release_tags", "release_tags.release_id = releases.id")
		s.leftJoin("tags", "tags.id = release_tags.tag_id")
		s.and("tags.name = ANY(" + s.arg(pq.Array(o.Genres)) + ")")
	}

	s.paginate(o.Page, o.PerPage)
	return s.SQL(), s.args
}
