package query

// ArtistOptions narrows an artist lookup. Absent fields constrain nothing;
// present fields combine with AND.
type ArtistOptions struct {
	ID        *string
	Search    *string
	SongID    *string
	ReleaseID *string
	Page      *int
	PerPage   *int
}

var artistColumns = []string{
	"artists.id",
	"artists.name_native",
	"artists.name_romanized",
	"artists.name_english",
	"artists.alt_names",
	"artists.external_sites",
	"artists.description",
	"artists.based_in",
	"artists.founded_in",
	"artists.artist_type",
}

// BuildArtist constructs the artist lookup statement. Filtering by song
// projects the credit's join_phrase alongside the artist columns; filtering
// by release hops through the song credits, since artists attach to releases
// only via their songs.
func BuildArtist(o ArtistOptions) (string, []any) {
	s := newStatement("artists", artistColumns...)

	if o.ID != nil {
		s.and("artists.id = " + s.arg(*o.ID))
	}
	if o.Search != nil {
		s.searchName("artists", *o.Search)
	}
	if o.SongID != nil {
		s.project("songs_artists.join_phrase")
		s.leftJoin("songs_artists", "songs_artists.artist_id = artists.id")
		s.and("songs_artists.song_id = " + s.arg(*o.SongID))
	}
	if o.ReleaseID != nil {
		if o.SongID == nil {
			s.leftJoin("songs_artists", "songs_artists.artist_id = artists.id")
		}
		s.leftJoin("songs_releases", "songs_releases.song_id = songs_artists.song_id")
		s.and("songs_releases.release_id = " + s.arg(*o.ReleaseID))
	}

	s.paginate(o.Page, o.PerPage)
	return s.SQL(), s.args
}
