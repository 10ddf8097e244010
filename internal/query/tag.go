package query

// TagOptions narrows a tag lookup. Tag filters are mutually exclusive: only
// the first populated field, in the order id > name > song_id > release_id,
// is applied. The rest are ignored even when set.
type TagOptions struct {
	ID        *int32
	Name      *string
	SongID    *string
	ReleaseID *string
}

var tagColumns = []string{
	"tags.id",
	"tags.name",
	"tags.description",
	"tags.created_at",
	"tags.updated_at",
}

// BuildTag constructs the tag lookup statement. A song or release filter
// joins the corresponding link table and projects its foreign key so callers
// can tell which parent each row belongs to.
func BuildTag(o TagOptions) (string, []any) {
	s := newStatement("tags", tagColumns...)

	switch {
	case o.ID != nil:
		s.and("tags.id = " + s.arg(*o.ID))
	case o.Name != nil:
		s.and("tags.name = " + s.arg(*o.Name))
	case o.SongID != nil:
		s.project("song_tags.song_id")
		s.leftJoin("song_tags", "tags.id = song_tags.tag_id")
		s.and("song_tags.song_id = " + s.arg(*o.SongID))
	case o.ReleaseID != nil:
		s.project("release_tags.release_id")
		s.leftJoin("release_tags", "tags.id = release_tags.tag_id")
		s.and("release_tags.release_id = " + s.arg(*o.ReleaseID))
	}

	return s.SQL(), s.args
}
