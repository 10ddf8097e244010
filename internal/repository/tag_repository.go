package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Curstantine/unnamed-weeb-music-database/internal/apperr"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/model"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/query"
)

// TagRepo reads the `tags` table through the query builder.
type TagRepo struct{ DB *sql.DB }

func NewTagRepo(db *sql.DB) *TagRepo { return &TagRepo{DB: db} }

// tagDests lists the scan targets in builder column order. Song and release
// filters project the link table's foreign key, which is discarded; tag
// filters are exclusive, so at most one of the two can be present.
func tagDests(t *model.Tag, o query.TagOptions) []any {
	dests := []any{&t.ID, &t.Name, &t.Description, &t.CreatedAt, &t.UpdatedAt}
	if o.ID == nil && o.Name == nil && (o.SongID != nil || o.ReleaseID != nil) {
		var parent string
		dests = append(dests, &parent)
	}
	return dests
}

// GetOne fetches a single tag matching the options.
func (r *TagRepo) GetOne(ctx context.Context, o query.TagOptions) (model.Tag, error) {
	stmt, args := query.BuildTag(o)
	var t model.Tag
	err := r.DB.QueryRowContext(ctx, stmt, args...).Scan(tagDests(&t, o)...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Tag{}, apperr.ErrNotFound
	}
	if err != nil {
		return model.Tag{}, apperr.ErrInternal
	}
	return t, nil
}

// GetMany fetches every tag matching the options.
func (r *TagRepo) GetMany(ctx context.Context, o query.TagOptions) ([]model.Tag, error) {
	stmt, args := query.BuildTag(o)
	rows, err := r.DB.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, apperr.ErrInternal
	}
	defer rows.Close()

	var out []model.Tag
	for rows.Next() {
		var t model.Tag
		if err := rows.Scan(tagDests(&t, o)...); err != nil {
			return nil, apperr.ErrInternal
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.ErrInternal
	}
	return out, nil
}
