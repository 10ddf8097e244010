package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Curstantine/unnamed-weeb-music-database/internal/apperr"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/model"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/query"
)

// ReleaseRepo reads the `releases` table through the query builder. Every
// release row arrives with total_length pre-aggregated from the track
// lengths of its songs.
type ReleaseRepo struct{ DB *sql.DB }

func NewReleaseRepo(db *sql.DB) *ReleaseRepo { return &ReleaseRepo{DB: db} }

func releaseDests(rel *model.Release) []any {
	return []any{
		&rel.ID,
		&rel.Name.Native, &rel.Name.Romanized, &rel.Name.English,
		&rel.ReleaseType, &rel.TotalTracks, &rel.ReleaseDate,
		&rel.ExternalSites, &rel.Label, &rel.ScriptLanguage,
		&rel.Length,
	}
}

// GetOne fetches a single release matching the options.
func (r *ReleaseRepo) GetOne(ctx context.Context, o query.ReleaseOptions) (model.Release, error) {
	stmt, args := query.BuildRelease(o)
	var rel model.Release
	err := r.DB.QueryRowContext(ctx, stmt, args...).Scan(releaseDests(&rel)...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Release{}, apperr.ErrNotFound
	}
	if err != nil {
		return model.Release{}, apperr.ErrInternal
	}
	return rel, nil
}

// GetMany fetches every release matching the options.
func (r *ReleaseRepo) GetMany(ctx context.Context, o query.ReleaseOptions) ([]model.Release, error) {
	stmt, args := query.BuildRelease(o)
	rows, err := r.DB.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, apperr.ErrInternal
	}
	defer rows.Close()

	var out []model.Release
	for rows.Next() {
		var rel model.Release
		if err := rows.Scan(releaseDests(&rel)...); err != nil {
			return nil, apperr.ErrInternal
		}
		out = append(out, rel)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.ErrInternal
	}
	return out, nil
}
