package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Curstantine/unnamed-weeb-music-database/internal/apperr"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/model"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/query"
)

// ArtistRepo reads the `artists` table through the query builder.
type ArtistRepo struct{ DB *sql.DB }

func NewArtistRepo(db *sql.DB) *ArtistRepo { return &ArtistRepo{DB: db} }

// artistDests lists the scan targets in builder column order. A song filter
// projects the credit's join_phrase as an extra trailing column.
func artistDests(a *model.Artist, withJoinPhrase bool) []any {
	dests := []any{
		&a.ID,
		&a.Name.Native, &a.Name.Romanized, &a.Name.English,
		&a.AltNames, &a.ExternalSites,
		&a.Description, &a.BasedIn, &a.FoundedIn,
		&a.ArtistType,
	}
	if withJoinPhrase {
		dests = append(dests, &a.JoinPhrase)
	}
	return dests
}

// GetOne fetches a single artist matching the options.
func (r *ArtistRepo) GetOne(ctx context.Context, o query.ArtistOptions) (model.Artist, error) {
	stmt, args := query.BuildArtist(o)
	var a model.Artist
	err := r.DB.QueryRowContext(ctx, stmt, args...).Scan(artistDests(&a, o.SongID != nil)...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Artist{}, apperr.ErrNotFound
	}
	if err != nil {
		return model.Artist{}, apperr.ErrInternal
	}
	return a, nil
}

// GetMany fetches every artist matching the options.
func (r *ArtistRepo) GetMany(ctx context.Context, o query.ArtistOptions) ([]model.Artist, error) {
	stmt, args := query.BuildArtist(o)
	rows, err := r.DB.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, apperr.ErrInternal
	}
	defer rows.Close()

	var out []model.Artist
	for rows.Next() {
		var a model.Artist
		if err := rows.Scan(artistDests(&a, o.SongID != nil)...); err != nil {
			return nil, apperr.ErrInternal
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.ErrInternal
	}
	return out, nil
}
