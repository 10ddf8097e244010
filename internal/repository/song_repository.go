package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Curstantine/unnamed-weeb-music-database/internal/apperr"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/model"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/query"
)

// SongRepo reads the `songs` table through the query builder.
type SongRepo struct{ DB *sql.DB }

func NewSongRepo(db *sql.DB) *SongRepo { return &SongRepo{DB: db} }

func songDests(s *model.Song, withJoinPhrase bool) []any {
	dests := []any{
		&s.ID,
		&s.Name.Native, &s.Name.Romanized, &s.Name.English,
		&s.ExternalSites,
		&s.TrackLength, &s.ReleaseDate,
	}
	if withJoinPhrase {
		// The projected join_phrase belongs to the credit, not the song;
		// it is scanned and discarded here.
		var joinPhrase *string
		dests = append(dests, &joinPhrase)
	}
	return dests
}

// GetOne fetches a single song matching the options.
func (r *SongRepo) GetOne(ctx context.Context, o query.SongOptions) (model.Song, error) {
	stmt, args := query.BuildSong(o)
	var s model.Song
	err := r.DB.QueryRowContext(ctx, stmt, args...).Scan(songDests(&s, o.ArtistID != nil)...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Song{}, apperr.ErrNotFound
	}
	if err != nil {
		return model.Song{}, apperr.ErrInternal
	}
	return s, nil
}

// GetMany fetches every song matching the options.
func (r *SongRepo) GetMany(ctx context.Context, o query.SongOptions) ([]model.Song, error) {
	stmt, args := query.BuildSong(o)
	rows, err := r.DB.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, apperr.ErrInternal
	}
	defer rows.Close()

	var out []model.Song
	for rows.Next() {
		var s model.Song
		if err := rows.Scan(songDests(&s, o.ArtistID != nil)...); err != nil {
			return nil, apperr.ErrInternal
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.ErrInternal
	}
	return out, nil
}
