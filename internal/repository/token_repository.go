package repository

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"time"

	"github.com/Curstantine/unnamed-weeb-music-database/internal/apperr"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/model"
)

// TokenRepo persists refresh tokens. A token here is an opaque random string
// wholly unrelated to the signed access tokens: the row it names is the
// credential, and rotation extends that row's expiry in place rather than
// minting a new string.
type TokenRepo struct {
	DB  *sql.DB
	TTL time.Duration
}

func NewTokenRepo(db *sql.DB, ttl time.Duration) *TokenRepo {
	return &TokenRepo{DB: db, TTL: ttl}
}

// Issue generates a fresh opaque token for the user and inserts its row with
// expiry = now + TTL. Every login gets a new row; rotation never calls this.
func (r *TokenRepo) Issue(ctx context.Context, userID string) (string, error) {
	token, err := randomHex(48)
	if err != nil {
		return "", apperr.ErrInternal
	}
	now := time.Now().UTC()
	_, err = r.DB.ExecContext(ctx,
		`INSERT INTO refresh_tokens (user_id, token, expires_at, revoked, created_at, updated_at)
		 VALUES ($1, $2, $3, false, $4, $4)`,
		userID, token, now.Add(r.TTL), now)
	if err != nil {
		return "", apperr.ErrInternal
	}
	return token, nil
}

// Rotate validates the token and extends its expiry in place, returning the
// refreshed row. Unknown and revoked tokens read as ErrTokenNotFound;
// a lapsed expiry reads as ErrTokenExpired. Concurrent rotations of the same
// token race on the update, but both writes converge on a valid expiry, so
// no lost-update protection is taken.
func (r *TokenRepo) Rotate(ctx context.Context, token string) (model.RefreshToken, error) {
	var rt model.RefreshToken
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, user_id, token, expires_at, revoked, created_at, updated_at
		 FROM refresh_tokens WHERE token = $1`,
		token).Scan(&rt.ID, &rt.UserID, &rt.Token, &rt.ExpiresAt, &rt.Revoked, &rt.CreatedAt, &rt.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.RefreshToken{}, apperr.ErrTokenNotFound
	}
	if err != nil {
		return model.RefreshToken{}, apperr.ErrInternal
	}
	if rt.Revoked {
		return model.RefreshToken{}, apperr.ErrTokenNotFound
	}

	now := time.Now().UTC()
	if rt.ExpiresAt.Before(now) {
		return model.RefreshToken{}, apperr.ErrTokenExpired
	}

	newExpiry := now.Add(r.TTL)
	if _, err := r.DB.ExecContext(ctx,
		"UPDATE refresh_tokens SET expires_at = $1, updated_at = $2 WHERE token = $3",
		newExpiry, now, token); err != nil {
		return model.RefreshToken{}, apperr.ErrInternal
	}

	rt.ExpiresAt = newExpiry
	rt.UpdatedAt = now
	return rt, nil
}

// Revoke marks a token as revoked. Subsequent rotations treat it as absent.
// A token that matches no row reads as ErrTokenNotFound.
func (r *TokenRepo) Revoke(ctx context.Context, token string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE refresh_tokens SET revoked = true, updated_at = $1 WHERE token = $2",
		time.Now().UTC(), token)
	if err != nil {
		return apperr.ErrInternal
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperr.ErrInternal
	}
	if n == 0 {
		return apperr.ErrTokenNotFound
	}
	return nil
}

// randomHex returns a hex-encoded string generated from n bytes of
// cryptographically secure random data.
func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
