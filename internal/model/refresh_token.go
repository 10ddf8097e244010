package model

import "time"

// RefreshToken models an entry in the `refresh_tokens` table. The token
// string itself is the credential: each successful refresh extends
// `expires_at` in place and the same string stays valid, so a token only
// dies by sitting unused past its expiry or by being revoked.
//
// Fields:
//
//	ID        – primary key identifier.
//	UserID    – owner of the token.
//	Token     – opaque random token value (unique).
//	ExpiresAt – expiration timestamp, pushed forward on every rotation.
//	Revoked   – whether the token has been administratively revoked.
//	CreatedAt – timestamp of creation.
//	UpdatedAt – timestamp of the last rotation.
type RefreshToken struct {
	ID        int64     // refresh_tokens.id
	UserID    string    // refresh_tokens.user_id
	Token     string    // refresh_tokens.token
	ExpiresAt time.Time // refresh_tokens.expires_at
	Revoked   bool      // refresh_tokens.revoked
	CreatedAt time.Time // refresh_tokens.created_at
	UpdatedAt time.Time // refresh_tokens.updated_at
}
