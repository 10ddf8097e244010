package auth

import (
	"encoding/base64"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Curstantine/unnamed-weeb-music-database/internal/apperr"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/model"
)

// Claims is the payload of an access token. On top of the registered claims
// it carries the user's authorization level and a session identifier, which
// is reserved and currently always empty.
type Claims struct {
	AccessLevel model.AccessLevel `json:"access_level"`
	SessionID   string            `json:"sid"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies stateless HS256 access tokens. Validity is
// determined solely by the signature and the embedded validity window; there
// is no server-side state and no revocation, so compromise recovery relies
// on the short TTL.
type TokenCodec struct {
	key    []byte
	issuer string
	ttl    time.Duration
}

// NewTokenCodec builds a codec from a base64-encoded symmetric secret. The
// issuer doubles as the audience.
func NewTokenCodec(base64Key, issuer string, ttl time.Duration) (*TokenCodec, error) {
	key, err := base64.StdEncoding.DecodeString(base64Key)
	if err != nil {
		return nil, err
	}
	return &TokenCodec{key: key, issuer: issuer, ttl: ttl}, nil
}

// Issue signs a fresh access token for the user. issued_at and not_before
// are both "now"; expiry is now plus the configured TTL.
func (c *TokenCodec) Issue(u model.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		AccessLevel: u.AccessLevel,
		SessionID:   "",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Audience:  jwt.ClaimStrings{c.issuer},
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
}

// Verify parses and validates a token string. An expired token reads as
// ErrAccessTokenExpired; every other failure (bad signature, malformed
// payload, not-before still in the future, wrong issuer or audience)
// collapses into ErrInvalidToken.
func (c *TokenCodec) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return c.key, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(c.issuer),
		jwt.WithAudience(c.issuer),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperr.ErrAccessTokenExpired
		}
		return nil, apperr.ErrInvalidToken
	}
	if !tok.Valid {
		return nil, apperr.ErrInvalidToken
	}
	return claims, nil
}
