package auth

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Curstantine/unnamed-weeb-music-database/internal/apperr"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/model"
)

const (
	testKey    = "c2VjcmV0" // base64("secret")
	testIssuer = "unnamed-weeb-music-database"
)

func testCodec(t *testing.T, ttl time.Duration) *TokenCodec {
	t.Helper()
	c, err := NewTokenCodec(testKey, testIssuer, ttl)
	require.NoError(t, err)
	return c
}

func testUser() model.User {
	return model.User{
		ID:          "0190b9a5-0c2f-7000-8000-000000000001",
		Username:    "misato",
		Email:       "misato@nerv.example",
		AccessLevel: model.LevelContributor,
	}
}

func TestNewTokenCodecRejectsBadBase64(t *testing.T) {
	_, err := NewTokenCodec("%%%not-base64%%%", testIssuer, time.Hour)
	assert.Error(t, err)
}

func TestIssueAndVerify(t *testing.T) {
	c := testCodec(t, time.Hour)
	u := testUser()

	before := time.Now().UTC()
	raw, err := c.Issue(u)
	require.NoError(t, err)

	claims, err := c.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.Subject)
	assert.Equal(t, model.LevelContributor, claims.AccessLevel)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{testIssuer}, claims.Audience)
	assert.Empty(t, claims.SessionID)

	// Expiry sits exactly one TTL after issuance.
	assert.Equal(t, claims.IssuedAt.Add(time.Hour), claims.ExpiresAt.Time)
	assert.Equal(t, claims.IssuedAt.Time, claims.NotBefore.Time)
	assert.WithinDuration(t, before, claims.IssuedAt.Time, 5*time.Second)
}

// Verifying the same unexpired token twice yields identical claims.
func TestVerifyIsIdempotent(t *testing.T) {
	c := testCodec(t, time.Hour)
	raw, err := c.Issue(testUser())
	require.NoError(t, err)

	first, err := c.Verify(raw)
	require.NoError(t, err)
	second, err := c.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestVerifyExpired(t *testing.T) {
	c := testCodec(t, -time.Minute)
	raw, err := c.Issue(testUser())
	require.NoError(t, err)

	_, err = c.Verify(raw)
	assert.ErrorIs(t, err, apperr.ErrAccessTokenExpired)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	c := testCodec(t, time.Hour)
	raw, err := c.Issue(testUser())
	require.NoError(t, err)

	_, err = c.Verify(raw + "x")
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)

	_, err = c.Verify("definitely.not.a: token")
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	c := testCodec(t, time.Hour)
	other, err := NewTokenCodec(base64.StdEncoding.EncodeToString([]byte("another-secret")), testIssuer, time.Hour)
	require.NoError(t, err)

	raw, err := other.Issue(testUser())
	require.NoError(t, err)

	_, err = c.Verify(raw)
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}

// A token whose not_before is still in the future must be rejected even
// though it is otherwise well-formed.
func TestVerifyRejectsFutureNotBefore(t *testing.T) {
	c := testCodec(t, time.Hour)
	now := time.Now().UTC()
	claims := Claims{
		AccessLevel: model.LevelUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Audience:  jwt.ClaimStrings{testIssuer},
			Subject:   "someone",
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(30 * time.Minute)),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = c.Verify(raw)
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}
