package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Curstantine/unnamed-weeb-music-database/internal/auth"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/model"
)

func testCodec(t *testing.T) *auth.TokenCodec {
	t.Helper()
	codec, err := auth.NewTokenCodec("c2VjcmV0", "unnamed-weeb-music-database", time.Hour)
	require.NoError(t, err)
	return codec
}

func echoRequest(token string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error { return c.NoContent(http.StatusOK) }

func TestAuthAnonymousPassesThrough(t *testing.T) {
	c, rec := echoRequest("")

	err := Auth(testCodec(t))(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	_, ok := ClaimsFrom(c)
	assert.False(t, ok)
}

func TestAuthInvalidTokenRejected(t *testing.T) {
	c, rec := echoRequest("not-a-jwt")

	err := Auth(testCodec(t))(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAuthValidTokenInjectsClaims(t *testing.T) {
	codec := testCodec(t)
	token, err := codec.Issue(model.User{ID: "user-1", AccessLevel: model.LevelModerator})
	require.NoError(t, err)

	c, rec := echoRequest(token)

	require.NoError(t, Auth(codec)(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	claims, ok := ClaimsFrom(c)
	require.True(t, ok)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, model.LevelModerator, claims.AccessLevel)
}

func TestRequireLevelAnonymous(t *testing.T) {
	c, rec := echoRequest("")

	err := RequireLevel(model.LevelAdmin)(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireLevelForbidden(t *testing.T) {
	codec := testCodec(t)
	token, err := codec.Issue(model.User{ID: "user-1", AccessLevel: model.LevelUser})
	require.NoError(t, err)

	c, rec := echoRequest(token)
	chain := Auth(codec)(RequireLevel(model.LevelAdmin, model.LevelModerator)(okHandler))

	require.NoError(t, chain(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireLevelAllows(t *testing.T) {
	codec := testCodec(t)
	token, err := codec.Issue(model.User{ID: "user-1", AccessLevel: model.LevelAdmin})
	require.NoError(t, err)

	c, rec := echoRequest(token)
	chain := Auth(codec)(RequireLevel(model.LevelAdmin)(okHandler))

	require.NoError(t, chain(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
