package middleware // middleware provides shared request processing for handlers

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Curstantine/unnamed-weeb-music-database/internal/apperr"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/auth"
)

// ClaimsKey is the echo context key under which verified access claims are
// stored for downstream handlers.
const ClaimsKey = "claims"

// Auth returns an Echo middleware that verifies a Bearer access token and
// injects the decoded claims into the request context. A request without an
// Authorization header (or with an empty token) passes through anonymously;
// public lookups work either way and protected routes gate on the claims
// further down the chain. A token that is present but fails verification is
// rejected immediately.
func Auth(codec *auth.TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return next(c)
			}
			raw := strings.TrimPrefix(header, "Bearer ")
			if raw == "" {
				return next(c)
			}

			claims, err := codec.Verify(raw)
			if err != nil {
				ae := apperr.From(err)
				return c.JSON(ae.Status, ae)
			}

			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom pulls the verified claims out of the context. The second return
// is false for anonymous requests.
func ClaimsFrom(c echo.Context) (*auth.Claims, bool) {
	claims, ok := c.Get(ClaimsKey).(*auth.Claims)
	return claims, ok
}
