package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/Curstantine/unnamed-weeb-music-database/internal/apperr"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/model"
)

// RequireLevel returns a middleware that enforces that the request carries
// verified claims with one of the given access levels. Anonymous requests
// get 401; authenticated requests below the bar get 403. It assumes Auth ran
// earlier in the chain.
func RequireLevel(levels ...model.AccessLevel) echo.MiddlewareFunc {
	allowed := make(map[model.AccessLevel]bool, len(levels))
	for _, l := range levels {
		allowed[l] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return c.JSON(apperr.ErrUnauthorized.Status, apperr.ErrUnauthorized)
			}
			if !allowed[claims.AccessLevel] {
				return c.JSON(apperr.ErrForbidden.Status, apperr.ErrForbidden)
			}
			return next(c)
		}
	}
}
