// Package router wires handlers and middleware onto the Echo instance.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/Curstantine/unnamed-weeb-music-database/internal/auth"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/config"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/handler"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/middleware"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/model"
)

// RegisterRoutes registers routes that need no authentication or handler
// state. Currently that is only the health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth mounts the credential lifecycle under /v1/auth and the
// claims-echo endpoint under /v1/me. Register, login and refresh are open
// by definition; /v1/me requires any authenticated level.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, codec *auth.TokenCodec) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	me := e.Group("/v1/me")
	me.Use(middleware.Auth(codec))
	me.Use(middleware.RequireLevel(model.LevelAdmin, model.LevelModerator, model.LevelContributor, model.LevelUser))
	me.GET("", a.Me)
}

// RegisterCatalog mounts the read-only catalog lookups. Artists, songs,
// releases and tags are public and sit behind the response cache; user
// lookups expose account data and are restricted to staff levels.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler, codec *auth.TokenCodec, cacheCfg config.CacheConfig, rdb *redis.Client) {
	public := e.Group("/v1")
	public.Use(middleware.NewRedisCache(cacheCfg, rdb))
	public.GET("/artists", h.GetArtists)
	public.GET("/artists/:id", h.GetArtist)
	public.GET("/songs", h.GetSongs)
	public.GET("/songs/:id", h.GetSong)
	public.GET("/releases", h.GetReleases)
	public.GET("/releases/:id", h.GetRelease)
	public.GET("/tags", h.GetTags)
	public.GET("/tags/:id", h.GetTag)

	users := e.Group("/v1/users")
	users.Use(middleware.Auth(codec))
	users.Use(middleware.RequireLevel(model.LevelAdmin, model.LevelModerator))
	users.GET("", h.GetUsers)
	users.GET("/:id", h.GetUser)
}
