package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/Curstantine/unnamed-weeb-music-database/internal/auth"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/config"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/database"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/handler"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/model"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/queue"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/repository"
	"github.com/Curstantine/unnamed-weeb-music-database/internal/router"
)

func main() {
	// Missing .env is fine; the real environment takes precedence anyway.
	_ = godotenv.Load()
	cfg := config.Load()

	logger := newLogger(cfg.Env)
	defer logger.Sync()
	log := logger.Sugar()

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalw("database connection failed", "error", err)
	}
	defer db.Close()

	if err := database.Migrate(db, cfg.MigrationsDir); err != nil {
		log.Fatalw("migrations failed", "error", err)
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db, time.Duration(cfg.RefreshTTLSec)*time.Second)
	artists := repository.NewArtistRepo(db)
	songs := repository.NewSongRepo(db)
	releases := repository.NewReleaseRepo(db)
	tags := repository.NewTagRepo(db)

	codec, err := auth.NewTokenCodec(cfg.AuthKey, config.AppName, time.Duration(cfg.AccessTTLSec)*time.Second)
	if err != nil {
		log.Fatalw("invalid auth key", "error", err)
	}

	if err := seedAdmin(cfg, users, log); err != nil {
		log.Fatalw("admin seed failed", "error", err)
	}

	svc := auth.NewService(users, tokens, codec, cfg.BcryptCost, log, queue.PublishUserRegistered)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(svc), codec)
	router.RegisterCatalog(e,
		handler.NewCatalogHandler(artists, songs, releases, tags, users),
		codec, config.LoadCacheConfig(), config.NewRedisClient())

	addr := ":" + cfg.Port
	log.Infow("listening", "addr", addr, "env", cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatalw("server stopped", "error", err)
	}
}

// newLogger picks the zap preset for the environment.
func newLogger(env string) *zap.Logger {
	if env == "prod" {
		l, _ := zap.NewProduction()
		return l
	}
	l, _ := zap.NewDevelopment()
	return l
}

// seedAdmin inserts the bootstrap admin account if no user claims its
// username or email yet. It runs before the HTTP server accepts traffic so
// a fresh database is never admin-less.
func seedAdmin(cfg config.Config, users *repository.UserRepo, log *zap.SugaredLogger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	taken, err := users.Exists(ctx, cfg.AdminEmail, cfg.AdminUsername)
	if err != nil {
		return err
	}
	if taken {
		return nil
	}

	hash, err := auth.HashPassword(cfg.AdminPassword, cfg.BcryptCost)
	if err != nil {
		return err
	}
	u, err := users.Create(ctx, cfg.AdminUsername, cfg.AdminEmail, hash, model.LevelAdmin)
	if err != nil {
		return err
	}
	log.Infow("seeded admin user", "user_id", u.ID, "username", u.Username)
	return nil
}
