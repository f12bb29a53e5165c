package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/travel-journal/journal-api/internal/api"
	"github.com/travel-journal/journal-api/internal/api/handler"
	"github.com/travel-journal/journal-api/internal/core/ports"
	"github.com/travel-journal/journal-api/internal/core/service"
	mongodb "github.com/travel-journal/journal-api/internal/infrastructure/db/mongo"
	redisdb "github.com/travel-journal/journal-api/internal/infrastructure/db/redis"
	"github.com/travel-journal/journal-api/internal/infrastructure/geocode"
	"github.com/travel-journal/journal-api/internal/pkg/config"
	"github.com/travel-journal/journal-api/pkg/logger"
)

// @title                      Travel Journal API
// @version                    1.0
// @description                Journal entries with geocoded locations, plus user signup and login.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "journal-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(dctx)
	}()

	entryRepo := mongodb.NewEntryRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	if err := mongodb.EnsureIndexes(ctx, entryRepo, userRepo); err != nil {
		log.Fatal().Err(err).Msg("failed to create MongoDB indexes")
	}

	// --- Geocoding (Redis cache is optional) ---
	var geocoder ports.Geocoder = geocode.NewGoogleClient(geocode.Config{
		BaseURL: cfg.Geocode.BaseURL,
		APIKey:  cfg.Geocode.APIKey,
		Timeout: cfg.Geocode.Timeout,
	})
	if cfg.Geocode.APIKey == "" {
		log.Warn().Msg("GEOCODE_API_KEY is empty, geocoding requests will be rejected by the provider")
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TLS:      cfg.Redis.TLS,
			Timeout:  cfg.Redis.Timeout,
		})
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, geocode cache disabled")
			rdb = nil
		} else {
			defer rdb.Close()
			geocoder = geocode.NewCached(geocoder, redisdb.NewGeocodeCache(rdb, cfg.Geocode.CacheTTL), log)
		}
	}

	// --- Services & HTTP ---
	entryService := service.NewEntryService(entryRepo, geocoder, cfg.Defaults.EntryPhoto, log)
	userService := service.NewUserService(userRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Defaults.UserImage, log)

	e := api.NewRouter(api.Deps{
		EntryService:   entryService,
		UserService:    userService,
		Readiness:      handler.NewHealthDependenciesHandler(db, rdb),
		JWTSecret:      cfg.Auth.JWTSecret,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Logger:         log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
