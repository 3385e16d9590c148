package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/elibrary/library-system/internal/api"
	"github.com/elibrary/library-system/internal/core/service"
	"github.com/elibrary/library-system/internal/infrastructure/config"
	"github.com/elibrary/library-system/internal/infrastructure/kv"
	"github.com/elibrary/library-system/internal/infrastructure/notify"
	"github.com/elibrary/library-system/pkg/logger"

	_ "github.com/elibrary/library-system/docs"
)

// @title           Library Catalog API
// @version         1.0
// @description     Book catalog, accounts, and session management over a key-value backing store.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StorageBackend).Msg("failed to open backing store")
	}
	defer cleanup()

	hub := notify.NewHub(log)
	hub.LogEvents(ctx)

	catalogRepo := kv.NewCatalogRepository(store, log)
	accountRepo := kv.NewAccountRepository(store, log)
	sessions := kv.NewSessionStore(store)
	themes := kv.NewThemeStore(store)

	catalogService := service.NewCatalogService(catalogRepo, hub, log)
	authService := service.NewAuthService(
		accountRepo,
		sessions,
		service.SchemeFromName(cfg.CredentialScheme),
		cfg.JWTSecret,
		cfg.SessionTTL,
		log,
	)

	e := api.NewRouter(api.Dependencies{
		Catalog:   catalogService,
		Auth:      authService,
		Themes:    themes,
		Store:     store,
		JWTSecret: cfg.JWTSecret,
		Log:       log,
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().
		Str("port", cfg.Port).
		Str("backend", cfg.StorageBackend).
		Str("env", cfg.Env).
		Msg("starting library catalog server")

	if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// openStore builds the configured backing store adapter. The returned
// cleanup closes backend connections and is a no-op for the memory store.
func openStore(ctx context.Context, cfg *config.Config) (kv.Store, func(), error) {
	switch cfg.StorageBackend {
	case "memory":
		return kv.NewMemory(), func() {}, nil

	case "redis":
		client, err := kv.ConnectRedis(ctx, kv.RedisConfig{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, nil, err
		}
		return kv.NewRedis(client), func() { _ = client.Close() }, nil

	case "mongo":
		client, db, err := kv.ConnectMongo(ctx, kv.MongoConfig{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}
		return kv.NewMongo(db), cleanup, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
