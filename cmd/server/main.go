package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/maxviazov/tournament-standings-service/internal/cache"
	"github.com/maxviazov/tournament-standings-service/internal/config"
	"github.com/maxviazov/tournament-standings-service/internal/handler"
	"github.com/maxviazov/tournament-standings-service/internal/live"
	"github.com/maxviazov/tournament-standings-service/internal/logger"
	postgres "github.com/maxviazov/tournament-standings-service/internal/repository"
	pgrepo "github.com/maxviazov/tournament-standings-service/internal/repository/postgres"
	"github.com/maxviazov/tournament-standings-service/internal/service"
)

func main() {
	configPath := os.Getenv("APP_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}

	// Load application config
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// Initialize logger
	if cfg.Logger.Env == "" {
		cfg.Logger.Env = cfg.App.Env
	}
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}
	appLogger.Info().Msg("✅ Logger initialized successfully")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, appLogger); err != nil {
		appLogger.Error().Err(err).Msg("service stopped with error")
		stop()
		os.Exit(1)
	}
	appLogger.Info().Msg("👋 Service stopped")
}

func run(ctx context.Context, cfg *config.Config, appLogger zerolog.Logger) error {
	connectPgx, err := postgres.New(ctx, cfg, &appLogger)
	if err != nil {
		return fmt.Errorf("postgres connection failed: %w", err)
	}
	defer connectPgx.Close()

	if cfg.Postgres.AutoMigrate {
		if err := connectPgx.Migrate(ctx, cfg.Postgres.MigrationsDir); err != nil {
			return err
		}
	}

	pool := connectPgx.Pool()
	tournaments := pgrepo.NewTournamentRepository(pool)
	matches := pgrepo.NewMatchRepository(pool)
	entries := pgrepo.NewEntryRepository(pool)
	txManager := pgrepo.NewTxManager(pool)

	checks := handler.Checks{"postgres": pgrepo.NewPinger(pool)}
	var standingsCache service.StandingsCache = cache.Nop{}
	if cfg.Redis.Enabled {
		client, err := cache.NewClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer func(c *redis.Client) { _ = c.Close() }(client)
		redisCache := cache.NewStandingsCache(client, cfg.Redis.TTL(), appLogger)
		standingsCache = redisCache
		checks["redis"] = redisCache
		appLogger.Info().Str("addr", cfg.Redis.Addr).Msg("standings cache enabled")
	}

	var (
		hub       *live.Hub
		publisher service.StandingsPublisher
	)
	if cfg.Live.Enabled {
		hub = live.NewHub(cfg.Live.SendBuffer, appLogger)
		go hub.Run(ctx)
		publisher = hub
	}

	tournamentSvc := service.NewTournamentService(tournaments, matches, entries, standingsCache, appLogger)
	matchSvc := service.NewMatchService(tournaments, matches, txManager, standingsCache, publisher, appLogger)

	if cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery(), handler.RequestID(), handler.AccessLog(appLogger))
	handler.Register(engine, checks, tournamentSvc, matchSvc, hub, cfg.Live.AllowedOrigins, appLogger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info().Int("port", cfg.App.Port).Msg("🚀 Service started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	appLogger.Info().Dur("grace", cfg.App.ShutdownGrace()).Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownGrace())
	defer cancel()
	// websocket connections are hijacked and not tracked by Shutdown; the hub closes them on ctx cancel
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
