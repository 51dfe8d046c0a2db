package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/slatrack/internal/config"
	"github.com/MrSnakeDoc/slatrack/internal/httpserver"
	"github.com/MrSnakeDoc/slatrack/internal/httpserver/deps"
	"github.com/MrSnakeDoc/slatrack/internal/logger"
	"github.com/MrSnakeDoc/slatrack/internal/redis"
	"github.com/MrSnakeDoc/slatrack/internal/registry"
	"github.com/MrSnakeDoc/slatrack/internal/seed"
	memorystore "github.com/MrSnakeDoc/slatrack/internal/store/memory"
	redisstore "github.com/MrSnakeDoc/slatrack/internal/store/redis"
	"github.com/MrSnakeDoc/slatrack/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	var (
		store       registry.Store
		redisClient *goredis.Client
	)

	switch cfg.StoreBackend {
	case "memory":
		loggerClient.Warn("using in-memory store, data will not survive restarts")
		store = memorystore.NewStore()
	default:
		// Initialize Redis early - fail fast if unavailable
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
		}, loggerClient)
		if err != nil {
			loggerClient.Errorf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		loggerClient.Info("Redis initialized successfully")
		redisClient = client
		store = redisstore.NewStore(client)
	}

	reg := registry.New(store, loggerClient, time.Now)

	// Seed initial services (if a seed file is configured)
	if cfg.SeedFile != "" {
		loader := seed.NewLoader(cfg.SeedFile)
		if _, err := loader.Apply(context.Background(), reg, loggerClient); err != nil {
			loggerClient.Warn("failed to apply seed file", logger.Error(err))
		}
	} else {
		loggerClient.Info("seed file not configured, starting with existing data only")
	}

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:    loggerClient,
		StartTime: time.Now(),
		Version:   version.Version,
		Commit:    version.Commit,
		BuildDate: version.BuildDate,
		GoVersion: version.GoVersion,
		TimeNow:   time.Now,
		Registry:  reg,
		Store:     store,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting slatrack v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("slatrack %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ slatrack stopped cleanly")
	return nil
}
