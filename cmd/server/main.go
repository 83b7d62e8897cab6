package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/playgeo/closercountry/internal/atlas"
	"github.com/playgeo/closercountry/internal/config"
	"github.com/playgeo/closercountry/internal/database"
	"github.com/playgeo/closercountry/internal/migrations"
	"github.com/playgeo/closercountry/internal/quiz"
	"github.com/playgeo/closercountry/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- Country catalog ---
	catalog, err := openCatalog(cfg.CountriesPath)
	if err != nil {
		return fmt.Errorf("loading country catalog: %w", err)
	}
	if catalog.Len() < 3 {
		return fmt.Errorf("country catalog unusable: %w", quiz.ErrInsufficientCatalog)
	}
	logger.Info("loaded country catalog", "countries", catalog.Len())

	engine := quiz.NewEngine(catalog, cfg.RecentWindow, time.Now().UnixNano())

	// --- SQLite ---
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	logger.Info("connected to sqlite", "path", cfg.DBPath)

	// --- Leaderboard store ---
	var store server.Store = server.NewSQLiteStore(db)
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = openRedis(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer rdb.Close()
		store = server.NewRedisStore(rdb)
		logger.Info("connected to redis, using redis leaderboard")
	}

	// --- HTTP server ---
	srv := server.New(cfg.HTTPAddr, logger, server.Options{
		Engine:          engine,
		Sessions:        server.NewSessions(),
		Store:           store,
		DB:              db,
		Redis:           rdb,
		LeaderboardSize: cfg.LeaderboardSize,
		SPADir:          cfg.SPADir,
	})

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}

func openCatalog(path string) (*atlas.Catalog, error) {
	if path == "" {
		return atlas.Default()
	}
	return atlas.Open(path)
}

func openRedis(ctx context.Context, rawURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return rdb, nil
}
