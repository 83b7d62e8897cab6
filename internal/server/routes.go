package server

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/swaggest/swgui/v5emb"

	"github.com/playgeo/closercountry/internal/quiz"
)

// Options carries the collaborators the HTTP surface is wired with.
type Options struct {
	Engine          *quiz.Engine
	Sessions        *Sessions
	Store           Store
	DB              *sql.DB       // health check; nil when the store is not sqlite-backed
	Redis           *redis.Client // health check; nil unless configured
	LeaderboardSize int
	SPADir          string
}

func addRoutes(r chi.Router, logger *slog.Logger, o Options) {
	broker := NewBroker()

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Closer Country API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, o.DB, o.Redis))

	r.Route("/api", func(r chi.Router) {
		r.Post("/game/start", handleStart(o.Sessions, o.Store, logger))
		r.Get("/game/round", handleRound(o.Engine, o.Sessions))
		r.Post("/game/guess", handleGuess(o.Engine, o.Sessions, o.Store, broker, logger))
		r.Get("/game/over", handleGameOver(o.Sessions))
		r.Post("/game/nickname", handleNickname(o.Sessions, o.Store, o.LeaderboardSize, broker, logger))
		r.Get("/leaderboard", handleLeaderboard(o.Store, o.LeaderboardSize, logger))
		r.Get("/leaderboard/events", handleEvents(o.Sessions, broker))
	})

	r.Get("/ws/play", handleWSPlay(logger, o.Engine, o.Sessions, o.Store, broker))

	if o.SPADir != "" {
		if info, err := os.Stat(o.SPADir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", o.SPADir)
			r.NotFound(handleSPA(o.SPADir))
		}
	}
}
