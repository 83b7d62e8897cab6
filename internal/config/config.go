package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr        string     `env:"HTTP_ADDR" envDefault:":8080"`
	DBPath          string     `env:"DB_PATH" envDefault:"data/closercountry.db"`
	RedisURL        string     `env:"REDIS_URL"`
	CountriesPath   string     `env:"COUNTRIES_PATH"`
	LogLevel        slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	LeaderboardSize int        `env:"LEADERBOARD_SIZE" envDefault:"5"`
	RecentWindow    int        `env:"RECENT_WINDOW" envDefault:"3"`
	SPADir          string     `env:"SPA_DIR" envDefault:"../web/dist"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
