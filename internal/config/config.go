package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the ambient settings of the process. None of them change how the game is played.
type Config struct {
	LogLevel string `env:"TICTACTOE_LOG_LEVEL" env-default:"error"`
}

// MustLoad - load the configuration from the environment.
func MustLoad() *Config {
	config, err := Load()
	if err != nil {
		panic(err)
	}

	return config
}

func Load() (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to load config from environment: %w", err)
	}

	return config, nil
}

// SlogLevel maps LogLevel to a slog level. Unknown values fall back to error.
func (that *Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(that.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
