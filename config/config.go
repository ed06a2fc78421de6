package config

import (
	"fmt"

	"damas/game"
	"damas/meta"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds the settings shared by the play and match commands.
type Config struct {
	BoardSize      int    `env:"DAMAS_BOARD_SIZE" envDefault:"8"`
	StartingPlayer string `env:"DAMAS_STARTING_PLAYER" envDefault:"red"`
	Seed           uint64 `env:"DAMAS_SEED" envDefault:"0"` // 0 draws a fresh seed
	MaxTurns       int    `env:"DAMAS_MAX_TURNS" envDefault:"300"`
	Games          int    `env:"DAMAS_GAMES" envDefault:"20"`
	OutputDir      string `env:"DAMAS_OUTPUT_DIR" envDefault:"experiments"`
	LogLevel       string `env:"DAMAS_LOG_LEVEL" envDefault:"info"`
}

// Default returns the built-in settings without reading the environment.
func Default() Config {
	return Config{
		BoardSize:      meta.BOARD_SIZE,
		StartingPlayer: game.Red.String(),
		MaxTurns:       meta.MAX_TURNS,
		Games:          meta.NUM_GAMES,
		OutputDir:      meta.OUTPUT_DIR,
		LogLevel:       zerolog.InfoLevel.String(),
	}
}

// Load reads the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.BoardSize < 4 || c.BoardSize%2 != 0 {
		return fmt.Errorf("board size must be even and at least 4, got %d", c.BoardSize)
	}
	if _, err := game.ParseColor(c.StartingPlayer); err != nil {
		return fmt.Errorf("starting player: %w", err)
	}
	if c.MaxTurns <= 0 {
		return fmt.Errorf("max turns must be positive, got %d", c.MaxTurns)
	}
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output dir is required")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func (c Config) Starting() game.Color {
	color, err := game.ParseColor(c.StartingPlayer)
	if err != nil {
		return game.Red
	}
	return color
}

func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}
