package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Game     Game   `yaml:"game"`
}

type Game struct {
	MarkX         string `yaml:"mark-x" env:"GAME_MARK_X" env-default:"X"`
	MarkO         string `yaml:"mark-o" env:"GAME_MARK_O" env-default:"O"`
	MovesReversed bool   `yaml:"moves-reversed" env:"GAME_MOVES_REVERSED"`
	DrawMessage   string `yaml:"draw-message" env:"GAME_DRAW_MESSAGE" env-default:"Draw!"`
}

// MustLoad - load configuration from the config.yml file, or from the environment when the file is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads config from path, falling back to the environment when the file is absent.
func Load(path string) (*Config, error) {
	// cleanenv treats false as unset, so the true default is seeded here instead of in a tag.
	config := &Config{Game: Game{MovesReversed: true}}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read env: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return config, nil
}
