package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Player kinds accepted by the players section and the command line.
const (
	PlayerHuman     = "human"
	PlayerNegamax   = "negamax"
	PlayerAlphaBeta = "negamax-ab"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error" yaml:"log-level"`

	Board     Board     `yaml:"board"`
	Players   Players   `yaml:"players"`
	AI        AI        `yaml:"ai"`
	Telemetry Telemetry `yaml:"telemetry"`
}

type Board struct {
	Rows      int    `env:"BOARD_ROWS" env-default:"8" validate:"min=1" yaml:"rows"`
	Cols      int    `env:"BOARD_COLS" env-default:"8" validate:"min=1" yaml:"cols"`
	WinLength int    `env:"BOARD_WIN_LENGTH" env-default:"4" validate:"min=1" yaml:"win-length"`
	File      string `env:"BOARD_FILE" yaml:"file"`
}

type Players struct {
	X string `env:"PLAYER_X" env-default:"human" validate:"oneof=human negamax negamax-ab" yaml:"x"`
	O string `env:"PLAYER_O" env-default:"negamax-ab" validate:"oneof=human negamax negamax-ab" yaml:"o"`
}

type AI struct {
	NegamaxDepth   int `env:"NEGAMAX_DEPTH" env-default:"3" validate:"min=0" yaml:"negamax-depth"`
	AlphaBetaDepth int `env:"ALPHABETA_DEPTH" env-default:"5" validate:"min=0" yaml:"alphabeta-depth"`
}

type Telemetry struct {
	Enabled bool `env:"TELEMETRY_ENABLED" env-default:"false" yaml:"enabled"`
}

// MustLoad - loads and validates the configuration, panicking on failure.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

// Load reads the configuration from path, or from environment variables
// alone when no file is given.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path != "" {
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("read config from environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the field tags plus the one cross-field rule: the win
// length has to fit on the longer board axis.
func (that *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(that); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if longest := max(that.Board.Rows, that.Board.Cols); that.Board.WinLength > longest {
		return fmt.Errorf("invalid config: win-length %d exceeds the longest board axis %d", that.Board.WinLength, longest)
	}

	return nil
}
