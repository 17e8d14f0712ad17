package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config holds the engine parameters. Values come from defaults, then an
// optional patzer.yaml in the working directory, then PATZER_* environment
// variables.
type Config struct {
	// SearchDepth is the minimax depth in plies.
	SearchDepth int `mapstructure:"search_depth"`
	// MoveLimit caps ranked candidates per ply.
	MoveLimit int `mapstructure:"move_limit"`
	// Heuristics enables positional evaluation terms on top of material.
	Heuristics bool `mapstructure:"heuristics"`
	// Debug lowers the log level to debug.
	Debug bool `mapstructure:"debug"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("search_depth", 3)
	v.SetDefault("move_limit", 10)
	v.SetDefault("heuristics", false)
	v.SetDefault("debug", false)

	v.SetEnvPrefix("patzer")
	v.AutomaticEnv()

	v.SetConfigName("patzer")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
