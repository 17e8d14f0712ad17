package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/patzerhq/patzer/config"
	"github.com/patzerhq/patzer/shell"
)

var mode = flag.String("mode", "manual",
	"manual (human vs human) or ai (human plays White against the engine)")

func main() {
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	var vsEngine bool
	switch *mode {
	case "manual":
		vsEngine = false
	case "ai":
		vsEngine = true
	default:
		log.Fatal().Str("mode", *mode).Msg("unknown mode")
	}

	log.Info().Str("mode", *mode).
		Int("search-depth", cfg.SearchDepth).
		Int("move-limit", cfg.MoveLimit).
		Bool("heuristics", cfg.Heuristics).
		Msg("starting")

	sc, err := shell.NewShellController(cfg, vsEngine)
	if err != nil {
		log.Fatal().Err(err).Msg("starting shell")
	}
	sc.Loop()
}
