//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"snake-rewind/internal/app"
	"snake-rewind/internal/audio"
	"snake-rewind/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, closeLog, err := logging.New(cfg.Logging(false))
	if err != nil {
		log.Fatal().Err(err).Msg("logging setup failed")
	}
	defer closeLog()

	world, err := app.Bootstrap(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start game")
	}

	sounds := audio.New(cfg.Mute)
	if err := sounds.Init(); err != nil {
		logger.Warn().Err(err).Msg("audio unavailable")
	}
	defer sounds.Close()

	game := app.New(world, cfg, logger, sounds)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("snake-rewind")
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error().Err(err).Msg("game loop failed")
		os.Exit(1)
	}
}
