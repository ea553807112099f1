package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"snake-rewind/internal/app"
	"snake-rewind/internal/audio"
	"snake-rewind/internal/logging"
	"snake-rewind/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, closeLog, err := logging.New(cfg.Logging(true))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	world, err := app.Bootstrap(cfg, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sounds := audio.New(cfg.Mute)
	if err := sounds.Init(); err != nil {
		logger.Warn().Err(err).Msg("audio unavailable")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = term.Run(ctx, screen, world, term.Options{
		Logger: logger,
		Sounds: sounds,
		Save:   func() error { return app.Save(cfg, world, logger) },
	})
	stop()
	sounds.Close()
	screen.Fini()
	if err != nil {
		logger.Error().Err(err).Msg("terminal loop failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if world.Finished() {
		fmt.Println(world.ScoreReport())
	}
}
