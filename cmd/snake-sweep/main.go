package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"snake-rewind/internal/app"
	"snake-rewind/internal/logging"
	"snake-rewind/internal/sweep"
)

func main() {
	games := flag.Int("games", 64, "games to play")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	maxTicks := flag.Int("max-ticks", 2000, "tick limit per game")
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, closeLog, err := logging.New(cfg.Logging(false))
	if err != nil {
		log.Fatal().Err(err).Msg("logging setup failed")
	}
	defer closeLog()

	gameCfg, err := cfg.Game()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid game flags")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	run := uuid.NewString()
	fmt.Printf("Sweep %s: %d games on %dx%d (%d workers, %d max ticks, %s)\n",
		run, *games, gameCfg.Width, gameCfg.Height, *workers, *maxTicks, gameCfg.Difficulty)

	start := time.Now()
	results, err := sweep.Run(ctx, gameCfg, *games, *workers, *maxTicks, logger)
	if err != nil {
		logger.Error().Err(err).Int("completed", len(results)).Msg("sweep stopped early")
	}
	summary := sweep.Summarize(results)

	best := sweep.Result{}
	for _, r := range results {
		if r.Score > best.Score {
			best = r
		}
	}
	fmt.Printf("\n%s (elapsed %s)\n", summary, time.Since(start).Round(time.Millisecond))
	fmt.Printf("Best game: #%d seed=%d score=%d length=%d ticks=%d\n", best.Game, best.Seed, best.Score, best.Length, best.Ticks)
}
