package app

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog"

	"snake-rewind/internal/save"
	"snake-rewind/internal/snake"
)

// Bootstrap builds the world from cfg and applies the save file named by
// -file-path when it exists. A dimension mismatch is returned as an error
// wrapping save.ErrDimensionMismatch.
func Bootstrap(cfg *Config, logger zerolog.Logger) (*snake.World, error) {
	gameCfg, err := cfg.Game()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	world, err := snake.New(gameCfg, snake.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	if cfg.FilePath == "" {
		return world, nil
	}
	h, err := save.Load(cfg.FilePath, world.Grid())
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug().Str("path", cfg.FilePath).Msg("no save file yet")
		return world, nil
	case err != nil:
		return nil, err
	}
	if !world.SetFood(h.Food()) {
		logger.Warn().Stringer("food", h.Food()).Msg("saved food cell unusable, keeping spawned food")
	}
	logger.Info().Str("path", cfg.FilePath).Msg("save loaded")
	return world, nil
}

// Save writes the world header to the configured path.
func Save(cfg *Config, world save.Source, logger zerolog.Logger) error {
	path := cfg.SavePath()
	if err := save.Write(path, world); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("save failed")
		return err
	}
	logger.Info().Str("path", path).Msg("saved")
	return nil
}
