package app

import (
	"flag"
	"fmt"
	"strconv"
	"time"

	"snake-rewind/internal/logging"
	"snake-rewind/internal/save"
	"snake-rewind/internal/snake"
)

// Config represents the command-line parameters shared by the binaries.
type Config struct {
	Width         int
	Height        int
	StartLength   int
	FilePath      string
	Speed         int
	SpeedIncrease string
	BadBerries    bool
	Ghost         bool
	TwoPlayers    bool

	Scale   int
	Seed    int64
	Debug   bool
	LogFile string
	Mute    bool
}

// NewConfig returns a Config populated with the game defaults.
func NewConfig() *Config {
	d := snake.DefaultConfig()
	return &Config{
		Width:         d.Width,
		Height:        d.Height,
		StartLength:   d.StartLength,
		Speed:         d.Speed,
		SpeedIncrease: d.Difficulty.String(),
		Scale:         8,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.StartLength, "snake-size-start", c.StartLength, "initial snake length")
	fs.StringVar(&c.FilePath, "file-path", c.FilePath, "save file to load at start and write on save (default "+save.DefaultPath+")")
	fs.IntVar(&c.Speed, "snake-speed", c.Speed, "tick interval in milliseconds")
	fs.StringVar(&c.SpeedIncrease, "speed-increase", c.SpeedIncrease, "difficulty: easy, medium or hard")
	fs.BoolVar(&c.BadBerries, "bad-berries", c.BadBerries, "spawn speed-toggling bad berries")
	fs.BoolVar(&c.Ghost, "ghost-mode", c.Ghost, "wrap around the grid edges")
	fs.BoolVar(&c.TwoPlayers, "two-players-mode", c.TwoPlayers, "add a second snake on WASD")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed, 0 picks one from the clock")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "log at debug level")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "write logs to this file")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable sound")
}

// Game converts the flags into a world configuration.
func (c *Config) Game() (snake.Config, error) {
	if _, err := snake.ParseDifficulty(c.SpeedIncrease); err != nil {
		return snake.Config{}, err
	}
	cfg := snake.FromMap(map[string]string{
		"width":            strconv.Itoa(c.Width),
		"height":           strconv.Itoa(c.Height),
		"snake_size_start": strconv.Itoa(c.StartLength),
		"snake_speed":      strconv.Itoa(c.Speed),
		"speed_increase":   c.SpeedIncrease,
		"bad_berries":      strconv.FormatBool(c.BadBerries),
		"ghost_mode":       strconv.FormatBool(c.Ghost),
		"two_players_mode": strconv.FormatBool(c.TwoPlayers),
		"seed":             strconv.FormatInt(c.ResolveSeed(), 10),
	})
	if cfg.Width != c.Width || cfg.Height != c.Height || cfg.StartLength != c.StartLength || cfg.Speed != c.Speed {
		return snake.Config{}, fmt.Errorf("dimensions, start length and speed must be positive")
	}
	return cfg, cfg.Validate()
}

// ResolveSeed returns the configured seed, or a clock-based one for 0. The
// choice is remembered so later calls agree.
func (c *Config) ResolveSeed() int64 {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c.Seed
}

// SavePath returns where the save key writes.
func (c *Config) SavePath() string {
	if c.FilePath == "" {
		return save.DefaultPath
	}
	return c.FilePath
}

// Logging returns logger options. Terminal front-ends pass tty=true because
// the screen owns stdout and stderr.
func (c *Config) Logging(tty bool) logging.Options {
	return logging.Options{
		File:    c.LogFile,
		Debug:   c.Debug,
		Console: !tty,
		Discard: tty && c.LogFile == "",
	}
}
