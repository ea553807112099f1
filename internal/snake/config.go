package snake

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// FoodScore is added to a player's score for each food eaten.
	FoodScore = 10
	// BaselineSpeed is the tick interval, in milliseconds, that eating food
	// restores on Hard.
	BaselineSpeed = 120
	// DefaultStartLength is the number of cells a freshly seeded snake occupies.
	DefaultStartLength = 3
	// secondRowOffset is how many rows above the primary the secondary snake starts.
	secondRowOffset = 2
)

// Difficulty selects the speed curve.
type Difficulty uint8

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "medium"
	}
}

// ParseDifficulty maps a case-insensitive name to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium", "":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Medium, fmt.Errorf("unknown difficulty %q", s)
}

// Mode selects how many snakes the world holds.
type Mode uint8

const (
	// Single is the one-player game.
	Single Mode = iota
	// TwoPlayer adds a second snake with its own controls and score.
	TwoPlayer
)

// Players returns the number of snakes in the mode.
func (m Mode) Players() int {
	if m == TwoPlayer {
		return 2
	}
	return 1
}

func (m Mode) String() string {
	if m == TwoPlayer {
		return "two-player"
	}
	return "single"
}

// Config controls the world dimensions and rule toggles.
type Config struct {
	Width  int
	Height int

	StartLength int
	// Speed is the initial tick interval in milliseconds.
	Speed      int
	Difficulty Difficulty

	BadBerries bool
	Ghost      bool
	Mode       Mode

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:       80,
		Height:      50,
		StartLength: DefaultStartLength,
		Speed:       BaselineSpeed,
		Difficulty:  Medium,
		Seed:        1,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["width"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["height"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["snake_size_start"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.StartLength = parsed
		}
	}
	if v, ok := cfg["snake_speed"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Speed = parsed
		}
	}
	if v, ok := cfg["speed_increase"]; ok {
		if parsed, err := ParseDifficulty(v); err == nil {
			c.Difficulty = parsed
		}
	}
	if v, ok := cfg["bad_berries"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.BadBerries = parsed
		}
	}
	if v, ok := cfg["ghost_mode"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Ghost = parsed
		}
	}
	if v, ok := cfg["two_players_mode"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil && parsed {
			c.Mode = TwoPlayer
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Validate reports configurations the generator cannot seed.
func (c Config) Validate() error {
	if c.StartLength <= 0 {
		return fmt.Errorf("start length must be positive, got %d", c.StartLength)
	}
	if c.Speed < 0 {
		return fmt.Errorf("speed must not be negative, got %d", c.Speed)
	}
	if c.Width/2-(c.StartLength-1) < 0 || c.Width <= 0 {
		return fmt.Errorf("width %d too small for a %d-cell snake", c.Width, c.StartLength)
	}
	minHeight := 1
	if c.Mode == TwoPlayer {
		minHeight = secondRowOffset + 1
	}
	if c.Height/2-(minHeight-1) < 0 || c.Height < minHeight {
		return fmt.Errorf("height %d too small for %s mode", c.Height, c.Mode)
	}
	return nil
}
