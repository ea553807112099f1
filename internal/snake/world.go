package snake

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"snake-rewind/internal/core"
)

// PlayerID indexes a snake within the world.
type PlayerID int

const (
	Primary PlayerID = iota
	Secondary
)

func (id PlayerID) String() string { return "player " + strconv.Itoa(int(id)+1) }

// TrailLength bounds how many vacated cells a snapshot reports per snake.
const TrailLength = 24

// Player bundles one snake with everything that is rebuilt on reset.
type Player struct {
	ID PlayerID

	snake   *Snake
	dir     core.Direction
	turns   TurnValidator
	history History
	halted  bool

	score   int
	berries int
}

// Body returns a copy of the snake's cells, tail first.
func (p *Player) Body() []core.Position { return p.snake.Body() }

// Head returns the leading cell.
func (p *Player) Head() core.Position { return p.snake.Head() }

// Direction returns the heading applied on the next forward tick.
func (p *Player) Direction() core.Direction { return p.dir }

// Facing returns the last moving direction the snake committed.
func (p *Player) Facing() core.Direction { return p.turns.Facing() }

// Halted reports whether the snake hit something.
func (p *Player) Halted() bool { return p.halted }

// Score returns the points earned from food.
func (p *Player) Score() int { return p.score }

// BadBerries returns how many bad berries the snake has eaten.
func (p *Player) BadBerries() int { return p.berries }

// HistoryLen returns how many ticks can be rewound.
func (p *Player) HistoryLen() int { return p.history.Len() }

// Snake exposes the body for collision and spawn helpers.
func (p *Player) Snake() *Snake { return p.snake }

// Option customises a World at construction.
type Option func(*World)

// WithLogger attaches a logger for consumption, rewind and halt events.
func WithLogger(l zerolog.Logger) Option {
	return func(w *World) { w.log = l }
}

// World owns the snakes, consumables and run state.
type World struct {
	cfg  Config
	grid core.Grid
	rng  *core.RNG
	log  zerolog.Logger

	players []*Player
	items   Consumables

	speed    int
	cycle    TimeCycle
	toggles  int
	finished bool
	ticks    int
}

// New seeds a world from cfg. The snakes start Still at the grid centre.
func New(cfg Config, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	w := &World{
		cfg:   cfg,
		grid:  core.NewGrid(cfg.Width, cfg.Height),
		rng:   core.NewRNG(cfg.Seed),
		log:   zerolog.Nop(),
		speed: cfg.Speed,
		cycle: Forward,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.players = w.seedPlayers()
	w.items.respawn(w.rng, w.grid, w.snakes(), cfg.BadBerries)
	w.log.Debug().
		Int("width", w.grid.W).
		Int("height", w.grid.H).
		Str("mode", cfg.Mode.String()).
		Stringer("food", w.items.Food).
		Msg("world seeded")
	return w, nil
}

func (w *World) seedPlayers() []*Player {
	c := w.grid.Center()
	n := w.cfg.StartLength
	players := make([]*Player, 0, w.cfg.Mode.Players())
	players = append(players, &Player{
		ID:    Primary,
		snake: NewSnake(seedBody(c.X, c.Y, n, core.East)...),
		turns: NewTurnValidator(core.East),
	})
	if w.cfg.Mode == TwoPlayer {
		players = append(players, &Player{
			ID:    Secondary,
			snake: NewSnake(seedBody(c.X, c.Y-secondRowOffset, n, core.West)...),
			turns: NewTurnValidator(core.West),
		})
	}
	return players
}

// Reset rebuilds every snake from the generator and clears Finished. Scores,
// speed, berry counters and the time cycle carry over.
func (w *World) Reset() {
	fresh := w.seedPlayers()
	for i, p := range fresh {
		p.score = w.players[i].score
		p.berries = w.players[i].berries
	}
	w.players = fresh
	w.finished = false
	snakes := w.snakes()
	if occupied(snakes, w.items.Food) || (w.items.HasBerry && occupied(snakes, w.items.Berry)) {
		w.items.respawn(w.rng, w.grid, snakes, w.cfg.BadBerries)
	}
	w.log.Debug().Msg("world reset")
}

func (w *World) snakes() []*Snake {
	out := make([]*Snake, len(w.players))
	for i, p := range w.players {
		out[i] = p.snake
	}
	return out
}

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Grid returns the playfield bounds.
func (w *World) Grid() core.Grid { return w.grid }

// Mode returns the player mode.
func (w *World) Mode() Mode { return w.cfg.Mode }

// Players returns the player bundles in tick order.
func (w *World) Players() []*Player { return w.players }

// Player returns the bundle for id, or nil when the mode has no such player.
func (w *World) Player(id PlayerID) *Player {
	if int(id) < 0 || int(id) >= len(w.players) {
		return nil
	}
	return w.players[id]
}

// Food returns the food cell.
func (w *World) Food() core.Position { return w.items.Food }

// Berry returns the bad berry cell and whether one is on the grid.
func (w *World) Berry() (core.Position, bool) { return w.items.Berry, w.items.HasBerry }

// SetFood places food at p. Cells outside the grid or on a body are refused.
func (w *World) SetFood(p core.Position) bool {
	if !w.grid.Contains(p) || occupied(w.snakes(), p) {
		return false
	}
	w.items.Food = p
	if w.items.HasBerry && w.items.Berry == p {
		w.items.respawnBerry(w.rng, w.grid, w.snakes())
	}
	return true
}

// Speed returns the tick interval in milliseconds.
func (w *World) Speed() int { return w.speed }

// Cycle returns the time mode.
func (w *World) Cycle() TimeCycle { return w.cycle }

// Paused reports whether the pause toggle currently suppresses ticks.
func (w *World) Paused() bool { return w.toggles%2 != 0 }

// Finished reports whether any snake has halted since the last reset.
func (w *World) Finished() bool { return w.finished }

// Ticks returns the number of forward ticks applied.
func (w *World) Ticks() int { return w.ticks }

// ScoreReport formats the end-of-game line shown to players.
func (w *World) ScoreReport() string {
	if w.cfg.Mode == TwoPlayer {
		return fmt.Sprintf("Player 1 score is %d, Player 2 score is %d", w.players[0].score, w.players[1].score)
	}
	return fmt.Sprintf("Your score is %d", w.players[0].score)
}

// SnakeView is a read-only copy of one player's state.
type SnakeView struct {
	ID         PlayerID
	Body       []core.Position
	Direction  core.Direction
	Score      int
	BadBerries int
	Halted     bool
	Rewindable int
	Trail      []core.Position
}

// Snapshot is what renderers read once per frame.
type Snapshot struct {
	Size     core.Size
	Snakes   []SnakeView
	Food     core.Position
	Berry    core.Position
	HasBerry bool
	Finished bool
	Cycle    TimeCycle
	Paused   bool
	Speed    int
	Ticks    int
}

// Snapshot copies the current state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Size:     w.grid.Size(),
		Food:     w.items.Food,
		Berry:    w.items.Berry,
		HasBerry: w.items.HasBerry,
		Finished: w.finished,
		Cycle:    w.cycle,
		Paused:   w.Paused(),
		Speed:    w.speed,
		Ticks:    w.ticks,
	}
	for _, p := range w.players {
		s.Snakes = append(s.Snakes, SnakeView{
			ID:         p.ID,
			Body:       p.snake.Body(),
			Direction:  p.dir,
			Score:      p.score,
			BadBerries: p.berries,
			Halted:     p.halted,
			Rewindable: p.history.Len(),
			Trail:      p.history.Trail(TrailLength),
		})
	}
	return s
}

// Parameters reports the configuration and run state for HUD display.
func (w *World) Parameters() core.ParameterSnapshot {
	rules := core.ParameterGroup{
		Name: "Rules",
		Params: []core.Parameter{
			{Key: "width", Label: "Width", Type: core.ParamTypeInt, Value: strconv.Itoa(w.grid.W)},
			{Key: "height", Label: "Height", Type: core.ParamTypeInt, Value: strconv.Itoa(w.grid.H)},
			{Key: "mode", Label: "Mode", Type: core.ParamTypeString, Value: w.cfg.Mode.String()},
			{Key: "speed_increase", Label: "Difficulty", Type: core.ParamTypeString, Value: w.cfg.Difficulty.String()},
			{Key: "ghost_mode", Label: "Ghost", Type: core.ParamTypeBool, Value: strconv.FormatBool(w.cfg.Ghost)},
			{Key: "bad_berries", Label: "Bad berries", Type: core.ParamTypeBool, Value: strconv.FormatBool(w.cfg.BadBerries)},
		},
	}
	run := core.ParameterGroup{
		Name: "Run",
		Params: []core.Parameter{
			{Key: "snake_speed", Label: "Speed (ms)", Type: core.ParamTypeInt, Value: strconv.Itoa(w.speed)},
			{Key: "cycle", Label: "Time", Type: core.ParamTypeString, Value: w.cycle.String()},
			{Key: "paused", Label: "Paused", Type: core.ParamTypeBool, Value: strconv.FormatBool(w.Paused())},
			{Key: "ticks", Label: "Ticks", Type: core.ParamTypeInt, Value: strconv.Itoa(w.ticks)},
		},
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{rules, run}}
}

// place overrides one player's body and heading. Used to set up scenarios.
func (w *World) place(id PlayerID, dir core.Direction, cells ...core.Position) {
	p := w.players[id]
	p.snake = NewSnake(cells...)
	p.dir = dir
	p.turns = NewTurnValidator(dir)
	p.history.Clear()
	p.halted = false
	w.finished = false
}
