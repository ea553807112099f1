package snake

import (
	"fmt"

	"snake-rewind/internal/core"
)

// TimeCycle selects which pipeline a tick runs.
type TimeCycle uint8

const (
	Forward TimeCycle = iota
	Backward
	Pause
)

func (c TimeCycle) String() string {
	switch c {
	case Backward:
		return "backward"
	case Pause:
		return "pause"
	default:
		return "forward"
	}
}

// EventKind classifies what happened to a snake during a tick.
type EventKind uint8

const (
	EventAte EventKind = iota
	EventBadBerry
	EventHalted
	EventRewound
)

func (k EventKind) String() string {
	switch k {
	case EventAte:
		return "ate"
	case EventBadBerry:
		return "bad_berry"
	case EventHalted:
		return "halted"
	default:
		return "rewound"
	}
}

// Event is reported to front-ends for sound and status updates.
type Event struct {
	Kind   EventKind
	Player PlayerID
	At     core.Position
}

// StepResult summarises one call to Step.
type StepResult struct {
	// Fired is false when the pause toggle suppressed the tick.
	Fired  bool
	Cycle  TimeCycle
	Events []Event
	// Finished is set on the tick a snake halted.
	Finished bool
}

// Has reports whether the result carries an event of kind k.
func (r StepResult) Has(k EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == k {
			return true
		}
	}
	return false
}

// plan is one snake's intended move, decided before any body changes.
type plan struct {
	dir     core.Direction
	next    core.Position
	blocked bool
	food    bool
	berry   bool
}

// Step runs one tick according to the time cycle. Nothing happens while the
// pause toggle is odd.
func (w *World) Step() StepResult {
	res := StepResult{Cycle: w.cycle}
	if w.Paused() {
		return res
	}
	res.Fired = true
	switch w.cycle {
	case Forward:
		w.forward(&res)
	case Backward:
		w.rewind(&res)
	}
	return res
}

func (w *World) planMove(p *Player) plan {
	pl := plan{dir: p.dir, next: p.snake.Head()}
	if p.halted || !p.dir.Moving() {
		return pl
	}
	head := p.snake.Head()
	pl.food = head == w.items.Food
	pl.berry = !pl.food && w.items.HasBerry && head == w.items.Berry
	next, ok := NextHead(p.snake, p.dir, w.grid, w.cfg.Ghost)
	pl.next = next
	pl.blocked = !ok || SelfCollision(p.snake, next)
	return pl
}

func (w *World) forward(res *StepResult) {
	if w.finished {
		return
	}
	plans := make([]plan, len(w.players))
	for i, p := range w.players {
		plans[i] = w.planMove(p)
	}
	if len(w.players) == 2 {
		a, b := w.players[0], w.players[1]
		if CrossCollision(a.snake, plans[0].next, b.snake, plans[1].next) {
			plans[0].blocked = true
			plans[1].blocked = true
		}
	}

	var advanced, ateFood, ateBerry bool
	for i, p := range w.players {
		if p.halted {
			continue
		}
		pl := plans[i]
		frame := Frame{Kind: FrameHold, Dir: p.dir, Turns: p.turns}
		switch {
		case pl.blocked:
			p.halted = true
			p.dir = core.Still
			p.turns.Commit(core.Still)
			res.Events = append(res.Events, Event{Kind: EventHalted, Player: p.ID, At: p.snake.Head()})
		case !pl.dir.Moving():
			p.turns.Commit(core.Still)
		case pl.food:
			p.snake.grow(pl.next)
			frame.Kind = FrameGrow
			p.turns.Commit(pl.dir)
			p.score += FoodScore
			advanced, ateFood = true, true
			res.Events = append(res.Events, Event{Kind: EventAte, Player: p.ID, At: w.items.Food})
			w.log.Debug().Str("player", p.ID.String()).Int("score", p.score).Int("length", p.snake.Len()).Msg("food eaten")
		default:
			frame.Vacated = p.snake.shift(pl.next)
			frame.Kind = FrameShift
			p.turns.Commit(pl.dir)
			advanced = true
			if pl.berry {
				p.berries++
				w.speed = BerrySpeed(w.speed, p.berries)
				ateBerry = true
				res.Events = append(res.Events, Event{Kind: EventBadBerry, Player: p.ID, At: w.items.Berry})
				w.log.Debug().Str("player", p.ID.String()).Int("count", p.berries).Int("speed", w.speed).Msg("bad berry eaten")
			}
		}
		p.history.Record(frame)
	}

	if w.cfg.Difficulty == Hard && advanced && w.speed > 0 {
		w.speed--
	}
	switch {
	case ateFood:
		if w.cfg.Difficulty == Hard {
			w.speed = BaselineSpeed
		}
		w.items.respawn(w.rng, w.grid, w.snakes(), w.cfg.BadBerries)
	case ateBerry:
		w.items.respawnBerry(w.rng, w.grid, w.snakes())
	}
	w.ticks++

	if res.Has(EventHalted) {
		w.finished = true
		res.Finished = true
		ev := w.log.Info().Int("ticks", w.ticks)
		for _, p := range w.players {
			ev = ev.Int(fmt.Sprintf("score_p%d", int(p.ID)+1), p.score)
		}
		ev.Msg(w.ScoreReport())
	}
}

// rewind undoes one forward tick for every snake with history left. Halted
// snakes keep their body replay but stay halted.
func (w *World) rewind(res *StepResult) {
	for _, p := range w.players {
		f, ok := p.history.Pop()
		if !ok {
			continue
		}
		undo(p.snake, f)
		if !p.halted {
			p.dir = f.Dir
			p.turns = f.Turns
		}
		res.Events = append(res.Events, Event{Kind: EventRewound, Player: p.ID, At: p.snake.Head()})
	}
	if len(res.Events) > 0 {
		w.log.Debug().Int("frames", len(res.Events)).Msg("rewound")
	}
}

// StepBack rewinds exactly one tick and pauses the time cycle.
func (w *World) StepBack() StepResult {
	res := StepResult{Fired: true, Cycle: Pause}
	w.rewind(&res)
	w.cycle = Pause
	return res
}
