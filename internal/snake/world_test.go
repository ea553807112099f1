package snake

import (
	"slices"
	"testing"

	"snake-rewind/internal/core"
)

func cells(xy ...int) []core.Position {
	out := make([]core.Position, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, core.Position{X: xy[i], Y: xy[i+1]})
	}
	return out
}

func newTestWorld(t *testing.T, w, h int, mutate func(*Config)) *World {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = w, h
	cfg.Seed = 3
	if mutate != nil {
		mutate(&cfg)
	}
	world, err := New(cfg)
	if err != nil {
		t.Fatalf("new world: %v", err)
	}
	// Park food where the scenarios never reach.
	world.items.Food = core.Position{X: 0, Y: 0}
	world.items.HasBerry = false
	return world
}

func expectBody(t *testing.T, w *World, id PlayerID, want []core.Position) {
	t.Helper()
	if got := w.Player(id).Body(); !slices.Equal(got, want) {
		t.Fatalf("%v body = %v, expected %v", id, got, want)
	}
}

func TestForwardTicksShiftEast(t *testing.T) {
	w := newTestWorld(t, 8, 6, nil)
	expectBody(t, w, Primary, cells(2, 3, 3, 3, 4, 3))
	w.place(Primary, core.East, cells(2, 3, 3, 3, 4, 3)...)

	w.Step()
	expectBody(t, w, Primary, cells(3, 3, 4, 3, 5, 3))
	w.Step()
	expectBody(t, w, Primary, cells(4, 3, 5, 3, 6, 3))
}

func TestAdvanceShiftsEveryCell(t *testing.T) {
	const n = 5
	for _, dir := range []core.Direction{core.North, core.East, core.West, core.South} {
		w := newTestWorld(t, 21, 21, nil)
		dx, dy := dir.Delta()
		start := cells(10-2*dx, 10-2*dy, 10-dx, 10-dy, 10, 10)
		w.place(Primary, dir, start...)
		for i := 0; i < n; i++ {
			w.Step()
		}
		want := make([]core.Position, len(start))
		for i, c := range start {
			want[i] = c.Add(n*dx, n*dy)
		}
		expectBody(t, w, Primary, want)
		if w.Player(Primary).Halted() {
			t.Fatalf("%v: snake halted on an open grid", dir)
		}
	}
}

func TestEatingFoodGrowsAndScores(t *testing.T) {
	w := newTestWorld(t, 13, 3, nil)
	w.place(Primary, core.East, cells(6, 1, 7, 1, 8, 1)...)
	w.items.Food = core.Position{X: 8, Y: 1}

	res := w.Step()
	if !res.Has(EventAte) {
		t.Fatalf("expected an ate event, got %+v", res.Events)
	}
	expectBody(t, w, Primary, cells(6, 1, 7, 1, 8, 1, 9, 1))
	if got := w.Player(Primary).Score(); got != FoodScore {
		t.Fatalf("score = %d, expected %d", got, FoodScore)
	}
	food := w.Food()
	if !w.Grid().Contains(food) {
		t.Fatalf("food %v outside grid", food)
	}
	if w.Player(Primary).Snake().Contains(food) {
		t.Fatalf("food respawned on the body at %v", food)
	}
}

func TestSeededSnakeCannotReverse(t *testing.T) {
	w := newTestWorld(t, 20, 20, nil)
	w.RequestTurn(Primary, core.West)
	if got := w.Player(Primary).Direction(); got != core.Still {
		t.Fatalf("reverse into the seeded body accepted: %v", got)
	}
	before := w.Player(Primary).Body()
	w.Step()
	expectBody(t, w, Primary, before)

	w.RequestTurn(Primary, core.South)
	if got := w.Player(Primary).Direction(); got != core.South {
		t.Fatalf("expected south, got %v", got)
	}
}

func TestConflictingTurnsKeepDirection(t *testing.T) {
	w := newTestWorld(t, 20, 20, nil)
	w.place(Primary, core.East, cells(8, 10, 9, 10, 10, 10)...)

	w.RequestTurn(Primary, core.North)
	w.Step()
	w.RequestTurn(Primary, core.South)
	if got := w.Player(Primary).Direction(); got != core.North {
		t.Fatalf("direction = %v after rejected reversal, expected north", got)
	}
	w.Step()
	if got := w.Player(Primary).Head(); got != (core.Position{X: 10, Y: 8}) {
		t.Fatalf("head = %v, expected (10,8)", got)
	}
}

func TestSelfCollisionHaltsWithBodyUnchanged(t *testing.T) {
	w := newTestWorld(t, 10, 10, nil)
	body := cells(3, 5, 4, 5, 5, 5, 5, 4, 4, 4)
	w.place(Primary, core.West, body...)
	w.RequestTurn(Primary, core.South)

	res := w.Step()
	if !res.Finished || !res.Has(EventHalted) {
		t.Fatalf("expected a halt, got %+v", res)
	}
	p := w.Player(Primary)
	if !p.Halted() || p.Direction() != core.Still {
		t.Fatalf("halted=%v dir=%v", p.Halted(), p.Direction())
	}
	expectBody(t, w, Primary, body)
	if !w.Finished() {
		t.Fatal("world should be finished")
	}

	w.Step()
	expectBody(t, w, Primary, body)
}

func TestGhostModeWrapsOrHalts(t *testing.T) {
	ghost := newTestWorld(t, 8, 6, func(c *Config) { c.Ghost = true })
	ghost.place(Primary, core.East, cells(5, 3, 6, 3, 7, 3)...)
	ghost.Step()
	expectBody(t, ghost, Primary, cells(6, 3, 7, 3, 0, 3))

	ghost.place(Primary, core.North, cells(2, 2, 2, 1, 2, 0)...)
	ghost.Step()
	expectBody(t, ghost, Primary, cells(2, 1, 2, 0, 2, 5))

	ghost.place(Primary, core.West, cells(2, 3, 1, 3, 0, 3)...)
	ghost.Step()
	expectBody(t, ghost, Primary, cells(1, 3, 0, 3, 7, 3))

	ghost.place(Primary, core.South, cells(4, 3, 4, 4, 4, 5)...)
	ghost.Step()
	expectBody(t, ghost, Primary, cells(4, 4, 4, 5, 4, 0))

	walls := newTestWorld(t, 8, 6, nil)
	walls.place(Primary, core.East, cells(5, 3, 6, 3, 7, 3)...)
	walls.Step()
	expectBody(t, walls, Primary, cells(5, 3, 6, 3, 7, 3))
	if !walls.Player(Primary).Halted() {
		t.Fatal("expected boundary halt without ghost mode")
	}
}

func TestRewindRestoresBodyAndStopsAtEmpty(t *testing.T) {
	w := newTestWorld(t, 20, 20, nil)
	start := cells(5, 10, 6, 10, 7, 10)
	w.place(Primary, core.East, start...)

	turns := []core.Direction{core.Still, core.Still, core.North, core.Still, core.West, core.Still, core.South}
	for _, d := range turns {
		if d != core.Still {
			w.RequestTurn(Primary, d)
		}
		w.Step()
	}
	moved := w.Player(Primary).Body()

	w.SetCycle(Backward)
	for range turns {
		w.Step()
	}
	expectBody(t, w, Primary, start)
	if got := w.Player(Primary).Direction(); got != core.East {
		t.Fatalf("direction after full rewind = %v, expected east", got)
	}
	if w.Player(Primary).HistoryLen() != 0 {
		t.Fatalf("history not drained: %d", w.Player(Primary).HistoryLen())
	}

	w.Step()
	expectBody(t, w, Primary, start)

	w.SetCycle(Forward)
	for _, d := range turns {
		if d != core.Still {
			w.RequestTurn(Primary, d)
		}
		w.Step()
	}
	expectBody(t, w, Primary, moved)
}

func TestRewindRestoresBothPlayers(t *testing.T) {
	w := newTestWorld(t, 20, 20, func(c *Config) { c.Mode = TwoPlayer })
	first := w.Player(Primary).Body()
	second := w.Player(Secondary).Body()

	w.RequestTurn(Primary, core.East)
	w.RequestTurn(Secondary, core.North)
	for i := 0; i < 7; i++ {
		if i == 4 {
			w.RequestTurn(Secondary, core.West)
		}
		w.Step()
	}
	expectBody(t, w, Primary, cells(15, 10, 16, 10, 17, 10))
	expectBody(t, w, Secondary, cells(7, 4, 6, 4, 5, 4))

	w.SetCycle(Backward)
	for i := 0; i < 8; i++ {
		w.Step()
	}
	expectBody(t, w, Primary, first)
	expectBody(t, w, Secondary, second)
	for id, want := range []core.Direction{core.East, core.North} {
		p := w.Player(PlayerID(id))
		if p.HistoryLen() != 0 || p.Direction() != want {
			t.Fatalf("%v history=%d dir=%v after full rewind, expected %v", p.ID, p.HistoryLen(), p.Direction(), want)
		}
	}
}

func TestRewindUndoesGrowth(t *testing.T) {
	w := newTestWorld(t, 20, 20, nil)
	start := cells(5, 10, 6, 10, 7, 10)
	w.place(Primary, core.East, start...)
	w.items.Food = core.Position{X: 9, Y: 10}

	for i := 0; i < 3; i++ {
		w.Step()
	}
	expectBody(t, w, Primary, cells(7, 10, 8, 10, 9, 10, 10, 10))

	w.SetCycle(Backward)
	for i := 0; i < 3; i++ {
		w.Step()
	}
	expectBody(t, w, Primary, start)
	if got := w.Player(Primary).Score(); got != FoodScore {
		t.Fatalf("rewind must not undo score, got %d", got)
	}
}

func TestRewindAfterHaltKeepsSnakeHalted(t *testing.T) {
	w := newTestWorld(t, 8, 6, nil)
	w.place(Primary, core.East, cells(4, 3, 5, 3, 6, 3)...)
	w.Step()
	w.Step()
	if !w.Finished() {
		t.Fatal("expected wall halt")
	}

	w.SetCycle(Backward)
	w.Step()
	expectBody(t, w, Primary, cells(5, 3, 6, 3, 7, 3))
	w.Step()
	expectBody(t, w, Primary, cells(4, 3, 5, 3, 6, 3))
	if !w.Player(Primary).Halted() || !w.Finished() {
		t.Fatal("rewind revived a halted snake")
	}

	w.SetCycle(Forward)
	w.Step()
	expectBody(t, w, Primary, cells(4, 3, 5, 3, 6, 3))
}

func TestStepBackPausesAfterOneFrame(t *testing.T) {
	w := newTestWorld(t, 20, 20, nil)
	w.place(Primary, core.East, cells(5, 10, 6, 10, 7, 10)...)
	w.Step()
	w.Step()

	w.Apply(Do(ActionStepBack))
	expectBody(t, w, Primary, cells(6, 10, 7, 10, 8, 10))
	if w.Cycle() != Pause {
		t.Fatalf("cycle = %v, expected pause", w.Cycle())
	}
	w.Step()
	expectBody(t, w, Primary, cells(6, 10, 7, 10, 8, 10))

	w.Apply(Turn(Primary, core.East))
	if w.Cycle() != Forward {
		t.Fatalf("turn request should resume forward, got %v", w.Cycle())
	}
	w.Step()
	expectBody(t, w, Primary, cells(7, 10, 8, 10, 9, 10))
}

func TestPauseToggleGatesTicks(t *testing.T) {
	w := newTestWorld(t, 20, 20, nil)
	w.place(Primary, core.East, cells(5, 10, 6, 10, 7, 10)...)

	w.Apply(Do(ActionTogglePause))
	if res := w.Step(); res.Fired {
		t.Fatal("tick fired while paused")
	}
	expectBody(t, w, Primary, cells(5, 10, 6, 10, 7, 10))

	w.TogglePause()
	if res := w.Step(); !res.Fired {
		t.Fatal("tick did not fire after unpausing")
	}
	expectBody(t, w, Primary, cells(6, 10, 7, 10, 8, 10))
}

func TestHardSpeedCurve(t *testing.T) {
	w := newTestWorld(t, 20, 20, func(c *Config) { c.Difficulty = Hard })
	w.Step()
	if w.Speed() != BaselineSpeed {
		t.Fatalf("still snake changed speed to %d", w.Speed())
	}

	w.place(Primary, core.East, cells(5, 10, 6, 10, 7, 10)...)
	for i := 0; i < 3; i++ {
		w.Step()
	}
	if got := w.Speed(); got != BaselineSpeed-3 {
		t.Fatalf("speed = %d, expected %d", got, BaselineSpeed-3)
	}

	w.items.Food = w.Player(Primary).Head()
	w.Step()
	if got := w.Speed(); got != BaselineSpeed {
		t.Fatalf("speed after food = %d, expected reset to %d", got, BaselineSpeed)
	}
}

func TestHardSpeedFloorsAtZero(t *testing.T) {
	w := newTestWorld(t, 200, 5, func(c *Config) { c.Difficulty = Hard; c.Speed = 2 })
	w.place(Primary, core.East, cells(5, 2, 6, 2, 7, 2)...)
	for i := 0; i < 5; i++ {
		w.Step()
	}
	if got := w.Speed(); got != 0 {
		t.Fatalf("speed = %d, expected floor of 0", got)
	}
	expectBody(t, w, Primary, cells(10, 2, 11, 2, 12, 2))
}

func TestEasySpeedIsConstant(t *testing.T) {
	w := newTestWorld(t, 20, 20, func(c *Config) { c.Difficulty = Easy; c.Speed = 200 })
	w.place(Primary, core.East, cells(5, 10, 6, 10, 7, 10)...)
	for i := 0; i < 4; i++ {
		w.Step()
	}
	if w.Speed() != 200 {
		t.Fatalf("speed drifted to %d", w.Speed())
	}
}

func TestBadBerryTogglesSpeed(t *testing.T) {
	w := newTestWorld(t, 20, 20, func(c *Config) { c.BadBerries = true; c.Speed = 90 })
	w.place(Primary, core.East, cells(2, 5, 3, 5, 4, 5)...)
	w.items.Berry, w.items.HasBerry = core.Position{X: 4, Y: 5}, true

	res := w.Step()
	if !res.Has(EventBadBerry) {
		t.Fatalf("expected bad berry event, got %+v", res.Events)
	}
	p := w.Player(Primary)
	if p.BadBerries() != 1 || w.Speed() != 30 {
		t.Fatalf("berries=%d speed=%d, expected 1 and 30", p.BadBerries(), w.Speed())
	}
	expectBody(t, w, Primary, cells(3, 5, 4, 5, 5, 5))
	berry, ok := w.Berry()
	if !ok || berry == w.Food() || p.Snake().Contains(berry) {
		t.Fatalf("berry respawned badly at %v (ok=%v)", berry, ok)
	}

	w.items.Berry = p.Head()
	w.Step()
	if p.BadBerries() != 2 || w.Speed() != 90 {
		t.Fatalf("berries=%d speed=%d, expected 2 and 90", p.BadBerries(), w.Speed())
	}
}

func TestTwoPlayerSeeding(t *testing.T) {
	w := newTestWorld(t, 20, 20, func(c *Config) { c.Mode = TwoPlayer })
	if len(w.Players()) != 2 {
		t.Fatalf("expected two players, got %d", len(w.Players()))
	}
	expectBody(t, w, Primary, cells(8, 10, 9, 10, 10, 10))
	expectBody(t, w, Secondary, cells(10, 8, 9, 8, 8, 8))

	w.RequestTurn(Secondary, core.East)
	if got := w.Player(Secondary).Direction(); got != core.Still {
		t.Fatalf("secondary reversed into its body: %v", got)
	}
}

func TestCrossCollisionHaltsBoth(t *testing.T) {
	cases := []struct {
		name      string
		secondary []core.Position
		dir       core.Direction
	}{
		{"same cell", cells(5, 8, 5, 7, 5, 6), core.North},
		{"into body", cells(5, 4, 5, 5, 5, 6), core.South},
	}
	for _, c := range cases {
		w := newTestWorld(t, 20, 20, func(cfg *Config) { cfg.Mode = TwoPlayer })
		w.place(Primary, core.East, cells(2, 5, 3, 5, 4, 5)...)
		w.place(Secondary, c.dir, c.secondary...)

		w.Step()
		for _, p := range w.Players() {
			if !p.Halted() {
				t.Fatalf("%s: %v not halted", c.name, p.ID)
			}
		}
		expectBody(t, w, Primary, cells(2, 5, 3, 5, 4, 5))
		expectBody(t, w, Secondary, c.secondary)
		if got := w.ScoreReport(); got != "Player 1 score is 0, Player 2 score is 0" {
			t.Fatalf("%s: report = %q", c.name, got)
		}
	}
}

func TestResetRebuildsPlayersAndKeepsScore(t *testing.T) {
	w := newTestWorld(t, 20, 20, nil)
	w.place(Primary, core.East, cells(16, 10, 17, 10, 18, 10)...)
	w.items.Food = core.Position{X: 18, Y: 10}
	w.Step()
	w.Step()
	if !w.Finished() {
		t.Fatal("expected wall halt")
	}

	w.Apply(Do(ActionReset))
	if w.Finished() {
		t.Fatal("reset should clear finished")
	}
	p := w.Player(Primary)
	if p.Halted() || p.HistoryLen() != 0 || p.Direction() != core.Still {
		t.Fatalf("reset left stale state: halted=%v history=%d dir=%v", p.Halted(), p.HistoryLen(), p.Direction())
	}
	expectBody(t, w, Primary, cells(8, 10, 9, 10, 10, 10))
	if p.Score() != FoodScore {
		t.Fatalf("score = %d, expected it to survive reset", p.Score())
	}
	if p.Snake().Contains(w.Food()) {
		t.Fatal("food overlaps the rebuilt body")
	}
	if w.ScoreReport() != "Your score is 10" {
		t.Fatalf("report = %q", w.ScoreReport())
	}
}

func TestSnapshotCopiesState(t *testing.T) {
	w := newTestWorld(t, 20, 20, nil)
	w.place(Primary, core.East, cells(5, 10, 6, 10, 7, 10)...)
	w.Step()

	snap := w.Snapshot()
	if snap.Size != (core.Size{W: 20, H: 20}) || len(snap.Snakes) != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap.Snakes[0].Rewindable != 1 || !slices.Equal(snap.Snakes[0].Trail, cells(5, 10)) {
		t.Fatalf("trail = %v rewindable = %d", snap.Snakes[0].Trail, snap.Snakes[0].Rewindable)
	}
	snap.Snakes[0].Body[0] = core.Position{X: 99, Y: 99}
	expectBody(t, w, Primary, cells(6, 10, 7, 10, 8, 10))

	if p, ok := w.Parameters().Lookup("speed_increase"); !ok || p.Value != "medium" {
		t.Fatalf("difficulty parameter = %+v", p)
	}
}

func TestNewRejectsTinyGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 3, 1
	cfg.StartLength = 5
	if _, err := New(cfg); err == nil {
		t.Fatal("expected error for a grid too narrow to seed")
	}
}
