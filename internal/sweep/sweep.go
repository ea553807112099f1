// Package sweep plays many autopiloted games in parallel and summarises the
// scores, for tuning speed curves and grid sizes.
package sweep

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"snake-rewind/internal/core"
	"snake-rewind/internal/snake"
)

var headings = []core.Direction{core.North, core.East, core.South, core.West}

// Greedy picks the heading that brings player id closest to the food without
// reversing or moving into an occupied or off-grid cell. With no safe heading
// the current one is kept.
func Greedy(w *snake.World, id snake.PlayerID) core.Direction {
	p := w.Player(id)
	if p == nil || p.Halted() {
		return core.Still
	}
	grid, ghost, food := w.Grid(), w.Config().Ghost, w.Food()
	best, bestDist := p.Direction(), -1
	for _, d := range headings {
		if d == p.Facing().Opposite() {
			continue
		}
		next, ok := snake.NextHead(p.Snake(), d, grid, ghost)
		if !ok || blocked(w, p, next) {
			continue
		}
		dist := abs(next.X-food.X) + abs(next.Y-food.Y)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best
}

func blocked(w *snake.World, p *snake.Player, next core.Position) bool {
	if snake.SelfCollision(p.Snake(), next) {
		return true
	}
	for _, other := range w.Players() {
		if other.ID != p.ID && other.Snake().Contains(next) {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Result is the outcome of one game.
type Result struct {
	Game   int
	Seed   int64
	Score  int
	Length int
	Ticks  int
	Halted bool
}

// Play runs one game with every snake on autopilot for at most maxTicks.
func Play(cfg snake.Config, maxTicks int) (Result, error) {
	w, err := snake.New(cfg)
	if err != nil {
		return Result{}, err
	}
	for w.Ticks() < maxTicks && !w.Finished() {
		for _, p := range w.Players() {
			w.RequestTurn(p.ID, Greedy(w, p.ID))
		}
		w.Step()
	}
	res := Result{Seed: cfg.Seed, Ticks: w.Ticks(), Halted: w.Finished()}
	for _, p := range w.Players() {
		res.Score += p.Score()
		res.Length = max(res.Length, len(p.Body()))
	}
	return res, nil
}

// Run plays games copies of base across workers goroutines. Game i uses seed
// base.Seed+i. Results are ordered by game index.
func Run(ctx context.Context, base snake.Config, games, workers, maxTicks int, logger zerolog.Logger) ([]Result, error) {
	if workers <= 0 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	jobs := make(chan int)
	results := make(chan Result)
	errs := make(chan error, workers)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for game := range jobs {
				cfg := base
				cfg.Seed = base.Seed + int64(game)
				res, err := Play(cfg, maxTicks)
				if err != nil {
					errs <- fmt.Errorf("game %d: %w", game, err)
					cancel()
					return
				}
				res.Game = game
				logger.Debug().Int("game", game).Int("score", res.Score).Int("ticks", res.Ticks).Msg("game done")
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for i := 0; i < games; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	var all []Result
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Game < all[j].Game })
	select {
	case err := <-errs:
		return all, err
	default:
	}
	return all, ctx.Err()
}

// Summary aggregates results.
type Summary struct {
	Games      int
	Halted     int
	MeanScore  float64
	MaxScore   int
	MeanLength float64
	MaxLength  int
	MeanTicks  float64
}

// Summarize computes means and maxima over results.
func Summarize(results []Result) Summary {
	s := Summary{Games: len(results)}
	if len(results) == 0 {
		return s
	}
	var score, length, ticks int
	for _, r := range results {
		score += r.Score
		length += r.Length
		ticks += r.Ticks
		s.MaxScore = max(s.MaxScore, r.Score)
		s.MaxLength = max(s.MaxLength, r.Length)
		if r.Halted {
			s.Halted++
		}
	}
	n := float64(len(results))
	s.MeanScore = float64(score) / n
	s.MeanLength = float64(length) / n
	s.MeanTicks = float64(ticks) / n
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("games=%d halted=%d score mean=%.1f max=%d length mean=%.1f max=%d ticks mean=%.0f",
		s.Games, s.Halted, s.MeanScore, s.MaxScore, s.MeanLength, s.MaxLength, s.MeanTicks)
}
