// Package term runs the game in a terminal through tcell.
package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"snake-rewind/internal/audio"
	"snake-rewind/internal/core"
	"snake-rewind/internal/snake"
	"snake-rewind/internal/ui"
)

// DefaultFrame is how often the screen is redrawn and the tick pacer polled.
const DefaultFrame = 16 * time.Millisecond

// Options configures Run. The zero value runs silently and never saves.
type Options struct {
	Logger zerolog.Logger
	Sounds *audio.Sounds
	// Save is called on the save key.
	Save func() error
	// Frame defaults to DefaultFrame.
	Frame time.Duration
}

// Run drives world on an initialised screen until the quit key or ctx is done.
// The caller owns the screen and finalises it.
func Run(ctx context.Context, s tcell.Screen, world *snake.World, opts Options) error {
	frame := opts.Frame
	if frame <= 0 {
		frame = DefaultFrame
	}
	g := world.Grid()
	canvas := NewCanvas(g.W, g.H)
	step := core.NewFixedStep(core.Millis(world.Speed()))
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	var notice string
	for {
		snap := world.Snapshot()
		canvas.Draw(s, snap, append(ui.StatusLines(snap, world.ScoreReport()), notice))

		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				s.Sync()
			case *tcell.EventKey:
				cmd, ok := Command(ev)
				if !ok {
					continue
				}
				switch cmd.Action {
				case snake.ActionQuit:
					return nil
				case snake.ActionOverlay:
					canvas.ShowTrail = !canvas.ShowTrail
				case snake.ActionSave:
					if opts.Save == nil {
						notice = "saving disabled"
					} else {
						notice = ui.SaveNotice(opts.Save())
					}
				default:
					world.Apply(cmd)
				}
			}
		case <-ticker.C:
			step.SetInterval(core.Millis(world.Speed()))
			if !step.ShouldStep() {
				continue
			}
			res := world.Step()
			opts.Sounds.PlayEvents(res.Events)
			if res.Finished {
				opts.Logger.Info().Int("ticks", world.Ticks()).Msg(world.ScoreReport())
			}
		}
	}
}
