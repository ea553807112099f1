//go:build ebiten

package app

import (
	"fmt"

	"snake-rewind/internal/audio"
	"snake-rewind/internal/core"
	"snake-rewind/internal/render"
	"snake-rewind/internal/snake"
	"snake-rewind/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
)

const hudWidth = 220

type binding struct {
	key ebiten.Key
	cmd snake.Command
}

var bindings = []binding{
	{ebiten.KeyArrowUp, snake.Turn(snake.Primary, core.North)},
	{ebiten.KeyArrowDown, snake.Turn(snake.Primary, core.South)},
	{ebiten.KeyArrowLeft, snake.Turn(snake.Primary, core.West)},
	{ebiten.KeyArrowRight, snake.Turn(snake.Primary, core.East)},
	{ebiten.KeyW, snake.Turn(snake.Secondary, core.North)},
	{ebiten.KeyS, snake.Turn(snake.Secondary, core.South)},
	{ebiten.KeyA, snake.Turn(snake.Secondary, core.West)},
	{ebiten.KeyD, snake.Turn(snake.Secondary, core.East)},
	{ebiten.KeyB, snake.Do(snake.ActionBackward)},
	{ebiten.KeyF, snake.Do(snake.ActionForward)},
	{ebiten.KeyZ, snake.Do(snake.ActionStepBack)},
	{ebiten.KeyR, snake.Do(snake.ActionReset)},
	{ebiten.KeyV, snake.Do(snake.ActionSave)},
	{ebiten.KeyH, snake.Do(snake.ActionOverlay)},
	{ebiten.KeyEscape, snake.Do(snake.ActionQuit)},
}

// Game adapts a snake world to the ebiten.Game interface.
type Game struct {
	world   *snake.World
	cfg     *Config
	log     zerolog.Logger
	sounds  *audio.Sounds
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	step    *core.FixedStep
	scale   int
}

// New constructs a Game for the provided world.
func New(world *snake.World, cfg *Config, logger zerolog.Logger, sounds *audio.Sounds) *Game {
	g := world.Grid()
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		world:   world,
		cfg:     cfg,
		log:     logger,
		sounds:  sounds,
		painter: render.NewGridPainter(g.W, g.H),
		hud:     ui.NewHUD(world, hudWidth),
		overlay: ui.NewOverlay(scale),
		step:    core.NewFixedStep(core.Millis(world.Speed())),
		scale:   scale,
	}
}

// Update handles input and advances the world when a tick is due.
func (g *Game) Update() error {
	for _, b := range bindings {
		if !inpututil.IsKeyJustPressed(b.key) {
			continue
		}
		switch b.cmd.Action {
		case snake.ActionQuit:
			return ebiten.Termination
		case snake.ActionSave:
			g.hud.SetNotice(ui.SaveNotice(Save(g.cfg, g.world, g.log)))
		case snake.ActionOverlay:
			g.overlay.Toggle()
		default:
			g.world.Apply(b.cmd)
		}
	}
	// Pause toggles on release.
	if inpututil.IsKeyJustReleased(ebiten.KeySpace) {
		g.world.TogglePause()
	}

	g.step.SetInterval(core.Millis(g.world.Speed()))
	if g.step.ShouldStep() {
		res := g.world.Step()
		g.sounds.PlayEvents(res.Events)
		if res.Finished {
			fmt.Println(g.world.ScoreReport())
		}
	}
	g.hud.Update()
	return nil
}

// Draw renders the grid, overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.world.Snapshot()
	g.painter.Blit(screen, snap, g.scale)
	g.overlay.Draw(screen, snap)
	g.hud.Draw(screen, snap.Size.W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Grid()
	return s.W*g.scale + hudWidth, s.H * g.scale
}
