//go:build ebiten

package ui

import (
	"image/color"

	"snake-rewind/internal/core"
	"snake-rewind/internal/render"
	"snake-rewind/internal/snake"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Source is what the HUD reads each frame.
type Source interface {
	Snapshot() snake.Snapshot
	Parameters() core.ParameterSnapshot
	ScoreReport() string
}

// HUD renders the score and parameter panel to the right of the grid.
type HUD struct {
	src        Source
	width      int
	panel      *ebiten.Image
	lastHeight int

	status  []string
	params  []string
	notice  string
	players int
}

// NewHUD constructs a HUD for the world and panel width.
func NewHUD(src Source, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{src: src, width: width}
}

// Update refreshes the cached lines from the world.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	snap := h.src.Snapshot()
	h.players = len(snap.Snakes)
	h.status = StatusLines(snap, h.src.ScoreReport())
	if h.notice != "" {
		h.status = append(h.status, h.notice)
	}
	h.params = ParameterLines(h.src.Parameters())
}

// SetNotice shows a transient line such as the outcome of a save.
func (h *HUD) SetNotice(msg string) {
	if h == nil {
		return
	}
	h.notice = msg
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.src.Snapshot().Size.H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Snake", face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	y += lineHeight
	for i, line := range h.status {
		col := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i < h.players {
			col = render.Palette[render.SnakeCell(snake.PlayerID(i))]
		}
		text.Draw(h.panel, line, face, panelPadding, y, col)
		y += lineHeight
	}
	y += lineHeight / 2
	for _, line := range h.params {
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding   = 12
	lineHeight     = 16
	headerBaseline = 12
)
