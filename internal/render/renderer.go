//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"snake-rewind/internal/snake"
)

// GridPainter uploads a rasterized snapshot to a grid-sized image and draws it
// scaled onto the screen.
type GridPainter struct {
	frame *Frame
	img   *ebiten.Image
}

// NewGridPainter allocates a painter for a w x h grid.
func NewGridPainter(w, h int) *GridPainter {
	f := NewFrame(w, h)
	return &GridPainter{frame: f, img: ebiten.NewImage(f.cells.W, f.cells.H)}
}

// Blit paints snap onto screen, one grid cell per scale x scale block.
func (p *GridPainter) Blit(screen *ebiten.Image, snap snake.Snapshot, scale int) {
	if scale <= 0 {
		scale = 1
	}
	p.img.ReplacePixels(p.frame.Paint(snap))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(p.img, op)
}
