//go:build ebiten

package ui

import (
	"image/color"

	"snake-rewind/internal/core"
	"snake-rewind/internal/render"
	"snake-rewind/internal/snake"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay tints the cells each snake recently vacated, which is the path a
// rewind would replay.
type Overlay struct {
	scale   int
	visible bool

	mask *core.ByteGrid
	img  *ebiten.Image
	buf  []byte
	tint color.RGBA
}

// NewOverlay constructs a hidden trail overlay.
func NewOverlay(scale int) *Overlay {
	return &Overlay{scale: scale, tint: color.RGBA{R: 90, G: 90, B: 140, A: 110}}
}

// Toggle shows or hides the overlay.
func (o *Overlay) Toggle() { o.visible = !o.visible }

// Visible reports whether Draw paints anything.
func (o *Overlay) Visible() bool { return o.visible }

// Draw renders the rewind trail onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, snap snake.Snapshot) {
	if !o.visible {
		return
	}
	size := snap.Size
	if size.W <= 0 || size.H <= 0 {
		return
	}
	if o.mask == nil || o.mask.W != size.W || o.mask.H != size.H {
		o.mask = core.NewByteGrid(size.W, size.H)
		o.img = ebiten.NewImage(size.W, size.H)
		o.buf = make([]byte, 4*size.W*size.H)
	}
	render.RasterizeTrail(o.mask, snap)
	render.FillMaskRGBA(o.buf, o.mask.Cells(), o.tint, color.RGBA{})
	o.img.ReplacePixels(o.buf)

	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.img, op)
}
