// Package render turns world snapshots into cell codes and RGBA pixels.
package render

import (
	"image/color"

	"snake-rewind/internal/core"
	"snake-rewind/internal/snake"
)

// Cell codes written by Rasterize. They index Palette.
const (
	CellEmpty uint8 = iota
	CellPrimary
	CellSecondary
	CellFood
	CellBerry
	// CellFinished marks every occupied cell once the game is over.
	CellFinished
)

// Palette maps cell codes to colours.
var Palette = []color.RGBA{
	CellEmpty:     {R: 0, G: 0, B: 0, A: 255},
	CellPrimary:   {R: 0x33, G: 0xCC, B: 0xFF, A: 255},
	CellSecondary: {R: 0xCC, G: 0x33, B: 0xFF, A: 255},
	CellFood:      {R: 0x00, G: 0xFF, B: 0x00, A: 255},
	CellBerry:     {R: 0xFF, G: 0x00, B: 0x00, A: 255},
	CellFinished:  {R: 0xFF, G: 0x00, B: 0x00, A: 255},
}

// SnakeCell returns the code used for a player's body.
func SnakeCell(id snake.PlayerID) uint8 {
	if id == snake.Secondary {
		return CellSecondary
	}
	return CellPrimary
}

// Rasterize clears dst and writes consumables then bodies, so bodies win on
// shared cells.
func Rasterize(dst *core.ByteGrid, snap snake.Snapshot) {
	dst.Clear()
	paint := func(p core.Position, code uint8) {
		if snap.Finished {
			code = CellFinished
		}
		dst.Set(p, code)
	}
	paint(snap.Food, CellFood)
	if snap.HasBerry {
		paint(snap.Berry, CellBerry)
	}
	for _, s := range snap.Snakes {
		code := SnakeCell(s.ID)
		for _, c := range s.Body {
			paint(c, code)
		}
	}
}

// RasterizeTrail marks the recently vacated cells of every snake.
func RasterizeTrail(dst *core.ByteGrid, snap snake.Snapshot) {
	dst.Clear()
	for _, s := range snap.Snakes {
		for _, c := range s.Trail {
			dst.Set(c, 1)
		}
	}
}

// Frame owns the cell and pixel buffers for one grid size.
type Frame struct {
	cells   *core.ByteGrid
	pix     []byte
	palette []color.RGBA
}

// NewFrame allocates buffers for a w x h grid.
func NewFrame(w, h int) *Frame {
	cells := core.NewByteGrid(w, h)
	return &Frame{
		cells:   cells,
		pix:     make([]byte, 4*len(cells.Cells())),
		palette: Palette,
	}
}

// Cells exposes the last rasterized cell codes.
func (f *Frame) Cells() *core.ByteGrid { return f.cells }

// Paint rasterizes snap and returns the RGBA pixels. The slice is reused.
func (f *Frame) Paint(snap snake.Snapshot) []byte {
	Rasterize(f.cells, snap)
	FillPaletteRGBA(f.pix, f.cells.Cells(), f.palette)
	return f.pix
}
