package term

import (
	"github.com/gdamore/tcell/v2"

	"snake-rewind/internal/core"
	"snake-rewind/internal/render"
	"snake-rewind/internal/snake"
)

var (
	boxStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	trailStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(90, 90, 140))
)

// cellStyles mirrors render.Palette for terminal colours.
var cellStyles = func() []tcell.Style {
	out := make([]tcell.Style, len(render.Palette))
	for i, c := range render.Palette {
		col := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
		out[i] = tcell.StyleDefault.Foreground(col)
	}
	return out
}()

var cellRunes = []rune{
	render.CellEmpty:     ' ',
	render.CellPrimary:   tcell.RuneBlock,
	render.CellSecondary: tcell.RuneBlock,
	render.CellFood:      '#',
	render.CellBerry:     '*',
	render.CellFinished:  tcell.RuneBlock,
}

// Canvas draws snapshots inside a box whose top-left border sits at (0, 0).
type Canvas struct {
	cells     *core.ByteGrid
	trail     *core.ByteGrid
	ShowTrail bool
}

// NewCanvas allocates buffers for a w x h grid.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{cells: core.NewByteGrid(w, h), trail: core.NewByteGrid(w, h)}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func drawBox(s tcell.Screen, x1, y1, x2, y2 int, style tcell.Style) {
	for col := x1; col <= x2; col++ {
		s.SetContent(col, y1, tcell.RuneHLine, nil, style)
		s.SetContent(col, y2, tcell.RuneHLine, nil, style)
	}
	for row := y1 + 1; row < y2; row++ {
		s.SetContent(x1, row, tcell.RuneVLine, nil, style)
		s.SetContent(x2, row, tcell.RuneVLine, nil, style)
	}
	s.SetContent(x1, y1, tcell.RuneULCorner, nil, style)
	s.SetContent(x2, y1, tcell.RuneURCorner, nil, style)
	s.SetContent(x1, y2, tcell.RuneLLCorner, nil, style)
	s.SetContent(x2, y2, tcell.RuneLRCorner, nil, style)
}

// Draw paints snap and the status lines below the box.
func (c *Canvas) Draw(s tcell.Screen, snap snake.Snapshot, status []string) {
	s.Clear()
	w, h := c.cells.W, c.cells.H
	drawBox(s, 0, 0, w+1, h+1, boxStyle)

	render.Rasterize(c.cells, snap)
	if c.ShowTrail {
		render.RasterizeTrail(c.trail, snap)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := core.Position{X: x, Y: y}
			code := c.cells.At(p)
			if code == render.CellEmpty {
				if c.ShowTrail && c.trail.At(p) != 0 {
					s.SetContent(x+1, y+1, tcell.RuneBullet, nil, trailStyle)
				}
				continue
			}
			s.SetContent(x+1, y+1, cellRunes[code], nil, cellStyles[code])
		}
	}
	for i, line := range status {
		drawText(s, 0, h+2+i, textStyle, line)
	}
	s.Show()
}
