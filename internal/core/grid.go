package core

// Grid holds the playfield bounds. Valid cells satisfy 0 <= x < W and 0 <= y < H.
type Grid struct {
	W, H int
}

// NewGrid returns a grid with the given dimensions, clamped to at least 1x1.
func NewGrid(w, h int) Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Grid{W: w, H: h}
}

// Size reports the grid dimensions.
func (g Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.W && p.Y >= 0 && p.Y < g.H
}

// Wrap applies toroidal wrapping to the provided position.
func (g Grid) Wrap(p Position) Position {
	p.X = (p.X%g.W + g.W) % g.W
	p.Y = (p.Y%g.H + g.H) % g.H
	return p
}

// Center returns the middle cell, rounding down.
func (g Grid) Center() Position { return Position{X: g.W / 2, Y: g.H / 2} }

// Area returns the number of cells.
func (g Grid) Area() int { return g.W * g.H }

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Set writes v at p. Positions outside the grid are ignored.
func (g *ByteGrid) Set(p Position, v uint8) {
	if p.X < 0 || p.X >= g.W || p.Y < 0 || p.Y >= g.H {
		return
	}
	g.data[g.Index(p.X, p.Y)] = v
}

// At returns the value at p, or 0 outside the grid.
func (g *ByteGrid) At(p Position) uint8 {
	if p.X < 0 || p.X >= g.W || p.Y < 0 || p.Y >= g.H {
		return 0
	}
	return g.data[g.Index(p.X, p.Y)]
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
