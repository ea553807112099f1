package core

import "fmt"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Position is a cell coordinate on the grid.
type Position struct {
	X int
	Y int
}

// Add returns p shifted by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Direction is the heading a snake moves in on each tick.
type Direction uint8

const (
	// Still means no movement. Snakes start and halt in this state.
	Still Direction = iota
	North
	East
	West
	South
)

var directionDeltas = [...][2]int{
	Still: {0, 0},
	North: {0, -1},
	East:  {1, 0},
	West:  {-1, 0},
	South: {0, 1},
}

var directionNames = [...]string{
	Still: "still",
	North: "north",
	East:  "east",
	West:  "west",
	South: "south",
}

// Delta returns the (dx, dy) offset for one step. North decreases Y.
func (d Direction) Delta() (dx, dy int) {
	if int(d) >= len(directionDeltas) {
		return 0, 0
	}
	v := directionDeltas[d]
	return v[0], v[1]
}

// Opposite returns the reverse heading. Still is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Moving reports whether d is one of the four cardinal headings.
func (d Direction) Moving() bool {
	return d >= North && d <= South
}

func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return "unknown"
	}
	return directionNames[d]
}
