package snake

import "snake-rewind/internal/core"

// FrameKind records what a forward tick did to a body.
type FrameKind uint8

const (
	// FrameHold means the body did not change (Still or halted).
	FrameHold FrameKind = iota
	// FrameShift means the head advanced and the tail cell was vacated.
	FrameShift
	// FrameGrow means the head advanced and the tail stayed.
	FrameGrow
)

func (k FrameKind) String() string {
	switch k {
	case FrameShift:
		return "shift"
	case FrameGrow:
		return "grow"
	default:
		return "hold"
	}
}

// Frame is enough to undo one forward tick exactly.
type Frame struct {
	Kind    FrameKind
	Vacated core.Position
	// Dir and Turns are the movement state before the tick ran.
	Dir   core.Direction
	Turns TurnValidator
}

// History is a LIFO stack of frames, one per forward tick.
type History struct {
	frames []Frame
}

// Record pushes a frame.
func (h *History) Record(f Frame) { h.frames = append(h.frames, f) }

// Pop removes and returns the newest frame.
func (h *History) Pop() (Frame, bool) {
	if len(h.frames) == 0 {
		return Frame{}, false
	}
	f := h.frames[len(h.frames)-1]
	h.frames = h.frames[:len(h.frames)-1]
	return f, true
}

// Len returns the number of recorded ticks.
func (h *History) Len() int { return len(h.frames) }

// Clear drops every frame.
func (h *History) Clear() { h.frames = h.frames[:0] }

// Trail returns up to limit of the most recently vacated cells, newest first.
func (h *History) Trail(limit int) []core.Position {
	var out []core.Position
	for i := len(h.frames) - 1; i >= 0 && len(out) < limit; i-- {
		if h.frames[i].Kind == FrameShift {
			out = append(out, h.frames[i].Vacated)
		}
	}
	return out
}

// undo reverts s by one frame.
func undo(s *Snake, f Frame) {
	switch f.Kind {
	case FrameShift:
		s.unshift(f.Vacated)
	case FrameGrow:
		s.shrink()
	}
}
