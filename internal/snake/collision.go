package snake

import "snake-rewind/internal/core"

// NextHead returns the cell the snake's head enters when moving dir. Leaving the
// grid yields ok=false unless ghost is set, in which case the cell wraps.
func NextHead(s *Snake, dir core.Direction, g core.Grid, ghost bool) (core.Position, bool) {
	dx, dy := dir.Delta()
	next := s.Head().Add(dx, dy)
	if g.Contains(next) {
		return next, true
	}
	if ghost {
		return g.Wrap(next), true
	}
	return next, false
}

// SelfCollision reports whether next lands on the body behind the current head.
// The cell the tail vacates this tick still counts as occupied.
func SelfCollision(s *Snake, next core.Position) bool {
	return s.containsBehindHead(next)
}

// CrossCollision reports whether either snake's next head lands on the other
// snake's pre-tick body, or both heads enter the same cell.
func CrossCollision(a *Snake, nextA core.Position, b *Snake, nextB core.Position) bool {
	if nextA == nextB {
		return true
	}
	return b.Contains(nextA) || a.Contains(nextB)
}

// DetectCollision combines self and cross checks for s moving into next. other
// may be nil in single-player worlds.
func DetectCollision(s *Snake, next core.Position, other *Snake, otherNext core.Position) bool {
	if SelfCollision(s, next) {
		return true
	}
	if other == nil {
		return false
	}
	return CrossCollision(s, next, other, otherNext)
}
