package snake

import "snake-rewind/internal/core"

// TurnValidator filters direction requests against recently committed
// directions. It keeps the last two commits plus the most recent moving
// direction, so a reversal is refused even after the snake has been Still.
type TurnValidator struct {
	recent [2]core.Direction
	facing core.Direction
}

// NewTurnValidator starts a validator for a snake seeded facing dir.
func NewTurnValidator(facing core.Direction) TurnValidator {
	return TurnValidator{facing: facing}
}

// Last returns the most recently committed direction.
func (v TurnValidator) Last() core.Direction { return v.recent[1] }

// Previous returns the direction committed before Last.
func (v TurnValidator) Previous() core.Direction { return v.recent[0] }

// Facing returns the last moving direction committed, or the seed heading.
func (v TurnValidator) Facing() core.Direction { return v.facing }

// Validate returns the direction the snake should hold after a request for
// want. Still requests and reversals leave current unchanged.
func (v TurnValidator) Validate(want, current core.Direction) core.Direction {
	if !want.Moving() {
		return current
	}
	if last := v.Last(); last.Moving() && want == last.Opposite() {
		return current
	}
	if want == v.facing.Opposite() {
		return current
	}
	return want
}

// Commit records the direction used for a tick.
func (v *TurnValidator) Commit(d core.Direction) {
	v.recent[0] = v.recent[1]
	v.recent[1] = d
	if d.Moving() {
		v.facing = d
	}
}

// Turned reports whether the last commit changed heading.
func (v TurnValidator) Turned() bool {
	return v.recent[1].Moving() && v.recent[0] != v.recent[1]
}
