package snake

import "snake-rewind/internal/core"

// Action is a discrete request from an input collaborator.
type Action uint8

const (
	ActionNone Action = iota
	ActionTurn
	ActionReset
	ActionForward
	ActionBackward
	ActionStepBack
	ActionTogglePause
	// ActionSave, ActionOverlay and ActionQuit are handled by front-ends.
	ActionSave
	ActionOverlay
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionTurn:
		return "turn"
	case ActionReset:
		return "reset"
	case ActionForward:
		return "forward"
	case ActionBackward:
		return "backward"
	case ActionStepBack:
		return "step_back"
	case ActionTogglePause:
		return "toggle_pause"
	case ActionSave:
		return "save"
	case ActionOverlay:
		return "overlay"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Command pairs an action with its target player and heading.
type Command struct {
	Action Action
	Player PlayerID
	Dir    core.Direction
}

// Turn builds a direction request for player id.
func Turn(id PlayerID, d core.Direction) Command {
	return Command{Action: ActionTurn, Player: id, Dir: d}
}

// Do builds a command without a player or heading.
func Do(a Action) Command { return Command{Action: a} }

// Apply executes world-level commands and reports whether cmd was one. Save,
// overlay and quit are left to the caller.
func (w *World) Apply(cmd Command) bool {
	switch cmd.Action {
	case ActionTurn:
		w.RequestTurn(cmd.Player, cmd.Dir)
	case ActionReset:
		w.Reset()
	case ActionForward:
		w.cycle = Forward
	case ActionBackward:
		w.cycle = Backward
	case ActionStepBack:
		w.StepBack()
	case ActionTogglePause:
		w.TogglePause()
	default:
		return false
	}
	return true
}

// RequestTurn validates a heading change for player id and resumes forward
// time. Halted snakes and unknown players are ignored.
func (w *World) RequestTurn(id PlayerID, d core.Direction) {
	w.cycle = Forward
	p := w.Player(id)
	if p == nil || p.halted {
		return
	}
	p.dir = p.turns.Validate(d, p.dir)
}

// TogglePause flips the pause gate checked by Step.
func (w *World) TogglePause() { w.toggles++ }

// SetCycle switches the time mode directly.
func (w *World) SetCycle(c TimeCycle) { w.cycle = c }
