package ui

import "lifeboard/internal/core"

// Action is a user command issued from the keyboard or a HUD button.
type Action int

const (
	ActionNone Action = iota
	ActionStartStop
	ActionStep
	ActionRandom
	ActionClear
	ActionToggleGrid
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionStartStop:
		return "start/stop"
	case ActionStep:
		return "step"
	case ActionRandom:
		return "random"
	case ActionClear:
		return "clear"
	case ActionToggleGrid:
		return "toggle grid"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Controller is the part of a session the HUD drives.
type Controller interface {
	StartStop() bool
	Running() bool
	Step()
	Randomize()
	Clear()
	Parameters() []core.Parameter
}

// Apply runs a board action against c and reports whether the action was one
// c handles. View actions such as ActionToggleGrid and ActionQuit are left to
// the caller.
func Apply(a Action, c Controller) bool {
	switch a {
	case ActionStartStop:
		c.StartStop()
	case ActionStep:
		if c.Running() {
			return true
		}
		c.Step()
	case ActionRandom:
		c.Randomize()
	case ActionClear:
		c.Clear()
	default:
		return false
	}
	return true
}
