package loop

import (
	"fmt"

	"github.com/tomz197/skyraid/internal/sim"
)

// ActionKind identifies a player command.
type ActionKind int

const (
	ActionStart ActionKind = iota
	ActionFire
	ActionLeft
	ActionRight
	ActionTogglePause
	ActionRestart
	ActionSelectColor
	ActionToggleMute
	ActionQuit
)

var actionNames = [...]string{
	ActionStart:       "start",
	ActionFire:        "fire",
	ActionLeft:        "left",
	ActionRight:       "right",
	ActionTogglePause: "togglePause",
	ActionRestart:     "restart",
	ActionSelectColor: "selectColor",
	ActionToggleMute:  "toggleMute",
	ActionQuit:        "quit",
}

// String returns the action name.
func (k ActionKind) String() string {
	if k < 0 || int(k) >= len(actionNames) {
		return fmt.Sprintf("action(%d)", int(k))
	}
	return actionNames[k]
}

// Action is one discrete command sent to an Engine.
type Action struct {
	Kind  ActionKind
	Color string // Only for ActionSelectColor
}

// apply runs the action against the simulation. Returns false if the
// simulation ignored it. Quit and mute are handled by the engine, never here.
func (a Action) apply(s *sim.Simulation) bool {
	switch a.Kind {
	case ActionStart:
		return s.Start()
	case ActionFire:
		return s.Fire()
	case ActionLeft:
		return s.MoveLeft()
	case ActionRight:
		return s.MoveRight()
	case ActionTogglePause:
		return s.TogglePause()
	case ActionRestart:
		return s.Restart()
	case ActionSelectColor:
		return s.SelectColor(a.Color)
	default:
		return false
	}
}
