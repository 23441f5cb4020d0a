// Package input maps keys, buttons and touch gestures to engine actions. The engine itself
// does not know which input produced an action.
package input

import (
	"errors"
	"fmt"
	"strings"
)

// Action is a player command.
type Action int

const (
	None Action = iota
	MoveLeft
	MoveRight
	SoftDrop
	HardDrop
	RotateClockwise
	RotateCounterclockwise
	Hold
)

var actionNames = map[Action]string{
	None:                   "none",
	MoveLeft:               "left",
	MoveRight:              "right",
	SoftDrop:               "soft-drop",
	HardDrop:               "hard-drop",
	RotateClockwise:        "rotate-cw",
	RotateCounterclockwise: "rotate-ccw",
	Hold:                   "hold",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ErrUnknownAction is returned by ParseAction for names it does not recognise.
var ErrUnknownAction = errors.New("unknown action")

// ParseAction returns the action called name, as printed by Action.String.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name && a != None {
			return a, nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// Controller is the action API of the engine.
type Controller interface {
	MoveLeft()
	MoveRight()
	SoftDrop()
	HardDrop()
	RotateClockwise()
	RotateCounterclockwise()
	Hold()
}

// Apply performs a on c. None does nothing.
func Apply(c Controller, a Action) {
	switch a {
	case MoveLeft:
		c.MoveLeft()
	case MoveRight:
		c.MoveRight()
	case SoftDrop:
		c.SoftDrop()
	case HardDrop:
		c.HardDrop()
	case RotateClockwise:
		c.RotateClockwise()
	case RotateCounterclockwise:
		c.RotateCounterclockwise()
	case Hold:
		c.Hold()
	}
}
