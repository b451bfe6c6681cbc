package input

import (
	"fmt"
	"strings"
)

// Action is a logical input decoupled from the physical key bound to it
type Action uint8

const (
	ActionUp Action = iota
	ActionDown
	ActionMenu

	actionCount
)

// Actions lists every logical action in display order
var Actions = [actionCount]Action{ActionUp, ActionDown, ActionMenu}

// actionRegistry maps canonical action names to actions
// Used by the config loader to resolve [controls] keys
var actionRegistry = map[string]Action{
	"up":   ActionUp,
	"down": ActionDown,
	"menu": ActionMenu,
}

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionMenu:
		return "Menu"
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// ParseAction resolves a case-insensitive action name
func ParseAction(name string) (Action, error) {
	a, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown action: %q", name)
	}
	return a, nil
}
