package ui

import (
	"fmt"

	"github.com/lixenwraith/vi-pong/game"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/session"
)

// ActionKind discriminates Action
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionChangeMode
	ActionChangePause
	ActionOverwrite
	ActionQuit
)

// ResourceKind names the global value an ActionOverwrite replaces
type ResourceKind uint8

const (
	ResourceDifficulty ResourceKind = iota
	ResourceRemapRequest
	ResourceSpeedUp
)

// Action is the command a clickable widget owns
// Closed set of variants, each closed over its construction-time argument
type Action struct {
	Kind     ActionKind
	Resource ResourceKind

	Mode       session.Mode
	Pause      session.Pause
	Difficulty game.Difficulty
	Remap      input.Action
	SpeedUp    game.SpeedUpPolicy
}

// ChangeMode requests a session mode transition
func ChangeMode(m session.Mode) Action {
	return Action{Kind: ActionChangeMode, Mode: m}
}

// ChangePause requests a pause sub-state transition
func ChangePause(p session.Pause) Action {
	return Action{Kind: ActionChangePause, Pause: p}
}

// SetDifficulty overwrites the difficulty level
func SetDifficulty(d game.Difficulty) Action {
	return Action{Kind: ActionOverwrite, Resource: ResourceDifficulty, Difficulty: d}
}

// RequestRemap overwrites the remap request with one awaiting a key for a
func RequestRemap(a input.Action) Action {
	return Action{Kind: ActionOverwrite, Resource: ResourceRemapRequest, Remap: a}
}

// SetSpeedUp overwrites the collision speed-up policy
func SetSpeedUp(p game.SpeedUpPolicy) Action {
	return Action{Kind: ActionOverwrite, Resource: ResourceSpeedUp, SpeedUp: p}
}

// Quit terminates the process
func Quit() Action {
	return Action{Kind: ActionQuit}
}

func (a Action) String() string {
	switch a.Kind {
	case ActionChangeMode:
		return fmt.Sprintf("ChangeMode(%s)", a.Mode)
	case ActionChangePause:
		return fmt.Sprintf("ChangePause(%s)", a.Pause)
	case ActionOverwrite:
		switch a.Resource {
		case ResourceDifficulty:
			return fmt.Sprintf("Overwrite(Difficulty=%s)", a.Difficulty)
		case ResourceRemapRequest:
			return fmt.Sprintf("Overwrite(Remap=%s)", a.Remap)
		case ResourceSpeedUp:
			return fmt.Sprintf("Overwrite(SpeedUp=%s)", a.SpeedUp)
		}
	case ActionQuit:
		return "Quit"
	}
	return "None"
}
