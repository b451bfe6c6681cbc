package menu

import (
	"log"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/session"
)

// PauseToggleSystem flips Running and Paused on a fresh Menu press
type PauseToggleSystem struct{}

func (s *PauseToggleSystem) Name() string      { return "pause-toggle" }
func (s *PauseToggleSystem) Priority() int     { return parameter.PriorityPauseToggle }
func (s *PauseToggleSystem) Sets() session.Set { return session.SetPlaying | session.SetPaused }

func (s *PauseToggleSystem) Update(ctx *engine.Context) {
	if ctx.Actions.JustPressed(input.ActionMenu) {
		ctx.Session.TogglePause(ctx)
	}
}

// RemapSystem binds the first key pressed after a remap request
type RemapSystem struct{}

func (s *RemapSystem) Name() string      { return "remap" }
func (s *RemapSystem) Priority() int     { return parameter.PriorityRemap }
func (s *RemapSystem) Sets() session.Set { return session.SetControls }

func (s *RemapSystem) Update(ctx *engine.Context) {
	if ctx.Remap == nil || !ctx.Remap.Accepts(ctx.Input.Frame()) {
		return
	}
	presses := ctx.Input.Presses()
	if len(presses) == 0 {
		return
	}

	action, key := ctx.Remap.Action, presses[0]
	*ctx.Remap = ctx.Remap.Commit(ctx.Bindings, key)
	ctx.Emit(event.EventKeyRebound, &event.KeyReboundPayload{Action: action.String(), Key: key.String()})
	log.Printf("menu: %s bound to %s", action, key)
}
