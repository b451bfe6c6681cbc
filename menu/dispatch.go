package menu

import (
	"log"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/ui"
)

// Dispatch executes a clicked widget's action against the context
// Actions carry their argument and never read state; transitions are deferred to the next frame
func Dispatch(ctx *engine.Context, a ui.Action) {
	switch a.Kind {
	case ui.ActionChangeMode:
		ctx.Session.RequestMode(a.Mode)

	case ui.ActionChangePause:
		ctx.Session.RequestPause(a.Pause)

	case ui.ActionOverwrite:
		switch a.Resource {
		case ui.ResourceDifficulty:
			ctx.Difficulty = a.Difficulty
		case ui.ResourceSpeedUp:
			ctx.SpeedUp = a.SpeedUp
		case ui.ResourceRemapRequest:
			if ctx.Remap == nil {
				log.Printf("menu: remap request for %s outside Controls dropped", a.Remap)
				return
			}
			// Stamped with the input frame so the clicking key is never bound
			*ctx.Remap = input.AwaitRemap(a.Remap, ctx.Input.Frame())
		}

	case ui.ActionQuit:
		ctx.RequestQuit()

	default:
		return
	}

	ctx.Emit(event.EventMenuClick, nil)
}
