package menu

import (
	"reflect"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/session"
	"github.com/lixenwraith/vi-pong/ui"
)

// Menus owns the menu screens and the last menu handed to the presenter
type Menus struct {
	shown *ui.Menu
}

// Register installs the Controls lifecycle hooks, the screen systems, the remap listener and the pause toggle
func Register(ctx *engine.Context, sched *engine.Scheduler) *Menus {
	m := &Menus{}

	ctx.Session.OnEnterMode(session.ModeControls, func(ctx *engine.Context) {
		ctx.Remap = &input.RemapRequest{}
	})
	ctx.Session.OnExitMode(session.ModeControls, func(ctx *engine.Context) {
		ctx.Remap = nil
	})
	// Running play has no menu
	ctx.Session.OnEnterPause(session.PauseRunning, m.hide)

	sched.AddFrame(&PauseToggleSystem{})
	sched.AddFrame(&RemapSystem{})
	sched.AddFrame(&ScreenSystem{menus: m, name: "menu-main", sets: session.SetMain,
		build: func(*engine.Context) *ui.Menu { return MainMenu() }})
	sched.AddFrame(&ScreenSystem{menus: m, name: "menu-settings", sets: session.SetSettings,
		build: func(ctx *engine.Context) *ui.Menu { return SettingsMenu(ctx.Difficulty, ctx.SpeedUp) }})
	sched.AddFrame(&ScreenSystem{menus: m, name: "menu-controls", sets: session.SetControls,
		build: func(ctx *engine.Context) *ui.Menu { return ControlsMenu(ctx.Bindings, ctx.Remap) }})
	sched.AddFrame(&ScreenSystem{menus: m, name: "menu-paused", sets: session.SetPaused,
		build: func(*engine.Context) *ui.Menu { return PausedMenu() }})
	return m
}

// Shown returns the menu currently handed to the presenter, nil when hidden
func (m *Menus) Shown() *ui.Menu {
	return m.shown
}

// show hands menu to the presenter when its content differs from what is on screen
func (m *Menus) show(ctx *engine.Context, menu *ui.Menu) {
	if reflect.DeepEqual(m.shown, menu) {
		return
	}
	m.shown = menu
	if ctx.Presenter != nil {
		ctx.Presenter.ShowMenu(menu)
	}
}

func (m *Menus) hide(ctx *engine.Context) {
	if m.shown == nil {
		return
	}
	m.shown = nil
	if ctx.Presenter != nil {
		ctx.Presenter.ShowMenu(nil)
	}
}
