package menu

import (
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/game"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/session"
	"github.com/lixenwraith/vi-pong/ui"
)

// Menu identifiers, stable across rebuilds so the presenter keeps focus
const (
	IDMain     = "main"
	IDSettings = "settings"
	IDControls = "controls"
	IDPaused   = "paused"
)

// Binding labels on the Controls screen
const (
	NotSet      = parameter.NotSetLabel // Action without keys
	AwaitingKey = parameter.AwaitLabel  // Action being remapped
)

func MainMenu() *ui.Menu {
	return ui.NewMenu(IDMain, "Pong!",
		ui.Button("Start Game", ui.ChangeMode(session.ModePlaying)),
		ui.Button("Settings", ui.ChangeMode(session.ModeSettings)),
		ui.Button("Quit Game", ui.Quit()),
	)
}

// SettingsMenu shows the current difficulty and speed-up policy as selected labels
func SettingsMenu(d game.Difficulty, p game.SpeedUpPolicy) *ui.Menu {
	difficulty := []ui.Widget{ui.Label("Difficulty: ")}
	for _, level := range game.Difficulties {
		difficulty = append(difficulty, ui.Selectable(level.String(), level == d, ui.SetDifficulty(level)))
	}

	speedUp := []ui.Widget{ui.Label("Speed-up: ")}
	for _, policy := range game.SpeedUpPolicies {
		speedUp = append(speedUp, ui.Selectable(policy.String(), policy == p, ui.SetSpeedUp(policy)))
	}

	return ui.NewMenu(IDSettings, "Settings",
		ui.Horizontal(difficulty...),
		ui.Horizontal(speedUp...),
		ui.Button("Controls", ui.ChangeMode(session.ModeControls)),
		ui.Button("Back", ui.ChangeMode(session.ModeMain)),
	)
}

// ControlsMenu lists one row per action with its current keys; clicking the keys starts a remap
func ControlsMenu(b *input.Bindings, remap *input.RemapRequest) *ui.Menu {
	rows := make([]ui.Widget, 0, len(input.Actions)+1)
	for _, a := range input.Actions {
		keys := b.Label(a)
		if keys == "" {
			keys = NotSet
		}
		if remap != nil && remap.Awaiting && remap.Action == a {
			keys = AwaitingKey
		}
		rows = append(rows, ui.Horizontal(
			ui.Label(a.String()),
			ui.Button(keys, ui.RequestRemap(a)),
		))
	}
	rows = append(rows, ui.Button("Back", ui.ChangeMode(session.ModeSettings)))
	return ui.NewMenu(IDControls, "Controls", rows...)
}

func PausedMenu() *ui.Menu {
	return ui.NewMenu(IDPaused, "Paused",
		ui.Button("Resume", ui.ChangePause(session.PauseRunning)),
		ui.Button("Main Menu", ui.ChangeMode(session.ModeMain)),
	)
}

// ScreenSystem builds one menu screen each frame its set is active
type ScreenSystem struct {
	menus *Menus
	name  string
	sets  session.Set
	build func(ctx *engine.Context) *ui.Menu
}

func (s *ScreenSystem) Name() string      { return s.name }
func (s *ScreenSystem) Priority() int     { return parameter.PriorityMenu }
func (s *ScreenSystem) Sets() session.Set { return s.sets }

func (s *ScreenSystem) Update(ctx *engine.Context) {
	s.menus.show(ctx, s.build(ctx))
}
