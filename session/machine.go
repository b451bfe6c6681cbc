package session

import (
	"fmt"
	"log"

	"github.com/lixenwraith/vi-pong/engine/fsm"
)

const (
	stateMain fsm.StateID = iota + fsm.StateRoot + 1
	stateSettings
	stateControls
	statePlaying
	stateRunning
	statePaused
)

const eventTogglePause fsm.EventID = 1

var modeStates = [...]fsm.StateID{
	ModeMain:     stateMain,
	ModeSettings: stateSettings,
	ModeControls: stateControls,
	ModePlaying:  statePlaying,
}

var pauseStates = [...]fsm.StateID{
	PauseRunning: stateRunning,
	PausePaused:  statePaused,
}

// Machine is the session state machine: one of four modes, with Running and Paused children under Playing
// Transitions are requested at any time and applied by Apply at the tick boundary
type Machine[T any] struct {
	fsm *fsm.Machine[T]
}

// New builds the session graph; the initial mode is Main
func New[T any]() *Machine[T] {
	m := fsm.NewMachine[T]()
	m.AddState(fsm.StateRoot, "Root", fsm.StateNone)
	m.AddState(stateMain, ModeMain.String(), fsm.StateRoot)
	m.AddState(stateSettings, ModeSettings.String(), fsm.StateRoot)
	m.AddState(stateControls, ModeControls.String(), fsm.StateRoot)
	playing := m.AddState(statePlaying, ModePlaying.String(), fsm.StateRoot)
	playing.InitialChild = stateRunning
	m.AddState(stateRunning, PauseRunning.String(), statePlaying)
	m.AddState(statePaused, PausePaused.String(), statePlaying)

	m.AddTransition(stateRunning, fsm.Transition[T]{TargetID: statePaused, Event: eventTogglePause})
	m.AddTransition(statePaused, fsm.Transition[T]{TargetID: stateRunning, Event: eventTogglePause})

	m.InitialStateID = stateMain
	if err := m.CompilePaths(); err != nil {
		// Static graph
		panic(fmt.Sprintf("session: %v", err))
	}
	return &Machine[T]{fsm: m}
}

// OnEnterMode registers a hook run when mode becomes active
func (m *Machine[T]) OnEnterMode(mode Mode, fn func(ctx T)) {
	m.fsm.OnEnter(modeStates[mode], adapt(fn), nil)
}

// OnExitMode registers a hook run when mode stops being active
func (m *Machine[T]) OnExitMode(mode Mode, fn func(ctx T)) {
	m.fsm.OnExit(modeStates[mode], adapt(fn), nil)
}

// OnEnterPause registers a hook run when the Playing sub-state p is entered
func (m *Machine[T]) OnEnterPause(p Pause, fn func(ctx T)) {
	m.fsm.OnEnter(pauseStates[p], adapt(fn), nil)
}

func adapt[T any](fn func(ctx T)) fsm.ActionFunc[T] {
	return func(ctx T, _ any) { fn(ctx) }
}

// Init enters Main and runs its enter hooks
func (m *Machine[T]) Init(ctx T) error {
	return m.fsm.Init(ctx)
}

// RequestMode queues a mode change; entering Playing always starts Running
// Requesting the active mode is a no-op at apply time
func (m *Machine[T]) RequestMode(mode Mode) {
	if int(mode) >= len(modeStates) {
		return
	}
	m.fsm.Request(modeStates[mode])
}

// RequestPause queues a pause sub-state change, ignored unless Playing
func (m *Machine[T]) RequestPause(p Pause) {
	if int(p) >= len(pauseStates) || !m.fsm.IsActive(statePlaying) {
		return
	}
	m.fsm.Request(pauseStates[p])
}

// TogglePause queues the flip Running <-> Paused; returns false unless Playing
// A queued mode change wins over the toggle
func (m *Machine[T]) TogglePause(ctx T) bool {
	if m.modePending() {
		return false
	}
	return m.fsm.HandleEvent(ctx, eventTogglePause)
}

func (m *Machine[T]) modePending() bool {
	target := m.fsm.Pending()
	for _, id := range modeStates {
		if id == target {
			return true
		}
	}
	return false
}

// Apply performs the queued transition with its exit and enter hooks
// Called once per frame before any system runs
func (m *Machine[T]) Apply(ctx T) bool {
	fromMode, fromPause := m.Mode(), m.Pause()
	if !m.fsm.ApplyPending(ctx) {
		return false
	}
	log.Printf("session: %s/%s -> %s/%s", fromMode, fromPause, m.Mode(), m.Pause())
	return true
}

// Mode returns the active mode
func (m *Machine[T]) Mode() Mode {
	for mode, id := range modeStates {
		if m.fsm.IsActive(id) {
			return Mode(mode)
		}
	}
	return ModeMain
}

// Pause returns the Playing sub-state, Running when not Playing
func (m *Machine[T]) Pause() Pause {
	if m.fsm.IsActive(statePaused) {
		return PausePaused
	}
	return PauseRunning
}

// Active returns the single gating set of the current state
func (m *Machine[T]) Active() Set {
	switch m.Mode() {
	case ModeSettings:
		return SetSettings
	case ModeControls:
		return SetControls
	case ModePlaying:
		if m.Pause() == PausePaused {
			return SetPaused
		}
		return SetPlaying
	}
	return SetMain
}

// Runs reports whether a system declared for set executes in the current state
func (m *Machine[T]) Runs(set Set) bool {
	return m.Active()&set != 0
}

// Pending reports whether a transition is queued
func (m *Machine[T]) Pending() bool {
	return m.fsm.Pending() != fsm.StateNone
}
