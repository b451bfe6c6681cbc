package input

import (
	"time"

	"github.com/lixenwraith/vi-pong/parameter"
)

// State infers held and just-pressed keys from terminal key events
// Terminals report presses and autorepeats but no releases. A fresh press is held for the repeat window,
// long enough for the initial auto-repeat delay; once the key repeats it is held for the shorter hold window.
// A press is a new edge when it arrives after the window that was holding the key expired
type State struct {
	holdWindow   time.Duration
	repeatWindow time.Duration

	keys    map[Key]keyState
	edges   map[Key]bool
	presses []Key
	frame   int64
}

type keyState struct {
	last      time.Time
	repeating bool // An auto-repeat followed the edge press
}

// window is how long after its last press the key stays held
func (s *State) window(ks keyState) time.Duration {
	if ks.repeating {
		return s.holdWindow
	}
	return s.repeatWindow
}

// NewState creates an input state; zero windows fall back to the defaults
func NewState(hold, repeat time.Duration) *State {
	if hold <= 0 {
		hold = parameter.KeyHoldWindow
	}
	if repeat <= 0 {
		repeat = parameter.KeyRepeatWindow
	}
	return &State{
		holdWindow:   hold,
		repeatWindow: repeat,
		keys:         make(map[Key]keyState),
		edges:        make(map[Key]bool),
	}
}

// Feed records one press (or autorepeat) of k observed at now
func (s *State) Feed(k Key, now time.Time) {
	ks, seen := s.keys[k]
	if !seen || now.Sub(ks.last) > s.window(ks) {
		s.edges[k] = true
		ks.repeating = false
	} else {
		ks.repeating = true
	}
	ks.last = now
	s.keys[k] = ks
	s.presses = append(s.presses, k)
}

// Held reports whether k is still inside the window opened by its last press
func (s *State) Held(k Key, now time.Time) bool {
	ks, ok := s.keys[k]
	return ok && now.Sub(ks.last) <= s.window(ks)
}

// JustPressedKey reports a fresh press edge of k in the current frame
func (s *State) JustPressedKey(k Key) bool {
	return s.edges[k]
}

// Presses returns every press fed during the current frame, in order
func (s *State) Presses() []Key {
	return s.presses
}

// Frame returns the current input frame number
func (s *State) Frame() int64 {
	return s.frame
}

// EndFrame clears per-frame edges and presses and advances the frame number
func (s *State) EndFrame() {
	clear(s.edges)
	s.presses = s.presses[:0]
	s.frame++
}

// Reset forgets every key, keeping the frame number
func (s *State) Reset() {
	clear(s.keys)
	clear(s.edges)
	s.presses = s.presses[:0]
}

// Actions returns the logical view of the state under bindings at now
func (s *State) Actions(b *Bindings, now time.Time) ActionState {
	return ActionState{state: s, bindings: b, now: now}
}

// ActionState answers per-action queries for one frame
type ActionState struct {
	state    *State
	bindings *Bindings
	now      time.Time
}

// Pressed reports whether any key bound to a is held
func (as ActionState) Pressed(a Action) bool {
	for _, k := range as.bindings.Keys(a) {
		if as.state.Held(k, as.now) {
			return true
		}
	}
	return false
}

// JustPressed reports a fresh press edge on any key bound to a
func (as ActionState) JustPressed(a Action) bool {
	for _, k := range as.bindings.Keys(a) {
		if as.state.JustPressedKey(k) {
			return true
		}
	}
	return false
}

// Axis returns Up held minus Down held
func (as ActionState) Axis() float64 {
	var v float64
	if as.Pressed(ActionUp) {
		v++
	}
	if as.Pressed(ActionDown) {
		v--
	}
	return v
}
