package session

import "fmt"

// Mode is the top-level session mode, exactly one is active
type Mode uint8

const (
	ModeMain Mode = iota
	ModeSettings
	ModeControls
	ModePlaying
)

var modeNames = [...]string{"Main", "Settings", "Controls", "Playing"}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Pause is the sub-state of Playing; Running whenever the mode is not Playing
type Pause uint8

const (
	PauseRunning Pause = iota
	PausePaused
)

func (p Pause) String() string {
	if p == PausePaused {
		return "Paused"
	}
	return "Running"
}

// Set is a bitmask of gating sets a system declares it runs in
type Set uint8

const (
	SetMain Set = 1 << iota
	SetSettings
	SetControls
	// SetPlaying runs while Playing and Running
	SetPlaying
	// SetPaused runs while Playing and Paused
	SetPaused

	SetNone  Set = 0
	SetMenus     = SetMain | SetSettings | SetControls
	SetAll       = SetMenus | SetPlaying | SetPaused
)

func (s Set) String() string {
	if s == SetNone {
		return "None"
	}
	names := [...]string{"Main", "Settings", "Controls", "Playing", "Paused"}
	out := ""
	for i, name := range names {
		if s&(1<<i) == 0 {
			continue
		}
		if out != "" {
			out += "|"
		}
		out += name
	}
	return out
}
