package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// PhysicsTickRate is the fixed simulation rate in Hz
	PhysicsTickRate = 64

	// MaxCatchUpSteps bounds fixed steps per frame after a stall
	MaxCatchUpSteps = 8

	// MaxFrameDelta caps the measured frame delta after a stall
	MaxFrameDelta = 250 * time.Millisecond

	// EventPollBuffer is the capacity of the terminal event channel
	EventPollBuffer = 128
)

// Input timing
const (
	// KeyHoldWindow is how long a key counts as held after an auto-repeat
	// Terminals report no key release, so holding is inferred from auto-repeat
	// Must exceed the auto-repeat interval
	KeyHoldWindow = 180 * time.Millisecond

	// KeyRepeatWindow is how long a fresh press waits for its first auto-repeat
	// Must exceed the initial auto-repeat delay (X11 defaults to 660ms)
	KeyRepeatWindow = 800 * time.Millisecond
)

// Event queue
const (
	// CollisionQueueSize is the initial capacity of the per-tick collision queue
	CollisionQueueSize = 32
)
