package parameter

// System Execution Priorities (lower runs first)
// Fixed loop and frame loop are ordered independently
const (
	// Fixed loop
	PriorityPaddle  = 10 // Queue kinematic translations before the step
	PriorityPhysics = 20
	PriorityBall    = 30 // Collision response on this tick's contacts
	PriorityScoring = 40 // After speed-up, despawns the ball last

	// Frame loop
	PriorityPauseToggle  = 10
	PriorityRemap        = 20 // Before menus so the Controls screen shows the new key
	PriorityMenu         = 30
	PriorityScoreDisplay = 40
	PriorityAudio        = 90 // After every emitter
)
