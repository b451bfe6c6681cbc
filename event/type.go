package event

import "fmt"

// EventType represents the type of game event
type EventType int

const (
	EventNone EventType = iota

	// === Session Event ===

	// EventSessionStarted signals a play session was spawned
	// Trigger: Playing OnEnter hook
	// Consumer: AudioSystem, logging | Payload: nil
	EventSessionStarted

	// EventSessionEnded signals a play session was torn down
	// Trigger: Playing OnExit hook
	// Consumer: AudioSystem, logging | Payload: nil
	EventSessionEnded

	// === Gameplay Event ===

	// EventPaddleHit signals the ball started touching a paddle
	// Trigger: BallSystem paddle bounce
	// Consumer: AudioSystem | Payload: *PaddleHitPayload
	EventPaddleHit

	// EventWallHit signals the ball started touching a boundary wall
	// Trigger: BallSystem speed-up pass
	// Consumer: AudioSystem | Payload: nil
	EventWallHit

	// EventPointScored signals a ball entered a scoring zone
	// Trigger: ScoringSystem
	// Consumer: AudioSystem, ScoreDisplaySystem | Payload: *PointScoredPayload
	EventPointScored

	// EventBallSpawned signals a fresh ball at the initial velocity
	// Trigger: Session setup, ScoringSystem respawn
	// Consumer: metrics | Payload: nil
	EventBallSpawned

	// EventMatchWon signals a side reached the configured win score
	// Trigger: ScoringSystem
	// Consumer: AudioSystem | Payload: *PointScoredPayload
	EventMatchWon

	// === Menu Event ===

	// EventMenuClick signals a menu widget was activated
	// Trigger: menu.Dispatch
	// Consumer: AudioSystem | Payload: nil
	EventMenuClick

	// EventKeyRebound signals a remap request was committed
	// Trigger: RemapSystem
	// Consumer: AudioSystem, logging | Payload: *KeyReboundPayload
	EventKeyRebound
)

var eventNames = map[EventType]string{
	EventNone:           "None",
	EventSessionStarted: "SessionStarted",
	EventSessionEnded:   "SessionEnded",
	EventPaddleHit:      "PaddleHit",
	EventWallHit:        "WallHit",
	EventPointScored:    "PointScored",
	EventBallSpawned:    "BallSpawned",
	EventMatchWon:       "MatchWon",
	EventMenuClick:      "MenuClick",
	EventKeyRebound:     "KeyRebound",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// GameEvent is a typed notification with optional payload, stamped with the frame it was emitted in
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
