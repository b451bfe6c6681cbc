package event

import "github.com/lixenwraith/vi-pong/vmath"

// CollisionPhase marks the edge of a contact
type CollisionPhase uint8

const (
	CollisionStarted CollisionPhase = iota
	CollisionStopped
)

func (p CollisionPhase) String() string {
	if p == CollisionStarted {
		return "Started"
	}
	return "Stopped"
}

// Collision is a contact edge between two physics bodies, produced by the physics step
// A and B are body handles with A < B
type Collision struct {
	A, B  uint32
	Phase CollisionPhase
	// Sensor is set when either participant is a sensor
	Sensor bool
	// ImpactVel is the velocity of the dynamic participant before contact resolution
	ImpactVel vmath.Vec2
}

// Involves reports whether id is one of the participants
func (c Collision) Involves(id uint32) bool {
	return c.A == id || c.B == id
}

// Other returns the participant that is not id
func (c Collision) Other(id uint32) uint32 {
	if c.A == id {
		return c.B
	}
	return c.A
}

// CollisionQueue carries contact edges from the physics step to gameplay systems
type CollisionQueue = Queue[Collision]

// NewCollisionQueue creates an empty collision queue
func NewCollisionQueue(capacity int) *CollisionQueue {
	return NewQueue[Collision](capacity)
}
