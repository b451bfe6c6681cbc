package pong

import (
	"fmt"

	"github.com/lixenwraith/vi-pong/game"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/physics"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Role tags a play-session body
type Role uint8

const (
	RoleWallTop Role = iota
	RoleWallBottom
	RoleZoneLeft
	RoleZoneRight
	RolePaddlePlayer
	RolePaddleComputer
	RoleBall
)

var roleNames = [...]string{"WallTop", "WallBottom", "ZoneLeft", "ZoneRight", "PaddlePlayer", "PaddleComputer", "Ball"}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return fmt.Sprintf("Role(%d)", uint8(r))
}

// IsZone reports whether the role is a scoring sensor
func (r Role) IsZone() bool {
	return r == RoleZoneLeft || r == RoleZoneRight
}

// IsPaddle reports whether the role is a paddle
func (r Role) IsPaddle() bool {
	return r == RolePaddlePlayer || r == RolePaddleComputer
}

// ScoringSide returns the side credited when the ball enters the zone
// The zone nearer a side scores for the opposing side
func (r Role) ScoringSide() (game.Side, bool) {
	switch r {
	case RoleZoneLeft:
		return game.SideRight, true
	case RoleZoneRight:
		return game.SideLeft, true
	}
	return 0, false
}

// Scoreboard is the session's score text and where it sits in the world
type Scoreboard struct {
	Text string
	Pos  vmath.Vec2
}

// placement is a role and its coordinate along the axis the role varies on
type placement struct {
	role Role
	at   float64
}

// Session owns every body of one play-through; Despawn drops all of them
type Session struct {
	world *physics.World
	roles map[physics.BodyID]Role
	ids   map[Role]physics.BodyID

	Scoreboard Scoreboard
	Viewport   vmath.Vec2

	// shownVersion is the score version last pushed to the scoreboard
	shownVersion uint64
}

// Spawn builds the board for a viewport of the given world size, centered on the origin
func Spawn(world *physics.World, viewport vmath.Vec2) *Session {
	s := &Session{
		world:    world,
		roles:    make(map[physics.BodyID]Role, 8),
		ids:      make(map[Role]physics.BodyID, 8),
		Viewport: viewport,
	}
	w, h := viewport.X, viewport.Y

	// Horizontal walls: below the scoreboard buffer, and at the bottom edge
	for _, wall := range []placement{
		{RoleWallTop, h/2 - parameter.WallThickness - parameter.TopBuffer},
		{RoleWallBottom, -h/2 + parameter.WallThickness},
	} {
		s.add(wall.role, physics.Body{
			Kind:        physics.BodyFixed,
			Shape:       physics.Rect(w, parameter.WallThickness),
			Pos:         vmath.V2(0, wall.at),
			Restitution: 1,
		})
	}

	// Scoring sensors flush with the side edges, spanning the playable height
	sensorHeight := h - parameter.TopBuffer - parameter.WallThickness
	for _, zone := range []placement{
		{RoleZoneLeft, -w/2 + parameter.WallThickness},
		{RoleZoneRight, w/2 - parameter.WallThickness},
	} {
		s.add(zone.role, physics.Body{
			Kind:   physics.BodyFixed,
			Sensor: true,
			Shape:  physics.Rect(2*parameter.WallThickness, sensorHeight),
			Pos:    vmath.V2(zone.at, -parameter.TopBuffer/2),
		})
	}

	for _, paddle := range []placement{
		{RolePaddlePlayer, -w/2 + parameter.PaddleBuffer},
		{RolePaddleComputer, w/2 - parameter.PaddleBuffer},
	} {
		s.add(paddle.role, physics.Body{
			Kind:        physics.BodyKinematic,
			Shape:       physics.Rect(parameter.PaddleWidth, parameter.PaddleHeight),
			Pos:         vmath.V2(paddle.at, -parameter.TopBuffer/2),
			Restitution: 1,
		})
	}

	s.SpawnBall()

	s.Scoreboard = Scoreboard{
		Text: (&game.Score{}).DisplayText(),
		Pos:  vmath.V2(0, h/2-parameter.ScoreboardOffset),
	}
	return s
}

func (s *Session) add(role Role, def physics.Body) physics.BodyID {
	id := s.world.Add(def)
	s.roles[id] = role
	s.ids[role] = id
	return id
}

// SpawnBall adds a ball at the origin with the initial velocity
// Callers remove the previous ball first
func (s *Session) SpawnBall() physics.BodyID {
	return s.add(RoleBall, physics.Body{
		Kind:        physics.BodyDynamic,
		Shape:       physics.Circle(parameter.BallRadius),
		Vel:         vmath.V2(parameter.BallInitialVX, parameter.BallInitialVY),
		Restitution: 1,
		Friction:    0,
	})
}

// RespawnBall destroys the current ball and spawns a fresh one
func (s *Session) RespawnBall() physics.BodyID {
	if id, ok := s.ids[RoleBall]; ok {
		s.world.Remove(id)
		delete(s.roles, id)
		delete(s.ids, RoleBall)
	}
	return s.SpawnBall()
}

// Despawn removes every session body from the world
func (s *Session) Despawn() {
	for id := range s.roles {
		s.world.Remove(id)
	}
	clear(s.roles)
	clear(s.ids)
	s.Scoreboard = Scoreboard{}
}

// Role returns the tag of a body owned by the session
func (s *Session) Role(id physics.BodyID) (Role, bool) {
	r, ok := s.roles[id]
	return r, ok
}

// ID returns the body handle for a role
func (s *Session) ID(role Role) (physics.BodyID, bool) {
	id, ok := s.ids[role]
	return id, ok
}

// Body returns the live body for a role
func (s *Session) Body(role Role) (*physics.Body, bool) {
	id, ok := s.ids[role]
	if !ok {
		return nil, false
	}
	return s.world.Body(id)
}

// MustBody returns the body for a role; a missing singleton is a programming error
func (s *Session) MustBody(role Role) *physics.Body {
	b, ok := s.Body(role)
	if !ok {
		panic(fmt.Sprintf("pong: play session has no %s", role))
	}
	return b
}

// Ball returns the single ball of the session
func (s *Session) Ball() *physics.Body {
	return s.MustBody(RoleBall)
}

// BallCount counts ball bodies owned by the session
func (s *Session) BallCount() int {
	n := 0
	for _, r := range s.roles {
		if r == RoleBall {
			n++
		}
	}
	return n
}

// Len returns the number of bodies owned by the session
func (s *Session) Len() int {
	return len(s.roles)
}
