package physics

import "github.com/lixenwraith/vi-pong/vmath"

// BodyID is a stable handle into a World, zero is never issued
type BodyID = uint32

// BodyKind selects how the step treats a body
type BodyKind uint8

const (
	// BodyFixed never moves
	BodyFixed BodyKind = iota
	// BodyKinematic moves only by queued per-tick translations, infinite mass
	BodyKinematic
	// BodyDynamic integrates its velocity and bounces off solid bodies
	BodyDynamic
)

func (k BodyKind) String() string {
	switch k {
	case BodyFixed:
		return "Fixed"
	case BodyKinematic:
		return "Kinematic"
	case BodyDynamic:
		return "Dynamic"
	}
	return "Unknown"
}

// ShapeKind discriminates Shape
type ShapeKind uint8

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
)

// Shape is an axis-aligned rectangle (half extents) or a circle (radius), centered on the body position
type Shape struct {
	Kind   ShapeKind
	HalfW  float64
	HalfH  float64
	Radius float64
}

// Rect returns a rectangle shape of full width w and height h
func Rect(w, h float64) Shape {
	return Shape{Kind: ShapeRect, HalfW: w / 2, HalfH: h / 2}
}

// Circle returns a circle shape of radius r
func Circle(r float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: r, HalfW: r, HalfH: r}
}

// Body is a rigid body definition and its live state
type Body struct {
	ID    BodyID
	Kind  BodyKind
	Shape Shape
	// Sensor bodies report contacts but never obstruct
	Sensor bool

	Pos vmath.Vec2
	// Vel is in world units per second, used by dynamic bodies only
	Vel vmath.Vec2

	Restitution float64
	Friction    float64

	// translation is the pending kinematic move applied by the next Step
	translation vmath.Vec2
}

// Solid reports whether the body obstructs others
func (b *Body) Solid() bool {
	return !b.Sensor
}

// Min returns the lower-left corner of the bounding box
func (b *Body) Min() vmath.Vec2 {
	return vmath.V2(b.Pos.X-b.Shape.HalfW, b.Pos.Y-b.Shape.HalfH)
}

// Max returns the upper-right corner of the bounding box
func (b *Body) Max() vmath.Vec2 {
	return vmath.V2(b.Pos.X+b.Shape.HalfW, b.Pos.Y+b.Shape.HalfH)
}
