package physics

import (
	"math"

	"github.com/lixenwraith/vi-pong/vmath"
)

// contactSkin is the separation under which resting bodies still count as touching
const contactSkin = 1e-6

// penetration returns the vector that moves a out of b and the overlap depth
// depth < 0 means separated by -depth
func penetration(a, b *Body) (normal vmath.Vec2, depth float64) {
	switch {
	case a.Shape.Kind == ShapeRect && b.Shape.Kind == ShapeRect:
		return rectRect(a, b)
	case a.Shape.Kind == ShapeCircle && b.Shape.Kind == ShapeRect:
		return circleRect(a.Pos, a.Shape.Radius, b)
	case a.Shape.Kind == ShapeRect && b.Shape.Kind == ShapeCircle:
		n, d := circleRect(b.Pos, b.Shape.Radius, a)
		return vmath.V2Scale(n, -1), d
	default:
		return circleCircle(a, b)
	}
}

func rectRect(a, b *Body) (vmath.Vec2, float64) {
	dx := a.Pos.X - b.Pos.X
	dy := a.Pos.Y - b.Pos.Y
	ox := a.Shape.HalfW + b.Shape.HalfW - math.Abs(dx)
	oy := a.Shape.HalfH + b.Shape.HalfH - math.Abs(dy)

	// Minimum axis; negative depth means separated
	if ox < oy {
		return vmath.V2(signOrOne(dx), 0), ox
	}
	return vmath.V2(0, signOrOne(dy)), oy
}

func circleRect(center vmath.Vec2, r float64, rect *Body) (vmath.Vec2, float64) {
	min, max := rect.Min(), rect.Max()
	closest := vmath.V2(
		vmath.Clamp(center.X, min.X, max.X),
		vmath.Clamp(center.Y, min.Y, max.Y),
	)
	delta := vmath.V2Sub(center, closest)
	dist := vmath.V2Mag(delta)

	if dist > 0 {
		return vmath.V2Scale(delta, 1/dist), r - dist
	}

	// Center inside the rectangle: push out along the shallowest face
	left := center.X - min.X
	right := max.X - center.X
	down := center.Y - min.Y
	up := max.Y - center.Y
	n, d := vmath.V2(-1, 0), left
	if right < d {
		n, d = vmath.V2(1, 0), right
	}
	if down < d {
		n, d = vmath.V2(0, -1), down
	}
	if up < d {
		n, d = vmath.V2(0, 1), up
	}
	return n, r + d
}

func circleCircle(a, b *Body) (vmath.Vec2, float64) {
	delta := vmath.V2Sub(a.Pos, b.Pos)
	dist := vmath.V2Mag(delta)
	sum := a.Shape.Radius + b.Shape.Radius
	if dist == 0 {
		return vmath.V2(0, 1), sum
	}
	return vmath.V2Scale(delta, 1/dist), sum - dist
}

func signOrOne(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
