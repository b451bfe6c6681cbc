package pong

import (
	"math"

	"github.com/lixenwraith/vi-pong/game"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

// HumanTranslation is the per-tick paddle move for an input axis of Up minus Down
func HumanTranslation(axis float64) vmath.Vec2 {
	return vmath.V2(0, axis*parameter.PaddleSpeed)
}

// ComputerTranslation moves the paddle straight toward the ball's current height, capped by difficulty
// No prediction: only the present ball position is used
func ComputerTranslation(paddle, ball vmath.Vec2, d game.Difficulty) vmath.Vec2 {
	return vmath.V2ClampLength(vmath.V2(0, ball.Y-paddle.Y), d.Speed())
}

// SpeedUp scales the vertical velocity and caps the magnitude
func SpeedUp(v vmath.Vec2) vmath.Vec2 {
	v.Y *= parameter.BallSpeedIncrease
	return vmath.V2ClampLength(v, parameter.BallMaxSpeed)
}

// HitOffset normalizes the ball height relative to the paddle center to [-1, 1]
func HitOffset(ballY, paddleY float64) float64 {
	return vmath.Clamp((ballY-paddleY)/(parameter.PaddleHeight/2), -1, 1)
}

// DeflectionAngle maps a hit offset to the bounce angle, the paddle edge gives the maximum
func DeflectionAngle(offset float64) float64 {
	return offset * parameter.BallMaxDeflection
}

// PaddleBounce sends the ball away from the paddle with a vertical component from the hit offset
// away is +1 for a bounce to the right, -1 to the left; the result keeps the speed of v
func PaddleBounce(v vmath.Vec2, offset, away float64) vmath.Vec2 {
	speed := vmath.V2Mag(v)
	out := vmath.V2(away*math.Abs(v.X), math.Sin(DeflectionAngle(offset))*speed)
	return vmath.V2Scale(vmath.V2Normalize(out), speed)
}
