package pong

import (
	"math"
	"testing"

	"github.com/lixenwraith/vi-pong/game"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

const eps = 1e-9

func TestComputerTranslationScenario(t *testing.T) {
	got := ComputerTranslation(vmath.V2(300, 0), vmath.V2(300, 50), game.DifficultyDifficult)
	if math.Abs(got.X) > eps || math.Abs(got.Y-4) > eps {
		t.Errorf("translation = %v, want (0, 4)", got)
	}
}

func TestComputerTranslationNeverExceedsCap(t *testing.T) {
	for _, d := range game.Difficulties {
		for py := -300.0; py <= 300; py += 37.5 {
			for by := -300.0; by <= 300; by += 23.25 {
				got := ComputerTranslation(vmath.V2(360, py), vmath.V2(-100, by), d)
				if mag := vmath.V2Mag(got); mag > d.Speed()+eps {
					t.Fatalf("%s: |%v| = %v exceeds cap %v", d, got, mag, d.Speed())
				}
				if got.X != 0 {
					t.Fatalf("computer paddle must move vertically only, got %v", got)
				}
			}
		}
	}

	// Small gaps are closed exactly, no overshoot
	got := ComputerTranslation(vmath.V2(0, 10), vmath.V2(0, 11.5), game.DifficultyImpossible)
	if math.Abs(got.Y-1.5) > eps {
		t.Errorf("translation = %v, want (0, 1.5)", got)
	}
}

func TestHumanTranslation(t *testing.T) {
	tests := []struct {
		axis float64
		want float64
	}{
		{1, parameter.PaddleSpeed},
		{-1, -parameter.PaddleSpeed},
		{0, 0},
	}
	for _, tt := range tests {
		if got := HumanTranslation(tt.axis); got.Y != tt.want || got.X != 0 {
			t.Errorf("HumanTranslation(%v) = %v, want (0, %v)", tt.axis, got, tt.want)
		}
	}
}

func TestSpeedUpNeverExceedsMax(t *testing.T) {
	for vx := -1200.0; vx <= 1200; vx += 150 {
		for vy := -1200.0; vy <= 1200; vy += 75 {
			v := vmath.V2(vx, vy)
			got := SpeedUp(v)
			if mag := vmath.V2Mag(got); mag > parameter.BallMaxSpeed+eps {
				t.Fatalf("SpeedUp(%v) speed %v exceeds max", v, mag)
			}
		}
	}

	got := SpeedUp(vmath.V2(200, 100))
	if math.Abs(got.X-200) > eps || math.Abs(got.Y-110) > eps {
		t.Errorf("SpeedUp((200,100)) = %v, want (200, 110)", got)
	}
}

func TestRepeatedSpeedUpConverges(t *testing.T) {
	v := vmath.V2(200, 100)
	for i := 0; i < 200; i++ {
		v = SpeedUp(v)
	}
	if mag := vmath.V2Mag(v); mag > parameter.BallMaxSpeed+eps {
		t.Errorf("speed %v after repeated bounces exceeds max", mag)
	}
}

func TestPaddleBounceCenterIsHorizontal(t *testing.T) {
	v := vmath.V2(300, 120)
	got := PaddleBounce(v, HitOffset(-50, -50), -1)
	if math.Abs(got.Y) > eps {
		t.Errorf("center hit vy = %v, want 0", got.Y)
	}
	if got.X >= 0 {
		t.Errorf("expected leftward bounce, got %v", got)
	}
	if math.Abs(vmath.V2Mag(got)-vmath.V2Mag(v)) > eps {
		t.Errorf("speed changed: %v -> %v", vmath.V2Mag(v), vmath.V2Mag(got))
	}
}

func TestPaddleBounceEdgeUsesMaxDeflection(t *testing.T) {
	offset := HitOffset(parameter.PaddleHeight/2, 0)
	if offset != 1 {
		t.Fatalf("edge offset = %v, want 1", offset)
	}
	if angle := DeflectionAngle(offset); math.Abs(angle-math.Pi/2) > eps {
		t.Errorf("edge deflection = %v, want 90 degrees", angle)
	}
	if angle := DeflectionAngle(-1); math.Abs(angle+math.Pi/2) > eps {
		t.Errorf("bottom edge deflection = %v, want -90 degrees", angle)
	}

	// Beyond the edge clamps
	if HitOffset(200, 0) != 1 || HitOffset(-200, 0) != -1 {
		t.Error("offset must clamp to [-1, 1]")
	}

	v := vmath.V2(-400, 0)
	got := PaddleBounce(v, 1, 1)
	if got.Y <= 0 || got.X <= 0 {
		t.Errorf("top edge bounce = %v, want up and to the right", got)
	}
	if math.Abs(vmath.V2Mag(got)-400) > eps {
		t.Errorf("speed = %v, want 400", vmath.V2Mag(got))
	}
	// Steeper than a center hit: vertical share dominates
	if math.Abs(got.Y) <= math.Abs(got.X) {
		t.Errorf("edge hit should be steep, got %v", got)
	}
}

func TestScoringSideMapping(t *testing.T) {
	if side, ok := RoleZoneLeft.ScoringSide(); !ok || side != game.SideRight {
		t.Errorf("Left zone credits %v, want Right", side)
	}
	if side, ok := RoleZoneRight.ScoringSide(); !ok || side != game.SideLeft {
		t.Errorf("Right zone credits %v, want Left", side)
	}
	if _, ok := RoleWallTop.ScoringSide(); ok {
		t.Error("walls never score")
	}
}
