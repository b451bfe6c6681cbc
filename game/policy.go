package game

import (
	"fmt"
	"strings"
)

// SpeedUpPolicy selects which ball collisions accelerate the ball
type SpeedUpPolicy uint8

const (
	// SpeedUpAll accelerates on every collision start, walls included
	SpeedUpAll SpeedUpPolicy = iota
	// SpeedUpPaddles accelerates only on paddle hits
	SpeedUpPaddles
)

// SpeedUpPolicies lists all policies in menu order
var SpeedUpPolicies = [...]SpeedUpPolicy{SpeedUpAll, SpeedUpPaddles}

func (p SpeedUpPolicy) String() string {
	switch p {
	case SpeedUpAll:
		return "All"
	case SpeedUpPaddles:
		return "Paddles"
	}
	return fmt.Sprintf("SpeedUpPolicy(%d)", uint8(p))
}

// ParseSpeedUpPolicy accepts "all" and "paddles"
func ParseSpeedUpPolicy(s string) (SpeedUpPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "":
		return SpeedUpAll, nil
	case "paddles", "paddle":
		return SpeedUpPaddles, nil
	}
	return SpeedUpAll, fmt.Errorf("unknown speed-up policy: %q", s)
}
