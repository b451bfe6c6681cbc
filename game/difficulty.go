package game

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/vi-pong/parameter"
)

// Difficulty selects how fast the computer paddle may chase the ball
type Difficulty uint8

const (
	DifficultyEasy Difficulty = iota
	DifficultyDifficult
	DifficultyImpossible
)

// Difficulties lists all levels in menu order
var Difficulties = [...]Difficulty{DifficultyEasy, DifficultyDifficult, DifficultyImpossible}

// Speed returns the computer paddle translation cap per physics tick
func (d Difficulty) Speed() float64 {
	switch d {
	case DifficultyDifficult:
		return parameter.ComputerSpeedDifficult
	case DifficultyImpossible:
		return parameter.ComputerSpeedImpossible
	default:
		return parameter.ComputerSpeedEasy
	}
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyDifficult:
		return "Difficult"
	case DifficultyImpossible:
		return "Impossible"
	}
	return fmt.Sprintf("Difficulty(%d)", uint8(d))
}

// ParseDifficulty accepts level names case-insensitively
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "difficult", "hard":
		return DifficultyDifficult, nil
	case "impossible":
		return DifficultyImpossible, nil
	}
	return DifficultyEasy, fmt.Errorf("unknown difficulty: %q", s)
}
