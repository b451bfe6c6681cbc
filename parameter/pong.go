package parameter

import "math"

// Board layout, in world units
const (
	WallThickness = 10.0

	// TopBuffer reserves space above the top wall for the scoreboard
	TopBuffer = 100.0

	// ScoreboardOffset is the scoreboard distance below the top edge
	ScoreboardOffset = 50.0
)

// Paddle
const (
	PaddleWidth  = 10.0
	PaddleHeight = 100.0

	// PaddleBuffer is the horizontal inset from the screen edge
	PaddleBuffer = 40.0

	// PaddleSpeed is the human paddle translation per physics tick
	PaddleSpeed = 6.0
)

// Ball
const (
	BallRadius = 10.0

	// BallInitialVX and BallInitialVY are world units per second
	BallInitialVX = 200.0
	BallInitialVY = 100.0

	// BallSpeedIncrease multiplies the vertical velocity on every collision start
	BallSpeedIncrease = 1.1

	// BallMaxSpeed caps velocity magnitude after any speed increase
	BallMaxSpeed = 1000.0

	// BallMaxDeflection is the bounce angle for a hit on the paddle edge
	BallMaxDeflection = math.Pi / 2
)

// Computer paddle speed caps per difficulty, world units per physics tick
const (
	ComputerSpeedEasy       = 2.0
	ComputerSpeedDifficult  = 4.0
	ComputerSpeedImpossible = 6.0
)

// Match
const (
	// MaxScore is the suggested win score; matches are endless unless configured
	MaxScore = 5
)

// Terminal projection, world units per terminal cell
const (
	CellWidth  = 10.0
	CellHeight = 20.0

	// MinViewportCols and MinViewportRows keep the board playable in tiny terminals
	MinViewportCols = 40
	MinViewportRows = 16
)
