package game

import "fmt"

// Side identifies a player by board half
type Side uint8

const (
	SideLeft  Side = iota // Human paddle
	SideRight             // Computer paddle
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	}
	return fmt.Sprintf("Side(%d)", uint8(s))
}

// Score is the point ledger for both sides
// Counters only grow during a session; Reset is called once per session start
type Score struct {
	left, right uint32

	// version increments on every mutation, consumers compare against a cached value
	version uint64
}

// Reset zeroes both counters
func (s *Score) Reset() {
	s.left = 0
	s.right = 0
	s.version++
}

// AddPoint credits one point to side
func (s *Score) AddPoint(side Side) {
	switch side {
	case SideLeft:
		s.left++
	case SideRight:
		s.right++
	default:
		return
	}
	s.version++
}

// Left returns the human side's points
func (s *Score) Left() uint32 { return s.left }

// Right returns the computer side's points
func (s *Score) Right() uint32 { return s.right }

// Points returns the counter for side
func (s *Score) Points(side Side) uint32 {
	if side == SideRight {
		return s.right
	}
	return s.left
}

// Version identifies the ledger state for change detection
func (s *Score) Version() uint64 { return s.version }

// DisplayText renders the scoreboard string
func (s *Score) DisplayText() string {
	return fmt.Sprintf("%d - %d", s.left, s.right)
}
