package game

import "testing"

func TestScoreResetAndAddPoint(t *testing.T) {
	var s Score
	s.AddPoint(SideLeft)
	s.AddPoint(SideRight)
	s.AddPoint(SideRight)

	if s.Left() != 1 || s.Right() != 2 {
		t.Fatalf("expected (1,2), got (%d,%d)", s.Left(), s.Right())
	}
	if got := s.DisplayText(); got != "1 - 2" {
		t.Errorf("DisplayText = %q, want %q", got, "1 - 2")
	}

	s.Reset()
	if s.Left() != 0 || s.Right() != 0 {
		t.Errorf("expected (0,0) after reset, got (%d,%d)", s.Left(), s.Right())
	}
}

func TestScoreVersionTracksChanges(t *testing.T) {
	var s Score
	v0 := s.Version()

	s.AddPoint(SideLeft)
	v1 := s.Version()
	if v1 == v0 {
		t.Error("AddPoint must change version")
	}

	if s.Version() != v1 {
		t.Error("reading must not change version")
	}

	s.AddPoint(Side(9))
	if s.Version() != v1 {
		t.Error("unknown side must not mutate ledger")
	}
}

func TestScoreMonotonic(t *testing.T) {
	var s Score
	sides := []Side{SideLeft, SideRight, SideRight, SideLeft, SideLeft}
	prevL, prevR := s.Left(), s.Right()
	for _, side := range sides {
		s.AddPoint(side)
		if s.Left() < prevL || s.Right() < prevR {
			t.Fatalf("ledger decreased: (%d,%d) -> (%d,%d)", prevL, prevR, s.Left(), s.Right())
		}
		prevL, prevR = s.Left(), s.Right()
	}
}

func TestDifficultySpeedMonotonic(t *testing.T) {
	want := map[Difficulty]float64{
		DifficultyEasy:       2.0,
		DifficultyDifficult:  4.0,
		DifficultyImpossible: 6.0,
	}
	prev := 0.0
	for _, d := range Difficulties {
		if d.Speed() != want[d] {
			t.Errorf("%s speed = %v, want %v", d, d.Speed(), want[d])
		}
		if d.Speed() <= prev {
			t.Errorf("%s speed %v not greater than previous %v", d, d.Speed(), prev)
		}
		prev = d.Speed()
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{" Difficult ", DifficultyDifficult, false},
		{"IMPOSSIBLE", DifficultyImpossible, false},
		{"nightmare", DifficultyEasy, true},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDifficulty(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseSpeedUpPolicy(t *testing.T) {
	if p, err := ParseSpeedUpPolicy("paddles"); err != nil || p != SpeedUpPaddles {
		t.Errorf("paddles: got %v, %v", p, err)
	}
	if p, err := ParseSpeedUpPolicy(""); err != nil || p != SpeedUpAll {
		t.Errorf("empty: got %v, %v", p, err)
	}
	if _, err := ParseSpeedUpPolicy("walls"); err == nil {
		t.Error("expected error for unknown policy")
	}
}
