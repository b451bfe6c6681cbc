package audio

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/parameter"
)

// TestOscillatorBounds verifies every wave stays in [-1, 1] and stops at its duration
func TestOscillatorBounds(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveTriangle, WaveNoise} {
		osc := NewOscillator(440, 10*time.Millisecond, wave, rate)
		s := Render(osc, rate)
		if len(s.Frames) != rate.N(10*time.Millisecond) {
			t.Errorf("wave %d: %d frames, want %d", wave, len(s.Frames), rate.N(10*time.Millisecond))
		}
		for i, f := range s.Frames {
			if f[0] < -1 || f[0] > 1 || f[0] != f[1] {
				t.Fatalf("wave %d frame %d out of range: %v", wave, i, f)
			}
		}
	}
}

// TestSweepRisesInPitch counts zero crossings at both ends of a rising sweep
func TestSweepRisesInPitch(t *testing.T) {
	rate := beep.SampleRate(8000)
	s := Render(NewSweep(100, 400, time.Second, WaveSine, rate), rate)

	crossings := func(frames [][2]float64) int {
		n := 0
		for i := 1; i < len(frames); i++ {
			if (frames[i-1][0] < 0) != (frames[i][0] < 0) {
				n++
			}
		}
		return n
	}
	tenth := len(s.Frames) / 10
	head := crossings(s.Frames[:tenth])
	tail := crossings(s.Frames[len(s.Frames)-tenth:])
	if tail <= 2*head {
		t.Errorf("crossings head=%d tail=%d, want tail well above head", head, tail)
	}
}

// TestEnvelopeShape verifies silence at the start and the end of the release
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate)
	s := Render(NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate), rate)

	if len(s.Frames) != 100 {
		t.Fatalf("frames = %d, want 100", len(s.Frames))
	}
	if s.Frames[0][0] != 0 {
		t.Errorf("attack must start silent, got %v", s.Frames[0][0])
	}
	if s.Frames[50][0] != 1 {
		t.Errorf("sustain must be full, got %v", s.Frames[50][0])
	}
	if v := s.Frames[99][0]; v > 0.11 {
		t.Errorf("release tail too loud: %v", v)
	}
}

// TestEffectDurations verifies each synthesized effect is finite with the expected length
func TestEffectDurations(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	tests := []struct {
		sound SoundType
		want  time.Duration
	}{
		{SoundPaddle, parameter.PaddleSoundDuration},
		{SoundWall, parameter.WallSoundDuration},
		{SoundScore, parameter.ScoreSoundNote1Duration + parameter.ScoreSoundNote2Duration},
		{SoundMenu, parameter.MenuSoundDuration},
		{SoundWin, parameter.WinSoundDuration},
	}
	for _, tt := range tests {
		t.Run(tt.sound.String(), func(t *testing.T) {
			s := GetSoundEffect(tt.sound, cfg)
			if s == nil {
				t.Fatal("no effect")
			}
			got := Render(s, rate)
			want := rate.N(tt.want)
			if diff := len(got.Frames) - want; diff < -1 || diff > 1 {
				t.Errorf("frames = %d, want %d", len(got.Frames), want)
			}
		})
	}

	if GetSoundEffect(soundTypeCount, cfg) != nil {
		t.Error("unknown sound must have no effect")
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0
	s := Render(CreatePaddleSound(cfg), beep.SampleRate(cfg.SampleRate))
	for _, f := range s.Frames {
		if f[0] != 0 || f[1] != 0 {
			t.Fatalf("expected silence, got %v", f)
		}
	}
}

func TestWAVRoundTrip(t *testing.T) {
	rate := beep.SampleRate(8000)
	in := &Sample{Rate: rate, Frames: [][2]float64{{0, 0}, {0.5, -0.5}, {1, -1}, {-0.25, 0.25}}}

	path := filepath.Join(t.TempDir(), "blip.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := EncodeWAV(f, in); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	out, err := LoadSample(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.Rate != rate || len(out.Frames) != len(in.Frames) {
		t.Fatalf("got rate %d with %d frames", out.Rate, len(out.Frames))
	}
	for i := range in.Frames {
		for c := 0; c < 2; c++ {
			if math.Abs(out.Frames[i][c]-in.Frames[i][c]) > 1e-3 {
				t.Errorf("frame %d channel %d = %v, want %v", i, c, out.Frames[i][c], in.Frames[i][c])
			}
		}
	}
}

func TestLoadSampleRejectsUnknown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sound.ogg")
	if err := os.WriteFile(path, []byte("OggS"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSample(path); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if _, err := LoadSample(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSampleStreamerResamples(t *testing.T) {
	s := &Sample{Rate: 8000, Frames: make([][2]float64, 800)}
	same := Render(s.Streamer(8000), 8000)
	if len(same.Frames) != 800 {
		t.Errorf("frames = %d, want 800", len(same.Frames))
	}
	up := Render(s.Streamer(16000), 16000)
	if d := len(up.Frames) - 1600; d < -20 || d > 20 {
		t.Errorf("resampled frames = %d, want about 1600", len(up.Frames))
	}
}

func TestParseSoundType(t *testing.T) {
	for _, st := range SoundTypes {
		got, err := ParseSoundType(st.String())
		if err != nil || got != st {
			t.Errorf("ParseSoundType(%q) = %v, %v", st.String(), got, err)
		}
	}
	if _, err := ParseSoundType("explosion"); err == nil {
		t.Error("expected error for unknown sound")
	}
}

// TestSoundManagerGracefulDegradation verifies operations are safe without a speaker
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("sound operations panicked without initialization: %v", r)
		}
	}()

	for _, st := range SoundTypes {
		sm.Play(st)
	}
	if !sm.ToggleMute() || !sm.IsMuted() {
		t.Error("toggle must mute")
	}
	sm.SetMuted(false)
	if sm.IsMuted() {
		t.Error("SetMuted(false) ignored")
	}
	sm.Cleanup()
}

func TestDisabledConfigSkipsSpeaker(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)
	if err := sm.Initialize(); err != nil {
		t.Fatalf("disabled audio must not error: %v", err)
	}
	sm.Play(SoundPaddle)
	sm.Cleanup()
}

type recordingPlayer struct {
	played []SoundType
}

func (p *recordingPlayer) Play(s SoundType) { p.played = append(p.played, s) }

func TestAudioSystemMapsEvents(t *testing.T) {
	ctx := engine.NewContext(engine.Options{})
	p := &recordingPlayer{}
	sys := NewAudioSystem(p)

	ctx.Emit(event.EventPaddleHit, nil)
	ctx.Emit(event.EventPaddleHit, nil)
	ctx.Emit(event.EventSessionStarted, nil)
	ctx.Emit(event.EventPointScored, nil)
	ctx.Emit(event.EventMenuClick, nil)
	ctx.Emit(event.EventKeyRebound, nil)
	sys.Update(ctx)

	want := []SoundType{SoundPaddle, SoundScore, SoundMenu}
	if len(p.played) != len(want) {
		t.Fatalf("played %v, want %v", p.played, want)
	}
	for i := range want {
		if p.played[i] != want[i] {
			t.Errorf("played[%d] = %s, want %s", i, p.played[i], want[i])
		}
	}

	// Nil player is a no-op
	NewAudioSystem(nil).Update(ctx)
}
