package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/game"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/parameter"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vi-pong.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func noEnv(string) string { return "" }

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	opts, err := c.EngineOptions()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Difficulty != game.DifficultyEasy || opts.SpeedUp != game.SpeedUpAll || opts.WinScore != 0 {
		t.Errorf("unexpected defaults %+v", opts)
	}
	if opts.HoldWindow != 180*time.Millisecond || opts.RepeatWindow != 800*time.Millisecond {
		t.Errorf("input windows = %v / %v", opts.HoldWindow, opts.RepeatWindow)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
difficulty = "impossible"
speed_up = "paddles"
win_score = 5

[physics]
tick_rate = 120
max_catchup = 4

[input]
hold_ms = 150
repeat_ms = 500

[audio]
enabled = false
volume = 0.25
paddle = "sounds/paddle.wav"
score = "sounds/score.mp3"

[controls]
up = ["k", "up"]
menu = []
`)

	c, err := Load([]string{"-config", path}, noEnv, io.Discard)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Physics.TickRate != 120 || c.Physics.MaxCatchUp != 4 {
		t.Errorf("physics = %+v", c.Physics)
	}

	opts, err := c.EngineOptions()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Difficulty != game.DifficultyImpossible || opts.SpeedUp != game.SpeedUpPaddles || opts.WinScore != 5 {
		t.Errorf("options = %+v", opts)
	}
	if opts.HoldWindow != 150*time.Millisecond {
		t.Errorf("hold = %v", opts.HoldWindow)
	}

	up := opts.Bindings.Keys(input.ActionUp)
	if len(up) != 2 || up[0] != input.RuneKey('k') || up[1] != input.SpecialKey(tcell.KeyUp) {
		t.Errorf("up = %v", up)
	}
	if len(opts.Bindings.Keys(input.ActionMenu)) != 0 {
		t.Error("empty list must unbind menu")
	}
	if len(opts.Bindings.Keys(input.ActionDown)) != 2 {
		t.Error("unlisted action must keep defaults")
	}

	ac := c.AudioSettings()
	if ac.Enabled || ac.MasterVolume != 0.25 {
		t.Errorf("audio = %+v", ac)
	}
	if ac.Overrides[audio.SoundPaddle] != "sounds/paddle.wav" || ac.Overrides[audio.SoundScore] != "sounds/score.mp3" {
		t.Errorf("overrides = %v", ac.Overrides)
	}
	if _, ok := ac.Overrides[audio.SoundWall]; ok {
		t.Error("unset override must be absent")
	}
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown key", "speed = 3\n", "unknown keys"},
		{"syntax", "difficulty = \n", "config"},
		{"bad difficulty", `difficulty = "nightmare"`, "difficulty"},
		{"bad policy", `speed_up = "walls"`, "speed-up"},
		{"bad action", "[controls]\njump = [\"x\"]\n", "action"},
		{"bad key", "[controls]\nup = [\"hyperkey\"]\n", "key"},
		{"bad tick rate", "[physics]\ntick_rate = 0\n", "tick_rate"},
		{"bad volume", "[audio]\nvolume = 2.0\n", "volume"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]string{"-config", writeConfig(t, tt.body)}, noEnv, io.Discard)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestPrecedence(t *testing.T) {
	path := writeConfig(t, `
difficulty = "difficult"
[audio]
volume = 0.9
`)
	env := envMap(map[string]string{
		EnvDifficulty:   "impossible",
		EnvVolume:       "40",
		EnvAudioEnabled: "false",
	})

	c, err := Load([]string{"-config", path}, env, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if c.Difficulty != "impossible" {
		t.Errorf("env must override file, difficulty = %q", c.Difficulty)
	}
	if c.Audio.Volume != 0.4 || c.Audio.Enabled {
		t.Errorf("audio = %+v", c.Audio)
	}

	c, err = Load([]string{"-config", path, "-difficulty", "easy", "-tick-rate", "30", "-mute", "-debug"}, env, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if c.Difficulty != "easy" || c.Physics.TickRate != 30 || !c.Mute || !c.Debug {
		t.Errorf("flags must win: %+v", c)
	}
}

func TestMatchFlag(t *testing.T) {
	c, err := Load([]string{"-match"}, noEnv, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if c.WinScore != parameter.MaxScore {
		t.Errorf("WinScore = %d, want %d", c.WinScore, parameter.MaxScore)
	}

	path := writeConfig(t, "win_score = 11\n")
	c, err = Load([]string{"-config", path, "-match"}, noEnv, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if c.WinScore != 11 {
		t.Errorf("file win_score must win over -match, got %d", c.WinScore)
	}
}

func TestEnvErrors(t *testing.T) {
	for _, env := range []map[string]string{
		{EnvAudioEnabled: "maybe"},
		{EnvVolume: "loud"},
	} {
		if _, err := Load(nil, envMap(env), io.Discard); err == nil {
			t.Errorf("expected error for %v", env)
		}
	}
}

func TestVolumeEnvClamped(t *testing.T) {
	c, err := Load(nil, envMap(map[string]string{EnvVolume: "250"}), io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if c.Audio.Volume != 1 {
		t.Errorf("volume = %v, want 1", c.Audio.Volume)
	}
}

func TestUnknownFlag(t *testing.T) {
	if _, err := Load([]string{"-fullscreen"}, noEnv, io.Discard); err == nil {
		t.Error("expected error for unknown flag")
	}
}
