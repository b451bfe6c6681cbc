package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/game"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/parameter"
)

// Environment variables read after the config file
const (
	EnvDifficulty   = "VI_PONG_DIFFICULTY"
	EnvSpeedUp      = "VI_PONG_SPEED_UP"
	EnvAudioEnabled = "VI_PONG_AUDIO_ENABLED"
	EnvVolume       = "VI_PONG_VOLUME" // 0-100
)

// Config is the start-up configuration
// Precedence: defaults, then the TOML file, then environment, then flags
type Config struct {
	Difficulty string `toml:"difficulty"`
	SpeedUp    string `toml:"speed_up"`
	WinScore   uint32 `toml:"win_score"`

	Physics  PhysicsConfig       `toml:"physics"`
	Input    InputConfig         `toml:"input"`
	Audio    AudioConfig         `toml:"audio"`
	Controls map[string][]string `toml:"controls"`

	// Command-line only
	Path        string `toml:"-"`
	Debug       bool   `toml:"-"`
	Mute        bool   `toml:"-"`
	StatsView   bool   `toml:"-"`
	DumpSession string `toml:"-"`
}

// PhysicsConfig is the [physics] table
type PhysicsConfig struct {
	TickRate   int `toml:"tick_rate"`
	MaxCatchUp int `toml:"max_catchup"`
}

// InputConfig is the [input] table
type InputConfig struct {
	HoldMs   int `toml:"hold_ms"`
	RepeatMs int `toml:"repeat_ms"`
}

// AudioConfig is the [audio] table; sound keys name WAV or MP3 override files
type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
	Paddle  string  `toml:"paddle"`
	Wall    string  `toml:"wall"`
	Score   string  `toml:"score"`
	Menu    string  `toml:"menu"`
	Win     string  `toml:"win"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Difficulty: game.DifficultyEasy.String(),
		SpeedUp:    game.SpeedUpAll.String(),
		Physics: PhysicsConfig{
			TickRate:   parameter.PhysicsTickRate,
			MaxCatchUp: parameter.MaxCatchUpSteps,
		},
		Input: InputConfig{
			HoldMs:   int(parameter.KeyHoldWindow / time.Millisecond),
			RepeatMs: int(parameter.KeyRepeatWindow / time.Millisecond),
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  audio.DefaultAudioConfig().MasterVolume,
		},
	}
}

// Load builds the configuration from command-line args and the environment
func Load(args []string, getenv func(string) string, output io.Writer) (*Config, error) {
	c := Default()

	fs := flag.NewFlagSet("vi-pong", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&c.Path, "config", "", "path to a TOML config file")
	fs.BoolVar(&c.Debug, "debug", false, "log to file, draw sensor zones and the status line")
	difficulty := fs.String("difficulty", "", "easy, difficult or impossible")
	fs.BoolVar(&c.Mute, "mute", false, "start with audio muted")
	fs.BoolVar(&c.StatsView, "statsview", false, "serve runtime statistics on localhost")
	fs.StringVar(&c.DumpSession, "dump-session", "", "write a graphviz dump of the play session to this path on exit")
	tickRate := fs.Int("tick-rate", 0, "physics ticks per second")
	match := fs.Bool("match", false, fmt.Sprintf("end the match when a side reaches %d points, unless win_score is set", parameter.MaxScore))
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if c.Path != "" {
		if err := c.LoadFile(c.Path); err != nil {
			return nil, err
		}
	}
	if err := c.ApplyEnv(getenv); err != nil {
		return nil, err
	}

	// Flags win over the file and environment
	if *difficulty != "" {
		c.Difficulty = *difficulty
	}
	if *tickRate != 0 {
		c.Physics.TickRate = *tickRate
	}
	if *match && c.WinScore == 0 {
		c.WinScore = parameter.MaxScore
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile overlays a TOML file; unknown keys are an error
func (c *Config) LoadFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// ApplyEnv overlays environment variables; getenv is os.Getenv outside tests
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := getenv(EnvDifficulty); v != "" {
		c.Difficulty = v
	}
	if v := getenv(EnvSpeedUp); v != "" {
		c.SpeedUp = v
	}
	if v := getenv(EnvAudioEnabled); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAudioEnabled, err)
		}
		c.Audio.Enabled = enabled
	}
	if v := getenv(EnvVolume); v != "" {
		percent, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvVolume, err)
		}
		c.Audio.Volume = float64(min(max(percent, 0), 100)) / 100
	}
	return nil
}

// Validate checks every value can be resolved
func (c *Config) Validate() error {
	var errs []error
	if _, err := game.ParseDifficulty(c.Difficulty); err != nil {
		errs = append(errs, err)
	}
	if _, err := game.ParseSpeedUpPolicy(c.SpeedUp); err != nil {
		errs = append(errs, err)
	}
	if c.Physics.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("[physics] tick_rate must be positive, got %d", c.Physics.TickRate))
	}
	if c.Physics.MaxCatchUp <= 0 {
		errs = append(errs, fmt.Errorf("[physics] max_catchup must be positive, got %d", c.Physics.MaxCatchUp))
	}
	if c.Input.HoldMs < 0 || c.Input.RepeatMs < 0 {
		errs = append(errs, errors.New("[input] windows must not be negative"))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("[audio] volume must be within 0..1, got %g", c.Audio.Volume))
	}
	if _, err := input.LoadBindings(c.Controls); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// EngineOptions resolves the gameplay settings into context options
func (c *Config) EngineOptions() (engine.Options, error) {
	difficulty, err := game.ParseDifficulty(c.Difficulty)
	if err != nil {
		return engine.Options{}, err
	}
	speedUp, err := game.ParseSpeedUpPolicy(c.SpeedUp)
	if err != nil {
		return engine.Options{}, err
	}
	override, err := input.LoadBindings(c.Controls)
	if err != nil {
		return engine.Options{}, err
	}

	return engine.Options{
		Difficulty:   difficulty,
		SpeedUp:      speedUp,
		WinScore:     c.WinScore,
		Bindings:     input.MergeBindings(input.DefaultBindings(), override),
		HoldWindow:   time.Duration(c.Input.HoldMs) * time.Millisecond,
		RepeatWindow: time.Duration(c.Input.RepeatMs) * time.Millisecond,
	}, nil
}

// AudioSettings resolves the [audio] table
func (c *Config) AudioSettings() *audio.AudioConfig {
	cfg := audio.DefaultAudioConfig()
	cfg.Enabled = c.Audio.Enabled
	cfg.MasterVolume = c.Audio.Volume
	for st, path := range map[audio.SoundType]string{
		audio.SoundPaddle: c.Audio.Paddle,
		audio.SoundWall:   c.Audio.Wall,
		audio.SoundScore:  c.Audio.Score,
		audio.SoundMenu:   c.Audio.Menu,
		audio.SoundWin:    c.Audio.Win,
	} {
		if path != "" {
			cfg.Overrides[st] = path
		}
	}
	return cfg
}
