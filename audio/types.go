package audio

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/vi-pong/parameter"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundPaddle SoundType = iota // Ball hits a paddle
	SoundWall                    // Ball hits a wall
	SoundScore                   // Point scored
	SoundMenu                    // Menu click or key rebound
	SoundWin                     // Match won
	soundTypeCount
)

// SoundTypes lists every effect in export order
var SoundTypes = [soundTypeCount]SoundType{SoundPaddle, SoundWall, SoundScore, SoundMenu, SoundWin}

var soundNames = [soundTypeCount]string{"paddle", "wall", "score", "menu", "win"}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return fmt.Sprintf("sound(%d)", int(s))
}

// ParseSoundType resolves a sound name as used in config files
func ParseSoundType(name string) (SoundType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown sound: %q", name)
}

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64               // 0.0 to 1.0
	EffectVolumes map[SoundType]float64 // Per-effect multiplier
	SampleRate    int

	// Overrides replaces synthesized effects with WAV or MP3 files
	Overrides map[SoundType]string
}

// DefaultAudioConfig returns the default audio configuration
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundPaddle: 0.6,
			SoundWall:   0.4,
			SoundScore:  0.7,
			SoundMenu:   0.3,
			SoundWin:    0.8,
		},
		SampleRate: parameter.AudioSampleRate,
		Overrides:  make(map[SoundType]string),
	}
}

// Volume returns the effective volume of s
func (c *AudioConfig) Volume(s SoundType) float64 {
	v, ok := c.EffectVolumes[s]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}
