package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-pong/parameter"
)

// Player triggers sound effects; implemented by SoundManager
type Player interface {
	Play(s SoundType)
}

// SoundManager mixes short effects into the speaker
// Safe for concurrent use; the speaker goroutine reads the mixer under speaker.Lock
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	samples     map[SoundType]*Sample
	initialized bool
	muted       bool

	// statMuted mirrors muted into the metrics registry when set
	statMuted *atomic.Bool
}

// NewSoundManager creates a sound manager; nil cfg takes the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:     cfg,
		mixer:   &beep.Mixer{},
		samples: make(map[SoundType]*Sample),
	}
}

// SetMetric binds the muted flag to a registry metric
func (sm *SoundManager) SetMetric(muted *atomic.Bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.statMuted = muted
	if muted != nil {
		muted.Store(sm.muted)
	}
}

// LoadOverrides decodes the configured override files
// A file that fails to load is logged and the synthesized effect is kept
func (sm *SoundManager) LoadOverrides() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	for st, path := range sm.cfg.Overrides {
		if path == "" {
			continue
		}
		s, err := LoadSample(path)
		if err != nil {
			log.Printf("audio: override %s: %v", st, err)
			continue
		}
		sm.samples[st] = s
		log.Printf("audio: %s overridden by %s (%.2fs)", st, path, s.Duration())
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("audio: speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds; beep has no speaker close, clearing the mixer silences it
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play starts effect s; a no-op when muted, uninitialized or at the voice limit
func (sm *SoundManager) Play(s SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	streamer := sm.streamer(s)
	if streamer == nil {
		return
	}

	speaker.Lock()
	if sm.mixer.Len() < parameter.AudioMaxVoices {
		sm.mixer.Add(streamer)
	}
	speaker.Unlock()
}

// streamer returns the override when loaded, the synthesized effect otherwise
func (sm *SoundManager) streamer(s SoundType) beep.Streamer {
	rate := beep.SampleRate(sm.cfg.SampleRate)
	if sample, ok := sm.samples[s]; ok {
		return newVolume(sample.Streamer(rate), sm.cfg.Volume(s))
	}
	return GetSoundEffect(s, sm.cfg)
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.setMuted(!sm.muted)
	return sm.muted
}

// SetMuted sets the mute state
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.setMuted(muted)
}

func (sm *SoundManager) setMuted(muted bool) {
	sm.muted = muted
	if sm.statMuted != nil {
		sm.statMuted.Store(muted)
	}
	if muted && sm.initialized {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
	}
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}
