package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100
	AudioChannels   = 2
	AudioBitDepth   = 16

	// AudioBufferDuration is the speaker buffer, trading latency for underrun safety
	AudioBufferDuration = 100 * time.Millisecond

	// AudioResampleQuality is the beep resampler quality for sound overrides
	AudioResampleQuality = 4

	// AudioMaxVoices caps concurrently mixed effects; extra triggers are dropped
	AudioMaxVoices = 8
)

// Paddle blip
const (
	PaddleSoundFreq     = 440.0
	PaddleSoundDuration = 60 * time.Millisecond
	PaddleSoundAttack   = 2 * time.Millisecond
	PaddleSoundRelease  = 30 * time.Millisecond
)

// Wall blip, an octave below the paddle
const (
	WallSoundFreq     = 220.0
	WallSoundDuration = 50 * time.Millisecond
	WallSoundAttack   = 2 * time.Millisecond
	WallSoundRelease  = 25 * time.Millisecond
)

// Score chime
const (
	ScoreSoundNote1Duration = 80 * time.Millisecond
	ScoreSoundNote2Duration = 280 * time.Millisecond
	ScoreSoundAttack        = 5 * time.Millisecond
	ScoreSoundNote1Release  = 40 * time.Millisecond
	ScoreSoundNote2Release  = 200 * time.Millisecond
)

// Menu click
const (
	MenuSoundDuration = 30 * time.Millisecond
	MenuSoundAttack   = 1 * time.Millisecond
	MenuSoundRelease  = 20 * time.Millisecond
)

// Match won bell
const (
	WinSoundDuration           = 600 * time.Millisecond
	WinSoundAttack             = 5 * time.Millisecond
	WinSoundFundamentalRelease = 550 * time.Millisecond
	WinSoundOvertoneRelease    = 200 * time.Millisecond
)
