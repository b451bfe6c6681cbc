package audio

import (
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/session"
)

// eventSounds maps game events to the effect they trigger
var eventSounds = map[event.EventType]SoundType{
	event.EventPaddleHit:   SoundPaddle,
	event.EventWallHit:     SoundWall,
	event.EventPointScored: SoundScore,
	event.EventMenuClick:   SoundMenu,
	event.EventKeyRebound:  SoundMenu,
	event.EventMatchWon:    SoundWin,
}

// AudioSystem plays effects for the frame's game events
type AudioSystem struct {
	player Player
}

// NewAudioSystem creates the system; a nil player disables it
func NewAudioSystem(player Player) *AudioSystem {
	return &AudioSystem{player: player}
}

func (s *AudioSystem) Name() string      { return "audio" }
func (s *AudioSystem) Priority() int     { return parameter.PriorityAudio }
func (s *AudioSystem) Sets() session.Set { return session.SetAll }

func (s *AudioSystem) Update(ctx *engine.Context) {
	if s.player == nil {
		return
	}
	// One trigger per effect per frame; catch-up ticks can repeat an event
	var played [soundTypeCount]bool
	for _, ev := range ctx.Events.Events() {
		st, ok := eventSounds[ev.Type]
		if !ok || played[st] {
			continue
		}
		played[st] = true
		s.player.Play(st)
	}
}
