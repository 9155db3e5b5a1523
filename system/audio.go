package system

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/ironrift/core"
	"github.com/lixenwraith/ironrift/engine"
	"github.com/lixenwraith/ironrift/event"
	"github.com/lixenwraith/ironrift/parameter"
)

// AudioSystem plays requested cues, each sound type at most once per tick
type AudioSystem struct {
	world *engine.World
	log   zerolog.Logger

	pending [core.SoundTypeCount]bool
}

func NewAudioSystem(world *engine.World) engine.System {
	s := &AudioSystem{world: world}
	s.log = world.Resources.Log.With().Str("system", s.Name()).Logger()

	s.Init()
	return s
}

func (s *AudioSystem) Init() {
	s.pending = [core.SoundTypeCount]bool{}
}

func (s *AudioSystem) Name() string {
	return "audio"
}

func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSoundRequest,
	}
}

func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.SoundRequestPayload)
	if !ok {
		return
	}
	if p.SoundType < 0 || p.SoundType >= core.SoundTypeCount {
		return
	}
	s.pending[p.SoundType] = true
}

func (s *AudioSystem) Update() {
	player := s.world.Resources.Audio.Player
	for st, want := range s.pending {
		if !want {
			continue
		}
		s.pending[st] = false
		if player == nil {
			continue
		}
		if !player.Play(core.SoundType(st)) {
			s.log.Trace().Stringer("sound", core.SoundType(st)).Msg("cue dropped")
		}
	}
}
