package system

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/ironrift/core"
	"github.com/lixenwraith/ironrift/engine"
	"github.com/lixenwraith/ironrift/event"
)

// DeathSystem removes entities on despawn requests
// Runs as an event handler only; requests for missing entities are no-ops
type DeathSystem struct {
	world *engine.World
	log   zerolog.Logger

	statDespawned *atomic.Int64
}

func NewDeathSystem(world *engine.World) *DeathSystem {
	s := &DeathSystem{world: world}
	s.log = world.Resources.Log.With().Str("system", "death").Logger()
	s.statDespawned = world.Resources.Status.Ints.Get("death.despawned")
	return s
}

func (s *DeathSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventDespawnRequest,
	}
}

func (s *DeathSystem) HandleEvent(ev event.GameEvent) {
	e, ok := ev.Payload.(core.Entity)
	if !ok {
		return
	}
	s.despawn(e)
}

func (s *DeathSystem) despawn(e core.Entity) {
	if !s.world.Exists(e) {
		return
	}

	if body, ok := s.world.Components.Body.GetComponent(e); ok {
		s.world.Resources.Physics.World.RemoveBody(body.Body)
	}
	if s.world.Resources.Player.Entity == e {
		s.world.Resources.Player.Entity = 0
	}
	s.world.DestroyEntity(e)
	s.statDespawned.Add(1)
}
