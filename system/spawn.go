package system

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/ironrift/engine"
	"github.com/lixenwraith/ironrift/parameter"
)

// SpawnSystem drains the spawn queue, one NPC unit per request
type SpawnSystem struct {
	world *engine.World
	log   zerolog.Logger

	statUnits  *atomic.Int64
	statFailed *atomic.Int64
}

func NewSpawnSystem(world *engine.World) engine.System {
	s := &SpawnSystem{world: world}
	s.log = world.Resources.Log.With().Str("system", s.Name()).Logger()
	s.statUnits = world.Resources.Status.Ints.Get("spawn.units")
	s.statFailed = world.Resources.Status.Ints.Get("spawn.failed")

	s.Init()
	return s
}

func (s *SpawnSystem) Init() {
	s.statUnits.Store(0)
	s.statFailed.Store(0)
}

func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

func (s *SpawnSystem) Update() {
	requests := s.world.Resources.Spawn.Drain()
	if len(requests) == 0 {
		return
	}

	for _, req := range requests {
		if _, err := SpawnNPC(s.world, req.Position, req.Team); err != nil {
			s.statFailed.Add(1)
			s.log.Error().Err(err).Stringer("team", req.Team).Msg("npc spawn failed")
			continue
		}
		s.statUnits.Add(1)
	}
	s.log.Debug().Int("count", len(requests)).Msg("spawn queue drained")
}
