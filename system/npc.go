package system

import (
	"math"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/ironrift/component"
	"github.com/lixenwraith/ironrift/config"
	"github.com/lixenwraith/ironrift/core"
	"github.com/lixenwraith/ironrift/engine"
	"github.com/lixenwraith/ironrift/logging"
	"github.com/lixenwraith/ironrift/parameter"
	"github.com/lixenwraith/ironrift/vmath"
)

// unitSnapshot is a unit's state before any controller mutates it this tick
type unitSnapshot struct {
	entity   core.Entity
	team     component.TeamID
	position mgl64.Vec3
}

// NPCSystem drives AI units: face and fire on the nearest hostile in range, wander otherwise
type NPCSystem struct {
	world *engine.World
	log   zerolog.Logger
	hot   zerolog.Logger

	snapshot []unitSnapshot

	statEngaged *atomic.Int64
}

func NewNPCSystem(world *engine.World) engine.System {
	s := &NPCSystem{world: world}
	s.log = world.Resources.Log.With().Str("system", s.Name()).Logger()
	s.hot = logging.Sampled(s.log)
	s.statEngaged = world.Resources.Status.Ints.Get("npc.engaged")

	s.Init()
	return s
}

func (s *NPCSystem) Init() {
	s.snapshot = s.snapshot[:0]
	s.statEngaged.Store(0)
}

func (s *NPCSystem) Name() string {
	return "npc"
}

func (s *NPCSystem) Priority() int {
	return parameter.PriorityNPC
}

func (s *NPCSystem) Update() {
	s.takeSnapshot()

	engaged := 0
	for _, snap := range s.snapshot {
		npc, ok := s.world.Components.NPC.GetComponent(snap.entity)
		if !ok {
			continue
		}
		if s.think(snap, npc) {
			engaged++
		}
	}
	s.statEngaged.Store(int64(engaged))
}

func (s *NPCSystem) takeSnapshot() {
	s.snapshot = s.snapshot[:0]
	phys := s.world.Resources.Physics.World

	for _, e := range s.world.Components.Unit.GetAllEntities() {
		unit, ok := s.world.Components.Unit.GetComponent(e)
		if !ok {
			continue
		}
		body, ok := s.world.Components.Body.GetComponent(e)
		if !ok {
			s.world.Violation(s.hot.Error().Uint64("entity", uint64(e)), "unit without body")
			continue
		}
		pos, err := phys.Translation(body.Body)
		if err != nil {
			s.world.Violation(s.hot.Error().Err(err).Uint64("entity", uint64(e)), "unit body unknown to physics")
			continue
		}
		s.snapshot = append(s.snapshot, unitSnapshot{entity: e, team: unit.Team, position: pos})
	}
}

// think updates one NPC's orientation, shoot flag and intent; returns true when a target is in range
func (s *NPCSystem) think(self unitSnapshot, npc component.NPCComponent) bool {
	units := s.world.Components.Unit
	rng := s.world.Resources.Rand

	unit, ok := units.GetComponent(self.entity)
	if !ok {
		return false
	}

	target, dist, found := s.nearest(self)
	engaged := found && dist < s.world.Resources.Config.NPC.EngageRadius

	if engaged {
		unit.Yaw = math.Atan2(self.position.X()-target.X(), self.position.Z()-target.Z())
		if rng.OneIn(parameter.NPCShootChance) {
			unit.Shoot = true
		}
	} else if rng.OneIn(parameter.NPCWanderChance) {
		unit.Yaw += vmath.Radians(float64(rng.IntRange(-parameter.NPCWanderDegrees, parameter.NPCWanderDegrees)))
	}

	forward := vmath.HorizontalForward(unit.Yaw, unit.Pitch, unit.Roll)
	if rng.Intn(parameter.NPCMoveChance) != 0 {
		unit.Velocity = forward.Mul(npc.Speed)
	} else {
		unit.Velocity = mgl64.Vec3{}
	}

	units.SetComponent(self.entity, unit)
	return engaged
}

// nearest returns the closest candidate at positive distance
// Coincident units are never candidates
func (s *NPCSystem) nearest(self unitSnapshot) (mgl64.Vec3, float64, bool) {
	teamAware := s.world.Resources.Config.NPC.Targeting != config.TargetingAll

	var (
		best  mgl64.Vec3
		bestD = math.Inf(1)
		found bool
	)
	for _, other := range s.snapshot {
		if other.entity == self.entity {
			continue
		}
		if teamAware && other.team == self.team {
			continue
		}
		d := other.position.Sub(self.position).Len()
		if d <= 0 || d >= bestD {
			continue
		}
		best, bestD, found = other.position, d, true
	}
	return best, bestD, found
}
