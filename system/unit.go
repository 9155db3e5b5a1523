package system

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/ironrift/core"
	"github.com/lixenwraith/ironrift/engine"
	"github.com/lixenwraith/ironrift/event"
	"github.com/lixenwraith/ironrift/logging"
	"github.com/lixenwraith/ironrift/parameter"
	"github.com/lixenwraith/ironrift/vmath"
)

// UnitSystem pushes unit intent to physics bodies and fires bullets
// Per unit: orientation to body, intent velocity over body vertical velocity, shoot consumed
type UnitSystem struct {
	world *engine.World
	log   zerolog.Logger
	hot   zerolog.Logger // Sampled, per-unit per-tick paths

	statShots *atomic.Int64
}

func NewUnitSystem(world *engine.World) engine.System {
	s := &UnitSystem{world: world}
	s.log = world.Resources.Log.With().Str("system", s.Name()).Logger()
	s.hot = logging.Sampled(s.log)
	s.statShots = world.Resources.Status.Ints.Get("unit.shots")

	s.Init()
	return s
}

func (s *UnitSystem) Init() {
	s.statShots.Store(0)
}

func (s *UnitSystem) Name() string {
	return "unit"
}

func (s *UnitSystem) Priority() int {
	return parameter.PriorityUnit
}

func (s *UnitSystem) Update() {
	for _, e := range s.world.Components.Unit.GetAllEntities() {
		s.updateUnit(e)
	}
}

func (s *UnitSystem) updateUnit(e core.Entity) {
	units := s.world.Components.Unit
	phys := s.world.Resources.Physics.World

	unit, ok := units.GetComponent(e)
	if !ok {
		return
	}
	body, ok := s.world.Components.Body.GetComponent(e)
	if !ok {
		s.world.Violation(s.hot.Error().Uint64("entity", uint64(e)), "unit without body")
		return
	}

	pos, err := phys.Translation(body.Body)
	if err != nil {
		s.world.Violation(s.hot.Error().Err(err).Uint64("entity", uint64(e)).Uint64("body", uint64(body.Body)), "unit body unknown to physics")
		return
	}

	// 1. Orientation, translation kept
	rot := vmath.LookQuat(unit.Yaw, unit.Pitch, unit.Roll)
	if err := phys.SetPose(body.Body, pos, rot); err != nil {
		s.world.Violation(s.hot.Error().Err(err).Uint64("entity", uint64(e)), "set pose failed")
		return
	}

	// 2. Horizontal intent replaces, vertical intent adds to gravity-driven velocity
	linvel, err := phys.LinearVelocity(body.Body)
	if err != nil {
		s.world.Violation(s.hot.Error().Err(err).Uint64("entity", uint64(e)), "read velocity failed")
		return
	}
	effective := mgl64.Vec3{unit.Velocity.X(), unit.Velocity.Y() + linvel.Y(), unit.Velocity.Z()}
	if err := phys.SetLinearVelocity(body.Body, effective); err != nil {
		s.world.Violation(s.hot.Error().Err(err).Uint64("entity", uint64(e)), "set velocity failed")
		return
	}

	// 3. Fire, flag cleared on the tick it is observed even if the spawn fails
	if !unit.Shoot {
		return
	}
	unit.Shoot = false
	units.SetComponent(e, unit)

	cfg := s.world.Resources.Config.Bullet
	dir := vmath.LookDir(unit.Yaw, unit.Pitch, unit.Roll)
	muzzle := pos.Add(dir.Mul(parameter.BulletMuzzleOffset))
	if _, err := SpawnBullet(s.world, muzzle, rot, dir.Mul(cfg.Speed), e); err != nil {
		s.log.Error().Err(err).Uint64("entity", uint64(e)).Msg("bullet spawn failed")
		return
	}

	s.statShots.Add(1)
	s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: core.SoundShot})
}
