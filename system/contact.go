package system

import (
	"errors"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/ironrift/component"
	"github.com/lixenwraith/ironrift/core"
	"github.com/lixenwraith/ironrift/engine"
	"github.com/lixenwraith/ironrift/event"
	"github.com/lixenwraith/ironrift/parameter"
	"github.com/lixenwraith/ironrift/physics"
)

// ContactSystem resolves the physics step's contact events into unit state
// Terrain contacts drive the grounded flag, bullet contacts drive HP and terminal transitions
type ContactSystem struct {
	world *engine.World
	log   zerolog.Logger

	// Rebuilt each tick from live entities
	units   map[physics.ColliderHandle]core.Entity
	bullets map[physics.ColliderHandle]core.Entity

	statHits     *atomic.Int64
	statKilled   *atomic.Int64
	statGrounded *atomic.Int64
	statUnknown  *atomic.Int64
}

func NewContactSystem(world *engine.World) engine.System {
	s := &ContactSystem{
		world:   world,
		units:   make(map[physics.ColliderHandle]core.Entity),
		bullets: make(map[physics.ColliderHandle]core.Entity),
	}
	s.log = world.Resources.Log.With().Str("system", s.Name()).Logger()
	reg := world.Resources.Status
	s.statHits = reg.Ints.Get("contact.hits")
	s.statKilled = reg.Ints.Get("contact.killed")
	s.statGrounded = reg.Ints.Get("contact.grounded")
	s.statUnknown = reg.Ints.Get("contact.unknown")

	s.Init()
	return s
}

func (s *ContactSystem) Init() {
	s.statHits.Store(0)
	s.statKilled.Store(0)
	s.statGrounded.Store(0)
	s.statUnknown.Store(0)
}

func (s *ContactSystem) Name() string {
	return "contact"
}

func (s *ContactSystem) Priority() int {
	return parameter.PriorityContact
}

func (s *ContactSystem) Update() {
	s.indexColliders()

	for _, ev := range s.world.Resources.Physics.World.DrainContactEvents() {
		s.resolve(ev)
	}

	grounded := 0
	for _, e := range s.world.Components.Unit.GetAllEntities() {
		if u, ok := s.world.Components.Unit.GetComponent(e); ok && u.IsTouchingGround {
			grounded++
		}
	}
	s.statGrounded.Store(int64(grounded))
}

func (s *ContactSystem) indexColliders() {
	clear(s.units)
	clear(s.bullets)

	bodies := s.world.Components.Body
	for _, e := range s.world.Components.Unit.GetAllEntities() {
		if b, ok := bodies.GetComponent(e); ok {
			s.units[b.Collider] = e
		}
	}
	for _, e := range s.world.Components.Bullet.GetAllEntities() {
		if b, ok := bodies.GetComponent(e); ok {
			s.bullets[b.Collider] = e
		}
	}
}

func (s *ContactSystem) resolve(ev physics.ContactEvent) {
	if ev.Kind == physics.ContactStarted {
		s.forwardImpact(ev.A, ev.B)
		s.forwardImpact(ev.B, ev.A)
	}

	unitEntity, other, ok := s.unitSide(ev)
	if !ok {
		return
	}

	tag, err := s.world.Resources.Physics.World.ColliderTag(other)
	if err != nil {
		s.statUnknown.Add(1)
		lvl := s.log.Warn()
		if !errors.Is(err, physics.ErrUnknownHandle) {
			lvl = s.log.Error()
		}
		lvl.Err(err).Uint64("entity", uint64(unitEntity)).Uint64("collider", uint64(other)).Msg("contact with unresolvable collider skipped")
		return
	}

	switch physics.Classify(tag) {
	case physics.CategoryTerrain:
		s.groundContact(unitEntity, other, ev.Kind)
	case physics.CategoryBullet:
		if ev.Kind == physics.ContactStarted {
			s.bulletHit(unitEntity)
		}
	case physics.CategoryUnit, physics.CategoryNone:
	}
}

// unitSide returns the unit entity and the opposite collider, preferring A
func (s *ContactSystem) unitSide(ev physics.ContactEvent) (core.Entity, physics.ColliderHandle, bool) {
	if e, ok := s.units[ev.A]; ok {
		return e, ev.B, true
	}
	if e, ok := s.units[ev.B]; ok {
		return e, ev.A, true
	}
	return 0, 0, false
}

func (s *ContactSystem) forwardImpact(bullet, other physics.ColliderHandle) {
	e, ok := s.bullets[bullet]
	if !ok {
		return
	}
	s.world.PushEvent(event.EventBulletImpact, &event.BulletImpactPayload{Bullet: e, Other: other})
}

func (s *ContactSystem) groundContact(e core.Entity, terrain physics.ColliderHandle, kind physics.ContactKind) {
	contact, ok := s.world.Components.Contact.GetComponent(e)
	if !ok {
		contact = component.NewContactComponent()
		s.world.Components.Contact.SetComponent(e, contact)
	}

	switch kind {
	case physics.ContactStarted:
		contact.Touch(terrain)
	case physics.ContactStopped:
		contact.Release(terrain)
	}

	unit, ok := s.world.Components.Unit.GetComponent(e)
	if !ok {
		return
	}
	unit.IsTouchingGround = contact.Grounded()
	s.world.Components.Unit.SetComponent(e, unit)
}

// bulletHit applies one point of damage; only the first crossing to zero is terminal
func (s *ContactSystem) bulletHit(e core.Entity) {
	unit, ok := s.world.Components.Unit.GetComponent(e)
	if !ok {
		return
	}

	wasAlive := unit.Alive()
	unit.HP -= parameter.CombatBulletDamage
	s.world.Components.Unit.SetComponent(e, unit)
	s.statHits.Add(1)

	killed := wasAlive && !unit.Alive()
	s.world.PushEvent(event.EventUnitHit, &event.UnitHitPayload{Entity: e, HP: unit.HP, Killed: killed})
	s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: core.SoundHit})

	if !killed {
		return
	}
	s.statKilled.Add(1)

	if s.world.Components.Player.HasEntity(e) {
		if s.world.Resources.Match.End(core.OutcomeDefeat) {
			s.log.Info().Uint64("entity", uint64(e)).Msg("player defeated")
			s.world.PushEvent(event.EventMatchEnd, &event.MatchEndPayload{Outcome: core.OutcomeDefeat})
			s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: core.SoundDefeat})
		}
		return
	}

	s.log.Debug().Uint64("entity", uint64(e)).Stringer("team", unit.Team).Msg("unit killed")
	s.world.PushEvent(event.EventDespawnRequest, e)
	s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: core.SoundDeath})
}
