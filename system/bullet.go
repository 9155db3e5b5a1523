package system

import (
	"fmt"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/ironrift/component"
	"github.com/lixenwraith/ironrift/core"
	"github.com/lixenwraith/ironrift/engine"
	"github.com/lixenwraith/ironrift/event"
	"github.com/lixenwraith/ironrift/parameter"
	"github.com/lixenwraith/ironrift/physics"
)

// SpawnBullet creates a projectile: dynamic body without gravity, ball collider tagged Bullet
func SpawnBullet(w *engine.World, position mgl64.Vec3, rotation mgl64.Quat, velocity mgl64.Vec3, owner core.Entity) (core.Entity, error) {
	phys := w.Resources.Physics.World

	body := phys.CreateBody(physics.BodyDesc{
		Kind:         physics.BodyDynamic,
		Translation:  position,
		Rotation:     rotation,
		LinearVel:    velocity,
		GravityScale: 0,
	})
	col, err := phys.CreateCollider(physics.ColliderDesc{
		Shape:  physics.ShapeBall,
		Radius: parameter.BulletRadius,
		Tag:    physics.CategoryTag(physics.CategoryBullet),
	}, body)
	if err != nil {
		phys.RemoveBody(body)
		return 0, fmt.Errorf("bullet collider: %w", err)
	}

	e := w.CreateEntity()
	w.Components.Bullet.SetComponent(e, component.BulletComponent{
		Lifetime: w.Resources.Config.Bullet.Lifetime,
		Owner:    owner,
	})
	w.Components.Body.SetComponent(e, component.BodyComponent{Body: body, Collider: col})
	return e, nil
}

// BulletSystem ages projectiles and retires them on expiry or impact
type BulletSystem struct {
	world *engine.World
	log   zerolog.Logger

	// Bullets with a Started contact observed this tick
	impacted map[core.Entity]struct{}

	statExpired  *atomic.Int64
	statImpacted *atomic.Int64
	statLive     *atomic.Int64
}

func NewBulletSystem(world *engine.World) engine.System {
	s := &BulletSystem{
		world:    world,
		impacted: make(map[core.Entity]struct{}),
	}
	s.log = world.Resources.Log.With().Str("system", s.Name()).Logger()
	reg := world.Resources.Status
	s.statExpired = reg.Ints.Get("bullet.expired")
	s.statImpacted = reg.Ints.Get("bullet.impacted")
	s.statLive = reg.Ints.Get("bullet.live")

	s.Init()
	return s
}

func (s *BulletSystem) Init() {
	clear(s.impacted)
	s.statExpired.Store(0)
	s.statImpacted.Store(0)
	s.statLive.Store(0)
}

func (s *BulletSystem) Name() string {
	return "bullet"
}

func (s *BulletSystem) Priority() int {
	return parameter.PriorityBullet
}

func (s *BulletSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventBulletImpact,
	}
}

func (s *BulletSystem) HandleEvent(ev event.GameEvent) {
	if p, ok := ev.Payload.(*event.BulletImpactPayload); ok {
		s.impacted[p.Bullet] = struct{}{}
	}
}

func (s *BulletSystem) Update() {
	dt := s.world.Resources.Time.DeltaTime
	contactDespawn := s.world.Resources.Config.Bullet.ContactDespawn
	bullets := s.world.Components.Bullet

	for _, e := range bullets.GetAllEntities() {
		b, ok := bullets.GetComponent(e)
		if !ok {
			continue
		}
		b.Age += dt
		bullets.SetComponent(e, b)

		// One request per bullet per tick; expiry checked first
		switch {
		case b.Expired():
			s.statExpired.Add(1)
		case contactDespawn && s.hasImpact(e):
			s.statImpacted.Add(1)
		default:
			continue
		}
		s.world.PushEvent(event.EventDespawnRequest, e)
	}

	clear(s.impacted)
	s.statLive.Store(int64(bullets.CountEntities()))
}

func (s *BulletSystem) hasImpact(e core.Entity) bool {
	_, ok := s.impacted[e]
	return ok
}
