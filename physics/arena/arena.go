// Package arena is an in-memory physics collaborator for hosts and tests
// It integrates gravity, rests dynamic shapes on fixed boxes, and reports contact
// start and stop by diffing the set of touching collider pairs between steps
package arena

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/ironrift/parameter"
	"github.com/lixenwraith/ironrift/physics"
)

type body struct {
	kind         physics.BodyKind
	pos          mgl64.Vec3
	prev         mgl64.Vec3 // Position before the last step
	rot          mgl64.Quat
	vel          mgl64.Vec3
	gravityScale float64
	colliders    []physics.ColliderHandle
}

type collider struct {
	desc physics.ColliderDesc
	body physics.BodyHandle
}

type pair struct {
	a, b physics.ColliderHandle // a < b
}

func makePair(x, y physics.ColliderHandle) pair {
	if x > y {
		x, y = y, x
	}
	return pair{a: x, b: y}
}

// Arena implements physics.World
type Arena struct {
	mu      sync.Mutex
	gravity float64
	skin    float64

	nextBody     physics.BodyHandle
	nextCollider physics.ColliderHandle

	bodies    map[physics.BodyHandle]*body
	colliders map[physics.ColliderHandle]*collider
	order     []physics.ColliderHandle // Creation order

	touching map[pair]struct{}
	events   []physics.ContactEvent
}

var _ physics.World = (*Arena)(nil)

// New creates an empty arena with default gravity and contact skin
func New() *Arena {
	return &Arena{
		gravity:   parameter.ArenaGravity,
		skin:      parameter.ArenaContactSkin,
		bodies:    make(map[physics.BodyHandle]*body),
		colliders: make(map[physics.ColliderHandle]*collider),
		touching:  make(map[pair]struct{}),
	}
}

// SetGravity overrides downward acceleration
func (w *Arena) SetGravity(g float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.gravity = g
}

func (w *Arena) CreateBody(desc physics.BodyDesc) physics.BodyHandle {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.nextBody++
	rot := desc.Rotation
	if rot == (mgl64.Quat{}) {
		rot = mgl64.QuatIdent()
	}
	w.bodies[w.nextBody] = &body{
		kind:         desc.Kind,
		pos:          desc.Translation,
		prev:         desc.Translation,
		rot:          rot,
		vel:          desc.LinearVel,
		gravityScale: desc.GravityScale,
	}
	return w.nextBody
}

func (w *Arena) CreateCollider(desc physics.ColliderDesc, h physics.BodyHandle) (physics.ColliderHandle, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	b, ok := w.bodies[h]
	if !ok {
		return 0, fmt.Errorf("body %d: %w", h, physics.ErrUnknownHandle)
	}
	w.nextCollider++
	w.colliders[w.nextCollider] = &collider{desc: desc, body: h}
	w.order = append(w.order, w.nextCollider)
	b.colliders = append(b.colliders, w.nextCollider)
	return w.nextCollider, nil
}

// RemoveBody drops the body, its colliders and their touching pairs without emitting events
func (w *Arena) RemoveBody(h physics.BodyHandle) {
	w.mu.Lock()
	defer w.mu.Unlock()

	b, ok := w.bodies[h]
	if !ok {
		return
	}
	for _, ch := range b.colliders {
		delete(w.colliders, ch)
		for p := range w.touching {
			if p.a == ch || p.b == ch {
				delete(w.touching, p)
			}
		}
	}
	w.order = slices.DeleteFunc(w.order, func(ch physics.ColliderHandle) bool {
		_, alive := w.colliders[ch]
		return !alive
	})
	delete(w.bodies, h)
}

func (w *Arena) lookup(h physics.BodyHandle) (*body, error) {
	b, ok := w.bodies[h]
	if !ok {
		return nil, fmt.Errorf("body %d: %w", h, physics.ErrUnknownHandle)
	}
	return b, nil
}

func (w *Arena) Translation(h physics.BodyHandle) (mgl64.Vec3, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	b, err := w.lookup(h)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	return b.pos, nil
}

func (w *Arena) Rotation(h physics.BodyHandle) (mgl64.Quat, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	b, err := w.lookup(h)
	if err != nil {
		return mgl64.QuatIdent(), err
	}
	return b.rot, nil
}

func (w *Arena) SetPose(h physics.BodyHandle, translation mgl64.Vec3, rotation mgl64.Quat) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	b, err := w.lookup(h)
	if err != nil {
		return err
	}
	b.pos = translation
	b.rot = rotation
	return nil
}

func (w *Arena) LinearVelocity(h physics.BodyHandle) (mgl64.Vec3, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	b, err := w.lookup(h)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	return b.vel, nil
}

func (w *Arena) SetLinearVelocity(h physics.BodyHandle, v mgl64.Vec3) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	b, err := w.lookup(h)
	if err != nil {
		return err
	}
	b.vel = v
	return nil
}

func (w *Arena) ColliderTag(h physics.ColliderHandle) (physics.Tag, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	c, ok := w.colliders[h]
	if !ok {
		return 0, fmt.Errorf("collider %d: %w", h, physics.ErrUnknownHandle)
	}
	return c.desc.Tag, nil
}

func (w *Arena) DrainContactEvents() []physics.ContactEvent {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := w.events
	w.events = nil
	return out
}

// Step integrates dynamic bodies, rests them on fixed boxes, then diffs contacts
func (w *Arena) Step(dt time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()

	sec := dt.Seconds()
	for _, b := range w.bodies {
		b.prev = b.pos
		if b.kind != physics.BodyDynamic {
			continue
		}
		b.vel[1] -= w.gravity * b.gravityScale * sec
		b.pos = b.pos.Add(b.vel.Mul(sec))
	}

	w.resolveGround()
	w.diffContacts()
}

// resolveGround lifts falling capsules and balls out of fixed boxes they sank into from above
func (w *Arena) resolveGround() {
	for _, ch := range w.order {
		c := w.colliders[ch]
		b := w.bodies[c.body]
		if b.kind != physics.BodyDynamic || b.gravityScale == 0 || c.desc.Shape == physics.ShapeCuboid {
			continue
		}
		foot := c.desc.Radius
		if c.desc.Shape == physics.ShapeCapsuleY {
			foot += c.desc.HalfHeight
		}
		for _, fh := range w.order {
			f := w.colliders[fh]
			fb := w.bodies[f.body]
			if fb.kind != physics.BodyFixed || f.desc.Shape != physics.ShapeCuboid {
				continue
			}
			min := fb.pos.Sub(f.desc.HalfExtents)
			max := fb.pos.Add(f.desc.HalfExtents)
			if b.pos[0] < min[0] || b.pos[0] > max[0] || b.pos[2] < min[2] || b.pos[2] > max[2] {
				continue
			}
			bottom := b.pos[1] - foot
			wasAbove := b.prev[1]-foot >= max[1]-w.skin
			if bottom < max[1] && wasAbove {
				b.pos[1] = max[1] + foot
				if b.vel[1] < 0 {
					b.vel[1] = 0
				}
			}
		}
	}
}

// diffContacts recomputes touching pairs and queues Started and Stopped events
func (w *Arena) diffContacts() {
	prims := make([]primitive, len(w.order))
	for i, ch := range w.order {
		c := w.colliders[ch]
		prims[i] = primitiveOf(c.desc, w.bodies[c.body])
	}

	now := make(map[pair]struct{}, len(w.touching))
	for i := 0; i < len(w.order); i++ {
		ci := w.colliders[w.order[i]]
		for j := i + 1; j < len(w.order); j++ {
			cj := w.colliders[w.order[j]]
			if ci.body == cj.body {
				continue
			}
			if w.bodies[ci.body].kind == physics.BodyFixed && w.bodies[cj.body].kind == physics.BodyFixed {
				continue
			}
			if gap(prims[i], prims[j]) > w.skin {
				continue
			}
			p := makePair(w.order[i], w.order[j])
			now[p] = struct{}{}
			if _, was := w.touching[p]; !was {
				w.events = append(w.events, physics.ContactEvent{Kind: physics.ContactStarted, A: w.order[i], B: w.order[j]})
			}
		}
	}

	stopped := make([]pair, 0)
	for p := range w.touching {
		if _, still := now[p]; !still {
			stopped = append(stopped, p)
		}
	}
	slices.SortFunc(stopped, func(x, y pair) int {
		if c := cmp.Compare(x.a, y.a); c != 0 {
			return c
		}
		return cmp.Compare(x.b, y.b)
	})
	for _, p := range stopped {
		w.events = append(w.events, physics.ContactEvent{Kind: physics.ContactStopped, A: p.a, B: p.b})
	}

	w.touching = now
}

// BodyCount returns the number of live bodies
func (w *Arena) BodyCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.bodies)
}
