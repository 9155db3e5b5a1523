package arena

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ironrift/physics"
)

const tick = time.Second / 60

func addFloor(t *testing.T, w *Arena) physics.ColliderHandle {
	t.Helper()
	b := w.CreateBody(physics.BodyDesc{Kind: physics.BodyFixed, Translation: mgl64.Vec3{0, -0.5, 0}})
	h, err := w.CreateCollider(physics.ColliderDesc{
		Shape:       physics.ShapeCuboid,
		HalfExtents: mgl64.Vec3{100, 0.5, 100},
		Tag:         physics.CategoryTag(physics.CategoryTerrain),
	}, b)
	require.NoError(t, err)
	return h
}

func addCapsule(t *testing.T, w *Arena, pos mgl64.Vec3) (physics.BodyHandle, physics.ColliderHandle) {
	t.Helper()
	b := w.CreateBody(physics.BodyDesc{Kind: physics.BodyDynamic, Translation: pos, GravityScale: 1, LockRotations: true})
	h, err := w.CreateCollider(physics.ColliderDesc{
		Shape:      physics.ShapeCapsuleY,
		HalfHeight: 0.5,
		Radius:     1,
		Tag:        physics.CategoryTag(physics.CategoryUnit),
	}, b)
	require.NoError(t, err)
	return b, h
}

func stepN(w *Arena, n int) []physics.ContactEvent {
	var all []physics.ContactEvent
	for i := 0; i < n; i++ {
		w.Step(tick)
		all = append(all, w.DrainContactEvents()...)
	}
	return all
}

func TestArena_CapsuleLandsAndStaysGrounded(t *testing.T) {
	w := New()
	floor := addFloor(t, w)
	body, unit := addCapsule(t, w, mgl64.Vec3{0, 3, 0})

	events := stepN(w, 120)
	require.Len(t, events, 1)
	assert.Equal(t, physics.ContactStarted, events[0].Kind)
	assert.ElementsMatch(t, []physics.ColliderHandle{floor, unit}, []physics.ColliderHandle{events[0].A, events[0].B})

	pos, err := w.Translation(body)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, pos.Y(), 1e-9)

	vel, err := w.LinearVelocity(body)
	require.NoError(t, err)
	assert.Zero(t, vel.Y())

	// Resting produces no further events
	assert.Empty(t, stepN(w, 30))
}

func TestArena_JumpStopsAndRestartsContact(t *testing.T) {
	w := New()
	addFloor(t, w)
	body, _ := addCapsule(t, w, mgl64.Vec3{0, 1.5, 0})
	stepN(w, 2)

	require.NoError(t, w.SetLinearVelocity(body, mgl64.Vec3{0, 5, 0}))
	events := stepN(w, 120)

	require.Len(t, events, 2)
	assert.Equal(t, physics.ContactStopped, events[0].Kind)
	assert.Equal(t, physics.ContactStarted, events[1].Kind)
}

func TestArena_FastBallDoesNotTunnel(t *testing.T) {
	w := New()
	w.SetGravity(0)
	_, unit := addCapsule(t, w, mgl64.Vec3{10, 0, 0})

	b := w.CreateBody(physics.BodyDesc{Kind: physics.BodyDynamic, LinearVel: mgl64.Vec3{300, 0, 0}})
	ball, err := w.CreateCollider(physics.ColliderDesc{Shape: physics.ShapeBall, Radius: 0.1, Tag: physics.CategoryTag(physics.CategoryBullet)}, b)
	require.NoError(t, err)

	// 5 units per tick: second step sweeps 5..10 then 10..15 across the capsule
	events := stepN(w, 4)
	require.Len(t, events, 2)
	assert.Equal(t, physics.ContactStarted, events[0].Kind)
	assert.ElementsMatch(t, []physics.ColliderHandle{ball, unit}, []physics.ColliderHandle{events[0].A, events[0].B})
	assert.Equal(t, physics.ContactStopped, events[1].Kind)
}

func TestArena_UnknownHandles(t *testing.T) {
	w := New()

	_, err := w.Translation(42)
	assert.ErrorIs(t, err, physics.ErrUnknownHandle)
	_, err = w.ColliderTag(7)
	assert.ErrorIs(t, err, physics.ErrUnknownHandle)
	_, err = w.CreateCollider(physics.ColliderDesc{}, 3)
	assert.ErrorIs(t, err, physics.ErrUnknownHandle)

	w.RemoveBody(99)
}

func TestArena_RemoveBodyDropsColliders(t *testing.T) {
	w := New()
	addFloor(t, w)
	body, unit := addCapsule(t, w, mgl64.Vec3{0, 1.5, 0})
	stepN(w, 1)

	w.RemoveBody(body)
	assert.Equal(t, 1, w.BodyCount())
	_, err := w.ColliderTag(unit)
	assert.ErrorIs(t, err, physics.ErrUnknownHandle)
	assert.Empty(t, stepN(w, 2))
}

func TestSegSegDist(t *testing.T) {
	d := segSegDist(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0.5, 1, -1}, mgl64.Vec3{0.5, 1, 1})
	assert.InDelta(t, 1.0, d, 1e-9)

	// Degenerate points
	d = segSegDist(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{3, 4, 0}, mgl64.Vec3{3, 4, 0})
	assert.InDelta(t, 5.0, d, 1e-9)
}

func TestSegBoxDist(t *testing.T) {
	min := mgl64.Vec3{-1, -1, -1}
	max := mgl64.Vec3{1, 1, 1}

	assert.InDelta(t, 1.0, segBoxDist(mgl64.Vec3{-5, 2, 0}, mgl64.Vec3{5, 2, 0}, min, max), 1e-6)
	assert.InDelta(t, 0.0, segBoxDist(mgl64.Vec3{-5, 0, 0}, mgl64.Vec3{5, 0, 0}, min, max), 1e-6)
	assert.Negative(t, boxBoxDist(min, max, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{2, 2, 2}))
	assert.InDelta(t, 1.0, boxBoxDist(min, max, mgl64.Vec3{2, -1, -1}, mgl64.Vec3{3, 1, 1}), 1e-9)
}
