package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"

	"github.com/lixenwraith/ironrift/component"
	"github.com/lixenwraith/ironrift/engine"
	"github.com/lixenwraith/ironrift/event"
	"github.com/lixenwraith/ironrift/physics"
	"github.com/lixenwraith/ironrift/physics/mocks"
	"github.com/lixenwraith/ironrift/vmath"
)

func TestUnit_PushesPoseAndVelocity(t *testing.T) {
	w, phys := newArenaWorld(t, nil)
	sys := NewUnitSystem(w)

	e := mustNPC(t, w, mgl64.Vec3{1, 5, 2}, component.TeamOne)
	body, _ := w.Components.Body.GetComponent(e)
	require.NoError(t, phys.SetLinearVelocity(body.Body, mgl64.Vec3{9, -2, 9}))

	u := unitOf(t, w, e)
	u.Yaw = math.Pi / 2
	u.Velocity = mgl64.Vec3{1, 0.5, -1}
	w.Components.Unit.SetComponent(e, u)

	sys.Update()

	pos, err := phys.Translation(body.Body)
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec3{1, 5, 2}, pos, "translation kept")

	rot, err := phys.Rotation(body.Body)
	require.NoError(t, err)
	assert.True(t, rot.ApproxEqual(vmath.LookQuat(math.Pi/2, 0, 0)))

	vel, err := phys.LinearVelocity(body.Body)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, -1.5, -1}, vel[:], 1e-12)

	// Intent is not consumed
	assert.Equal(t, mgl64.Vec3{1, 0.5, -1}, unitOf(t, w, e).Velocity)
}

func TestUnit_ShootSpawnsBulletAndClears(t *testing.T) {
	w, phys := newArenaWorld(t, nil)
	sys := NewUnitSystem(w)

	e := mustNPC(t, w, mgl64.Vec3{0, 5, 0}, component.TeamOne)
	u := unitOf(t, w, e)
	u.Shoot = true
	w.Components.Unit.SetComponent(e, u)
	drainEvents(w)

	sys.Update()

	assert.False(t, unitOf(t, w, e).Shoot)
	bullets := w.Components.Bullet.GetAllEntities()
	require.Len(t, bullets, 1)

	b, _ := w.Components.Body.GetComponent(bullets[0])
	pos, err := phys.Translation(b.Body)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 5, -2}, pos[:], 1e-9, "muzzle two units along look")

	vel, err := phys.LinearVelocity(b.Body)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0, -300}, vel[:], 1e-9)

	bc, _ := w.Components.Bullet.GetComponent(bullets[0])
	assert.Equal(t, e, bc.Owner)

	assert.Len(t, eventsOf(drainEvents(w), event.EventSoundRequest), 1)
	assert.Equal(t, int64(1), w.Resources.Status.Ints.Get("unit.shots").Load())

	sys.Update()
	assert.Len(t, w.Components.Bullet.GetAllEntities(), 1, "no second shot")
}

func TestUnit_ShootAlwaysClears(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		w, _ := newArenaWorld(t, nil)
		sys := NewUnitSystem(w)

		n := rapid.IntRange(1, 6).Draw(rt, "units")
		for i := range n {
			e := mustNPC(t, w, mgl64.Vec3{float64(i) * 10, 5, 0}, component.TeamOne)
			u := unitOf(t, w, e)
			u.Shoot = rapid.Bool().Draw(rt, "shoot")
			u.Yaw = rapid.Float64Range(-math.Pi, math.Pi).Draw(rt, "yaw")
			u.Pitch = rapid.Float64Range(-math.Pi/2, math.Pi/2).Draw(rt, "pitch")
			w.Components.Unit.SetComponent(e, u)
		}

		sys.Update()

		for _, e := range w.Components.Unit.GetAllEntities() {
			if unitOf(t, w, e).Shoot {
				rt.Fatalf("unit %d still has shoot set", e)
			}
		}
	})
}

func TestUnit_MissingBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	phys := mocks.NewMockWorld(ctrl)

	t.Run("lenient skips", func(t *testing.T) {
		w := newMockWorld(t, phys)
		sys := NewUnitSystem(w)
		e := w.CreateEntity()
		w.Components.Unit.SetComponent(e, component.UnitComponent{HP: 3, Shoot: true})

		assert.NotPanics(t, sys.Update)
		assert.True(t, unitOf(t, w, e).Shoot, "skipped entity untouched")
	})

	t.Run("strict panics", func(t *testing.T) {
		cfg := testConfig()
		cfg.Sim.Strict = true
		w := engine.NewWorld(cfg, phys, zerolog.Nop())
		sys := NewUnitSystem(w)
		e := w.CreateEntity()
		w.Components.Unit.SetComponent(e, component.UnitComponent{HP: 3})

		assert.Panics(t, sys.Update)
	})
}

func TestUnit_UnknownBodyHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	phys := mocks.NewMockWorld(ctrl)
	phys.EXPECT().Translation(physics.BodyHandle(7)).Return(mgl64.Vec3{}, physics.ErrUnknownHandle)

	w := newMockWorld(t, phys)
	sys := NewUnitSystem(w)
	addUnit(w, component.TeamOne, 7, 70)

	// No SetPose or SetLinearVelocity expected
	sys.Update()
}

func TestUnit_ViolationDoesNotStopOtherUnits(t *testing.T) {
	w, phys := newArenaWorld(t, nil)
	sys := NewUnitSystem(w)

	bodiless := w.CreateEntity()
	w.Components.Unit.SetComponent(bodiless, component.UnitComponent{HP: 3, Shoot: true})

	good := mustNPC(t, w, mgl64.Vec3{0, 5, 0}, component.TeamOne)
	u := unitOf(t, w, good)
	u.Yaw = math.Pi
	u.Velocity = mgl64.Vec3{2, 0, 0}
	u.Shoot = true
	w.Components.Unit.SetComponent(good, u)

	unknown := addUnit(w, component.TeamTwo, 9999, 9999)
	uu := unitOf(t, w, unknown)
	uu.Shoot = true
	w.Components.Unit.SetComponent(unknown, uu)

	require.NotPanics(t, sys.Update)

	body, _ := w.Components.Body.GetComponent(good)
	rot, err := phys.Rotation(body.Body)
	require.NoError(t, err)
	assert.True(t, rot.ApproxEqual(vmath.LookQuat(math.Pi, 0, 0)), "pose pushed")

	vel, err := phys.LinearVelocity(body.Body)
	require.NoError(t, err)
	assert.InDelta(t, 2, vel.X(), 1e-12, "velocity pushed")

	assert.False(t, unitOf(t, w, good).Shoot)
	bullets := w.Components.Bullet.GetAllEntities()
	require.Len(t, bullets, 1, "only the valid unit fires")
	bc, _ := w.Components.Bullet.GetComponent(bullets[0])
	assert.Equal(t, good, bc.Owner)

	assert.True(t, unitOf(t, w, bodiless).Shoot, "skipped entities untouched")
	assert.True(t, unitOf(t, w, unknown).Shoot)
}
