package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/lixenwraith/ironrift/component"
	"github.com/lixenwraith/ironrift/config"
	"github.com/lixenwraith/ironrift/vmath"
)

func TestNPC_FacesNearestHostile(t *testing.T) {
	w, _ := newArenaWorld(t, nil)
	sys := NewNPCSystem(w)

	self := mustNPC(t, w, mgl64.Vec3{0, 0, 0}, component.TeamOne)
	mustNPC(t, w, mgl64.Vec3{10, 0, 0}, component.TeamTwo)
	mustNPC(t, w, mgl64.Vec3{0, 0, 14}, component.TeamTwo)

	sys.Update()

	assert.InDelta(t, math.Atan2(0-10, 0-0), unitOf(t, w, self).Yaw, 1e-12)
}

func TestNPC_SameTeamIdles(t *testing.T) {
	w, _ := newArenaWorld(t, nil)
	sys := NewNPCSystem(w)

	self := mustNPC(t, w, mgl64.Vec3{0, 0, 0}, component.TeamOne)
	mustNPC(t, w, mgl64.Vec3{10, 0, 0}, component.TeamOne)

	sys.Update()

	u := unitOf(t, w, self)
	assert.LessOrEqual(t, math.Abs(u.Yaw), vmath.Radians(45)+1e-12, "idle turn bounded")
	assert.False(t, u.Shoot, "idle never fires")
	assert.Zero(t, w.Resources.Status.Ints.Get("npc.engaged").Load())
}

func TestNPC_TargetAllPolicy(t *testing.T) {
	cfg := testConfig()
	cfg.NPC.Targeting = config.TargetingAll
	w, _ := newArenaWorld(t, cfg)
	sys := NewNPCSystem(w)

	self := mustNPC(t, w, mgl64.Vec3{0, 0, 0}, component.TeamOne)
	mustNPC(t, w, mgl64.Vec3{10, 0, 0}, component.TeamOne)

	sys.Update()

	assert.InDelta(t, math.Atan2(-10, 0), unitOf(t, w, self).Yaw, 1e-12)
}

func TestNPC_NoCandidate(t *testing.T) {
	tests := []struct {
		name  string
		other mgl64.Vec3
	}{
		{"out of range", mgl64.Vec3{15, 0, 0}},
		{"coincident", mgl64.Vec3{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := newArenaWorld(t, nil)
			sys := NewNPCSystem(w)

			self := mustNPC(t, w, mgl64.Vec3{}, component.TeamOne)
			mustNPC(t, w, tt.other, component.TeamTwo)

			sys.Update()

			u := unitOf(t, w, self)
			assert.False(t, u.Shoot)
			assert.LessOrEqual(t, math.Abs(u.Yaw), vmath.Radians(45)+1e-12)
		})
	}
}

func TestNPC_IntentIsHorizontalForward(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cfg := testConfig()
		cfg.Sim.Seed = rapid.Int64Range(1, math.MaxInt64).Draw(rt, "seed")
		w, _ := newArenaWorld(t, cfg)
		sys := NewNPCSystem(w)

		n := rapid.IntRange(1, 8).Draw(rt, "units")
		for range n {
			pos := mgl64.Vec3{
				rapid.Float64Range(-30, 30).Draw(rt, "x"),
				0,
				rapid.Float64Range(-30, 30).Draw(rt, "z"),
			}
			team := component.TeamID(rapid.IntRange(1, 2).Draw(rt, "team"))
			mustNPC(t, w, pos, team)
		}

		sys.Update()

		for _, e := range w.Components.NPC.GetAllEntities() {
			u := unitOf(t, w, e)
			speed := u.Velocity.Len()
			if u.Velocity.Y() != 0 {
				rt.Fatalf("vertical intent %v", u.Velocity)
			}
			if speed != 0 && math.Abs(speed-cfg.NPC.Speed) > 1e-9 {
				rt.Fatalf("intent speed %v", speed)
			}
			if speed != 0 {
				want := vmath.HorizontalForward(u.Yaw, u.Pitch, u.Roll).Mul(cfg.NPC.Speed)
				if !u.Velocity.ApproxEqualThreshold(want, 1e-9) {
					rt.Fatalf("intent %v not along forward %v", u.Velocity, want)
				}
			}
		}
	})
}

func TestNPC_SeededDeterminism(t *testing.T) {
	run := func() []component.UnitComponent {
		w, _ := newArenaWorld(t, nil)
		sys := NewNPCSystem(w)
		mustNPC(t, w, mgl64.Vec3{}, component.TeamOne)
		mustNPC(t, w, mgl64.Vec3{5, 0, 5}, component.TeamTwo)
		mustNPC(t, w, mgl64.Vec3{50, 0, 0}, component.TeamTwo)
		for range 60 {
			sys.Update()
		}
		var out []component.UnitComponent
		for _, e := range w.Components.Unit.GetAllEntities() {
			out = append(out, unitOf(t, w, e))
		}
		return out
	}

	assert.Equal(t, run(), run())
}

func TestNPC_ViolationDoesNotStopSnapshot(t *testing.T) {
	w, _ := newArenaWorld(t, nil)
	sys := NewNPCSystem(w)

	bodiless := w.CreateEntity()
	w.Components.Unit.SetComponent(bodiless, component.UnitComponent{Team: component.TeamTwo, HP: 3})
	w.Components.NPC.SetComponent(bodiless, component.NPCComponent{Speed: 3})

	self := mustNPC(t, w, mgl64.Vec3{0, 0, 0}, component.TeamOne)
	target := mustNPC(t, w, mgl64.Vec3{10, 0, 0}, component.TeamTwo)

	unknown := addUnit(w, component.TeamTwo, 9999, 9999)
	w.Components.NPC.SetComponent(unknown, component.NPCComponent{Speed: 3})

	assert.NotPanics(t, sys.Update)

	assert.InDelta(t, math.Atan2(0-10, 0-0), unitOf(t, w, self).Yaw, 1e-12, "valid npc still engages")
	assert.InDelta(t, math.Atan2(10-0, 0-0), unitOf(t, w, target).Yaw, 1e-12)
	assert.Equal(t, int64(2), w.Resources.Status.Ints.Get("npc.engaged").Load())

	assert.Equal(t, mgl64.Vec3{}, unitOf(t, w, bodiless).Velocity, "skipped npc untouched")
	assert.Equal(t, mgl64.Vec3{}, unitOf(t, w, unknown).Velocity)
}
