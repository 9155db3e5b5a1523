package system

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/ironrift/component"
	"github.com/lixenwraith/ironrift/core"
	"github.com/lixenwraith/ironrift/engine"
	"github.com/lixenwraith/ironrift/event"
	"github.com/lixenwraith/ironrift/parameter"
	"github.com/lixenwraith/ironrift/physics"
)

// SpawnNPC creates an AI unit at position: dynamic capsule, locked rotations, tagged Unit
func SpawnNPC(w *engine.World, position mgl64.Vec3, team component.TeamID) (core.Entity, error) {
	e, err := spawnUnit(w, position, team)
	if err != nil {
		return 0, err
	}
	w.Components.NPC.SetComponent(e, component.NPCComponent{Speed: w.Resources.Config.NPC.Speed})
	w.PushEvent(event.EventUnitSpawned, &event.UnitSpawnedPayload{Entity: e, Team: uint8(team), Position: position})
	return e, nil
}

// SpawnPlayer creates the locally controlled unit and records it in the player resource
func SpawnPlayer(w *engine.World, position mgl64.Vec3, team component.TeamID) (core.Entity, error) {
	e, err := spawnUnit(w, position, team)
	if err != nil {
		return 0, err
	}
	cfg := w.Resources.Config.Player
	w.Components.Player.SetComponent(e, component.PlayerComponent{Sensitivity: cfg.Sensitivity, Speed: cfg.Speed})
	w.Resources.Player.Entity = e
	w.PushEvent(event.EventUnitSpawned, &event.UnitSpawnedPayload{Entity: e, Team: uint8(team), Position: position, Player: true})
	return e, nil
}

func spawnUnit(w *engine.World, position mgl64.Vec3, team component.TeamID) (core.Entity, error) {
	phys := w.Resources.Physics.World

	body := phys.CreateBody(physics.BodyDesc{
		Kind:          physics.BodyDynamic,
		Translation:   position,
		Rotation:      mgl64.QuatIdent(),
		GravityScale:  1,
		LockRotations: true,
	})
	col, err := phys.CreateCollider(physics.ColliderDesc{
		Shape:      physics.ShapeCapsuleY,
		HalfHeight: parameter.UnitCapsuleHalfHeight,
		Radius:     parameter.UnitCapsuleRadius,
		Tag:        physics.CategoryTag(physics.CategoryUnit),
	}, body)
	if err != nil {
		phys.RemoveBody(body)
		return 0, fmt.Errorf("unit collider: %w", err)
	}

	e := w.CreateEntity()
	w.Components.Unit.SetComponent(e, component.UnitComponent{Team: team, HP: parameter.CombatInitialHP})
	w.Components.Body.SetComponent(e, component.BodyComponent{Body: body, Collider: col})
	w.Components.Contact.SetComponent(e, component.NewContactComponent())
	return e, nil
}

// SpawnTerrain registers a fixed box collider tagged Terrain
// Stands in for map loading: the core only needs tagged terrain colliders
func SpawnTerrain(w *engine.World, center, halfExtents mgl64.Vec3) (core.Entity, error) {
	phys := w.Resources.Physics.World

	body := phys.CreateBody(physics.BodyDesc{
		Kind:        physics.BodyFixed,
		Translation: center,
		Rotation:    mgl64.QuatIdent(),
	})
	col, err := phys.CreateCollider(physics.ColliderDesc{
		Shape:       physics.ShapeCuboid,
		HalfExtents: halfExtents,
		Tag:         physics.CategoryTag(physics.CategoryTerrain),
	}, body)
	if err != nil {
		phys.RemoveBody(body)
		return 0, fmt.Errorf("terrain collider: %w", err)
	}

	e := w.CreateEntity()
	w.Components.Terrain.SetComponent(e, component.TerrainComponent{HalfExtents: halfExtents})
	w.Components.Body.SetComponent(e, component.BodyComponent{Body: body, Collider: col})
	return e, nil
}
