package system

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/ironrift/component"
	"github.com/lixenwraith/ironrift/engine"
	"github.com/lixenwraith/ironrift/parameter"
)

// Install adds every simulation system to the world and returns the scheduler driving them
func Install(w *engine.World) *engine.Scheduler {
	w.AddSystem(NewBattleSystem(w))
	w.AddSystem(NewSpawnSystem(w))
	w.AddSystem(NewPlayerSystem(w))
	w.AddSystem(NewNPCSystem(w))
	w.AddSystem(NewUnitSystem(w))
	w.AddSystem(NewPhysicsSystem(w))
	w.AddSystem(NewContactSystem(w))
	w.AddSystem(NewBulletSystem(w))
	w.AddSystem(NewAudioSystem(w))

	sched := engine.NewScheduler(w, w.Resources.Config.TickInterval())
	sched.RegisterEventHandler(NewDeathSystem(w))
	return sched
}

// Populate creates the arena floor, the configured battle and, when enabled, the local player
func Populate(w *engine.World) error {
	cfg := w.Resources.Config

	// Floor top face at y=0
	floorCenter := mgl64.Vec3{0, -parameter.ArenaFloorThickness, 0}
	floorHalf := mgl64.Vec3{parameter.ArenaFloorHalfExtent, parameter.ArenaFloorThickness, parameter.ArenaFloorHalfExtent}
	if _, err := SpawnTerrain(w, floorCenter, floorHalf); err != nil {
		return fmt.Errorf("arena floor: %w", err)
	}

	battle, err := CreateBattle(w, cfg.Battle)
	if err != nil {
		return fmt.Errorf("create battle: %w", err)
	}
	b, _ := w.Components.Battle.GetComponent(battle)
	w.Resources.Log.Info().Str("battle", b.ID.String()).Msg("battle created")

	if !cfg.Player.Enabled {
		return nil
	}
	team, err := component.ParseTeam(cfg.Player.Team)
	if err != nil {
		return fmt.Errorf("player team: %w", err)
	}
	spawn := mgl64.Vec3{cfg.Player.Spawn[0], cfg.Player.Spawn[1], cfg.Player.Spawn[2]}
	if _, err := SpawnPlayer(w, spawn, team); err != nil {
		return fmt.Errorf("spawn player: %w", err)
	}
	return nil
}
