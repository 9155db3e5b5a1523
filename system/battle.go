package system

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/ironrift/component"
	"github.com/lixenwraith/ironrift/config"
	"github.com/lixenwraith/ironrift/core"
	"github.com/lixenwraith/ironrift/engine"
	"github.com/lixenwraith/ironrift/parameter"
)

// CreateBattle registers the battle described by cfg; it starts on the next battle tick
func CreateBattle(w *engine.World, cfg config.BattleConfig) (core.Entity, error) {
	battle := component.BattleComponent{
		ID:           uuid.New(),
		UnitsPerTeam: cfg.UnitsPerTeam,
		Teams:        make([]component.TeamSpawn, 0, len(cfg.Teams)),
	}
	for i, t := range cfg.Teams {
		id, err := component.ParseTeam(t.ID)
		if err != nil || id == component.TeamNone {
			return 0, fmt.Errorf("battle team %d %q: %w", i, t.ID, config.ErrInvalidTeam)
		}
		if len(t.Spawn) != 3 {
			return 0, fmt.Errorf("battle team %d spawn needs 3 coordinates, got %d", i, len(t.Spawn))
		}
		battle.Teams = append(battle.Teams, component.TeamSpawn{
			Team:  id,
			Spawn: mgl64.Vec3{t.Spawn[0], t.Spawn[1], t.Spawn[2]},
		})
	}

	e := w.CreateEntity()
	w.Components.Battle.SetComponent(e, battle)
	return e, nil
}

// BattleSystem starts battles: the first tick a battle is seen unstarted its full roster is queued
type BattleSystem struct {
	world *engine.World
	log   zerolog.Logger
}

func NewBattleSystem(world *engine.World) engine.System {
	s := &BattleSystem{world: world}
	s.log = world.Resources.Log.With().Str("system", s.Name()).Logger()

	s.Init()
	return s
}

func (s *BattleSystem) Init() {}

func (s *BattleSystem) Name() string {
	return "battle"
}

func (s *BattleSystem) Priority() int {
	return parameter.PriorityBattle
}

func (s *BattleSystem) Update() {
	battles := s.world.Components.Battle
	queue := s.world.Resources.Spawn

	for _, e := range battles.GetAllEntities() {
		battle, ok := battles.GetComponent(e)
		if !ok || battle.Started {
			continue
		}

		for _, team := range battle.Teams {
			for range battle.UnitsPerTeam {
				queue.Push(engine.SpawnRequest{Position: team.Spawn, Team: team.Team})
			}
		}
		battle.Started = true
		battles.SetComponent(e, battle)

		s.log.Info().
			Str("battle", battle.ID.String()).
			Int("teams", len(battle.Teams)).
			Int("units_per_team", battle.UnitsPerTeam).
			Msg("battle started")
	}
}
