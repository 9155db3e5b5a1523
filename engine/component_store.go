package engine

import (
	"github.com/lixenwraith/ironrift/component"
)

// ComponentStore provides cached pointers to typed component stores
// Pointers remain valid for the world's lifetime
type ComponentStore struct {
	// Combat
	Unit   *Store[component.UnitComponent]
	Bullet *Store[component.BulletComponent]

	// Physics pairing
	Body    *Store[component.BodyComponent]
	Contact *Store[component.ContactComponent]
	Terrain *Store[component.TerrainComponent]

	// Controllers
	NPC    *Store[component.NPCComponent]
	Player *Store[component.PlayerComponent]

	// Orchestration
	Battle *Store[component.BattleComponent]
}

func initComponentStores(w *World) {
	w.Components = ComponentStore{
		Unit:    NewStore[component.UnitComponent](),
		Bullet:  NewStore[component.BulletComponent](),
		Body:    NewStore[component.BodyComponent](),
		Contact: NewStore[component.ContactComponent](),
		Terrain: NewStore[component.TerrainComponent](),
		NPC:     NewStore[component.NPCComponent](),
		Player:  NewStore[component.PlayerComponent](),
		Battle:  NewStore[component.BattleComponent](),
	}

	c := &w.Components
	w.allStores = []AnyStore{
		c.Unit, c.Bullet, c.Body, c.Contact, c.Terrain, c.NPC, c.Player, c.Battle,
	}
}
