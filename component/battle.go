package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// TeamSpawn is a team and the point its units enter at
type TeamSpawn struct {
	Team  TeamID
	Spawn mgl64.Vec3
}

// BattleComponent defines a match; Started flips once and never reverts
type BattleComponent struct {
	ID           uuid.UUID
	Teams        []TeamSpawn
	UnitsPerTeam int
	Started      bool
}
