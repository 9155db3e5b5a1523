package component

import (
	"time"

	"github.com/lixenwraith/ironrift/core"
)

// BulletComponent marks a projectile entity
type BulletComponent struct {
	Age      time.Duration // Accumulated age
	Lifetime time.Duration // Destruction threshold, exclusive
	Owner    core.Entity   // Firing unit, zero when unknown
}

// Expired reports whether age has strictly passed lifetime
func (b BulletComponent) Expired() bool {
	return b.Age > b.Lifetime
}
