package component

import (
	"github.com/lixenwraith/ironrift/physics"
)

// ContactComponent tracks terrain colliders currently touching a unit
// The map is shared between copies of the component
type ContactComponent struct {
	Ground map[physics.ColliderHandle]struct{}
}

// NewContactComponent returns a component with an empty ground set
func NewContactComponent() ContactComponent {
	return ContactComponent{Ground: make(map[physics.ColliderHandle]struct{})}
}

// Touch records a terrain collider, returns true if newly added
func (c ContactComponent) Touch(h physics.ColliderHandle) bool {
	if _, ok := c.Ground[h]; ok {
		return false
	}
	c.Ground[h] = struct{}{}
	return true
}

// Release forgets a terrain collider; unknown handles are ignored
func (c ContactComponent) Release(h physics.ColliderHandle) {
	delete(c.Ground, h)
}

// Grounded reports whether any terrain collider is touching
func (c ContactComponent) Grounded() bool {
	return len(c.Ground) > 0
}
