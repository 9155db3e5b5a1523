package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/ironrift/core"
)

// Context is the per-frame view state shared by renderers
// World X maps to columns, world -Z maps to rows going up
type Context struct {
	Width, Height int

	// Center is the world position drawn at the middle of the radar, the player when present
	Center mgl64.Vec3

	// Scale is world units per column; rows cover twice as much to offset cell aspect
	Scale float64

	Frame   int64
	Outcome core.Outcome
}

// ToScreen projects a world position onto the radar, ok is false when off screen
func (c Context) ToScreen(pos mgl64.Vec3) (x, y int, ok bool) {
	if c.Scale <= 0 {
		return 0, 0, false
	}
	dx := (pos.X() - c.Center.X()) / c.Scale
	dz := (pos.Z() - c.Center.Z()) / (2 * c.Scale)

	x = c.Width/2 + int(math.Round(dx))
	y = c.Height/2 + int(math.Round(dz))
	// Last row is the HUD
	return x, y, x >= 0 && x < c.Width && y >= 0 && y < c.Height-1
}

// ToWorld returns the world XZ at the center of a radar cell
func (c Context) ToWorld(x, y int) (wx, wz float64) {
	wx = c.Center.X() + float64(x-c.Width/2)*c.Scale
	wz = c.Center.Z() + float64(y-c.Height/2)*2*c.Scale
	return wx, wz
}

// HeadingGlyph returns an arrow for a yaw, nearest of eight directions
func HeadingGlyph(yaw float64) rune {
	// Look direction on screen: (-sin yaw, -cos yaw) in (x, -row)
	arrows := [8]rune{'↑', '↖', '←', '↙', '↓', '↘', '→', '↗'}
	oct := int(math.Round(yaw/(math.Pi/4))) % 8
	if oct < 0 {
		oct += 8
	}
	return arrows[oct]
}
