package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ironrift/engine"
)

// GridRenderer dots the radar every Spacing world units
type GridRenderer struct {
	Spacing float64
	Hidden  bool
}

func (r *GridRenderer) IsVisible() bool { return !r.Hidden }

func (r *GridRenderer) Render(ctx Context, _ *engine.World, screen tcell.Screen) {
	if r.Spacing <= 0 {
		return
	}
	style := Style(RgbGrid)
	half := ctx.Scale / 2
	for y := 0; y < ctx.Height-1; y++ {
		for x := 0; x < ctx.Width; x++ {
			wx, wz := ctx.ToWorld(x, y)
			if onLine(wx, r.Spacing, half) && onLine(wz, r.Spacing, ctx.Scale) {
				screen.SetContent(x, y, '·', nil, style)
			}
		}
	}
}

// onLine reports whether v is within tol of a multiple of spacing
func onLine(v, spacing, tol float64) bool {
	m := math.Mod(math.Abs(v), spacing)
	return m < tol || spacing-m < tol
}

// TerrainRenderer outlines the footprint of every terrain box
type TerrainRenderer struct{}

func (r *TerrainRenderer) Render(ctx Context, world *engine.World, screen tcell.Screen) {
	style := Style(RgbTerrain)
	for _, e := range world.Components.Terrain.GetAllEntities() {
		body, ok := world.Components.Body.GetComponent(e)
		if !ok {
			continue
		}
		center, err := world.Resources.Physics.World.Translation(body.Body)
		if err != nil {
			continue
		}
		half, ok := world.Components.Terrain.GetComponent(e)
		if !ok {
			continue
		}

		minX, minY, _ := ctx.ToScreen(center.Sub(half.HalfExtents))
		maxX, maxY, _ := ctx.ToScreen(center.Add(half.HalfExtents))
		for x := max(minX, 0); x <= min(maxX, ctx.Width-1); x++ {
			drawIfVisible(ctx, screen, x, minY, '─', style)
			drawIfVisible(ctx, screen, x, maxY, '─', style)
		}
		for y := max(minY, 0); y <= min(maxY, ctx.Height-2); y++ {
			drawIfVisible(ctx, screen, minX, y, '│', style)
			drawIfVisible(ctx, screen, maxX, y, '│', style)
		}
	}
}

func drawIfVisible(ctx Context, screen tcell.Screen, x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= ctx.Width || y < 0 || y >= ctx.Height-1 {
		return
	}
	screen.SetContent(x, y, ch, nil, style)
}

// BulletRenderer marks live projectiles
type BulletRenderer struct{}

func (r *BulletRenderer) Render(ctx Context, world *engine.World, screen tcell.Screen) {
	style := Style(RgbBullet)
	for _, e := range world.Components.Bullet.GetAllEntities() {
		body, ok := world.Components.Body.GetComponent(e)
		if !ok {
			continue
		}
		pos, err := world.Resources.Physics.World.Translation(body.Body)
		if err != nil {
			continue
		}
		if x, y, ok := ctx.ToScreen(pos); ok {
			screen.SetContent(x, y, '•', nil, style)
		}
	}
}

// UnitRenderer draws units as team-colored heading arrows, the player as '@'
type UnitRenderer struct{}

func (r *UnitRenderer) Render(ctx Context, world *engine.World, screen tcell.Screen) {
	player := world.Resources.Player.Entity
	for _, e := range world.Components.Unit.GetAllEntities() {
		unit, ok := world.Components.Unit.GetComponent(e)
		if !ok {
			continue
		}
		body, ok := world.Components.Body.GetComponent(e)
		if !ok {
			continue
		}
		pos, err := world.Resources.Physics.World.Translation(body.Body)
		if err != nil {
			continue
		}
		x, y, ok := ctx.ToScreen(pos)
		if !ok {
			continue
		}

		if e == player {
			screen.SetContent(x, y, '@', nil, Style(RgbPlayer).Bold(true))
			continue
		}
		screen.SetContent(x, y, HeadingGlyph(unit.Yaw), nil, Style(TeamColor(unit.Team)))
	}
}
