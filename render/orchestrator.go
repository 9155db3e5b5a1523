package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/ironrift/engine"
)

// Renderer draws one layer of the radar
// Called under the world update lock; must not retain world state
type Renderer interface {
	Render(ctx Context, world *engine.World, screen tcell.Screen)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

type rendererEntry struct {
	renderer Renderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	screen    tcell.Screen
	renderers []rendererEntry
	regCount  int
	scale     float64
}

// NewOrchestrator creates an orchestrator drawing to screen at scale world units per column
func NewOrchestrator(screen tcell.Screen, scale float64) *Orchestrator {
	return &Orchestrator{
		screen:    screen,
		renderers: make([]rendererEntry, 0, 8),
		scale:     scale,
	}
}

// NewDefaultOrchestrator registers the standard radar layers
func NewDefaultOrchestrator(screen tcell.Screen, scale float64) *Orchestrator {
	o := NewOrchestrator(screen, scale)
	o.Register(&GridRenderer{Spacing: 10}, PriorityGrid)
	o.Register(&TerrainRenderer{}, PriorityTerrain)
	o.Register(&BulletRenderer{}, PriorityBullets)
	o.Register(&UnitRenderer{}, PriorityUnits)
	o.Register(&HUDRenderer{}, PriorityUI)
	return o
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(r Renderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// RenderFrame draws every visible layer from a consistent world snapshot and shows it
func (o *Orchestrator) RenderFrame(world *engine.World) {
	world.RunSafe(func() {
		ctx := o.context(world)

		o.screen.Fill(' ', Style(RgbHUD))
		for _, entry := range o.renderers {
			if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
				continue
			}
			entry.renderer.Render(ctx, world, o.screen)
		}
	})
	o.screen.Show()
}

func (o *Orchestrator) context(world *engine.World) Context {
	w, h := o.screen.Size()
	ctx := Context{
		Width:   w,
		Height:  h,
		Scale:   o.scale,
		Frame:   world.FrameNumber(),
		Outcome: world.Resources.Match.Outcome(),
	}
	if pos, ok := playerPosition(world); ok {
		ctx.Center = pos
	}
	return ctx
}

// playerPosition reads the local player's body translation
func playerPosition(world *engine.World) (mgl64.Vec3, bool) {
	e := world.Resources.Player.Entity
	if e == 0 {
		return mgl64.Vec3{}, false
	}
	body, ok := world.Components.Body.GetComponent(e)
	if !ok {
		return mgl64.Vec3{}, false
	}
	pos, err := world.Resources.Physics.World.Translation(body.Body)
	if err != nil {
		return mgl64.Vec3{}, false
	}
	return pos, true
}
