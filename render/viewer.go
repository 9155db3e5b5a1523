package render

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ironrift/engine"
	"github.com/lixenwraith/ironrift/parameter"
)

// Viewer redraws the radar at a fixed rate until ctx is cancelled
type Viewer struct {
	screen tcell.Screen
	world  *engine.World
	orch   *Orchestrator
}

// NewViewer creates a viewer with the default layers
func NewViewer(screen tcell.Screen, world *engine.World, scale float64) *Viewer {
	return &Viewer{
		screen: screen,
		world:  world,
		orch:   NewDefaultOrchestrator(screen, scale),
	}
}

// Draw renders one frame
func (v *Viewer) Draw() {
	v.orch.RenderFrame(v.world)
}

// Resize resynchronises the terminal after a size change
func (v *Viewer) Resize() {
	v.screen.Sync()
}

// Run draws every frame interval; a final frame is drawn on exit so the outcome stays visible
func (v *Viewer) Run(ctx context.Context) error {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			v.Draw()
			return nil
		case <-ticker.C:
			v.Draw()
		}
	}
}
