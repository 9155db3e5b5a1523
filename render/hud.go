package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ironrift/component"
	"github.com/lixenwraith/ironrift/core"
	"github.com/lixenwraith/ironrift/engine"
)

// HUDRenderer draws the status line on the last row
type HUDRenderer struct{}

func (r *HUDRenderer) Render(ctx Context, world *engine.World, screen tcell.Screen) {
	if ctx.Height < 1 {
		return
	}
	y := ctx.Height - 1

	var teamOne, teamTwo int
	for _, e := range world.Components.Unit.GetAllEntities() {
		u, ok := world.Components.Unit.GetComponent(e)
		if !ok {
			continue
		}
		switch u.Team {
		case component.TeamOne:
			teamOne++
		case component.TeamTwo:
			teamTwo++
		}
	}

	hp := "-"
	if u, ok := world.Components.Unit.GetComponent(world.Resources.Player.Entity); ok {
		hp = fmt.Sprintf("%d", u.HP)
	}

	line := fmt.Sprintf(" HP %s  one %d  two %d  bullets %d  tick %d ",
		hp, teamOne, teamTwo, world.Components.Bullet.CountEntities(), ctx.Frame)
	x := drawText(screen, 0, y, ctx.Width, line, Style(RgbHUD).Reverse(true))

	if ctx.Outcome != core.OutcomeNone {
		drawText(screen, x+1, y, ctx.Width, " "+outcomeBanner(ctx.Outcome)+" ", Style(RgbHUDWarn).Bold(true).Reverse(true))
	}
}

func outcomeBanner(o core.Outcome) string {
	switch o {
	case core.OutcomeDefeat:
		return "DEFEATED"
	case core.OutcomeQuit:
		return "QUIT"
	default:
		return o.String()
	}
}

// drawText writes s from x, clipped at width, returns the column after the last rune
func drawText(screen tcell.Screen, x, y, width int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= width {
			break
		}
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
