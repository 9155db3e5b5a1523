package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ironrift/component"
)

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbGrid       = tcell.NewRGBColor(41, 46, 66)    // Faint radar grid
	RgbTerrain    = tcell.NewRGBColor(86, 95, 137)   // Arena bounds
	RgbTeamOne    = tcell.NewRGBColor(122, 162, 247) // Blue
	RgbTeamTwo    = tcell.NewRGBColor(247, 118, 142) // Red
	RgbTeamNone   = tcell.NewRGBColor(169, 177, 214) // Neutral
	RgbPlayer     = tcell.NewRGBColor(224, 175, 104) // Amber
	RgbBullet     = tcell.NewRGBColor(255, 255, 255)
	RgbHUD        = tcell.NewRGBColor(192, 202, 245)
	RgbHUDWarn    = tcell.NewRGBColor(255, 158, 100)
)

// TeamColor returns the marker color for a team
func TeamColor(t component.TeamID) tcell.Color {
	switch t {
	case component.TeamOne:
		return RgbTeamOne
	case component.TeamTwo:
		return RgbTeamTwo
	default:
		return RgbTeamNone
	}
}

// Style returns the default background with the given foreground
func Style(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Background(RgbBackground).Foreground(fg)
}
