package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityGrid
	PriorityTerrain
	PriorityBullets
	PriorityUnits
	PriorityUI
)
