package component

// NPCComponent marks an AI-controlled unit
type NPCComponent struct {
	Speed float64
}

// PlayerComponent marks the locally controlled unit
type PlayerComponent struct {
	Sensitivity float64 // Degrees per mouse unit per second
	Speed       float64
	firing      bool    // Fire state on the previous tick, for edge detection
}

// FireEdge reports a press on this tick and stores the new state
func (p *PlayerComponent) FireEdge(pressed bool) bool {
	edge := pressed && !p.firing
	p.firing = pressed
	return edge
}
