package parameter

import "time"

// Simulation Timing
const (
	// TickRate is the default number of simulation ticks per second
	TickRate = 60

	// TickInterval is the default fixed step between ticks
	TickInterval = time.Second / TickRate

	// FrameUpdateInterval is the viewer redraw interval (~30 FPS)
	FrameUpdateInterval = 33 * time.Millisecond

	// InputHoldWindow is how long a key stays pressed after its last terminal key event
	// Terminals report repeats, never releases
	InputHoldWindow = 150 * time.Millisecond

	// OutcomeDisplayHold keeps the final frame on screen before the terminal is restored
	OutcomeDisplayHold = 1500 * time.Millisecond
)

// ECS & Resources Limits
const (
	// EventQueueSize is the initial capacity of the event ring, doubled on overflow
	EventQueueSize = 2048
)
