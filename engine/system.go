package engine

// System is a per-tick simulation step
// Systems that also implement event.Handler are registered with the router by the Scheduler
type System interface {
	// Init resets session state
	Init()

	// Name returns the system name used as log field
	Name() string

	// Priority orders systems within a tick, lower runs first
	Priority() int

	// Update runs one tick; reads time from Resources.Time
	Update()
}
