package parameter

// System Execution Priorities (lower runs first)
// Order is fixed: orchestration, controllers, state push, physics, resolution, lifecycle
const (
	PriorityBattle  = 10
	PrioritySpawn   = 20
	PriorityPlayer  = 30
	PriorityNPC     = 40
	PriorityUnit    = 50
	PriorityPhysics = 60
	PriorityContact = 70
	PriorityBullet  = 80
	PriorityAudio   = 900
)
