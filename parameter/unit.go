package parameter

// Unit body
const (
	// UnitCapsuleHalfHeight is the half length of the capsule segment
	UnitCapsuleHalfHeight = 0.5

	// UnitCapsuleRadius is the capsule radius
	UnitCapsuleRadius = 1.0
)

// Player controller
const (
	// PlayerSensitivity scales mouse delta (degrees per unit per second)
	PlayerSensitivity = 10.0

	// PlayerSpeed scales movement intent (units/sec)
	PlayerSpeed = 5.0

	// PlayerJumpImpulse is the vertical intent added while grounded, before speed scaling
	PlayerJumpImpulse = 1.0

	// PlayerSpawnX, PlayerSpawnY, PlayerSpawnZ is where the local player enters the arena
	PlayerSpawnX = 40.0
	PlayerSpawnY = 3.0
	PlayerSpawnZ = -50.0
)

// NPC controller
const (
	// NPCSpeed is movement speed of AI units (units/sec)
	NPCSpeed = 3.0

	// NPCEngageRadius is the distance under which a target is faced and fired on
	NPCEngageRadius = 15.0

	// NPCShootChance fires with probability 1/NPCShootChance per tick while engaged
	NPCShootChance = 30

	// NPCWanderChance turns with probability 1/NPCWanderChance per tick while idle
	NPCWanderChance = 30

	// NPCWanderDegrees bounds the idle turn offset to [-NPCWanderDegrees, NPCWanderDegrees]
	NPCWanderDegrees = 45

	// NPCMoveChance moves on (NPCMoveChance-1) of NPCMoveChance ticks
	NPCMoveChance = 3
)
