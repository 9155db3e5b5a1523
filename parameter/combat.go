package parameter

import "time"

// Hit Points
const (
	// CombatInitialHP is unit starting hit points
	CombatInitialHP = 3

	// CombatBulletDamage is hit points removed per bullet contact
	CombatBulletDamage = 1
)

// Bullet
const (
	// BulletLifetime is the age after which a bullet is retired
	BulletLifetime = 2 * time.Second

	// BulletSpeed is launch speed along the look direction (units/sec)
	BulletSpeed = 300.0

	// BulletMuzzleOffset is the spawn distance ahead of the unit center
	BulletMuzzleOffset = 2.0

	// BulletRadius is the ball collider radius
	BulletRadius = 0.1
)
