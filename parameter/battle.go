package parameter

// Default battle layout
const (
	// BattleUnitsPerTeam is the NPC quota per team
	BattleUnitsPerTeam = 20

	// BattleTeamOneX, BattleTeamOneY, BattleTeamOneZ is team one's spawn point
	BattleTeamOneX = 50.0
	BattleTeamOneY = 2.0
	BattleTeamOneZ = 0.0

	// BattleTeamTwoX, BattleTeamTwoY, BattleTeamTwoZ is team two's spawn point
	BattleTeamTwoX = -50.0
	BattleTeamTwoY = 2.0
	BattleTeamTwoZ = 0.0
)

// Arena stand-in
const (
	// ArenaGravity is downward acceleration (units/sec^2)
	ArenaGravity = 9.81

	// ArenaContactSkin is the gap under which resting shapes still report contact
	ArenaContactSkin = 0.02

	// ArenaFloorHalfExtent is half the side of the default square floor
	ArenaFloorHalfExtent = 100.0

	// ArenaFloorThickness is the default floor slab half height
	ArenaFloorThickness = 0.5
)
