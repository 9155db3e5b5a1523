package core

// SoundType represents different combat sound cues
type SoundType int

const (
	SoundShot   SoundType = iota // Bullet fired
	SoundHit                     // Unit took a bullet
	SoundDeath                   // NPC unit destroyed
	SoundDefeat                  // Player unit destroyed
	SoundTypeCount
)

// String returns the cue name used in logs
func (s SoundType) String() string {
	switch s {
	case SoundShot:
		return "shot"
	case SoundHit:
		return "hit"
	case SoundDeath:
		return "death"
	case SoundDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}
