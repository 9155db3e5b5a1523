package event

// EventType represents the type of simulation event
type EventType int

const (
	// EventNone is the zero value, never emitted
	EventNone EventType = iota

	// === Lifecycle Event ===

	// EventDespawnRequest requests idempotent destruction of a unit or bullet
	// Trigger: ContactSystem (NPC killed), BulletSystem (expired, impacted)
	// Consumer: DeathSystem | Payload: core.Entity
	EventDespawnRequest

	// EventUnitSpawned reports a unit entering the arena
	// Trigger: SpawnSystem, SpawnPlayer
	// Consumer: none required, observable by tests and viewers | Payload: *UnitSpawnedPayload
	EventUnitSpawned

	// === Combat Event ===

	// EventBulletImpact reports a Started contact involving a bullet collider
	// Trigger: ContactSystem
	// Consumer: BulletSystem | Payload: *BulletImpactPayload
	EventBulletImpact

	// EventUnitHit reports a unit losing HP to a bullet contact
	// Trigger: ContactSystem
	// Consumer: AudioSystem | Payload: *UnitHitPayload
	EventUnitHit

	// EventMatchEnd signals the match has reached a terminal outcome
	// Trigger: ContactSystem (player defeat), PlayerSystem (quit)
	// Consumer: AudioSystem, host | Payload: *MatchEndPayload
	EventMatchEnd

	// === Audio Event ===

	// EventSoundRequest requests audio playback
	// Trigger: Systems requiring audio feedback
	// Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest
)

var eventNames = map[EventType]string{
	EventNone:           "None",
	EventDespawnRequest: "DespawnRequest",
	EventUnitSpawned:    "UnitSpawned",
	EventBulletImpact:   "BulletImpact",
	EventUnitHit:        "UnitHit",
	EventMatchEnd:       "MatchEnd",
	EventSoundRequest:   "SoundRequest",
}

// String returns the registered event name, used as a log field
func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is a single queued event tagged with the frame it was emitted in
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
