package event

// EventType represents the type of game event
type EventType int

const (
	// EventTick is reserved so a zero-value GameEvent is never mistaken for a real event
	EventTick EventType = iota

	// === Physics Event ===

	// EventProximityStay signals a solid collider overlapping a tagged trigger this step
	// Trigger: PhysicsSystem, once per (source, target) pair per step
	// Consumer: SnapSystem, PlacementSystem | Payload: *ProximityPayload
	EventProximityStay

	// EventCollisionEnter signals a body first touching another body or static geometry
	// Trigger: PhysicsSystem on contact start
	// Consumer: DampenerSystem | Payload: *CollisionPayload
	EventCollisionEnter

	// === Assembly Event ===

	// EventPieceJoined signals a piece accepted into a group
	// Trigger: SnapSystem
	// Consumer: network feed | Payload: *PieceJoinedPayload
	EventPieceJoined

	// EventGroupComplete signals a group reached the merge threshold
	// Trigger: SnapSystem, delivered by a scheduled task after the count was reset
	// Consumer: MergeSystem | Payload: *GroupCompletePayload
	EventGroupComplete

	// EventAssemblyMerged signals a group unified into its anchor body
	// Trigger: MergeSystem
	// Consumer: network feed | Payload: *AssemblyMergedPayload
	EventAssemblyMerged

	// EventAssemblyLocked signals an assembly locked onto an end slot
	// Trigger: PlacementSystem
	// Consumer: network feed | Payload: *AssemblyLockedPayload
	EventAssemblyLocked

	// EventAllAssembliesComplete fires once when the locked count reaches the total
	// Trigger: PlacementSystem, delivered immediately
	// Consumer: CompletionSystem, network feed | Payload: nil
	EventAllAssembliesComplete

	// === Audio Event ===

	// EventSoundRequest requests audio playback
	// Trigger: Systems requiring audio feedback
	// Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest

	// === Session Event ===

	// EventSessionReset clears registry state and per-system latches
	// Trigger: sandbox input
	// Consumer: systems holding session state | Payload: nil
	EventSessionReset
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64 // Frame number when the event was created
}
