package event

import (
	"reflect"
	"sync"
)

var (
	registryOnce  sync.Once
	nameToType    = make(map[string]EventType)
	typeToName    = make(map[EventType]string)
	typeToPayload = make(map[EventType]reflect.Type)
)

// RegisterType maps a string name to an EventType and its payload struct type
// payloadInstance should be a pointer to the payload struct (e.g., &PieceJoinedPayload{})
// Pass nil if the event has no payload
func RegisterType(name string, et EventType, payloadInstance any) {
	nameToType[name] = et
	typeToName[et] = name
	if payloadInstance != nil {
		t := reflect.TypeOf(payloadInstance)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		typeToPayload[et] = t
	}
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	InitRegistry()
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the wire name for an EventType, "" if unregistered
func GetEventName(et EventType) string {
	InitRegistry()
	return typeToName[et]
}

// NewPayloadStruct returns a new pointer to a zero-value payload struct for the event type
// Returns nil if no payload is registered
func NewPayloadStruct(et EventType) any {
	InitRegistry()
	t, ok := typeToPayload[et]
	if !ok {
		return nil
	}
	return reflect.New(t).Interface()
}

// InitRegistry populates the registry with all game events, safe to call repeatedly
func InitRegistry() {
	registryOnce.Do(func() {
		RegisterType("tick", EventTick, nil)

		RegisterType("proximity_stay", EventProximityStay, &ProximityPayload{})
		RegisterType("collision_enter", EventCollisionEnter, &CollisionPayload{})

		RegisterType("piece_joined", EventPieceJoined, &PieceJoinedPayload{})
		RegisterType("group_complete", EventGroupComplete, &GroupCompletePayload{})
		RegisterType("assembly_merged", EventAssemblyMerged, &AssemblyMergedPayload{})
		RegisterType("assembly_locked", EventAssemblyLocked, &AssemblyLockedPayload{})
		RegisterType("all_assemblies_complete", EventAllAssembliesComplete, nil)

		RegisterType("sound_request", EventSoundRequest, &SoundRequestPayload{})
		RegisterType("session_reset", EventSessionReset, nil)
	})
}
