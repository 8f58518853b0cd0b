package system

import (
	"github.com/lixenwraith/quad-snap/engine"
	"github.com/lixenwraith/quad-snap/event"
	"github.com/lixenwraith/quad-snap/parameter"
)

// AudioSystem consumes sound request events and plays audio
// Decouples game systems from direct audio engine access
type AudioSystem struct {
	world *engine.World
}

// NewAudioSystem creates an audio system reading the player from world resources
// The player may be absent when audio is disabled
func NewAudioSystem(world *engine.World) engine.System {
	return &AudioSystem{world: world}
}

func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

func (s *AudioSystem) Name() string {
	return "audio"
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSoundRequest}
}

// HandleEvent plays requested cues
func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	res := s.world.Resources.Audio
	if res == nil || res.Player == nil {
		return
	}
	payload, ok := ev.Payload.(*event.SoundRequestPayload)
	if !ok {
		return
	}
	res.Player.Play(payload.SoundType)
}

// Update implements System interface (no tick-based logic)
func (s *AudioSystem) Update() {}
