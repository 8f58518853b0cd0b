package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/quad-snap/component"
	"github.com/lixenwraith/quad-snap/core"
	"github.com/lixenwraith/quad-snap/engine"
	"github.com/lixenwraith/quad-snap/event"
	"github.com/lixenwraith/quad-snap/parameter"
)

// CompletionSystem runs the one-shot side effect once every assembly is locked
type CompletionSystem struct {
	world *engine.World

	done bool

	statCompleted *atomic.Int64
}

// NewCompletionSystem creates the completion system
func NewCompletionSystem(world *engine.World) engine.System {
	s := &CompletionSystem{
		world:         world,
		statCompleted: world.Resources.Status.Int("place.completed"),
	}
	s.Init()
	return s
}

// Init resets session state
func (s *CompletionSystem) Init() {
	s.done = false
	s.statCompleted.Store(0)
}

func (s *CompletionSystem) Priority() int {
	return parameter.PriorityPhysics + 40
}

func (s *CompletionSystem) Name() string {
	return "completion"
}

// EventTypes returns the event types CompletionSystem handles
func (s *CompletionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventAllAssembliesComplete,
		event.EventSessionReset,
	}
}

// HandleEvent activates the effect and invokes the completion callback
func (s *CompletionSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventSessionReset:
		s.Init()
	case event.EventAllAssembliesComplete:
		s.complete()
	}
}

// Update implements System interface (event driven)
func (s *CompletionSystem) Update() {}

func (s *CompletionSystem) complete() {
	if s.done {
		return
	}
	s.done = true
	s.statCompleted.Store(1)

	w := s.world
	res := w.Resources.Completion
	if res == nil {
		log.Printf("[endsnap] warning: no completion resource configured")
		w.PlaySound(core.SoundComplete)
		return
	}

	if res.Effect != 0 && w.Components.Effect.Update(res.Effect, func(e *component.EffectComponent) { e.Active = true }) {
		log.Printf("[endsnap] effect %s activated", w.Components.NameOf(res.Effect))
	} else {
		log.Printf("[endsnap] warning: completion effect object is missing")
	}

	if res.OnComplete != nil {
		res.OnComplete()
	}
	w.PlaySound(core.SoundComplete)
}
