package system

import (
	"sync/atomic"

	"github.com/lixenwraith/quad-snap/core"
	"github.com/lixenwraith/quad-snap/engine"
	"github.com/lixenwraith/quad-snap/event"
	"github.com/lixenwraith/quad-snap/parameter"
	"github.com/lixenwraith/quad-snap/physics"
)

// PhysicsSystem integrates bodies and feeds contact and trigger events back into the world
// Events are pushed during Update and handled on the next tick's dispatch
type PhysicsSystem struct {
	world *engine.World

	// Bodies touching the floor at the end of the previous step
	resting map[core.Entity]bool

	statOverlaps *atomic.Int64
	statContacts *atomic.Int64
}

// NewPhysicsSystem creates the physics step system
func NewPhysicsSystem(world *engine.World) engine.System {
	s := &PhysicsSystem{
		world:        world,
		statOverlaps: world.Resources.Status.Int("physics.overlaps"),
		statContacts: world.Resources.Status.Int("physics.contacts"),
	}
	s.Init()
	return s
}

// Init resets contact state for a new session
func (s *PhysicsSystem) Init() {
	s.resting = make(map[core.Entity]bool)
}

func (s *PhysicsSystem) Priority() int {
	return parameter.PriorityPhysics
}

func (s *PhysicsSystem) Name() string {
	return "physics"
}

// EventTypes returns the event types PhysicsSystem handles
func (s *PhysicsSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSessionReset}
}

// HandleEvent processes session reset
func (s *PhysicsSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventSessionReset {
		s.Init()
	}
}

// Update steps the simulation, then reports new floor hits and every trigger overlap
func (s *PhysicsSystem) Update() {
	w := s.world
	cfg := w.Resources.Config

	contacts := physics.Integrate(w, w.Resources.Time.DeltaTime, cfg.Gravity, cfg.Floor)

	resting := make(map[core.Entity]bool, len(contacts))
	for _, c := range contacts {
		resting[c.Body] = true
		if s.resting[c.Body] {
			continue
		}
		w.PushEvent(event.EventCollisionEnter, &event.CollisionPayload{
			Entity:        c.Body,
			RelativeSpeed: c.Speed,
		})
	}
	s.resting = resting
	s.statContacts.Store(int64(len(contacts)))

	overlaps := physics.DetectTriggers(w)
	for _, o := range overlaps {
		w.PushEvent(event.EventProximityStay, &event.ProximityPayload{
			Source: o.Source,
			Body:   o.Body,
			Target: o.Target,
		})
	}
	s.statOverlaps.Store(int64(len(overlaps)))
}
