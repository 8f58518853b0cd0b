package system

import (
	"github.com/lixenwraith/quad-snap/component"
	"github.com/lixenwraith/quad-snap/engine"
	"github.com/lixenwraith/quad-snap/event"
	"github.com/lixenwraith/quad-snap/parameter"
	"github.com/lixenwraith/quad-snap/vmath"
)

// DampenerSystem stops pieces dead when they hit static geometry hard
type DampenerSystem struct {
	world *engine.World
}

// NewDampenerSystem creates the collision dampener
func NewDampenerSystem(world *engine.World) engine.System {
	return &DampenerSystem{world: world}
}

func (s *DampenerSystem) Priority() int {
	return parameter.PriorityPhysics + 50
}

func (s *DampenerSystem) Name() string {
	return "dampener"
}

// EventTypes returns the event types DampenerSystem handles
func (s *DampenerSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventCollisionEnter}
}

// HandleEvent zeroes velocity of a piece hitting static geometry above the dampen speed
func (s *DampenerSystem) HandleEvent(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.CollisionPayload)
	if !ok || p.Other != 0 {
		return
	}
	if p.RelativeSpeed <= s.world.Resources.Config.DampenSpeed {
		return
	}
	if !s.world.Components.Piece.Has(p.Entity) {
		return
	}
	s.world.Components.Body.Update(p.Entity, func(b *component.BodyComponent) {
		b.Velocity = vmath.Vec3F{}
		b.AngularVelocity = vmath.Vec3F{}
	})
}

// Update implements System interface (event driven)
func (s *DampenerSystem) Update() {}
