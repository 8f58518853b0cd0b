package system

import (
	"log"
	"strings"
	"sync/atomic"

	"github.com/lixenwraith/quad-snap/component"
	"github.com/lixenwraith/quad-snap/core"
	"github.com/lixenwraith/quad-snap/engine"
	"github.com/lixenwraith/quad-snap/event"
	"github.com/lixenwraith/quad-snap/identity"
	"github.com/lixenwraith/quad-snap/parameter"
	"github.com/lixenwraith/quad-snap/vmath"
)

// PlacementSystem locks assembled letters onto end slots and counts toward completion
// Each assembly locks at most once and each slot is used at most once
type PlacementSystem struct {
	world *engine.World

	statLocks   *atomic.Int64
	statRejects *atomic.Int64
}

// NewPlacementSystem creates the end slot placement system
func NewPlacementSystem(world *engine.World) *PlacementSystem {
	return &PlacementSystem{
		world:       world,
		statLocks:   world.Resources.Status.Int("place.locks"),
		statRejects: world.Resources.Status.Int("place.rejects"),
	}
}

func (s *PlacementSystem) Priority() int {
	return parameter.PriorityPhysics + 30
}

func (s *PlacementSystem) Name() string {
	return "placement"
}

// EventTypes returns the event types PlacementSystem handles
func (s *PlacementSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventProximityStay}
}

// HandleEvent routes end slot overlaps to the assembly carrying the collider
func (s *PlacementSystem) HandleEvent(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.ProximityPayload)
	if !ok {
		return
	}
	cs := s.world.Components
	if cs.TagOf(p.Target) != parameter.EndSnapPointTag {
		return
	}
	switch {
	case cs.Assembly.Has(p.Source):
		s.TryLock(p.Source, p.Target)
	case cs.Assembly.Has(p.Body):
		s.TryLock(p.Body, p.Target)
	}
}

// Update implements System interface (event driven)
func (s *PlacementSystem) Update() {}

// TryLock locks the assembly held by holder onto slot when every precondition holds
// Returns true when the lock happened
func (s *PlacementSystem) TryLock(holder, slot core.Entity) bool {
	w := s.world
	cs := w.Components
	cfg := w.Resources.Config
	reg := w.Resources.Registry

	asm, ok := cs.Assembly.Get(holder)
	if !ok || asm.Locked {
		return false
	}
	if reg.Occupied(slot) {
		return false
	}

	body := w.BodyOf(holder)
	if body == 0 {
		log.Printf("[endsnap] warning: %s has no body to snap", cs.NameOf(holder))
		return false
	}
	bodyName := cs.NameOf(body)
	slotName := cs.NameOf(slot)

	if vmath.V3FDist(w.WorldPosition(body), w.WorldPosition(slot)) > cfg.EndSnapDistance {
		return false
	}

	if joined := reg.Joined(body); joined < cfg.MinAssembledPieces {
		s.statRejects.Add(1)
		log.Printf("[endsnap] %s rejected, only %d/%d pieces attached", bodyName, joined, cfg.MinAssembledPieces)
		return false
	}

	letter := identity.SlotLetterKey(bodyName)
	if asm.LetterOverride != "" {
		letter = strings.ToLower(asm.LetterOverride)
	}
	slotLetter := identity.SlotLetterKey(slotName)
	if !identity.LettersCompatible(letter, slotLetter) {
		s.statRejects.Add(1)
		log.Printf("[endsnap] %s (letter %q) cannot snap to %s (letter %q)", bodyName, letter, slotName, slotLetter)
		return false
	}

	s.lock(holder, body, slot, letter)
	return true
}

// lock applies the final snap; the latch is set before any side effect
func (s *PlacementSystem) lock(holder, body, slot core.Entity, letter string) {
	w := s.world
	cs := w.Components
	reg := w.Resources.Registry

	cs.Assembly.Update(holder, func(a *component.AssemblyComponent) { a.Locked = true })
	if !reg.Occupy(slot) {
		return
	}
	log.Printf("[endsnap] snapping %s to end marker %s", cs.NameOf(body), cs.NameOf(slot))

	cs.Collider.Update(slot, func(c *component.ColliderComponent) { c.Enabled = false })
	subtree := w.Subtree(body)
	for _, e := range subtree {
		cs.Collider.Update(e, func(c *component.ColliderComponent) { c.Enabled = false })
	}

	Disengage(w, body)

	pos, rot := w.WorldPose(slot)
	w.SetWorldPose(body, pos, rot)
	if parent := w.Parent(slot); parent != 0 {
		w.SetParent(body, parent)
	}

	for _, e := range subtree {
		cs.Body.Update(e, func(b *component.BodyComponent) {
			b.Velocity = vmath.Vec3F{}
			b.AngularVelocity = vmath.Vec3F{}
			b.UseGravity = false
			b.Kinematic = true
			b.CollisionMode = component.CollisionDiscrete
		})
		cs.Collider.Update(e, func(c *component.ColliderComponent) { c.IsTrigger = true })
	}

	completed, fire := reg.RecordLock()
	s.statLocks.Add(1)
	log.Printf("[endsnap] global snapped count = %d/%d", completed, reg.Total())

	w.PushEvent(event.EventAssemblyLocked, &event.AssemblyLockedPayload{
		Anchor:    body,
		Slot:      slot,
		Letter:    letter,
		Completed: completed,
		Total:     reg.Total(),
	})
	w.PlaySound(core.SoundLock)

	if fire {
		log.Printf("[endsnap] all blocks snapped, triggering final event")
		w.DeliverEvent(event.EventAllAssembliesComplete, nil)
	}
}
