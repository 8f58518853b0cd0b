package system

import (
	"log"
	"strings"
	"sync/atomic"

	"github.com/lixenwraith/quad-snap/component"
	"github.com/lixenwraith/quad-snap/core"
	"github.com/lixenwraith/quad-snap/engine"
	"github.com/lixenwraith/quad-snap/event"
	"github.com/lixenwraith/quad-snap/parameter"
)

// MergeSystem folds a completed group into its anchor body
// Jointed pieces lose their joint and body and ride on the anchor as part of one compound body
type MergeSystem struct {
	world *engine.World

	statMerges *atomic.Int64
}

// NewMergeSystem creates the assembly merge system
func NewMergeSystem(world *engine.World) *MergeSystem {
	return &MergeSystem{
		world:      world,
		statMerges: world.Resources.Status.Int("merge.count"),
	}
}

func (s *MergeSystem) Priority() int {
	return parameter.PriorityPhysics + 20
}

func (s *MergeSystem) Name() string {
	return "merge"
}

// EventTypes returns the event types MergeSystem handles
func (s *MergeSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGroupComplete}
}

// HandleEvent merges the completed group
func (s *MergeSystem) HandleEvent(ev event.GameEvent) {
	if p, ok := ev.Payload.(*event.GroupCompletePayload); ok {
		s.Merge(p.Anchor)
	}
}

// Update implements System interface (event driven)
func (s *MergeSystem) Update() {}

// Merge removes every joint below anchor that connects to it, together with the jointed body,
// then retunes the anchor as the heavier unified body. Middle pieces are never folded.
// Returns the number of bodies removed
func (s *MergeSystem) Merge(anchor core.Entity) int {
	w := s.world
	cs := w.Components
	anchorName := cs.NameOf(anchor)

	if !w.Alive(anchor) || !cs.Body.Has(anchor) {
		log.Printf("[merge] anchor %d (%s) has no body, merge skipped", anchor, anchorName)
		return 0
	}

	log.Printf("[merge] unifying parts of %s", anchorName)

	removed := 0
	for _, e := range w.Descendants(anchor) {
		j, ok := cs.Joint.Get(e)
		if !ok || j.Connected != anchor {
			continue
		}
		if e == anchor || !cs.Body.Has(e) {
			continue
		}
		if strings.Contains(strings.ToLower(cs.NameOf(e)), "middle") {
			continue
		}
		cs.Joint.Remove(e)
		cs.Body.Remove(e)
		removed++
	}

	cs.Body.Update(anchor, func(b *component.BodyComponent) {
		b.Mass = parameter.MergedMass
		b.Drag = parameter.PieceLinearDamping
		b.AngularDrag = parameter.PieceAngularDamping
		b.CollisionMode = component.CollisionContinuousDynamic
		b.MaxDepenetration = parameter.MaxDepenetration
	})

	s.statMerges.Add(1)
	log.Printf("[merge] %s unified, %d body(ies) folded", anchorName, removed)

	w.PushEvent(event.EventAssemblyMerged, &event.AssemblyMergedPayload{Anchor: anchor, Removed: removed})
	w.PlaySound(core.SoundMerge)
	return removed
}
