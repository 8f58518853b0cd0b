package system

import (
	"sync/atomic"

	"github.com/lixenwraith/quad-snap/engine"
	"github.com/lixenwraith/quad-snap/parameter"
)

// DiagSystem samples ECS store sizes and queue health into the status registry
type DiagSystem struct {
	world *engine.World

	tickCounter int64

	statEntityLive     *atomic.Int64
	statBodyCount      *atomic.Int64
	statColliderCount  *atomic.Int64
	statJointCount     *atomic.Int64
	statPieceCount     *atomic.Int64
	statEventsPending  *atomic.Int64
	statEventsDropped  *atomic.Int64
	statTasksPending   *atomic.Int64
	statGroupsComplete *atomic.Int64
}

// NewDiagSystem creates a new diagnostics system
func NewDiagSystem(world *engine.World) engine.System {
	reg := world.Resources.Status

	return &DiagSystem{
		world: world,

		statEntityLive:     reg.Int("entity.live"),
		statBodyCount:      reg.Int("store.body.count"),
		statColliderCount:  reg.Int("store.collider.count"),
		statJointCount:     reg.Int("store.joint.count"),
		statPieceCount:     reg.Int("store.piece.count"),
		statEventsPending:  reg.Int("event.pending"),
		statEventsDropped:  reg.Int("event.dropped"),
		statTasksPending:   reg.Int("scheduler.pending"),
		statGroupsComplete: reg.Int("place.completed_count"),
	}
}

func (s *DiagSystem) Priority() int {
	return parameter.PriorityDiagnostics
}

func (s *DiagSystem) Name() string {
	return "diag"
}

// Update samples every DiagSampleInterval ticks, starting with the first
func (s *DiagSystem) Update() {
	s.tickCounter++
	if (s.tickCounter-1)%parameter.DiagSampleInterval != 0 {
		return
	}

	w := s.world
	cs := w.Components

	s.statEntityLive.Store(int64(w.EntityCount()))
	s.statBodyCount.Store(int64(cs.Body.Len()))
	s.statColliderCount.Store(int64(cs.Collider.Len()))
	s.statJointCount.Store(int64(cs.Joint.Len()))
	s.statPieceCount.Store(int64(cs.Piece.Len()))
	s.statEventsPending.Store(int64(w.Resources.Events.Len()))
	s.statEventsDropped.Store(int64(w.Resources.Events.Dropped()))
	s.statTasksPending.Store(int64(len(w.Scheduler.Pending())))
	s.statGroupsComplete.Store(int64(w.Resources.Registry.Completed()))
}
