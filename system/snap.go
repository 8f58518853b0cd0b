package system

import (
	"log"
	"math"
	"strings"
	"sync/atomic"

	"github.com/lixenwraith/quad-snap/component"
	"github.com/lixenwraith/quad-snap/core"
	"github.com/lixenwraith/quad-snap/engine"
	"github.com/lixenwraith/quad-snap/event"
	"github.com/lixenwraith/quad-snap/identity"
	"github.com/lixenwraith/quad-snap/parameter"
	"github.com/lixenwraith/quad-snap/physics"
	"github.com/lixenwraith/quad-snap/vmath"
)

// SnapSystem negotiates piece joins on snap point proximity
// Middle pieces are passive receivers; every other piece tries to join the middle of its letter
// Rejections leave state unchanged and are retried on the next overlap
type SnapSystem struct {
	world *engine.World

	statJoins   *atomic.Int64
	statRejects *atomic.Int64
}

// NewSnapSystem creates the snap negotiation system
func NewSnapSystem(world *engine.World) *SnapSystem {
	return &SnapSystem{
		world:       world,
		statJoins:   world.Resources.Status.Int("snap.joins"),
		statRejects: world.Resources.Status.Int("snap.rejects"),
	}
}

func (s *SnapSystem) Priority() int {
	return parameter.PriorityPhysics + 10
}

func (s *SnapSystem) Name() string {
	return "snap"
}

// EventTypes returns the event types SnapSystem handles
func (s *SnapSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventProximityStay}
}

// HandleEvent routes snap point overlaps into TryJoin
func (s *SnapSystem) HandleEvent(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.ProximityPayload)
	if !ok {
		return
	}
	if s.world.Components.TagOf(p.Target) != parameter.SnapPointTag {
		return
	}
	s.TryJoin(p.Body, p.Target)
}

// Update implements System interface (event driven)
func (s *SnapSystem) Update() {}

// TryJoin attempts to attach candidate to its letter's middle through the snap point target
// Returns true when the join was accepted
func (s *SnapSystem) TryJoin(candidate, target core.Entity) bool {
	w := s.world
	cfg := w.Resources.Config
	reg := w.Resources.Registry

	piece, ok := w.Components.Piece.Get(candidate)
	if !ok || !w.Components.Body.Has(candidate) {
		return false
	}
	name := w.Components.NameOf(candidate)
	id := identity.Resolve(name)
	if id.Role == identity.RoleMiddle || piece.Joined {
		return false
	}
	if !w.Alive(target) {
		return false
	}
	if vmath.V3FDist(w.WorldPosition(candidate), w.WorldPosition(target)) > cfg.SnapDistance {
		return false
	}

	if id.Role == identity.RoleUnknown {
		return s.reject("%s has no role in its name", name)
	}

	anchor := s.ResolveAnchor(id.Letter, candidate, target)
	if anchor == 0 {
		return s.reject("%s could not find a valid middle for %q", name, id.Letter)
	}
	anchorName := w.Components.NameOf(anchor)

	anchorLetter := identity.LetterKey(anchorName)
	if id.Letter == "" || anchorLetter == "" || id.Letter != anchorLetter {
		return s.reject("%s and %s are from different letters (%q vs %q)", name, anchorName, id.Letter, anchorLetter)
	}

	if cfg.IsConstrained(id.Letter) {
		targetName := w.Components.NameOf(target)
		if (id.Role == identity.RoleTop || id.Role == identity.RoleBottom) && !identity.NameHasRole(targetName, id.Role) {
			return s.reject("%s cannot attach to %q (needs %s snap)", name, targetName, id.Role)
		}
		if reg.HasRole(anchor, id.Role) {
			return s.reject("%s already has a %s attached, duplicate prevented", anchorName, id.Role)
		}
	}
	reg.RegisterRole(anchor, id.Role)

	// Role stays registered: nothing is rolled back on a late reject
	if anchor == candidate {
		return s.reject("%s resolved to itself as anchor", name)
	}

	s.attach(candidate, anchor, target, id)
	return true
}

// ResolveAnchor finds the middle piece of letter for candidate, trying in order:
// the candidate itself, nearby bodies, the parent chain, every body in the world
// Returns 0 when no anchor exists
func (s *SnapSystem) ResolveAnchor(letter string, candidate, target core.Entity) core.Entity {
	w := s.world
	cs := w.Components

	if strings.Contains(strings.ToLower(cs.NameOf(candidate)), "middle") {
		return candidate
	}

	origin := w.WorldPosition(candidate)
	for _, body := range physics.OverlapSphere(w, origin, w.Resources.Config.AnchorSearchRadius, candidate) {
		if identity.IsAnchorName(cs.NameOf(body), letter) {
			return body
		}
	}

	for p, depth := w.Parent(candidate), 0; p != 0 && depth < 64; depth++ {
		if identity.IsAnchorName(cs.NameOf(p), letter) && cs.Body.Has(p) {
			return p
		}
		p = w.Parent(p)
	}

	for _, body := range cs.Body.All() {
		if body != candidate && identity.IsAnchorName(cs.NameOf(body), letter) {
			return body
		}
	}
	return 0
}

// attach applies an accepted join
func (s *SnapSystem) attach(candidate, anchor, target core.Entity, id identity.Identity) {
	w := s.world
	cs := w.Components
	cfg := w.Resources.Config
	name := cs.NameOf(candidate)

	Disengage(w, candidate)
	cs.Piece.Update(candidate, func(p *component.PieceComponent) { p.Joined = true })

	pos, rot := w.WorldPose(target)
	w.SetWorldPose(candidate, pos, rot)
	w.SetParent(candidate, anchor)

	for _, e := range w.Subtree(candidate) {
		helper := identity.IsHelperCollider(cs.NameOf(e), parameter.HelperColliderName)
		cs.Collider.Update(e, func(c *component.ColliderComponent) { c.Enabled = !helper })
	}

	ReleaseLocker(w, candidate, cfg.LockerRestoreDelay)
	w.Scheduler.AfterTicks(1, "joint", func(w *engine.World) {
		createJoint(w, candidate, anchor)
	})

	cs.Body.Update(candidate, func(b *component.BodyComponent) {
		b.Kinematic = false
		b.UseGravity = true
		b.DetectCollisions = true
		b.Mass = parameter.PieceMass
		b.Drag = parameter.PieceLinearDamping
		b.AngularDrag = parameter.PieceAngularDamping
		b.SolverIterations = parameter.PieceSolverIterations
		b.SolverVelocityIterations = parameter.PieceSolverIterations
		b.MaxDepenetration = parameter.MaxDepenetration
		b.CollisionMode = component.CollisionContinuousDynamic
	})

	reg := w.Resources.Registry
	count := reg.IncrementCount(anchor)
	s.statJoins.Add(1)
	log.Printf("[snap] %s joined %s, now %d part(s) attached", name, cs.NameOf(anchor), count)

	w.PushEvent(event.EventPieceJoined, &event.PieceJoinedPayload{
		Piece:  candidate,
		Anchor: anchor,
		Letter: id.Letter,
		Role:   id.Role.String(),
		Count:  count,
	})
	w.PlaySound(core.SoundJoin)

	if count >= cfg.MergeThreshold {
		reg.ResetCount(anchor)
		// Runs after the joint task above so the third joint exists when the group merges
		w.Scheduler.AfterTicks(1, "merge", func(w *engine.World) {
			w.DeliverEvent(event.EventGroupComplete, &event.GroupCompletePayload{Anchor: anchor})
		})
	}
}

// createJoint runs one step after the join; either body may be gone by then
func createJoint(w *engine.World, piece, anchor core.Entity) {
	if piece == anchor || !w.Alive(piece) || !w.Alive(anchor) {
		return
	}
	cs := w.Components
	if !cs.Body.Has(piece) || !cs.Body.Has(anchor) {
		return
	}

	cs.Joint.Set(piece, component.JointComponent{
		Connected:           anchor,
		BreakForce:          math.Inf(1),
		BreakTorque:         math.Inf(1),
		EnablePreprocessing: false,
		EnableCollision:     false,
		MassScale:           parameter.JointMassScale,
		ConnectedMassScale:  parameter.JointConnectedMassScale,
	})

	tighten := func(b *component.BodyComponent) {
		b.SolverIterations = parameter.JointSolverIterations
		b.SolverVelocityIterations = parameter.JointSolverIterations
	}
	cs.Body.Update(piece, tighten)
	cs.Body.Update(anchor, tighten)

	log.Printf("[snap] joint created between %s and %s", cs.NameOf(piece), cs.NameOf(anchor))
}

func (s *SnapSystem) reject(format string, args ...any) bool {
	s.statRejects.Add(1)
	log.Printf("[snap] "+format, args...)
	return false
}
