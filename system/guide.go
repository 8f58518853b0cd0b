package system

import (
	"log"
	"strings"

	"github.com/lixenwraith/quad-snap/component"
	"github.com/lixenwraith/quad-snap/core"
	"github.com/lixenwraith/quad-snap/engine"
	"github.com/lixenwraith/quad-snap/event"
	"github.com/lixenwraith/quad-snap/identity"
	"github.com/lixenwraith/quad-snap/parameter"
	"github.com/lixenwraith/quad-snap/vmath"
)

// GuideSystem is a scripted hand standing in for the player
// It carries loose pieces onto free snap points of their letter, then carries each assembled letter
// onto a matching end slot. Held bodies are pinned through their locker; the hand lets go as soon
// as its grip is released by a snap or a lock.
type GuideSystem struct {
	world *engine.World

	enabled bool

	held    core.Entity
	goal    core.Entity
	waiting int

	// Snap points already promised to a piece
	claimed map[core.Entity]bool
	// Bodies the hand gave up on
	skipped map[core.Entity]bool
}

// NewGuideSystem creates an enabled guide
func NewGuideSystem(world *engine.World) *GuideSystem {
	s := &GuideSystem{world: world, enabled: true}
	s.Init()
	return s
}

// Init drops whatever is held and forgets claims; the enabled flag survives
func (s *GuideSystem) Init() {
	s.held = 0
	s.goal = 0
	s.waiting = 0
	s.claimed = make(map[core.Entity]bool)
	s.skipped = make(map[core.Entity]bool)
}

func (s *GuideSystem) Priority() int {
	return parameter.PriorityGuide
}

func (s *GuideSystem) Name() string {
	return "guide"
}

// EventTypes returns the event types GuideSystem handles
func (s *GuideSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSessionReset}
}

// HandleEvent processes session reset
func (s *GuideSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventSessionReset {
		s.Init()
	}
}

// SetEnabled toggles the hand; disabling drops the held body
func (s *GuideSystem) SetEnabled(enabled bool) {
	if !enabled && s.held != 0 {
		s.release()
	}
	s.enabled = enabled
}

// Enabled reports whether the hand is active
func (s *GuideSystem) Enabled() bool {
	return s.enabled
}

// Holding returns the held body and its goal, 0 when idle
func (s *GuideSystem) Holding() (body, goal core.Entity) {
	return s.held, s.goal
}

// Update carries the held body one step toward its goal, or picks the next job
func (s *GuideSystem) Update() {
	if !s.enabled {
		return
	}
	if s.held == 0 {
		s.pick()
		return
	}

	w := s.world
	if !w.Alive(s.held) || !w.Alive(s.goal) || !Gripped(w, s.held) {
		s.release()
		return
	}

	step := parameter.GuideSpeed * w.Resources.Time.DeltaTime.Seconds()
	pos, rot := w.WorldPose(s.held)
	goalPos, goalRot := w.WorldPose(s.goal)
	next := vmath.V3FMoveTowards(pos, goalPos, step)
	if next == goalPos {
		rot = goalRot
		s.waiting++
	}
	w.SetWorldPose(s.held, next, rot)
	w.Components.Body.Update(s.held, func(b *component.BodyComponent) {
		b.Velocity = vmath.Vec3F{}
		b.AngularVelocity = vmath.Vec3F{}
	})

	if s.waiting > parameter.GuideGiveUpTicks {
		log.Printf("[guide] giving up on %s at %s", w.Components.NameOf(s.held), w.Components.NameOf(s.goal))
		s.skipped[s.held] = true
		s.release()
	}
}

func (s *GuideSystem) grab(body, goal core.Entity) {
	w := s.world
	s.held, s.goal, s.waiting = body, goal, 0
	w.Components.Locker.Update(body, func(l *component.LockerComponent) { l.Held = true })
	log.Printf("[guide] carrying %s to %s", w.Components.NameOf(body), w.Components.NameOf(goal))
}

func (s *GuideSystem) release() {
	s.world.Components.Locker.Update(s.held, func(l *component.LockerComponent) { l.Held = false })
	s.held, s.goal, s.waiting = 0, 0, 0
}

// pick chooses a loose piece first, then an assembled letter
func (s *GuideSystem) pick() {
	w := s.world
	cs := w.Components

	pending := make(map[string]bool)
	for _, e := range cs.Piece.All() {
		if !s.carriable(e) {
			continue
		}
		if p, _ := cs.Piece.Get(e); p.Joined {
			continue
		}
		id := identity.Resolve(cs.NameOf(e))
		if id.Role != identity.RoleTop && id.Role != identity.RoleBottom {
			continue
		}
		pending[id.Letter] = true

		if snap := s.freeSnapPoint(id); snap != 0 {
			s.claimed[snap] = true
			s.grab(e, snap)
			return
		}
	}

	reg := w.Resources.Registry
	for _, e := range cs.Assembly.All() {
		if a, _ := cs.Assembly.Get(e); a.Locked || !s.carriable(e) {
			continue
		}
		letter := identity.LetterKey(cs.NameOf(e))
		if pending[letter] || reg.Joined(e) < w.Resources.Config.MinAssembledPieces {
			continue
		}
		if slot := s.freeSlot(e); slot != 0 {
			s.grab(e, slot)
			return
		}
	}
}

func (s *GuideSystem) carriable(e core.Entity) bool {
	w := s.world
	return !s.skipped[e] && w.Components.Locker.Has(e) && w.Components.Body.Has(e) && Gripped(w, e)
}

// freeSnapPoint returns an unclaimed snap point on the middle of id's letter
// Points named for the piece's role are preferred; constrained letters accept nothing else
func (s *GuideSystem) freeSnapPoint(id identity.Identity) core.Entity {
	w := s.world
	cs := w.Components

	var fallback core.Entity
	for _, anchor := range cs.Body.All() {
		name := cs.NameOf(anchor)
		if identity.ParseRole(name) != identity.RoleMiddle || identity.LetterKey(name) != id.Letter {
			continue
		}
		for _, e := range w.Children(anchor) {
			c, ok := cs.Collider.Get(e)
			if !ok || !c.Enabled || s.claimed[e] || cs.TagOf(e) != parameter.SnapPointTag {
				continue
			}
			if identity.NameHasRole(cs.NameOf(e), id.Role) {
				return e
			}
			if fallback == 0 && !w.Resources.Config.IsConstrained(id.Letter) {
				fallback = e
			}
		}
	}
	return fallback
}

// freeSlot returns an unoccupied end slot for the assembly, exact letter match first
func (s *GuideSystem) freeSlot(assembly core.Entity) core.Entity {
	w := s.world
	cs := w.Components
	reg := w.Resources.Registry

	letter := identity.SlotLetterKey(cs.NameOf(assembly))
	if a, _ := cs.Assembly.Get(assembly); a.LetterOverride != "" {
		letter = strings.ToLower(a.LetterOverride)
	}

	var wildcard core.Entity
	for _, e := range cs.Collider.All() {
		if cs.TagOf(e) != parameter.EndSnapPointTag || reg.Occupied(e) {
			continue
		}
		if c, _ := cs.Collider.Get(e); !c.Enabled {
			continue
		}
		slotLetter := identity.SlotLetterKey(cs.NameOf(e))
		if slotLetter == letter && letter != "" {
			return e
		}
		if wildcard == 0 && identity.LettersCompatible(letter, slotLetter) {
			wildcard = e
		}
	}
	return wildcard
}
