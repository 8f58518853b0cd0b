package component

// Grippable is implemented by any interaction behaviour that can hold a body
// Snapping and locking only ever release grips, they never read internal grip state
type Grippable interface {
	// Release disables the behaviour; returns true if it was enabled
	Release() bool
	Enabled() bool
}

// InteractionComponent lists the grip behaviours attached to an entity
type InteractionComponent struct {
	Grips []Grippable
}

// GrabHandle is the stock Grippable used by scenes and the sandbox hand
type GrabHandle struct {
	Kind    string
	enabled bool
}

// NewGrabHandle creates an enabled handle
func NewGrabHandle(kind string) *GrabHandle {
	return &GrabHandle{Kind: kind, enabled: true}
}

func (g *GrabHandle) Release() bool {
	was := g.enabled
	g.enabled = false
	return was
}

func (g *GrabHandle) Enabled() bool {
	return g.enabled
}

// Enable re-arms the handle
func (g *GrabHandle) Enable() {
	g.enabled = true
}

// LockerComponent is the kinematic locker the hand uses to pin a held body
// Physics leaves a body alone while its locker is enabled and held
type LockerComponent struct {
	Enabled bool
	Held    bool
}

// Pinned reports whether the locker currently overrides physics
func (l LockerComponent) Pinned() bool {
	return l.Enabled && l.Held
}
