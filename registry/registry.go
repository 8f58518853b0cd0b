// Package registry holds the session-wide assembly state: group membership per anchor,
// end slot occupancy and the global completion counter.
//
// A single Registry is created per session and passed by reference to every system that
// negotiates, merges or places pieces. All methods are serialized by one mutex, so the
// registry stays correct if a host drives it from more than one goroutine.
package registry

import (
	"sort"
	"sync"

	"github.com/lixenwraith/quad-snap/core"
	"github.com/lixenwraith/quad-snap/identity"
)

// group is the tracked state of one anchor (middle piece)
type group struct {
	roles  map[identity.Role]struct{}
	count  int // attached since last merge
	joined int // attached over the session, never reset
}

// Registry is the Group Membership Tracker, End Slot set and Global Completion State
type Registry struct {
	mu sync.Mutex

	groups   map[core.Entity]*group
	occupied map[core.Entity]struct{}

	completed int
	total     int
	fired     bool
}

// New creates a registry that fires completion once total assemblies are locked
func New(total int) *Registry {
	return &Registry{
		groups:   make(map[core.Entity]*group),
		occupied: make(map[core.Entity]struct{}),
		total:    total,
	}
}

// groupLocked returns the anchor's group, creating it with middle pre-registered
func (r *Registry) groupLocked(anchor core.Entity) *group {
	g, ok := r.groups[anchor]
	if !ok {
		g = &group{roles: map[identity.Role]struct{}{identity.RoleMiddle: {}}}
		r.groups[anchor] = g
	}
	return g
}

// RegisterRole adds role to the anchor's attached set; middle is implied by the anchor itself
func (r *Registry) RegisterRole(anchor core.Entity, role identity.Role) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g := r.groupLocked(anchor)
	if role == identity.RoleMiddle {
		return
	}
	g.roles[role] = struct{}{}
}

// HasRole reports whether role is already attached to anchor
func (r *Registry) HasRole(anchor core.Entity, role identity.Role) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.groups[anchor]
	if !ok {
		return role == identity.RoleMiddle
	}
	_, has := g.roles[role]
	return has
}

// Roles returns the anchor's attached roles in enum order
func (r *Registry) Roles(anchor core.Entity) []identity.Role {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.groups[anchor]
	if !ok {
		return nil
	}
	roles := make([]identity.Role, 0, len(g.roles))
	for role := range g.roles {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}

// IncrementCount records one more attached piece and returns the new count
func (r *Registry) IncrementCount(anchor core.Entity) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	g := r.groupLocked(anchor)
	g.count++
	g.joined++
	return g.count
}

// ResetCount zeroes the attached count at merge; roles and lifetime joins are kept
func (r *Registry) ResetCount(anchor core.Entity) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if g, ok := r.groups[anchor]; ok {
		g.count = 0
	}
}

// Count returns pieces attached since the last merge
func (r *Registry) Count(anchor core.Entity) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if g, ok := r.groups[anchor]; ok {
		return g.count
	}
	return 0
}

// Joined returns every piece ever attached to anchor, unaffected by merge resets
func (r *Registry) Joined(anchor core.Entity) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if g, ok := r.groups[anchor]; ok {
		return g.joined
	}
	return 0
}

// Forget drops the anchor's group, used when the anchor entity is destroyed
func (r *Registry) Forget(anchor core.Entity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.groups, anchor)
}

// Occupy marks slot as used; returns false if it already was
func (r *Registry) Occupy(slot core.Entity) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.occupied[slot]; ok {
		return false
	}
	r.occupied[slot] = struct{}{}
	return true
}

// Occupied reports whether slot holds an assembly
func (r *Registry) Occupied(slot core.Entity) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.occupied[slot]
	return ok
}

// RecordLock counts one locked assembly
// fire is true exactly once, on the first call that reaches the total
func (r *Registry) RecordLock() (count int, fire bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.completed++
	if !r.fired && r.completed >= r.total {
		r.fired = true
		fire = true
	}
	return r.completed, fire
}

// Completed returns the number of locked assemblies
func (r *Registry) Completed() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.completed
}

// Total returns the lock count that completes the session
func (r *Registry) Total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.total
}

// SetTotal changes the completion threshold, typically from a scene file before play starts
func (r *Registry) SetTotal(total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.total = total
}

// Fired reports whether completion has triggered
func (r *Registry) Fired() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fired
}

// Reset clears all session state, keeping the total
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.groups = make(map[core.Entity]*group)
	r.occupied = make(map[core.Entity]struct{})
	r.completed = 0
	r.fired = false
}
