// Package physics is the minimal rigid-body and trigger simulation the snap systems run against
// Every collider is a sphere; transforms are authoritative and world poses are composed on read
package physics

import (
	"sort"

	"github.com/lixenwraith/quad-snap/core"
	"github.com/lixenwraith/quad-snap/engine"
	"github.com/lixenwraith/quad-snap/vmath"
)

// ColliderCenter returns the world-space center of e's collider, or e's position if it has none
func ColliderCenter(w *engine.World, e core.Entity) vmath.Vec3F {
	pos, rot := w.WorldPose(e)
	if c, ok := w.Components.Collider.Get(e); ok {
		return vmath.V3FAdd(pos, vmath.QRotate(rot, c.Offset))
	}
	return pos
}

// Overlaps reports whether two enabled colliders touch
func Overlaps(w *engine.World, a, b core.Entity) bool {
	ca, okA := w.Components.Collider.Get(a)
	cb, okB := w.Components.Collider.Get(b)
	if !okA || !okB || !ca.Enabled || !cb.Enabled {
		return false
	}
	r := ca.Radius + cb.Radius
	return vmath.V3FMagSq(vmath.V3FSub(ColliderCenter(w, a), ColliderCenter(w, b))) <= r*r
}

// OverlapSphere returns the bodies owning an enabled collider (trigger or solid) that touches the
// sphere, nearest body first; exclude is skipped, ties keep ascending entity order
func OverlapSphere(w *engine.World, center vmath.Vec3F, radius float64, exclude core.Entity) []core.Entity {
	type hit struct {
		body core.Entity
		dist float64
	}
	seen := make(map[core.Entity]bool)
	var hits []hit

	for _, e := range w.Components.Collider.All() {
		c, _ := w.Components.Collider.Get(e)
		if !c.Enabled {
			continue
		}
		body := w.BodyOf(e)
		if body == 0 || body == exclude || seen[body] {
			continue
		}
		r := radius + c.Radius
		if vmath.V3FMagSq(vmath.V3FSub(ColliderCenter(w, e), center)) > r*r {
			continue
		}
		seen[body] = true
		hits = append(hits, hit{body: body, dist: vmath.V3FDist(w.WorldPosition(body), center)})
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].dist < hits[j].dist })

	out := make([]core.Entity, len(hits))
	for i, h := range hits {
		out[i] = h.body
	}
	return out
}

// CollidersOf returns every collider moving with body, including disabled ones
func CollidersOf(w *engine.World, body core.Entity) []core.Entity {
	var out []core.Entity
	for _, e := range w.Subtree(body) {
		if w.Components.Collider.Has(e) && w.BodyOf(e) == body {
			out = append(out, e)
		}
	}
	return out
}
