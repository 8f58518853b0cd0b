package engine

import (
	"github.com/lixenwraith/quad-snap/component"
	"github.com/lixenwraith/quad-snap/core"
	"github.com/lixenwraith/quad-snap/vmath"
)

// maxHierarchyDepth bounds parent walks so a corrupted chain cannot spin forever
const maxHierarchyDepth = 64

// Parent returns the structural parent of e, 0 for roots and entities without a transform
func (w *World) Parent(e core.Entity) core.Entity {
	if t, ok := w.Components.Transform.Get(e); ok {
		return t.Parent
	}
	return 0
}

// WorldPose composes local transforms up the parent chain
// Missing or destroyed parents end the chain
func (w *World) WorldPose(e core.Entity) (vmath.Vec3F, vmath.Quat) {
	t, ok := w.Components.Transform.Get(e)
	if !ok {
		return vmath.Vec3F{}, vmath.QuatIdentity
	}

	pos, rot := t.Position, t.Rotation
	parent := t.Parent
	for depth := 0; parent != 0 && depth < maxHierarchyDepth; depth++ {
		pt, ok := w.Components.Transform.Get(parent)
		if !ok {
			break
		}
		pos = vmath.V3FAdd(pt.Position, vmath.QRotate(pt.Rotation, pos))
		rot = vmath.QMul(pt.Rotation, rot)
		parent = pt.Parent
	}
	return pos, rot
}

// WorldPosition returns the world-space position of e
func (w *World) WorldPosition(e core.Entity) vmath.Vec3F {
	pos, _ := w.WorldPose(e)
	return pos
}

// SetWorldPose places e at a world pose, expressed relative to its current parent
// The local pose is resolved before Update since the store lock is not reentrant
func (w *World) SetWorldPose(e core.Entity, pos vmath.Vec3F, rot vmath.Quat) {
	lp, lr := w.toLocal(w.Parent(e), pos, rot)
	w.Components.Transform.Update(e, func(t *component.TransformComponent) {
		t.Position, t.Rotation = lp, lr
	})
}

func (w *World) toLocal(parent core.Entity, pos vmath.Vec3F, rot vmath.Quat) (vmath.Vec3F, vmath.Quat) {
	if parent == 0 || !w.Components.Transform.Has(parent) {
		return pos, rot
	}
	ppos, prot := w.WorldPose(parent)
	inv := vmath.QConj(prot)
	return vmath.QRotate(inv, vmath.V3FSub(pos, ppos)), vmath.QMul(inv, rot)
}

// SetParent reparents e keeping its world pose
// Returns false when the new parent is e or one of its descendants
func (w *World) SetParent(e, parent core.Entity) bool {
	if parent == e {
		return false
	}
	for p, depth := parent, 0; p != 0 && depth < maxHierarchyDepth; depth++ {
		if p == e {
			return false
		}
		p = w.Parent(p)
	}

	pos, rot := w.WorldPose(e)
	lp, lr := w.toLocal(parent, pos, rot)
	return w.Components.Transform.Update(e, func(t *component.TransformComponent) {
		t.Parent = parent
		t.Position, t.Rotation = lp, lr
	})
}

// Children returns direct children of e in ascending id order
func (w *World) Children(e core.Entity) []core.Entity {
	var out []core.Entity
	for _, c := range w.Components.Transform.All() {
		if w.Parent(c) == e && c != e {
			out = append(out, c)
		}
	}
	return out
}

// Descendants returns every entity below e, depth first
func (w *World) Descendants(e core.Entity) []core.Entity {
	var out []core.Entity
	var walk func(core.Entity, int)
	walk = func(n core.Entity, depth int) {
		if depth >= maxHierarchyDepth {
			return
		}
		for _, c := range w.Children(n) {
			out = append(out, c)
			walk(c, depth+1)
		}
	}
	walk(e, 0)
	return out
}

// Subtree returns e followed by its descendants
func (w *World) Subtree(e core.Entity) []core.Entity {
	return append([]core.Entity{e}, w.Descendants(e)...)
}

// BodyOf returns the body e moves with: itself or its nearest ancestor with a body, 0 if none
func (w *World) BodyOf(e core.Entity) core.Entity {
	for n, depth := e, 0; n != 0 && depth < maxHierarchyDepth; depth++ {
		if w.Components.Body.Has(n) {
			return n
		}
		n = w.Parent(n)
	}
	return 0
}

// HasBodyAncestor reports whether a strict ancestor of e carries a body
func (w *World) HasBodyAncestor(e core.Entity) bool {
	return w.BodyOf(w.Parent(e)) != 0
}
