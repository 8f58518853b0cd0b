package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/quad-snap/component"
	"github.com/lixenwraith/quad-snap/core"
	"github.com/lixenwraith/quad-snap/vmath"
)

func spawn(w *World, parent core.Entity, pos vmath.Vec3F, rot vmath.Quat) core.Entity {
	e := w.CreateEntity()
	w.Components.Transform.Set(e, component.TransformComponent{Parent: parent, Position: pos, Rotation: rot})
	return e
}

func TestWorldPoseComposes(t *testing.T) {
	w := NewWorld()
	root := spawn(w, 0, vmath.V3F(1, 0, 0), vmath.QFromYaw(90))
	child := spawn(w, root, vmath.V3F(1, 0, 0), vmath.QuatIdentity)

	pos, rot := w.WorldPose(child)
	if !vmath.V3FNearlyEqual(pos, vmath.V3F(1, 0, -1), 1e-9) {
		t.Errorf("Expected (1,0,-1), got %+v", pos)
	}
	if !vmath.QNearlyEqual(rot, vmath.QFromYaw(90), 1e-9) {
		t.Errorf("Expected inherited yaw, got %+v", rot)
	}
}

func TestSetParentKeepsWorldPose(t *testing.T) {
	w := NewWorld()
	anchor := spawn(w, 0, vmath.V3F(0, 1, 0), vmath.QFromYaw(45))
	piece := spawn(w, 0, vmath.V3F(0.3, 1.2, -0.1), vmath.QFromYaw(10))

	beforePos, beforeRot := w.WorldPose(piece)
	if !w.SetParent(piece, anchor) {
		t.Fatal("Expected reparent to succeed")
	}
	afterPos, afterRot := w.WorldPose(piece)

	if !vmath.V3FNearlyEqual(beforePos, afterPos, 1e-9) {
		t.Errorf("Expected position kept, before %+v after %+v", beforePos, afterPos)
	}
	if !vmath.QNearlyEqual(beforeRot, afterRot, 1e-9) {
		t.Errorf("Expected rotation kept, before %+v after %+v", beforeRot, afterRot)
	}
	if w.Parent(piece) != anchor {
		t.Error("Expected anchor as parent")
	}
}

func TestSetParentRejectsCycle(t *testing.T) {
	w := NewWorld()
	a := spawn(w, 0, vmath.Vec3F{}, vmath.QuatIdentity)
	b := spawn(w, a, vmath.Vec3F{}, vmath.QuatIdentity)

	if w.SetParent(a, b) {
		t.Error("Expected parenting under own descendant to fail")
	}
	if w.SetParent(a, a) {
		t.Error("Expected parenting under self to fail")
	}
}

func TestSetWorldPoseUnderParent(t *testing.T) {
	w := NewWorld()
	parent := spawn(w, 0, vmath.V3F(2, 0, 0), vmath.QFromYaw(-90))
	child := spawn(w, parent, vmath.Vec3F{}, vmath.QuatIdentity)

	target := vmath.V3F(5, 1, 3)
	w.SetWorldPose(child, target, vmath.QuatIdentity)

	pos, rot := w.WorldPose(child)
	if !vmath.V3FNearlyEqual(pos, target, 1e-9) {
		t.Errorf("Expected %+v, got %+v", target, pos)
	}
	if !vmath.QNearlyEqual(rot, vmath.QuatIdentity, 1e-9) {
		t.Errorf("Expected identity rotation, got %+v", rot)
	}
}

func TestBodyOfAndDescendants(t *testing.T) {
	w := NewWorld()
	root := spawn(w, 0, vmath.Vec3F{}, vmath.QuatIdentity)
	mid := spawn(w, root, vmath.Vec3F{}, vmath.QuatIdentity)
	leaf := spawn(w, mid, vmath.Vec3F{}, vmath.QuatIdentity)
	w.Components.Body.Set(root, component.BodyComponent{Mass: 1})

	if w.BodyOf(leaf) != root {
		t.Errorf("Expected leaf to move with root body, got %d", w.BodyOf(leaf))
	}
	if !w.HasBodyAncestor(mid) {
		t.Error("Expected mid to have a body ancestor")
	}
	if w.HasBodyAncestor(root) {
		t.Error("Expected root to have no body ancestor")
	}

	desc := w.Descendants(root)
	if len(desc) != 2 || desc[0] != mid || desc[1] != leaf {
		t.Errorf("Expected [mid leaf], got %v", desc)
	}
}

func TestNestedPoseWritesReturn(t *testing.T) {
	w := NewWorld()
	root := spawn(w, 0, vmath.V3F(1, 0, 0), vmath.QuatIdentity)
	mid := spawn(w, root, vmath.V3F(0, 1, 0), vmath.QuatIdentity)
	leaf := spawn(w, 0, vmath.V3F(3, 3, 3), vmath.QuatIdentity)

	done := make(chan struct{})
	go func() {
		defer close(done)
		w.SetParent(leaf, mid)
		w.SetWorldPose(leaf, vmath.V3F(2, 2, 2), vmath.QuatIdentity)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Reparent and pose write on a nested entity did not return")
	}
	if pos := w.WorldPosition(leaf); !vmath.V3FNearlyEqual(pos, vmath.V3F(2, 2, 2), 1e-9) {
		t.Errorf("Expected (2,2,2), got %+v", pos)
	}
	if t2, _ := w.Components.Transform.Get(leaf); !vmath.V3FNearlyEqual(t2.Position, vmath.V3F(1, 1, 2), 1e-9) {
		t.Errorf("Expected local (1,1,2), got %+v", t2.Position)
	}
}
