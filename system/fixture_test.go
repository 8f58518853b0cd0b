package system

import (
	"github.com/lixenwraith/quad-snap/component"
	"github.com/lixenwraith/quad-snap/core"
	"github.com/lixenwraith/quad-snap/engine"
	"github.com/lixenwraith/quad-snap/event"
	"github.com/lixenwraith/quad-snap/parameter"
	"github.com/lixenwraith/quad-snap/vmath"
)

// testWorld bundles a world with its assembly systems
type testWorld struct {
	w         *engine.World
	snap      *SnapSystem
	merge     *MergeSystem
	placement *PlacementSystem
}

func newTestWorld() *testWorld {
	w := engine.NewWorld()
	tw := &testWorld{
		w:         w,
		snap:      NewSnapSystem(w),
		merge:     NewMergeSystem(w),
		placement: NewPlacementSystem(w),
	}
	w.AddSystem(tw.snap)
	w.AddSystem(tw.merge)
	w.AddSystem(tw.placement)
	w.AddSystem(NewCompletionSystem(w))
	return tw
}

func (tw *testWorld) step(n int) {
	for i := 0; i < n; i++ {
		tw.w.Step(parameter.PhysicsTickInterval)
	}
}

func (tw *testWorld) named(name string, parent core.Entity, pos vmath.Vec3F) core.Entity {
	e := tw.w.CreateEntity()
	tw.w.Components.Name.Set(e, component.NameComponent{Name: name})
	tw.w.Components.Transform.Set(e, component.TransformComponent{Parent: parent, Position: pos, Rotation: vmath.QuatIdentity})
	return e
}

// body spawns a grabbable piece body with a solid collider and a locker
func (tw *testWorld) body(name string, pos vmath.Vec3F) core.Entity {
	cs := tw.w.Components
	e := tw.named(name, 0, pos)
	cs.Body.Set(e, component.BodyComponent{Mass: 1, UseGravity: true, DetectCollisions: true})
	cs.Collider.Set(e, component.ColliderComponent{Radius: 0.04, Enabled: true})
	cs.Piece.Set(e, component.PieceComponent{})
	cs.Interaction.Set(e, component.InteractionComponent{Grips: []component.Grippable{component.NewGrabHandle("grabbable")}})
	cs.Locker.Set(e, component.LockerComponent{Enabled: true})
	return e
}

// anchor spawns a kinematic middle piece that can be locked onto a slot
func (tw *testWorld) anchor(name string, pos vmath.Vec3F) core.Entity {
	e := tw.body(name, pos)
	tw.w.Components.Body.Update(e, func(b *component.BodyComponent) {
		b.Kinematic = true
		b.UseGravity = false
	})
	tw.w.Components.Assembly.Set(e, component.AssemblyComponent{})
	return e
}

func (tw *testWorld) trigger(name, tag string, parent core.Entity, local vmath.Vec3F, radius float64) core.Entity {
	e := tw.named(name, parent, local)
	tw.w.Components.Name.Set(e, component.NameComponent{Name: name, Tag: tag})
	tw.w.Components.Collider.Set(e, component.ColliderComponent{Radius: radius, IsTrigger: true, Enabled: true})
	return e
}

func (tw *testWorld) snapPoint(anchor core.Entity, name string, local vmath.Vec3F) core.Entity {
	return tw.trigger(name, parameter.SnapPointTag, anchor, local, 0.02)
}

func (tw *testWorld) slot(name string, parent core.Entity, local vmath.Vec3F) core.Entity {
	return tw.trigger(name, parameter.EndSnapPointTag, parent, local, 0.03)
}

// placeAt moves e exactly onto target's world pose
func (tw *testWorld) placeAt(e, target core.Entity) {
	pos, rot := tw.w.WorldPose(target)
	tw.w.SetWorldPose(e, pos, rot)
}

// drain returns queued events without dispatching them
func (tw *testWorld) drain() []event.GameEvent {
	return tw.w.Resources.Events.Consume()
}

func countType(events []event.GameEvent, t event.EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

// gripEnabled reports the first grip handle state of e
func gripEnabled(w *engine.World, e core.Entity) bool {
	ic, ok := w.Components.Interaction.Get(e)
	if !ok || len(ic.Grips) == 0 {
		return false
	}
	return ic.Grips[0].Enabled()
}
