package physics

import (
	"math"
	"time"

	"github.com/lixenwraith/quad-snap/component"
	"github.com/lixenwraith/quad-snap/core"
	"github.com/lixenwraith/quad-snap/engine"
	"github.com/lixenwraith/quad-snap/vmath"
)

// Contact is a body resting on or hitting the floor during a step
type Contact struct {
	Body core.Entity
	// Speed is the body speed at impact, before the floor cancels it
	Speed float64
}

// Simulated reports whether the integrator moves body this step
// Kinematic bodies, bodies pinned by a held locker and bodies carried by a parent body are skipped
func Simulated(w *engine.World, body core.Entity) bool {
	b, ok := w.Components.Body.Get(body)
	if !ok || b.Kinematic {
		return false
	}
	if l, ok := w.Components.Locker.Get(body); ok && l.Pinned() {
		return false
	}
	return !w.HasBodyAncestor(body)
}

// Integrate advances every simulated body by dt: gravity, drag, motion, then floor clamping
// Bodies touching the floor after the step are returned in entity order
func Integrate(w *engine.World, dt time.Duration, gravity, floor float64) []Contact {
	secs := dt.Seconds()
	if secs <= 0 {
		return nil
	}

	var contacts []Contact
	for _, e := range w.Components.Body.All() {
		if !Simulated(w, e) {
			continue
		}

		var b component.BodyComponent
		w.Components.Body.Update(e, func(body *component.BodyComponent) {
			if body.UseGravity {
				body.Velocity.Y += gravity * secs
			}
			body.Velocity = vmath.V3FScale(body.Velocity, 1/(1+body.Drag*secs))
			body.AngularVelocity = vmath.V3FScale(body.AngularVelocity, 1/(1+body.AngularDrag*secs))
			b = *body
		})

		pos, rot := w.WorldPose(e)
		pos = vmath.V3FAdd(pos, vmath.V3FScale(b.Velocity, secs))
		rot = vmath.QIntegrate(rot, b.AngularVelocity, secs)
		w.SetWorldPose(e, pos, rot)

		if c, ok := resolveFloor(w, e, floor); ok {
			contacts = append(contacts, c)
		}
	}
	return contacts
}

// resolveFloor lifts body out of the floor plane and cancels downward velocity
func resolveFloor(w *engine.World, body core.Entity, floor float64) (Contact, bool) {
	lowest := math.Inf(1)
	for _, e := range CollidersOf(w, body) {
		c, _ := w.Components.Collider.Get(e)
		if !c.Enabled || c.IsTrigger {
			continue
		}
		lowest = math.Min(lowest, ColliderCenter(w, e).Y-c.Radius)
	}
	if math.IsInf(lowest, 1) || lowest > floor {
		return Contact{}, false
	}

	pos, rot := w.WorldPose(body)
	pos.Y += floor - lowest
	w.SetWorldPose(body, pos, rot)

	var speed float64
	w.Components.Body.Update(body, func(b *component.BodyComponent) {
		speed = vmath.V3FMag(b.Velocity)
		if b.Velocity.Y < 0 {
			b.Velocity.Y = 0
		}
	})
	return Contact{Body: body, Speed: speed}, true
}
