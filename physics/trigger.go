package physics

import (
	"github.com/lixenwraith/quad-snap/core"
	"github.com/lixenwraith/quad-snap/engine"
)

// Overlap is one trigger-stay pair: a solid collider inside a tagged trigger
type Overlap struct {
	// Source is the solid collider, Body the body it moves with
	Source core.Entity
	Body   core.Entity
	// Target is the tagged trigger collider
	Target core.Entity
}

// DetectTriggers returns every solid collider touching an enabled tagged trigger this step
// A pair needs a body on the solid side with collision detection on, and trigger and solid must
// belong to different bodies. Order is trigger id, then collider id.
func DetectTriggers(w *engine.World) []Overlap {
	var triggers, solids []core.Entity
	for _, e := range w.Components.Collider.All() {
		c, _ := w.Components.Collider.Get(e)
		if !c.Enabled {
			continue
		}
		if c.IsTrigger {
			if w.Components.TagOf(e) != "" {
				triggers = append(triggers, e)
			}
			continue
		}
		body := w.BodyOf(e)
		if b, ok := w.Components.Body.Get(body); ok && b.DetectCollisions {
			solids = append(solids, e)
		}
	}

	var out []Overlap
	for _, t := range triggers {
		owner := w.BodyOf(t)
		for _, s := range solids {
			body := w.BodyOf(s)
			if body == owner {
				continue
			}
			if Overlaps(w, t, s) {
				out = append(out, Overlap{Source: s, Body: body, Target: t})
			}
		}
	}
	return out
}
