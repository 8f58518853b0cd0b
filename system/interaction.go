package system

import (
	"log"
	"time"

	"github.com/lixenwraith/quad-snap/component"
	"github.com/lixenwraith/quad-snap/core"
	"github.com/lixenwraith/quad-snap/engine"
)

// Disengage releases every grip behaviour in root's subtree and returns how many were enabled
// Grip state is never read beyond Enabled; snapping and locking only ever let go
func Disengage(w *engine.World, root core.Entity) int {
	released := 0
	for _, e := range w.Subtree(root) {
		ic, ok := w.Components.Interaction.Get(e)
		if !ok {
			continue
		}
		for _, g := range ic.Grips {
			if g != nil && g.Release() {
				released++
			}
		}
	}
	if released > 0 {
		log.Printf("[interaction] released %d grip(s) on %s", released, w.Components.NameOf(root))
	}
	return released
}

// Gripped reports whether any grip behaviour on e is still enabled
func Gripped(w *engine.World, e core.Entity) bool {
	ic, ok := w.Components.Interaction.Get(e)
	if !ok {
		return false
	}
	for _, g := range ic.Grips {
		if g != nil && g.Enabled() {
			return true
		}
	}
	return false
}

// ReleaseLocker switches off an enabled kinematic locker on body and re-enables it after delay
// Returns false when body has no enabled locker
func ReleaseLocker(w *engine.World, body core.Entity, delay time.Duration) bool {
	l, ok := w.Components.Locker.Get(body)
	if !ok || !l.Enabled {
		return false
	}
	w.Components.Locker.Update(body, func(l *component.LockerComponent) {
		l.Enabled = false
	})
	log.Printf("[interaction] locker on %s released for %v", w.Components.NameOf(body), delay)

	w.Scheduler.After(delay, "locker-restore", func(w *engine.World) {
		if !w.Alive(body) {
			return
		}
		if w.Components.Locker.Update(body, func(l *component.LockerComponent) { l.Enabled = true }) {
			log.Printf("[interaction] locker on %s restored", w.Components.NameOf(body))
		}
	})
	return true
}
