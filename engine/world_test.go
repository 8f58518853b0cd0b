package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/quad-snap/component"
	"github.com/lixenwraith/quad-snap/event"
	"github.com/lixenwraith/quad-snap/parameter"
)

// recorder is a system and event handler logging what it saw
type recorder struct {
	name     string
	priority int
	log      *[]string
}

func (r *recorder) Update() { *r.log = append(*r.log, r.name+":update") }
func (r *recorder) Priority() int { return r.priority }
func (r *recorder) Name() string { return r.name }
func (r *recorder) EventTypes() []event.EventType {
	return []event.EventType{event.EventPieceJoined}
}
func (r *recorder) HandleEvent(ev event.GameEvent) {
	*r.log = append(*r.log, r.name+":event")
}

func TestStepOrder(t *testing.T) {
	w := NewWorld()
	var log []string

	w.AddSystem(&recorder{name: "late", priority: 20, log: &log})
	w.AddSystem(&recorder{name: "early", priority: 10, log: &log})
	w.Scheduler.AfterTicks(1, "task", func(*World) { log = append(log, "task") })
	w.PushEvent(event.EventPieceJoined, &event.PieceJoinedPayload{})

	w.Step(parameter.PhysicsTickInterval)

	want := []string{"task", "late:event", "early:event", "early:update", "late:update"}
	if len(log) != len(want) {
		t.Fatalf("Expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Index %d: expected %s, got %s", i, want[i], log[i])
		}
	}
}

func TestStepAdvancesTime(t *testing.T) {
	w := NewWorld()
	w.Step(20 * time.Millisecond)
	w.Step(20 * time.Millisecond)

	if w.FrameNumber() != 2 {
		t.Errorf("Expected frame 2, got %d", w.FrameNumber())
	}
	if got := w.Resources.Time.GameTime.Sub(GameEpoch); got != 40*time.Millisecond {
		t.Errorf("Expected 40ms game time, got %v", got)
	}
	if w.Resources.Status.Value("engine.ticks") != 2 {
		t.Errorf("Expected 2 ticks counted, got %d", w.Resources.Status.Value("engine.ticks"))
	}
}

func TestDestroyEntity(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.Components.Body.Set(e, component.BodyComponent{Mass: 1})
	w.Components.Name.Set(e, component.NameComponent{Name: "logo-i-top[0]"})

	if !w.Alive(e) {
		t.Fatal("Expected entity alive after create")
	}
	w.DestroyEntity(e)

	if w.Alive(e) || w.Components.Body.Has(e) || w.Components.Name.Has(e) {
		t.Error("Expected entity and components gone")
	}
	if w.Alive(0) {
		t.Error("Expected entity 0 never alive")
	}
}

func TestConfigConstrained(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.IsConstrained("l") || !cfg.IsConstrained("n") {
		t.Error("Expected l and n constrained by default")
	}
	if cfg.IsConstrained("i") {
		t.Error("Expected i unconstrained")
	}
}
