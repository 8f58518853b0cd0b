package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/quad-snap/parameter"
)

func TestLoopPumpAccumulates(t *testing.T) {
	w := NewWorld()
	clock := NewMockTimeProvider(time.Unix(1000, 0))
	loop := NewLoop(w, clock, 20*time.Millisecond)

	clock.Advance(15 * time.Millisecond)
	if n := loop.Pump(); n != 0 {
		t.Errorf("Expected 0 steps after 15ms, got %d", n)
	}

	clock.Advance(30 * time.Millisecond)
	if n := loop.Pump(); n != 2 {
		t.Errorf("Expected 2 steps after 45ms total, got %d", n)
	}
	if w.FrameNumber() != 2 {
		t.Errorf("Expected frame 2, got %d", w.FrameNumber())
	}
}

func TestLoopDropsBacklog(t *testing.T) {
	w := NewWorld()
	clock := NewMockTimeProvider(time.Unix(1000, 0))
	loop := NewLoop(w, clock, 20*time.Millisecond)

	clock.Advance(10 * time.Second)
	if n := loop.Pump(); n != parameter.MaxTicksPerPump {
		t.Errorf("Expected %d capped steps, got %d", parameter.MaxTicksPerPump, n)
	}

	clock.Advance(5 * time.Millisecond)
	if n := loop.Pump(); n != 0 {
		t.Errorf("Expected backlog dropped, got %d steps", n)
	}
}

func TestLoopPaused(t *testing.T) {
	w := NewWorld()
	clock := NewMockTimeProvider(time.Unix(1000, 0))
	loop := NewLoop(w, clock, 20*time.Millisecond)

	loop.SetPaused(true)
	clock.Advance(time.Second)
	if n := loop.Pump(); n != 0 {
		t.Errorf("Expected no steps while paused, got %d", n)
	}

	loop.SetPaused(false)
	clock.Advance(20 * time.Millisecond)
	if n := loop.Pump(); n != 1 {
		t.Errorf("Expected 1 step after resume, got %d", n)
	}
}
