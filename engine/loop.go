package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/quad-snap/core"
	"github.com/lixenwraith/quad-snap/parameter"
)

// Loop drives World.Step at a fixed interval from a wall clock
// Elapsed time accumulates and is consumed in whole steps, so the simulation rate is
// independent of how often Pump is called. Pausing freezes game time without busy-wait.
type Loop struct {
	world *World
	clock Clock
	step  time.Duration

	mu          sync.Mutex
	last        time.Time
	accumulator time.Duration

	paused atomic.Bool

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewLoop creates a loop stepping world by step, reading time from clock
func NewLoop(world *World, clock Clock, step time.Duration) *Loop {
	return &Loop{
		world:    world,
		clock:    clock,
		step:     step,
		last:     clock.Now(),
		stopChan: make(chan struct{}),
	}
}

// Pump runs every whole step elapsed since the previous call and returns the count
// A backlog beyond MaxTicksPerPump is dropped to recover from stalls
func (l *Loop) Pump() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	elapsed := now.Sub(l.last)
	l.last = now

	if l.paused.Load() {
		l.accumulator = 0
		return 0
	}

	l.accumulator += elapsed
	steps := 0
	for l.accumulator >= l.step && steps < parameter.MaxTicksPerPump {
		l.world.Step(l.step)
		l.accumulator -= l.step
		steps++
	}

	if l.accumulator >= l.step {
		l.accumulator = 0
	}
	return steps
}

// SetPaused freezes or resumes stepping
func (l *Loop) SetPaused(paused bool) {
	l.paused.Store(paused)
}

// IsPaused reports the pause flag
func (l *Loop) IsPaused() bool {
	return l.paused.Load()
}

// Start pumps the world on its own goroutine; onPump, if set, runs after each pump that stepped
func (l *Loop) Start(onPump func(steps int)) {
	if !l.running.CompareAndSwap(false, true) {
		return
	}
	l.wg.Add(1)
	core.Go(func() {
		defer l.wg.Done()

		ticker := time.NewTicker(l.step)
		defer ticker.Stop()

		for {
			select {
			case <-l.stopChan:
				return
			case <-ticker.C:
				if n := l.Pump(); n > 0 && onPump != nil {
					onPump(n)
				}
			}
		}
	})
}

// Stop halts the loop goroutine and waits for it to exit
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		if l.running.CompareAndSwap(true, false) {
			close(l.stopChan)
			l.wg.Wait()
		}
	})
}
