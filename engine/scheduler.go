package engine

import (
	"sort"
	"sync"
	"time"
)

// Task is a deferred continuation run on the tick goroutine
// Tasks must check that the entities they captured are still alive before acting
type Task func(w *World)

type scheduledTask struct {
	seq      uint64
	name     string
	byTime   bool
	dueFrame int64
	deadline time.Time
	fn       Task
}

// Scheduler is the deferred task queue processed once per tick before event dispatch
// Tasks are keyed by frame or by game-time deadline and are not cancellable once scheduled
type Scheduler struct {
	mu    sync.Mutex
	clock *TimeResource
	seq   uint64
	tasks []scheduledTask
}

// NewScheduler creates a scheduler reading the current frame and game time from clock
func NewScheduler(clock *TimeResource) *Scheduler {
	return &Scheduler{clock: clock}
}

// AfterTicks schedules fn to run n ticks from now
// n = 1 runs at the start of the next physics step
func (s *Scheduler) AfterTicks(n int64, name string, fn Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.tasks = append(s.tasks, scheduledTask{
		seq:      s.seq,
		name:     name,
		dueFrame: s.clock.FrameNumber + n,
		fn:       fn,
	})
}

// After schedules fn for the first tick whose game time reaches now + d
func (s *Scheduler) After(d time.Duration, name string, fn Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.tasks = append(s.tasks, scheduledTask{
		seq:      s.seq,
		name:     name,
		byTime:   true,
		deadline: s.clock.GameTime.Add(d),
		fn:       fn,
	})
}

// RunDue runs every task due at the current tick in scheduling order and returns how many ran
// Tasks scheduled by a running task are considered on the next call
func (s *Scheduler) RunDue(w *World) int {
	s.mu.Lock()
	frame := s.clock.FrameNumber
	now := s.clock.GameTime

	var due []scheduledTask
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if (t.byTime && !now.Before(t.deadline)) || (!t.byTime && frame >= t.dueFrame) {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	s.mu.Unlock()

	sort.Slice(due, func(i, j int) bool { return due[i].seq < due[j].seq })
	for _, t := range due {
		t.fn(w)
	}
	return len(due)
}

// Pending returns scheduled task names in scheduling order
func (s *Scheduler) Pending() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, len(s.tasks))
	for i, t := range s.tasks {
		names[i] = t.name
	}
	return names
}

// Clear drops every pending task
func (s *Scheduler) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = nil
}
