package engine

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/quad-snap/core"
	"github.com/lixenwraith/quad-snap/event"
	"github.com/lixenwraith/quad-snap/parameter"
	"github.com/lixenwraith/quad-snap/registry"
	"github.com/lixenwraith/quad-snap/status"
)

// System is an interface that all systems must implement
type System interface {
	// Update runs once per tick after events are dispatched
	Update()
	Priority() int // Lower values run first
	Name() string
}

// World contains all entities, their components, resources and systems
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity
	alive        map[core.Entity]struct{}

	Components ComponentStore
	Resources  Resource
	Scheduler  *Scheduler

	router  *EventRouter
	systems []System

	updateMutex sync.Mutex

	statTicks *atomic.Int64
}

// NewWorld creates a world with default config, a fresh registry and an empty event queue
func NewWorld() *World {
	queue := event.NewEventQueue()
	timeRes := &TimeResource{GameTime: GameEpoch}
	statusReg := status.NewRegistry()

	w := &World{
		nextEntityID: 1,
		alive:        make(map[core.Entity]struct{}),
		Components:   newComponentStore(),
		Resources: Resource{
			Time:     timeRes,
			Config:   DefaultConfig(),
			Events:   queue,
			Registry: registry.New(parameter.TotalRequired),
			Status:   statusReg,
		},
		Scheduler: NewScheduler(timeRes),
		router:    NewEventRouter(queue),
		statTicks: statusReg.Int("engine.ticks"),
	}
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	w.alive[id] = struct{}{}
	return id
}

// Alive reports whether an entity was created and not destroyed
func (w *World) Alive(e core.Entity) bool {
	if e == 0 {
		return false
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.alive[e]
	return ok
}

// DestroyEntity removes all components associated with an entity
// Children keep their transforms and become roots at their last local pose
func (w *World) DestroyEntity(e core.Entity) {
	w.mu.Lock()
	delete(w.alive, e)
	w.mu.Unlock()

	w.Components.removeEntity(e)
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.alive)
}

// Clear removes all entities and components, drops pending tasks and events, and resets the registry
// Game time and frame number keep running
func (w *World) Clear() {
	w.mu.Lock()
	w.nextEntityID = 1
	w.alive = make(map[core.Entity]struct{})
	w.mu.Unlock()

	w.Components.clear()
	w.Scheduler.Clear()
	w.Resources.Events.Consume()
	w.Resources.Registry.Reset()
}

// AddSystem adds a system sorted by priority
// Systems that also implement EventHandler are registered with the router
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
	w.mu.Unlock()

	if h, ok := system.(EventHandler); ok {
		w.router.Register(h)
	}
}

// RegisterHandler routes events to a non-system observer
func (w *World) RegisterHandler(h EventHandler) {
	w.router.Register(h)
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Step advances the world one fixed tick
func (w *World) Step(dt time.Duration) {
	w.RunSafe(func() {
		w.StepLocked(dt)
	})
}

// StepLocked runs a tick assuming the caller already holds the update lock
// Order: clock, due scheduled tasks, queued events, systems
func (w *World) StepLocked(dt time.Duration) {
	t := w.Resources.Time
	t.FrameNumber++
	t.GameTime = t.GameTime.Add(dt)
	t.DeltaTime = dt
	w.statTicks.Add(1)

	w.Scheduler.RunDue(w)
	w.router.DispatchAll()

	for _, system := range w.Systems() {
		system.Update()
	}
}

// FrameNumber returns the current tick
func (w *World) FrameNumber() int64 {
	return w.Resources.Time.FrameNumber
}

// PushEvent emits a game event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Resources.Events.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.Resources.Time.FrameNumber,
	})
}

// DeliverEvent hands an event to its handlers right away instead of queueing it
// One-shot transitions go through here since the bounded queue evicts on overflow
func (w *World) DeliverEvent(eventType event.EventType, payload any) {
	w.router.Dispatch(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.Resources.Time.FrameNumber,
	})
}

// PlaySound queues a sound cue for the audio system
func (w *World) PlaySound(sound core.SoundType) {
	w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: sound})
}
