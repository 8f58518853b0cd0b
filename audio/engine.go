// Package audio plays short synthesized cues for assembly progress through beep
package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/quad-snap/core"
	"github.com/lixenwraith/quad-snap/parameter"
)

// Engine mixes cues onto the speaker
// Play is a no-op until Start succeeds, so a headless host can keep the engine around
type Engine struct {
	rate  beep.SampleRate
	mixer *beep.Mixer

	running atomic.Bool
	muted   atomic.Bool

	mu     sync.Mutex
	played [core.SoundTypeCount]int
}

// NewEngine creates a stopped engine at the default sample rate
func NewEngine() *Engine {
	return &Engine{
		rate:  beep.SampleRate(parameter.AudioSampleRate),
		mixer: &beep.Mixer{},
	}
}

// Start opens the speaker and attaches the mixer
func (e *Engine) Start() error {
	if e.running.Load() {
		return fmt.Errorf("audio engine already running")
	}
	if err := speaker.Init(e.rate, e.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(e.mixer)
	e.running.Store(true)
	return nil
}

// Stop clears pending cues and closes the speaker
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// Play queues the cue; false when stopped, muted or the cue cannot be built
func (e *Engine) Play(sound core.SoundType) bool {
	if !e.running.Load() || e.muted.Load() {
		return false
	}

	s, err := Cue(e.rate, sound)
	if err != nil {
		log.Printf("[audio] %v", err)
		return false
	}

	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()

	e.mu.Lock()
	e.played[sound]++
	e.mu.Unlock()
	return true
}

// IsMuted reports whether cues are suppressed
func (e *Engine) IsMuted() bool {
	return e.muted.Load()
}

// IsRunning reports whether the speaker is attached
func (e *Engine) IsRunning() bool {
	return e.running.Load()
}

// SetMuted sets the mute flag
func (e *Engine) SetMuted(muted bool) {
	e.muted.Store(muted)
}

// ToggleMute flips the mute flag and returns the new state
func (e *Engine) ToggleMute() bool {
	for {
		old := e.muted.Load()
		if e.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Played returns how many times the cue was queued
func (e *Engine) Played(sound core.SoundType) int {
	if sound < 0 || sound >= core.SoundTypeCount {
		return 0
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.played[sound]
}
