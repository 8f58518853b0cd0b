package engine

import (
	"time"

	"github.com/lixenwraith/quad-snap/core"
	"github.com/lixenwraith/quad-snap/event"
	"github.com/lixenwraith/quad-snap/parameter"
	"github.com/lixenwraith/quad-snap/registry"
	"github.com/lixenwraith/quad-snap/status"
)

// Resource holds singleton world resources, created with the World
type Resource struct {
	Time   *TimeResource
	Config *ConfigResource
	Events *event.EventQueue

	// Session state shared by negotiation, merge and placement
	Registry *registry.Registry

	// Telemetry
	Status *status.Registry

	// Host-provided collaborators, nil members are skipped
	Completion *CompletionResource
	Audio      *AudioResource
}

// GameEpoch is the game time of frame zero
var GameEpoch = time.Unix(0, 0).UTC()

// TimeResource wraps time data for systems
// Updated by World.Step at the start of every tick
type TimeResource struct {
	// GameTime advances by the fixed step only while the world steps
	GameTime time.Time

	// DeltaTime is the duration of the current step
	DeltaTime time.Duration

	// FrameNumber is the current tick count
	FrameNumber int64
}

// ConfigResource holds runtime tunables; defaults come from parameter, scenes may override
type ConfigResource struct {
	SnapDistance       float64
	EndSnapDistance    float64
	AnchorSearchRadius float64

	MergeThreshold     int
	MinAssembledPieces int
	ConstrainedLetters []string

	Gravity     float64
	Floor       float64
	DampenSpeed float64

	LockerRestoreDelay time.Duration
}

// DefaultConfig returns tunables matching the parameter package
func DefaultConfig() *ConfigResource {
	letters := make([]string, len(parameter.ConstrainedLetters))
	copy(letters, parameter.ConstrainedLetters)

	return &ConfigResource{
		SnapDistance:       parameter.SnapDistance,
		EndSnapDistance:    parameter.EndSnapDistance,
		AnchorSearchRadius: parameter.AnchorSearchRadius,
		MergeThreshold:     parameter.MergeThreshold,
		MinAssembledPieces: parameter.MinAssembledPieces,
		ConstrainedLetters: letters,
		Gravity:            parameter.Gravity,
		Floor:              parameter.FloorHeight,
		DampenSpeed:        parameter.DampenSpeed,
		LockerRestoreDelay: parameter.LockerRestoreDelay,
	}
}

// IsConstrained reports whether letter uses role-matched snap points and duplicate prevention
func (c *ConfigResource) IsConstrained(letter string) bool {
	for _, l := range c.ConstrainedLetters {
		if l == letter {
			return true
		}
	}
	return false
}

// CompletionResource is the one-shot completion side effect
type CompletionResource struct {
	// Effect is activated when every assembly is locked; 0 logs a warning instead
	Effect core.Entity

	// OnComplete runs once after the effect is activated
	OnComplete func()
}

// AudioPlayer defines the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(core.SoundType) bool
	IsMuted() bool
}

// AudioResource wraps the audio player interface
type AudioResource struct {
	Player AudioPlayer
}
