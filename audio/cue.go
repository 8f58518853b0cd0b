package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/quad-snap/core"
	"github.com/lixenwraith/quad-snap/parameter"
)

// note is one tone of a cue
type note struct {
	freq     float64
	duration time.Duration
}

// cueNotes lists the tones of each cue, played in order with a short gap
var cueNotes = [core.SoundTypeCount][]note{
	core.SoundJoin: {
		{freq: 659.25, duration: parameter.JoinNoteDuration},
	},
	core.SoundMerge: {
		{freq: 440.00, duration: parameter.MergeNoteDuration},
		{freq: 659.25, duration: parameter.MergeNoteDuration},
	},
	core.SoundLock: {
		{freq: 329.63, duration: parameter.LockNoteDuration},
		{freq: 493.88, duration: parameter.LockNoteDuration},
	},
	core.SoundComplete: {
		{freq: 523.25, duration: parameter.CompleteNoteDuration},
		{freq: 659.25, duration: parameter.CompleteNoteDuration},
		{freq: 783.99, duration: parameter.CompleteNoteDuration},
		{freq: 1046.50, duration: parameter.CompleteNoteDuration},
	},
}

// CueLength returns the number of samples the cue streams at rate
func CueLength(rate beep.SampleRate, sound core.SoundType) int {
	if sound < 0 || sound >= core.SoundTypeCount {
		return 0
	}
	notes := cueNotes[sound]
	total := 0
	for i, n := range notes {
		if i > 0 {
			total += rate.N(parameter.CueNoteGap)
		}
		total += rate.N(n.duration)
	}
	return total
}

// Cue builds a finite streamer for the sound
func Cue(rate beep.SampleRate, sound core.SoundType) (beep.Streamer, error) {
	if sound < 0 || sound >= core.SoundTypeCount {
		return nil, fmt.Errorf("unknown sound %d", sound)
	}

	notes := cueNotes[sound]
	parts := make([]beep.Streamer, 0, len(notes)*2)
	for i, n := range notes {
		if i > 0 {
			parts = append(parts, beep.Silence(rate.N(parameter.CueNoteGap)))
		}
		t, err := tone(rate, n.freq, n.duration)
		if err != nil {
			return nil, err
		}
		parts = append(parts, t)
	}

	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   parameter.AudioCueGain,
	}, nil
}

func tone(rate beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("tone %.2fHz: %w", freq, err)
	}
	return beep.Take(rate.N(d), sine), nil
}
