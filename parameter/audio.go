package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// AudioCueGain is the effects.Volume exponent applied to every cue (base 2)
	AudioCueGain = -1.5
)

// Cue timing
const (
	JoinNoteDuration     = 60 * time.Millisecond
	MergeNoteDuration    = 90 * time.Millisecond
	LockNoteDuration     = 80 * time.Millisecond
	CompleteNoteDuration = 220 * time.Millisecond
	CueNoteGap           = 15 * time.Millisecond
)
