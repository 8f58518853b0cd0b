package core

// SoundType represents different sound cues
type SoundType int

const (
	SoundJoin     SoundType = iota // Piece joined a group
	SoundMerge                     // Group unified into one body
	SoundLock                      // Assembly locked onto its end slot
	SoundComplete                  // All assemblies locked
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{"join", "merge", "lock", "complete"}

// String returns the cue name
func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
