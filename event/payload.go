package event

import (
	"github.com/lixenwraith/quad-snap/core"
)

// ProximityPayload pairs a solid collider with a tagged trigger it overlaps
type ProximityPayload struct {
	Source core.Entity `json:"source"` // Entity owning the solid collider
	Body   core.Entity `json:"body"`   // Body the solid collider is attached to
	Target core.Entity `json:"target"` // Trigger entity
}

// CollisionPayload describes a contact start; Other 0 is static geometry
type CollisionPayload struct {
	Entity        core.Entity `json:"entity"`
	Other         core.Entity `json:"other"`
	RelativeSpeed float64     `json:"relative_speed"`
}

// PieceJoinedPayload describes an accepted join
type PieceJoinedPayload struct {
	Piece  core.Entity `json:"piece"`
	Anchor core.Entity `json:"anchor"`
	Letter string      `json:"letter"`
	Role   string      `json:"role"`
	Count  int         `json:"count"`
}

// GroupCompletePayload names the anchor whose group reached the merge threshold
type GroupCompletePayload struct {
	Anchor core.Entity `json:"anchor"`
}

// AssemblyMergedPayload reports a finished merge
type AssemblyMergedPayload struct {
	Anchor  core.Entity `json:"anchor"`
	Removed int         `json:"removed"` // Bodies folded into the anchor
}

// AssemblyLockedPayload reports an assembly locked onto a slot
type AssemblyLockedPayload struct {
	Anchor    core.Entity `json:"anchor"`
	Slot      core.Entity `json:"slot"`
	Letter    string      `json:"letter"`
	Completed int         `json:"completed"`
	Total     int         `json:"total"`
}

// SoundRequestPayload contains the sound cue to play
type SoundRequestPayload struct {
	SoundType core.SoundType `json:"sound_type"`
}
