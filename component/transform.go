package component

import (
	"github.com/lixenwraith/quad-snap/core"
	"github.com/lixenwraith/quad-snap/vmath"
)

// TransformComponent is a pose local to Parent; Parent 0 means world space
type TransformComponent struct {
	Parent   core.Entity
	Position vmath.Vec3F
	Rotation vmath.Quat
}
