package component

import "github.com/lixenwraith/quad-snap/vmath"

// ColliderComponent is a sphere attached to its entity's body (self or nearest ancestor)
// Triggers report proximity, solids collide and are what triggers detect
type ColliderComponent struct {
	Radius    float64
	Offset    vmath.Vec3F
	IsTrigger bool
	Enabled   bool
}
