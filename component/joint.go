package component

import "github.com/lixenwraith/quad-snap/core"

// JointComponent rigidly binds its entity's body to Connected
type JointComponent struct {
	Connected core.Entity

	BreakForce  float64
	BreakTorque float64

	EnablePreprocessing bool
	EnableCollision     bool

	MassScale          float64
	ConnectedMassScale float64
}
