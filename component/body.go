package component

import "github.com/lixenwraith/quad-snap/vmath"

// CollisionMode selects how the solver sweeps a body between steps
type CollisionMode uint8

const (
	CollisionDiscrete CollisionMode = iota
	CollisionContinuous
	CollisionContinuousDynamic
)

// BodyComponent is a rigid body; entities without one move with their nearest body ancestor
type BodyComponent struct {
	Mass        float64
	Drag        float64
	AngularDrag float64

	Velocity        vmath.Vec3F
	AngularVelocity vmath.Vec3F

	UseGravity       bool
	Kinematic        bool
	DetectCollisions bool
	CollisionMode    CollisionMode

	SolverIterations         int
	SolverVelocityIterations int
	MaxDepenetration         float64
}
