package parameter

import "time"

// Game Loop & Engine Timing
const (
	// PhysicsTickInterval is the fixed simulation step
	PhysicsTickInterval = 20 * time.Millisecond

	// FrameUpdateInterval is the sandbox render interval (~30 FPS)
	FrameUpdateInterval = 33 * time.Millisecond

	// MaxTicksPerPump caps catch-up steps after a stall
	MaxTicksPerPump = 5
)

// ECS & Resources Limits
const (
	// EventQueueSize is the pending event capacity; older events are dropped beyond it
	EventQueueSize = 2048
)

// World physics
const (
	// Gravity is vertical acceleration in m/s^2
	Gravity = -9.81

	// FloorHeight is the static ground plane
	FloorHeight = 0.0

	// DefaultColliderRadius applies when a scene omits a radius
	DefaultColliderRadius = 0.04
)

// Scene defaults
const (
	DefaultSnapPointRadius = 0.02
	DefaultEndSlotRadius   = 0.03

	// HelperColliderScale sizes a piece's grab extension relative to its main collider
	HelperColliderScale = 1.5
)

// Diagnostics
const (
	// DiagSampleInterval is the tick interval between store count samples
	DiagSampleInterval = 50
)

// Guide autopilot
const (
	// GuideSpeed is how fast the scripted hand carries a body, m/s
	GuideSpeed = 2.0

	// GuideGiveUpTicks is how long the hand waits at a goal for a snap before dropping the body
	GuideGiveUpTicks = 100
)
