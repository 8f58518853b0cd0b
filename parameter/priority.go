package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityGuide       = 10  // External hand input before simulation
	PriorityPhysics     = 100 // Integration and trigger detection
	PriorityAudio       = 800 // After game logic
	PriorityDiagnostics = 1000
)
