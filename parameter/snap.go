package parameter

import "time"

// Snap negotiation
const (
	// SnapDistance is how close a piece must be to a snap point before it may join
	SnapDistance = 0.005

	// AnchorSearchRadius is the overlap radius used to find a group's middle piece near the candidate
	AnchorSearchRadius = 0.25

	// MergeThreshold is the attached count at which a group is unified into its anchor body
	MergeThreshold = 3

	// HelperColliderName marks auxiliary grab colliders disabled once a piece joins
	HelperColliderName = "collider extension"

	// SnapPointTag tags triggers pieces join onto
	SnapPointTag = "SnapPoint"
)

// ConstrainedLetters enforce role-matched snap points and one piece per role
var ConstrainedLetters = []string{"l", "n"}

// Joined piece stabilisation
const (
	PieceMass             = 1.0
	PieceLinearDamping    = 2.5
	PieceAngularDamping   = 2.5
	PieceSolverIterations = 20
	MaxDepenetration      = 1.5

	// JointSolverIterations is applied to both bodies once the joint exists
	JointSolverIterations = 40

	JointMassScale          = 1.0
	JointConnectedMassScale = 0.5

	// LockerRestoreDelay is how long a temporarily released kinematic locker stays off
	LockerRestoreDelay = 200 * time.Millisecond
)

// Merge
const (
	// MergedMass is the anchor mass after its pieces are unified
	MergedMass = 3.0
)

// End slot placement
const (
	// EndSnapDistance is how close an assembly root must be to an end slot before locking
	EndSnapDistance = 0.02

	// MinAssembledPieces is the joined piece count an assembly needs before it may lock
	MinAssembledPieces = 2

	// TotalRequired is the number of locked assemblies that completes the session
	TotalRequired = 6

	// EndSnapPointTag tags end slot triggers
	EndSnapPointTag = "EndSnapPoint"
)

// Collision dampener
const (
	// DampenSpeed is the relative speed above which a hit on static geometry zeroes a body's velocity
	DampenSpeed = 5.0
)
