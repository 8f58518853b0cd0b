package component

// PieceComponent marks a snap-assembly piece; identity comes from its NameComponent
type PieceComponent struct {
	Joined bool
}

// AssemblyComponent marks a group root that can be locked onto an end slot
type AssemblyComponent struct {
	// LetterOverride replaces the letter parsed from the name when non-empty
	LetterOverride string
	Locked         bool
}
