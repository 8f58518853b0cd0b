package component

// NameComponent carries the display name identity is parsed from, and an optional trigger tag
type NameComponent struct {
	Name string
	Tag  string
}
