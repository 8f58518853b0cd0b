// Package identity resolves a piece's letter key and structural role from its name.
//
// Naming grammar, version 1:
//
//	piece:     logo-<letter>-<role>[<index>]        e.g. logo-i-top[0]
//	end slot:  end-logo-<letter>-middle[<index>]    e.g. end-logo-l-middle[0]
//	           <anything>-<letter>                  e.g. EndSnapPoint-n
//	snap point: any name, role-bearing points carry "top" or "bottom"
//
// Matching is case-insensitive. Names that do not follow the grammar resolve to RoleUnknown
// and an empty letter, which callers treat as "accept any".
package identity

import "strings"

// GrammarVersion identifies the naming grammar documented above
const GrammarVersion = 1

const delimiter = "-"

// Role is a piece's structural position within a group
type Role uint8

const (
	RoleUnknown Role = iota
	RoleTop
	RoleMiddle
	RoleBottom
)

var roleNames = [...]string{"unknown", "top", "middle", "bottom"}

func (r Role) String() string {
	if int(r) >= len(roleNames) {
		return roleNames[RoleUnknown]
	}
	return roleNames[r]
}

// Identity is the parsed (letter key, role) pair of a piece
type Identity struct {
	Letter string
	Role   Role
}

// Resolve parses a piece name with the generic letter rule
func Resolve(name string) Identity {
	return Identity{Letter: LetterKey(name), Role: ParseRole(name)}
}

// ParseRole tests role substrings in priority order top, bottom, middle
// The first tested match wins, not the leftmost occurrence
func ParseRole(name string) Role {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "top"):
		return RoleTop
	case strings.Contains(lower, "bottom"):
		return RoleBottom
	case strings.Contains(lower, "middle"):
		return RoleMiddle
	}
	return RoleUnknown
}

// LetterKey returns the text between the first and second delimiter, or "" when absent
func LetterKey(name string) string {
	lower := strings.ToLower(name)
	first := strings.Index(lower, delimiter)
	if first < 0 {
		return ""
	}
	rest := lower[first+1:]
	second := strings.Index(rest, delimiter)
	if second < 0 {
		return ""
	}
	return rest[:second]
}

// SlotLetterKey applies the end slot rule: known logo prefixes first,
// then a single-character trailing token, else ""
func SlotLetterKey(name string) string {
	parts := strings.Split(strings.ToLower(name), delimiter)

	if len(parts) >= 3 && parts[0] == "logo" {
		return parts[1]
	}

	if len(parts) >= 4 && parts[0] == "end" && parts[1] == "logo" {
		return parts[2]
	}

	if len(parts) > 1 && len(parts[len(parts)-1]) == 1 {
		return parts[len(parts)-1]
	}

	return ""
}

// IsAnchorName reports whether name identifies the middle piece of letter
func IsAnchorName(name, letter string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "middle") && strings.Contains(lower, letter)
}

// LettersCompatible applies the wildcard rule: an empty key matches anything
func LettersCompatible(a, b string) bool {
	return a == "" || b == "" || a == b
}

// NameHasRole reports whether a snap point name encodes role
func NameHasRole(name string, role Role) bool {
	if role == RoleUnknown {
		return false
	}
	return strings.Contains(strings.ToLower(name), role.String())
}

// IsHelperCollider reports whether a collider name marks an auxiliary grab collider
func IsHelperCollider(name, marker string) bool {
	return strings.Contains(strings.ToLower(name), marker)
}
