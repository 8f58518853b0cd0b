// Package scene loads YAML layouts of pieces, snap points, end slots and fixtures, and builds them into a world
package scene

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/quad-snap/identity"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid scene")

// Vec is a position or offset in meters
type Vec struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Z float64 `yaml:"z" json:"z"`
}

// Document is the root of a scene file
type Document struct {
	// TotalRequired is the locked assembly count that completes the session; 0 counts the anchors
	TotalRequired int `yaml:"total_required,omitempty" json:"total_required,omitempty"`

	// Optional tunable overrides
	SnapDistance       *float64 `yaml:"snap_distance,omitempty" json:"snap_distance,omitempty"`
	EndSnapDistance    *float64 `yaml:"end_snap_distance,omitempty" json:"end_snap_distance,omitempty"`
	AnchorSearchRadius *float64 `yaml:"anchor_search_radius,omitempty" json:"anchor_search_radius,omitempty"`
	MergeThreshold     *int     `yaml:"merge_threshold,omitempty" json:"merge_threshold,omitempty"`
	Floor              *float64 `yaml:"floor,omitempty" json:"floor,omitempty"`
	ConstrainedLetters []string `yaml:"constrained_letters,omitempty" json:"constrained_letters,omitempty"`

	// Effect names the entity activated on completion
	Effect string `yaml:"effect,omitempty" json:"effect,omitempty"`

	Fixtures []Fixture `yaml:"fixtures,omitempty" json:"fixtures,omitempty"`
	Pieces   []Piece   `yaml:"pieces" json:"pieces" jsonschema:"required"`
	Slots    []Slot    `yaml:"slots,omitempty" json:"slots,omitempty"`
}

// Fixture is static scenery other entities may be parented to
type Fixture struct {
	Name     string  `yaml:"name" json:"name" jsonschema:"required"`
	Parent   string  `yaml:"parent,omitempty" json:"parent,omitempty"`
	Position Vec     `yaml:"position" json:"position"`
	Yaw      float64 `yaml:"yaw,omitempty" json:"yaw,omitempty"`

	// Radius adds a solid static collider when positive
	Radius float64 `yaml:"radius,omitempty" json:"radius,omitempty"`
}

// Piece is one letter piece; pieces whose name carries "middle" become assembly anchors
type Piece struct {
	Name     string  `yaml:"name" json:"name" jsonschema:"required"`
	Position Vec     `yaml:"position" json:"position"`
	Yaw      float64 `yaml:"yaw,omitempty" json:"yaw,omitempty"`
	Radius   float64 `yaml:"radius,omitempty" json:"radius,omitempty"`

	Grab   bool `yaml:"grab,omitempty" json:"grab,omitempty"`
	Locker bool `yaml:"locker,omitempty" json:"locker,omitempty"`
	Helper bool `yaml:"helper,omitempty" json:"helper,omitempty"`

	// Kinematic defaults to true for anchors and false for other pieces
	Kinematic *bool `yaml:"kinematic,omitempty" json:"kinematic,omitempty"`

	// Letter overrides the letter used for end slot matching, anchors only
	Letter string `yaml:"letter,omitempty" json:"letter,omitempty"`

	SnapPoints []Point `yaml:"snap_points,omitempty" json:"snap_points,omitempty"`
}

// Point is a snap point trigger local to its piece
type Point struct {
	Name   string  `yaml:"name" json:"name" jsonschema:"required"`
	Offset Vec     `yaml:"offset" json:"offset"`
	Radius float64 `yaml:"radius,omitempty" json:"radius,omitempty"`
}

// Slot is an end slot trigger
type Slot struct {
	Name     string  `yaml:"name" json:"name" jsonschema:"required"`
	Parent   string  `yaml:"parent,omitempty" json:"parent,omitempty"`
	Position Vec     `yaml:"position" json:"position"`
	Yaw      float64 `yaml:"yaw,omitempty" json:"yaw,omitempty"`
	Radius   float64 `yaml:"radius,omitempty" json:"radius,omitempty"`
}

// Load parses and validates a scene document
func Load(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadFile reads a scene document from disk
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	doc, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Validate checks names are unique and references resolve
func (d *Document) Validate() error {
	names := make(map[string]string)
	claim := func(kind, name string) error {
		if name == "" {
			return fmt.Errorf("%w: %s without a name", ErrInvalid, kind)
		}
		if prev, ok := names[name]; ok {
			return fmt.Errorf("%w: %s %q already used by a %s", ErrInvalid, kind, name, prev)
		}
		names[name] = kind
		return nil
	}

	if d.TotalRequired < 0 {
		return fmt.Errorf("%w: total_required %d is negative", ErrInvalid, d.TotalRequired)
	}
	if d.MergeThreshold != nil && *d.MergeThreshold < 1 {
		return fmt.Errorf("%w: merge_threshold %d must be positive", ErrInvalid, *d.MergeThreshold)
	}
	for _, o := range []struct {
		key string
		val *float64
	}{
		{"snap_distance", d.SnapDistance},
		{"end_snap_distance", d.EndSnapDistance},
		{"anchor_search_radius", d.AnchorSearchRadius},
	} {
		if o.val != nil && *o.val <= 0 {
			return fmt.Errorf("%w: %s %.3f must be positive", ErrInvalid, o.key, *o.val)
		}
	}

	fixtures := make(map[string]bool)
	for _, f := range d.Fixtures {
		if err := claim("fixture", f.Name); err != nil {
			return err
		}
		if f.Radius < 0 {
			return fmt.Errorf("%w: fixture %q radius %.3f is negative", ErrInvalid, f.Name, f.Radius)
		}
		if f.Parent != "" && !fixtures[f.Parent] {
			return fmt.Errorf("%w: fixture %q parent %q is not an earlier fixture", ErrInvalid, f.Name, f.Parent)
		}
		fixtures[f.Name] = true
	}

	if len(d.Pieces) == 0 {
		return fmt.Errorf("%w: no pieces", ErrInvalid)
	}
	for _, p := range d.Pieces {
		if err := claim("piece", p.Name); err != nil {
			return err
		}
		if p.Radius < 0 {
			return fmt.Errorf("%w: piece %q radius %.3f is negative", ErrInvalid, p.Name, p.Radius)
		}
		if p.Letter != "" && identity.ParseRole(p.Name) != identity.RoleMiddle {
			return fmt.Errorf("%w: piece %q sets a letter override but is not a middle piece", ErrInvalid, p.Name)
		}
		for _, sp := range p.SnapPoints {
			if sp.Name == "" {
				return fmt.Errorf("%w: piece %q has an unnamed snap point", ErrInvalid, p.Name)
			}
			if sp.Radius < 0 {
				return fmt.Errorf("%w: snap point %q radius %.3f is negative", ErrInvalid, sp.Name, sp.Radius)
			}
		}
	}

	for _, s := range d.Slots {
		if err := claim("slot", s.Name); err != nil {
			return err
		}
		if s.Parent != "" && !fixtures[s.Parent] {
			return fmt.Errorf("%w: slot %q parent %q is not a fixture", ErrInvalid, s.Name, s.Parent)
		}
		if s.Radius < 0 {
			return fmt.Errorf("%w: slot %q radius %.3f is negative", ErrInvalid, s.Name, s.Radius)
		}
	}

	if d.Effect != "" {
		if _, ok := names[d.Effect]; ok {
			return fmt.Errorf("%w: effect %q collides with a %s", ErrInvalid, d.Effect, names[d.Effect])
		}
	}
	return nil
}

// Anchors returns the number of middle pieces
func (d *Document) Anchors() int {
	n := 0
	for _, p := range d.Pieces {
		if identity.ParseRole(p.Name) == identity.RoleMiddle {
			n++
		}
	}
	return n
}
