package scene

import (
	"fmt"
	"log"
	"strings"

	"github.com/lixenwraith/quad-snap/component"
	"github.com/lixenwraith/quad-snap/core"
	"github.com/lixenwraith/quad-snap/engine"
	"github.com/lixenwraith/quad-snap/event"
	"github.com/lixenwraith/quad-snap/identity"
	"github.com/lixenwraith/quad-snap/parameter"
	"github.com/lixenwraith/quad-snap/vmath"
)

// Layout maps scene names to the entities built for them
type Layout struct {
	Entities map[string]core.Entity
	Anchors  []core.Entity
	Pieces   []core.Entity
	Slots    []core.Entity
	Effect   core.Entity
}

// Lookup returns the entity built for name, 0 if absent
func (l *Layout) Lookup(name string) core.Entity {
	return l.Entities[name]
}

func (v Vec) vec() vmath.Vec3F {
	return vmath.V3F(v.X, v.Y, v.Z)
}

// Build creates the document's entities in w, applies config overrides and sets the registry total
// Completion keeps any existing OnComplete callback and points at the document's effect
func Build(w *engine.World, doc *Document) (*Layout, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	applyConfig(w.Resources.Config, doc)

	total := doc.TotalRequired
	if total == 0 {
		total = doc.Anchors()
	}
	w.Resources.Registry.SetTotal(total)

	layout := &Layout{Entities: make(map[string]core.Entity)}
	cs := w.Components

	spawn := func(name string, parent core.Entity, pos Vec, yaw float64) core.Entity {
		e := w.CreateEntity()
		cs.Name.Set(e, component.NameComponent{Name: name})
		cs.Transform.Set(e, component.TransformComponent{Parent: parent, Position: pos.vec(), Rotation: vmath.QFromYaw(yaw)})
		return e
	}

	for _, f := range doc.Fixtures {
		e := spawn(f.Name, layout.Entities[f.Parent], f.Position, f.Yaw)
		if f.Radius > 0 {
			cs.Collider.Set(e, component.ColliderComponent{Radius: f.Radius, Enabled: true})
		}
		layout.Entities[f.Name] = e
	}

	for _, p := range doc.Pieces {
		e := buildPiece(w, p, spawn)
		layout.Entities[p.Name] = e
		layout.Pieces = append(layout.Pieces, e)
		if cs.Assembly.Has(e) {
			layout.Anchors = append(layout.Anchors, e)
		}
	}

	for _, s := range doc.Slots {
		e := spawn(s.Name, layout.Entities[s.Parent], s.Position, s.Yaw)
		cs.Name.Set(e, component.NameComponent{Name: s.Name, Tag: parameter.EndSnapPointTag})
		cs.Collider.Set(e, component.ColliderComponent{
			Radius:    orDefault(s.Radius, parameter.DefaultEndSlotRadius),
			IsTrigger: true,
			Enabled:   true,
		})
		layout.Entities[s.Name] = e
		layout.Slots = append(layout.Slots, e)
	}

	if doc.Effect != "" {
		fx := spawn(doc.Effect, 0, Vec{}, 0)
		cs.Effect.Set(fx, component.EffectComponent{})
		layout.Entities[doc.Effect] = fx
		layout.Effect = fx
	}

	completion := w.Resources.Completion
	if completion == nil {
		completion = &engine.CompletionResource{}
		w.Resources.Completion = completion
	}
	completion.Effect = layout.Effect

	log.Printf("[scene] built %d pieces, %d anchors, %d slots, total %d",
		len(layout.Pieces), len(layout.Anchors), len(layout.Slots), total)
	return layout, nil
}

func buildPiece(w *engine.World, p Piece, spawn func(string, core.Entity, Vec, float64) core.Entity) core.Entity {
	cs := w.Components
	e := spawn(p.Name, 0, p.Position, p.Yaw)

	anchor := identity.ParseRole(p.Name) == identity.RoleMiddle
	kinematic := anchor
	if p.Kinematic != nil {
		kinematic = *p.Kinematic
	}

	radius := orDefault(p.Radius, parameter.DefaultColliderRadius)
	cs.Body.Set(e, component.BodyComponent{
		Mass:             parameter.PieceMass,
		UseGravity:       !kinematic,
		Kinematic:        kinematic,
		DetectCollisions: true,
		SolverIterations: parameter.PieceSolverIterations,
	})
	cs.Collider.Set(e, component.ColliderComponent{Radius: radius, Enabled: true})
	cs.Piece.Set(e, component.PieceComponent{})

	if anchor {
		cs.Assembly.Set(e, component.AssemblyComponent{LetterOverride: strings.ToLower(p.Letter)})
	}
	if p.Grab {
		cs.Interaction.Set(e, component.InteractionComponent{
			Grips: []component.Grippable{component.NewGrabHandle("grabbable")},
		})
	}
	if p.Locker {
		cs.Locker.Set(e, component.LockerComponent{Enabled: true})
	}
	if p.Helper {
		h := spawn(parameter.HelperColliderName, e, Vec{}, 0)
		cs.Collider.Set(h, component.ColliderComponent{Radius: radius * parameter.HelperColliderScale, Enabled: true})
	}

	for _, sp := range p.SnapPoints {
		pt := spawn(sp.Name, e, sp.Offset, 0)
		cs.Name.Set(pt, component.NameComponent{Name: sp.Name, Tag: parameter.SnapPointTag})
		cs.Collider.Set(pt, component.ColliderComponent{
			Radius:    orDefault(sp.Radius, parameter.DefaultSnapPointRadius),
			IsTrigger: true,
			Enabled:   true,
		})
	}
	return e
}

func applyConfig(cfg *engine.ConfigResource, doc *Document) {
	if doc.SnapDistance != nil {
		cfg.SnapDistance = *doc.SnapDistance
	}
	if doc.EndSnapDistance != nil {
		cfg.EndSnapDistance = *doc.EndSnapDistance
	}
	if doc.AnchorSearchRadius != nil {
		cfg.AnchorSearchRadius = *doc.AnchorSearchRadius
	}
	if doc.MergeThreshold != nil {
		cfg.MergeThreshold = *doc.MergeThreshold
	}
	if doc.Floor != nil {
		cfg.Floor = *doc.Floor
	}
	if len(doc.ConstrainedLetters) > 0 {
		letters := make([]string, len(doc.ConstrainedLetters))
		for i, l := range doc.ConstrainedLetters {
			letters[i] = strings.ToLower(l)
		}
		cfg.ConstrainedLetters = letters
	}
}

// Reload clears the world, resets tunables to defaults, rebuilds the document and announces a session reset
func Reload(w *engine.World, doc *Document) (*Layout, error) {
	w.Clear()
	*w.Resources.Config = *engine.DefaultConfig()

	layout, err := Build(w, doc)
	if err != nil {
		return nil, fmt.Errorf("reload: %w", err)
	}
	w.PushEvent(event.EventSessionReset, nil)
	return layout, nil
}

func orDefault(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}
