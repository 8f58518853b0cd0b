package engine

import (
	"github.com/lixenwraith/quad-snap/component"
	"github.com/lixenwraith/quad-snap/core"
)

// ComponentStore holds one typed store per component
// Created once with the world; pointers remain valid for application lifetime
type ComponentStore struct {
	// Identity and structure
	Name      *Store[component.NameComponent]
	Transform *Store[component.TransformComponent]

	// Physics
	Body     *Store[component.BodyComponent]
	Collider *Store[component.ColliderComponent]
	Joint    *Store[component.JointComponent]

	// Assembly
	Piece    *Store[component.PieceComponent]
	Assembly *Store[component.AssemblyComponent]

	// Interaction
	Interaction *Store[component.InteractionComponent]
	Locker      *Store[component.LockerComponent]

	// External objects
	Effect *Store[component.EffectComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Name:      NewStore[component.NameComponent](),
		Transform: NewStore[component.TransformComponent](),

		Body:     NewStore[component.BodyComponent](),
		Collider: NewStore[component.ColliderComponent](),
		Joint:    NewStore[component.JointComponent](),

		Piece:    NewStore[component.PieceComponent](),
		Assembly: NewStore[component.AssemblyComponent](),

		Interaction: NewStore[component.InteractionComponent](),
		Locker:      NewStore[component.LockerComponent](),

		Effect: NewStore[component.EffectComponent](),
	}
}

func (cs *ComponentStore) removeEntity(e core.Entity) {
	cs.Name.Remove(e)
	cs.Transform.Remove(e)
	cs.Body.Remove(e)
	cs.Collider.Remove(e)
	cs.Joint.Remove(e)
	cs.Piece.Remove(e)
	cs.Assembly.Remove(e)
	cs.Interaction.Remove(e)
	cs.Locker.Remove(e)
	cs.Effect.Remove(e)
}

func (cs *ComponentStore) clear() {
	cs.Name.Clear()
	cs.Transform.Clear()
	cs.Body.Clear()
	cs.Collider.Clear()
	cs.Joint.Clear()
	cs.Piece.Clear()
	cs.Assembly.Clear()
	cs.Interaction.Clear()
	cs.Locker.Clear()
	cs.Effect.Clear()
}

// NameOf returns the entity's display name, "" when unnamed
func (cs *ComponentStore) NameOf(e core.Entity) string {
	if n, ok := cs.Name.Get(e); ok {
		return n.Name
	}
	return ""
}

// TagOf returns the entity's trigger tag, "" when untagged
func (cs *ComponentStore) TagOf(e core.Entity) string {
	if n, ok := cs.Name.Get(e); ok {
		return n.Tag
	}
	return ""
}
