package archetypes

import (
	"github.com/automoto/recycle-catch/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LayerDefault is the only render layer; renderers draw in the order they
// were added.
const LayerDefault ecs.LayerID = 0

var (
	Session = newArchetype(
		components.Session,
		components.Countdown,
		components.Pointer,
	)
	Menu = newArchetype(
		components.Menu,
	)
	Result = newArchetype(
		components.Result,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}
