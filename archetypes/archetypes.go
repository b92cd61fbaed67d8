package archetypes

import (
	"github.com/automoto/kcc/components"
	"github.com/automoto/kcc/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only layer; systems and renderers all run on it.
const Default ecs.LayerID = 0

var (
	Input = newArchetype(
		components.Input,
	)
	Level = newArchetype(
		components.Level,
	)
	Space = newArchetype(
		components.Space,
	)
	BoxWorld = newArchetype(
		components.BoxWorld,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Player2D = newArchetype(
		tags.Player,
		components.Player2D,
		components.Object,
	)
	Player3D = newArchetype(
		tags.Player,
		components.Player3D,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
	)
	Camera3D = newArchetype(
		tags.Camera,
		components.Camera3D,
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
		Default,
		append(a.components, cs...)...,
	))
	return e
}
