package factory

import (
	"github.com/automoto/kcc/archetypes"
	"github.com/automoto/kcc/components"
	"github.com/automoto/kcc/shared/collision"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the 2D collision space. Casts ignore surfaces
// overlapped deeper than tolerance.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int, tolerance float64) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := collision.NewSpace2D(resolv.NewSpace(width, height, cellWidth, cellHeight), tolerance)
	components.Space.SetValue(space, components.SpaceData{Space2D: spaceData})
	return space
}

// CreateBoxWorld creates the 3D collision mask from boxes.
func CreateBoxWorld(ecs *ecs.ECS, boxes []collision.Box, tolerance float64) *donburi.Entry {
	entry := archetypes.BoxWorld.Spawn(ecs)
	world := collision.NewBoxWorld(tolerance)
	for _, b := range boxes {
		world.Add(b)
	}
	components.BoxWorld.SetValue(entry, components.BoxWorldData{BoxWorld: world})
	return entry
}
