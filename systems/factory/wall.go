package factory

import (
	"github.com/automoto/kcc/archetypes"
	"github.com/automoto/kcc/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall adds a static solid with its bottom-left corner at x, y. The
// space must exist first.
func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return wall
	}
	obj := components.Space.Get(spaceEntry).AddSolid(x, y, w, h)
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	return wall
}
