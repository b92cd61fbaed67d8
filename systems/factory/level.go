package factory

import (
	"github.com/automoto/kcc/archetypes"
	"github.com/automoto/kcc/components"
	"github.com/automoto/kcc/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Grid cell size for the 2D space.
const cellSize = 16

// CreateLevel2D spawns the level entity, its collision space and one wall
// per solid.
func CreateLevel2D(ecs *ecs.ECS, level *leveldata.Level2D, tolerance float64) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{Level2D: level})

	w := int(level.Width) + cellSize
	h := int(level.Height) + cellSize
	CreateSpace(ecs, w, h, cellSize, cellSize, tolerance)

	for _, r := range level.Solids {
		CreateWall(ecs, r.X, r.Y, r.W, r.H)
	}
	return entry
}

// CreateLevel3D spawns the level entity and its box world.
func CreateLevel3D(ecs *ecs.ECS, level *leveldata.Level3D, tolerance float64) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{Level3D: level})
	CreateBoxWorld(ecs, level.Boxes, tolerance)
	return entry
}
