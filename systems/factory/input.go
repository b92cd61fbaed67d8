package factory

import (
	"github.com/automoto/kcc/archetypes"
	"github.com/automoto/kcc/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateInput creates the singleton input entity.
func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Input.Spawn(ecs)
	components.Input.SetValue(entry, components.InputData{})
	return entry
}
