package systems

import (
	"github.com/automoto/kcc/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput hands the buffered latch to this tick's snapshot.
// Must run BEFORE the player systems in the system order.
func UpdateInput(ecs *ecs.ECS) {
	in := GetOrCreateInput(ecs)
	in.Snapshot = in.Latch.Flush()
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (nothing held, sticks centred)
	}
	return components.Input.Get(entry)
}
