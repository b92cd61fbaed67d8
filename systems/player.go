package systems

import (
	"github.com/automoto/kcc/components"
	cfg "github.com/automoto/kcc/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayers2D advances every side-view actor by one tick.
func UpdatePlayers2D(ecs *ecs.ECS) {
	in := GetOrCreateInput(ecs)
	dt := cfg.Sim.Dt()
	components.Player2D.Each(ecs.World, func(e *donburi.Entry) {
		components.Player2D.Get(e).Tick(in.Snapshot, dt)
	})
}

// UpdatePlayers3D advances every third-person actor by one tick.
func UpdatePlayers3D(ecs *ecs.ECS) {
	in := GetOrCreateInput(ecs)
	dt := cfg.Sim.Dt()
	components.Player3D.Each(ecs.World, func(e *donburi.Entry) {
		components.Player3D.Get(e).Tick(in.Snapshot, dt)
	})
}
