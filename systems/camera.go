package systems

import (
	"github.com/automoto/kcc/components"
	cfg "github.com/automoto/kcc/config"
	"github.com/automoto/kcc/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateCamera follows the side-view player. Must run after UpdatePlayers2D.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	rig := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok || !playerEntry.HasComponent(components.Player2D) {
		return
	}
	player := components.Player2D.Get(playerEntry)
	in := GetOrCreateInput(e)

	look := math.Vec2{X: in.Snapshot.LookX, Y: in.Snapshot.LookY}
	rig.Update(player.Actor.Position, look, cfg.Sim.Dt())
}

// UpdateCamera3D follows the third-person player and turns it with the
// camera during a snap rotation.
func UpdateCamera3D(e *ecs.ECS) {
	cameraEntry, ok := components.Camera3D.First(e.World)
	if !ok {
		return
	}
	rig := components.Camera3D.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok || !playerEntry.HasComponent(components.Player3D) {
		return
	}
	player := components.Player3D.Get(playerEntry)
	in := GetOrCreateInput(e)

	look := mgl64.Vec2{in.Snapshot.LookX, in.Snapshot.LookY}
	rig.Update(player.Actor.Position, look, player.Controller3D, cfg.Sim.Dt())
}
