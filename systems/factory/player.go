package factory

import (
	"github.com/automoto/kcc/archetypes"
	"github.com/automoto/kcc/components"
	cfg "github.com/automoto/kcc/config"
	"github.com/automoto/kcc/shared/collision"
	"github.com/automoto/kcc/shared/leveldata"
	"github.com/automoto/kcc/shared/movement"
	"github.com/automoto/kcc/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer2D spawns a side-view actor standing on spawn. The level's
// space must exist first.
func CreatePlayer2D(ecs *ecs.ECS, spawn leveldata.SpawnPoint, tuning cfg.Controller2DConfig) (*donburi.Entry, error) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil, errNoSpace
	}
	space := components.Space.Get(spaceEntry)

	w, h := 2*tuning.HalfExtents.X, 2*tuning.HalfExtents.Y
	obj := resolv.NewObject(spawn.X-w/2, spawn.Y, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))

	ctrl, err := movement.NewController2D(collision.ObjectBody{Object: obj}, space, tuning)
	if err != nil {
		return nil, err
	}

	player := archetypes.Player2D.Spawn(ecs)
	obj.Data = player
	space.Space().Add(obj)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Player2D.SetValue(player, components.Player2DData{Controller2D: ctrl})

	return player, nil
}

// CreatePlayer3D spawns a third-person actor with its feet at spawn.
func CreatePlayer3D(ecs *ecs.ECS, spawn mgl64.Vec3, yaw float64, tuning cfg.Controller3DConfig) (*donburi.Entry, error) {
	worldEntry, ok := components.BoxWorld.First(ecs.World)
	if !ok {
		return nil, errNoSpace
	}
	world := components.BoxWorld.Get(worldEntry)

	body := &movement.PointBody3D{
		Pos: spawn.Add(mgl64.Vec3{0, tuning.HalfExtents.Y(), 0}),
		Yaw: yaw,
	}
	ctrl, err := movement.NewController3D(body, world, tuning)
	if err != nil {
		return nil, err
	}

	player := archetypes.Player3D.Spawn(ecs)
	components.Player3D.SetValue(player, components.Player3DData{Controller3D: ctrl, Body: body})
	return player, nil
}
