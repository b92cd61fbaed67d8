package factory

import (
	"errors"

	"github.com/automoto/kcc/archetypes"
	"github.com/automoto/kcc/components"
	cfg "github.com/automoto/kcc/config"
	"github.com/automoto/kcc/shared/camera"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var errNoSpace = errors.New("collision space must be created before the player")

// CreateCamera creates the side-view camera centred on start and kept
// inside the level if there is one.
func CreateCamera(ecs *ecs.ECS, start math.Vec2) *donburi.Entry {
	entry := archetypes.Camera.Spawn(ecs)
	rig := camera.NewRig2D(cfg.Camera2D, start)
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		if level := components.Level.Get(levelEntry).Level2D; level != nil {
			rig.SetBounds(level.Width, level.Height, float64(cfg.C.Width), float64(cfg.C.Height))
		}
	}
	components.Camera.SetValue(entry, components.CameraData{Rig2D: rig})
	return entry
}

func CreateCamera3D(ecs *ecs.ECS, start mgl64.Vec3, yaw float64) *donburi.Entry {
	entry := archetypes.Camera3D.Spawn(ecs)
	components.Camera3D.SetValue(entry, components.Camera3DData{Rig3D: camera.NewRig3D(cfg.Camera3D, start, yaw)})
	return entry
}
