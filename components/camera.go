package components

import (
	"github.com/automoto/kcc/shared/camera"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	*camera.Rig2D
}

var Camera = donburi.NewComponentType[CameraData]()

type Camera3DData struct {
	*camera.Rig3D
}

var Camera3D = donburi.NewComponentType[Camera3DData]()
