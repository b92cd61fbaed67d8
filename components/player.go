package components

import (
	"github.com/automoto/kcc/shared/movement"
	"github.com/yohamta/donburi"
)

type Player2DData struct {
	*movement.Controller2D
}

var Player2D = donburi.NewComponentType[Player2DData]()

// Player3DData holds the controller and the body it moves. There is no
// engine body in 3D; the point body is the actor's transform.
type Player3DData struct {
	*movement.Controller3D
	Body *movement.PointBody3D
}

var Player3D = donburi.NewComponentType[Player3DData]()
