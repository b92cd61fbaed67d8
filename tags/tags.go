package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Wall   = donburi.NewTag().SetName("Wall")
	Camera = donburi.NewTag().SetName("Camera")
)

// Resolv tags for collision queries
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvProbe  = "probe"
)
