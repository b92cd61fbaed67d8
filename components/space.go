package components

import (
	"github.com/automoto/kcc/shared/collision"
	"github.com/yohamta/donburi"
)

// SpaceData is the static 2D collision mask.
type SpaceData struct {
	*collision.Space2D
}

var Space = donburi.NewComponentType[SpaceData]()

// BoxWorldData is the static 3D collision mask.
type BoxWorldData struct {
	*collision.BoxWorld
}

var BoxWorld = donburi.NewComponentType[BoxWorldData]()
