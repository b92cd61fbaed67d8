package components

import (
	"github.com/automoto/kcc/shared/leveldata"
	"github.com/yohamta/donburi"
)

// LevelData holds whichever level variant the scene runs.
type LevelData struct {
	Level2D *leveldata.Level2D
	Level3D *leveldata.Level3D
}

var Level = donburi.NewComponentType[LevelData]()
