package components

import (
	"github.com/automoto/kcc/shared/input"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// InputData buffers host events in Latch between ticks. Snapshot is what
// the current tick sees; it is refreshed by UpdateInput only.
type InputData struct {
	Latch           input.Latch
	Snapshot        input.Snapshot
	LastInputMethod InputMethod // Most recently used input method
}

var Input = donburi.NewComponentType[InputData]()
