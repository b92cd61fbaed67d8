package scenes

import (
	cfg "github.com/automoto/kcc/config"
	"github.com/automoto/kcc/shared/input"
	"github.com/automoto/kcc/shared/scenario"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one running controller variant. The sandbox draws it and the
// simulator steps it without a window.
type Scene interface {
	// Update runs exactly one fixed tick.
	Update()
	Draw(screen *ebiten.Image)

	// Latch buffers input for the next tick.
	Latch() *input.Latch
	Tick() int
	ApplyTuning(t cfg.Tuning) error

	// Trace describes the actor after the last tick on one line.
	Trace() string
}

// Play feeds d into s and steps it ticks times. after, if set, runs after
// every tick.
func Play(s Scene, d scenario.Driver, ticks int, after func(Scene)) error {
	for i := 0; i < ticks; i++ {
		if err := d.Drive(s.Tick(), s.Latch()); err != nil {
			return err
		}
		s.Update()
		if after != nil {
			after(s)
		}
	}
	return nil
}
