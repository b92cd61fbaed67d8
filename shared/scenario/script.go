package scenario

import (
	"fmt"

	"github.com/automoto/kcc/shared/input"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Globals a script writes each tick. Outputs are reset before every run, so
// a held button must be asserted on every tick it is held.
var (
	axisOutputs = [...]struct {
		name string
		axis input.Axis
	}{
		{"move_x", input.MoveX},
		{"move_y", input.MoveY},
		{"look_x", input.LookX},
		{"look_y", input.LookY},
	}
	actionOutputs = [...]struct {
		name   string
		action input.Action
	}{
		{"jump", input.Jump},
		{"dash", input.Dash},
		{"sprint", input.Sprint},
		{"climb", input.Climb},
	}
)

// Script drives input from a tengo program evaluated once per tick with the
// global tick set. Setting duration declares the run length.
type Script struct {
	compiled *tengo.Compiled
	ticks    int
}

func NewScript(src []byte, ticks int) (*Script, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math", "rand"))
	_ = script.Add("tick", 0)
	_ = script.Add("duration", 0)
	for _, o := range axisOutputs {
		_ = script.Add(o.name, 0.0)
	}
	for _, o := range actionOutputs {
		_ = script.Add(o.name, false)
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile script: %w", err)
	}

	s := &Script{compiled: compiled, ticks: ticks}
	// Dry run so the script can declare its own length.
	if err := s.run(-1); err != nil {
		return nil, err
	}
	if d := compiled.Get("duration").Int(); d > 0 {
		s.ticks = d
	}
	return s, nil
}

func (s *Script) run(tick int) error {
	if err := s.compiled.Set("tick", tick); err != nil {
		return err
	}
	for _, o := range axisOutputs {
		if err := s.compiled.Set(o.name, 0.0); err != nil {
			return err
		}
	}
	for _, o := range actionOutputs {
		if err := s.compiled.Set(o.name, false); err != nil {
			return err
		}
	}
	if err := s.compiled.Run(); err != nil {
		return fmt.Errorf("script tick %d: %w", tick, err)
	}
	return nil
}

// Drive runs the script for tick and copies its outputs into the latch.
// Action outputs are levels; the latch turns them into edges.
func (s *Script) Drive(tick int, l *input.Latch) error {
	if err := s.run(tick); err != nil {
		return err
	}
	for _, o := range axisOutputs {
		l.SetAxis(o.axis, s.compiled.Get(o.name).Float())
	}
	for _, o := range actionOutputs {
		l.SetHeld(o.action, s.compiled.Get(o.name).Bool())
	}
	return nil
}

func (s *Script) Ticks() int {
	return s.ticks
}
