package systems

import (
	"github.com/automoto/kcc/components"
	"github.com/automoto/kcc/shared/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// InputBinding represents the keys and buttons bound to one action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// AxisBinding drives an axis to -1 or +1 from keys, or from a stick.
type AxisBinding struct {
	Negative, Positive []ebiten.Key
	Stick              ebiten.StandardGamepadAxis
	Invert             bool // ebiten sticks report down as positive
}

// InputConfig holds all host mappings
type InputConfig struct {
	Bindings      map[input.Action]InputBinding
	Axes          map[input.Axis]AxisBinding
	StickDeadzone float64
}

// HostInput is the keyboard and gamepad mapping used by PollHostInput.
var HostInput = InputConfig{
	StickDeadzone: 0.25,
	Bindings: map[input.Action]InputBinding{
		input.Jump: {
			Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyX},
			// A / Cross button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
		},
		input.Dash: {
			Keys:                   []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyC},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
		},
		input.Sprint: {
			Keys:                   []ebiten.Key{ebiten.KeyZ},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftStick},
		},
		input.Climb: {
			Keys:                   []ebiten.Key{ebiten.KeyControlLeft, ebiten.KeyV},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomRight},
		},
	},
	Axes: map[input.Axis]AxisBinding{
		input.MoveX: {
			Negative: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
			Positive: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
			Stick:    ebiten.StandardGamepadAxisLeftStickHorizontal,
		},
		input.MoveY: {
			Negative: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
			Positive: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
			Stick:    ebiten.StandardGamepadAxisLeftStickVertical,
			Invert:   true,
		},
		input.LookX: {
			Negative: []ebiten.Key{ebiten.KeyJ},
			Positive: []ebiten.Key{ebiten.KeyL},
			Stick:    ebiten.StandardGamepadAxisRightStickHorizontal,
		},
		input.LookY: {
			Negative: []ebiten.Key{ebiten.KeyK},
			Positive: []ebiten.Key{ebiten.KeyI},
			Stick:    ebiten.StandardGamepadAxisRightStickVertical,
			Invert:   true,
		},
	},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// PollHostInput feeds the latch from the keyboard and the first standard
// gamepad. Only the windowed sandbox adds it; headless runs drive the latch
// from a scenario instead.
func PollHostInput(ecs *ecs.ECS) {
	in := GetOrCreateInput(ecs)

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	gamepad, hasGamepad := firstStandardGamepad(gamepadIDs)

	var keyboardUsed, gamepadUsed bool
	for action, binding := range HostInput.Bindings {
		held := false
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				held = true
				keyboardUsed = true
			}
		}
		if hasGamepad {
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gamepad, btn) {
					held = true
					gamepadUsed = true
				}
			}
		}
		in.Latch.SetHeld(action, held)
	}

	for axis, binding := range HostInput.Axes {
		v := 0.0
		if anyPressed(binding.Positive) {
			v++
			keyboardUsed = true
		}
		if anyPressed(binding.Negative) {
			v--
			keyboardUsed = true
		}
		if v == 0 && hasGamepad {
			s := ebiten.StandardGamepadAxisValue(gamepad, binding.Stick)
			if binding.Invert {
				s = -s
			}
			if s > HostInput.StickDeadzone || s < -HostInput.StickDeadzone {
				v = s
				gamepadUsed = true
			}
		}
		in.Latch.SetAxis(axis, v)
	}

	// Gamepad takes priority if both were used
	if gamepadUsed {
		in.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		in.LastInputMethod = components.InputKeyboard
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func firstStandardGamepad(ids []ebiten.GamepadID) (ebiten.GamepadID, bool) {
	for _, id := range ids {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			return id, true
		}
	}
	return 0, false
}
