// Package timer holds the fixed set of countdown timers an actor carries.
package timer

// ID names one timer in a Bank.
type ID int

const (
	Coyote ID = iota
	JumpBuffer
	AirJumpWindow
	WallJumpWindow
	WallJumpLock
	SprintReset
	DashCooldown
	Dash
	CeilingStick
	RotateCooldown
	DoubleTapWindow
	Count // Must be last - used for array sizing
)

var names = [Count]string{
	"coyote",
	"jumpBuffer",
	"airJumpWindow",
	"wallJumpWindow",
	"wallJumpLock",
	"sprintReset",
	"dashCooldown",
	"dash",
	"ceilingStick",
	"rotateCooldown",
	"doubleTapWindow",
}

func (id ID) String() string {
	if id < 0 || id >= Count {
		return "unknown"
	}
	return names[id]
}

// Remaining time below this is treated as expired.
const epsilon = 1e-9

// Bank is a fixed-size array of countdowns in seconds. The zero value has
// every timer expired.
type Bank struct {
	remaining [Count]float64
}

// DecrementAll advances every running timer by dt, clamping at zero.
func (b *Bank) DecrementAll(dt float64) {
	for i := range b.remaining {
		if b.remaining[i] <= 0 {
			continue
		}
		b.remaining[i] -= dt
		if b.remaining[i] <= epsilon {
			b.remaining[i] = 0
		}
	}
}

// Set overwrites a timer. Negative durations expire it.
func (b *Bank) Set(id ID, d float64) {
	if d < 0 {
		d = 0
	}
	b.remaining[id] = d
}

func (b *Bank) Clear(id ID) {
	b.remaining[id] = 0
}

func (b *Bank) Active(id ID) bool {
	return b.remaining[id] > 0
}

func (b *Bank) Remaining(id ID) float64 {
	return b.remaining[id]
}

// Fraction reports how much of window has elapsed, in [0, 1].
func (b *Bank) Fraction(id ID, window float64) float64 {
	if window <= 0 {
		return 1
	}
	f := 1 - b.remaining[id]/window
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Reset expires every timer.
func (b *Bank) Reset() {
	b.remaining = [Count]float64{}
}
