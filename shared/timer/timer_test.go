package timer

import "testing"

const dt = 1.0 / 60

func TestDecrementAllNeverNegative(t *testing.T) {
	var b Bank
	b.Set(Coyote, 0.1)
	b.Set(JumpBuffer, dt/2)
	for i := 0; i < 20; i++ {
		b.DecrementAll(dt)
		for id := ID(0); id < Count; id++ {
			if b.Remaining(id) < 0 {
				t.Fatalf("tick %d: %s negative: %v", i, id, b.Remaining(id))
			}
		}
	}
	if b.Active(Coyote) || b.Active(JumpBuffer) {
		t.Error("timers still active after expiry")
	}
}

func TestWindowLastsWholeTicks(t *testing.T) {
	tests := []struct {
		name   string
		window float64
		ticks  int
	}{
		{"six ticks", 6 * dt, 6},
		{"one tick", dt, 1},
		{"partial tick rounds up", 2.5 * dt, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Bank
			b.Set(Coyote, tt.window)
			active := 0
			for i := 0; i < 100; i++ {
				b.DecrementAll(dt)
				if !b.Active(Coyote) {
					break
				}
				active++
			}
			// Set happens inside a tick, so that tick counts as well.
			if got := active + 1; got != tt.ticks {
				t.Errorf("active for %d ticks, want %d", got, tt.ticks)
			}
		})
	}
}

func TestSetClearFraction(t *testing.T) {
	var b Bank
	b.Set(Dash, 0.4)
	if got := b.Fraction(Dash, 0.4); got != 0 {
		t.Errorf("Fraction at start = %v", got)
	}
	b.DecrementAll(0.1)
	if got := b.Fraction(Dash, 0.4); got < 0.2499 || got > 0.2501 {
		t.Errorf("Fraction = %v, want 0.25", got)
	}
	b.Clear(Dash)
	if b.Active(Dash) || b.Fraction(Dash, 0.4) != 1 {
		t.Error("Clear did not expire timer")
	}
	b.Set(Dash, -1)
	if b.Remaining(Dash) != 0 {
		t.Error("negative Set stored")
	}
	b.Set(RotateCooldown, 1)
	b.Reset()
	if b.Active(RotateCooldown) {
		t.Error("Reset left timer running")
	}
}

func TestIDString(t *testing.T) {
	if WallJumpLock.String() != "wallJumpLock" || Count.String() != "unknown" {
		t.Error("ID.String")
	}
}
