package scenario

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/kcc/shared/input"
)

const wallJumpTimeline = `
name: wall-jump
variant: 2d
events:
  - tick: 10
    press: jump
  - tick: 0
    axis: moveX
    value: 1
  - tick: 10
    release: jump
  - tick: 40
    press: dash
`

func run(t *testing.T, d Driver, ticks int) []input.Snapshot {
	t.Helper()
	var l input.Latch
	out := make([]input.Snapshot, 0, ticks)
	for tick := 0; tick < ticks; tick++ {
		if err := d.Drive(tick, &l); err != nil {
			t.Fatalf("tick %d: %v", tick, err)
		}
		out = append(out, l.Flush())
	}
	return out
}

func TestTimelineDrive(t *testing.T) {
	tl, err := ParseTimeline([]byte(wallJumpTimeline))
	if err != nil {
		t.Fatalf("ParseTimeline: %v", err)
	}
	if tl.Events[0].Axis != "moveX" {
		t.Errorf("events not sorted: %+v", tl.Events)
	}
	if tl.Ticks() != 41 {
		t.Errorf("Ticks = %d, want 41", tl.Ticks())
	}

	snaps := run(t, tl, tl.Ticks())
	if snaps[0].MoveX != 1 || snaps[39].MoveX != 1 {
		t.Error("axis did not persist")
	}
	if !snaps[10].JumpPressed || !snaps[10].JumpReleased || snaps[10].JumpHeld {
		t.Errorf("tick 10 = %+v, want a press and release in one tick", snaps[10])
	}
	if snaps[11].JumpPressed || snaps[9].JumpPressed {
		t.Error("jump pulse leaked")
	}
	if !snaps[40].DashPressed {
		t.Error("dash missing")
	}

	tl.Rewind()
	again := run(t, tl, tl.Ticks())
	for i := range snaps {
		if snaps[i] != again[i] {
			t.Fatalf("tick %d differs after Rewind", i)
		}
	}
}

func TestTimelineCatchesUp(t *testing.T) {
	tl, err := ParseTimeline([]byte("events:\n  - tick: 3\n    press: sprint\n"))
	if err != nil {
		t.Fatalf("ParseTimeline: %v", err)
	}
	var l input.Latch
	if err := tl.Drive(10, &l); err != nil {
		t.Fatal(err)
	}
	if !l.Flush().SprintPressed {
		t.Error("late event dropped")
	}
}

func TestTimelineRejects(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"unknown action", "events:\n  - tick: 1\n    press: fly\n", ErrUnknownInput},
		{"unknown axis", "events:\n  - tick: 1\n    axis: wheel\n", ErrUnknownInput},
		{"two kinds", "events:\n  - tick: 1\n    press: jump\n    axis: moveX\n", ErrBadEvent},
		{"empty", "events:\n  - tick: 1\n", ErrBadEvent},
		{"negative", "events:\n  - tick: -1\n    press: jump\n", ErrBadEvent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTimeline([]byte(tt.src)); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

const hopScript = `
duration = 120
move_x = 1
if tick >= 20 && tick < 30 {
	jump = true
}
if tick == 60 {
	dash = true
}
look_y = tick < 0 ? 0 : -0.5
`

func TestScriptDrive(t *testing.T) {
	s, err := NewScript([]byte(hopScript), DefaultTicks)
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}
	if s.Ticks() != 120 {
		t.Errorf("Ticks = %d, want 120", s.Ticks())
	}
	snaps := run(t, s, s.Ticks())
	if snaps[0].MoveX != 1 || snaps[0].LookY != -0.5 {
		t.Errorf("axes = %+v", snaps[0])
	}
	if !snaps[20].JumpPressed || !snaps[25].JumpHeld || snaps[25].JumpPressed {
		t.Error("jump level not turned into one press")
	}
	if !snaps[30].JumpReleased || snaps[30].JumpHeld {
		t.Error("jump release missing")
	}
	if !snaps[60].DashPressed || snaps[61].DashPressed {
		t.Error("dash pulse")
	}
}

func TestScriptErrors(t *testing.T) {
	if _, err := NewScript([]byte("move_x = ("), DefaultTicks); err == nil {
		t.Error("syntax error accepted")
	}

	s, err := NewScript([]byte("move_x = 1 / (tick - 5)"), DefaultTicks)
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}
	var l input.Latch
	if err := s.Drive(5, &l); err == nil || !strings.Contains(err.Error(), "tick 5") {
		t.Errorf("err = %v, want runtime error at tick 5", err)
	}
}

func TestLoadByExtension(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml":  {Data: []byte(wallJumpTimeline)},
		"b.tengo": {Data: []byte(hopScript)},
		"c.txt":   {Data: []byte("")},
	}
	if d, err := Load(fsys, "a.yaml"); err != nil {
		t.Errorf("yaml: %v", err)
	} else if _, ok := d.(*Timeline); !ok {
		t.Errorf("yaml driver = %T", d)
	}
	if d, err := Load(fsys, "b.tengo"); err != nil {
		t.Errorf("tengo: %v", err)
	} else if _, ok := d.(*Script); !ok {
		t.Errorf("tengo driver = %T", d)
	}
	if _, err := Load(fsys, "c.txt"); err == nil {
		t.Error("txt accepted")
	}
	if _, err := Load(fsys, "missing.yaml"); err == nil {
		t.Error("missing file accepted")
	}
}
