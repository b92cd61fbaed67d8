// Package input buffers host input events between fixed ticks.
package input

// Action is a digital input the controllers read.
type Action int

const (
	Jump Action = iota
	Dash
	Sprint
	Climb
	ActionCount // Must be last - used for array sizing
)

// Axis is an analog input in [-1, 1].
type Axis int

const (
	MoveX Axis = iota
	MoveY
	LookX
	LookY
	AxisCount
)

// Snapshot is the input seen by one tick. Pulse fields are true for exactly
// the tick after the transition.
type Snapshot struct {
	MoveX, MoveY float64 // MoveY is the climb axis in 2D and forward in 3D
	LookX, LookY float64

	JumpHeld      bool
	JumpPressed   bool
	JumpReleased  bool
	DashPressed   bool
	SprintPressed bool
	ClimbHeld     bool
}

// HasMove reports whether the move stick is past the dead zone.
func (s Snapshot) HasMove() bool {
	return s.MoveX*s.MoveX+s.MoveY*s.MoveY > 0.01
}

// Latch collects events at arbitrary times and hands them out once per tick.
// A press and a release inside the same tick are both reported.
type Latch struct {
	axes     [AxisCount]float64
	held     [ActionCount]bool
	pressed  [ActionCount]bool
	released [ActionCount]bool
}

// SetAxis records the latest value of an axis, clamped to [-1, 1].
func (l *Latch) SetAxis(a Axis, v float64) {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	l.axes[a] = v
}

// Press records a press edge. Repeats while already held are ignored.
func (l *Latch) Press(a Action) {
	if !l.held[a] {
		l.pressed[a] = true
	}
	l.held[a] = true
}

// Release records a release edge.
func (l *Latch) Release(a Action) {
	if l.held[a] {
		l.released[a] = true
	}
	l.held[a] = false
}

// SetHeld is for hosts that poll levels instead of delivering events.
func (l *Latch) SetHeld(a Action, held bool) {
	if held {
		l.Press(a)
	} else {
		l.Release(a)
	}
}

func (l *Latch) Held(a Action) bool {
	return l.held[a]
}

// Flush returns the snapshot for the tick about to run and clears pulses.
// Held levels and axes carry over.
func (l *Latch) Flush() Snapshot {
	s := Snapshot{
		MoveX:         l.axes[MoveX],
		MoveY:         l.axes[MoveY],
		LookX:         l.axes[LookX],
		LookY:         l.axes[LookY],
		JumpHeld:      l.held[Jump],
		JumpPressed:   l.pressed[Jump],
		JumpReleased:  l.released[Jump],
		DashPressed:   l.pressed[Dash],
		SprintPressed: l.pressed[Sprint],
		ClimbHeld:     l.held[Climb],
	}
	l.pressed = [ActionCount]bool{}
	l.released = [ActionCount]bool{}
	return s
}

var actionNames = [ActionCount]string{"jump", "dash", "sprint", "climb"}

var axisNames = [AxisCount]string{"moveX", "moveY", "lookX", "lookY"}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

func (a Axis) String() string {
	if a < 0 || a >= AxisCount {
		return "unknown"
	}
	return axisNames[a]
}

// ParseAction looks an action up by its String name.
func ParseAction(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return 0, false
}

// ParseAxis looks an axis up by its String name.
func ParseAxis(name string) (Axis, bool) {
	for i, n := range axisNames {
		if n == name {
			return Axis(i), true
		}
	}
	return 0, false
}
