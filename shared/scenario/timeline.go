// Package scenario replays scripted input into a latch, one tick at a time.
package scenario

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/kcc/shared/input"
	"gopkg.in/yaml.v3"
)

// DefaultTicks is used when a scenario does not say how long it runs.
const DefaultTicks = 600

var (
	ErrUnknownInput = errors.New("unknown input")
	ErrBadEvent     = errors.New("bad event")
)

// Driver feeds a latch before each tick.
type Driver interface {
	Drive(tick int, l *input.Latch) error
	Ticks() int
}

// Event is one timeline entry. Exactly one of Press, Release or Axis is set.
type Event struct {
	Tick    int     `yaml:"tick"`
	Press   string  `yaml:"press,omitempty"`
	Release string  `yaml:"release,omitempty"`
	Axis    string  `yaml:"axis,omitempty"`
	Value   float64 `yaml:"value,omitempty"`
}

// Timeline is a YAML list of input events keyed by tick.
type Timeline struct {
	Name    string  `yaml:"name"`
	Variant string  `yaml:"variant"` // "2d" or "3d", informational
	Length  int     `yaml:"ticks"`
	Events  []Event `yaml:"events"`

	next int
}

// ParseTimeline decodes and checks a timeline. Events are ordered by tick,
// keeping file order within a tick.
func ParseTimeline(data []byte) (*Timeline, error) {
	tl := &Timeline{}
	if err := yaml.Unmarshal(data, tl); err != nil {
		return nil, fmt.Errorf("parse timeline: %w", err)
	}
	var errs []error
	for i, ev := range tl.Events {
		if err := ev.check(); err != nil {
			errs = append(errs, fmt.Errorf("event %d: %w", i, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	sort.SliceStable(tl.Events, func(i, j int) bool {
		return tl.Events[i].Tick < tl.Events[j].Tick
	})
	return tl, nil
}

func (ev Event) check() error {
	set := 0
	for _, s := range []string{ev.Press, ev.Release, ev.Axis} {
		if s != "" {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("%w: want exactly one of press, release, axis", ErrBadEvent)
	}
	if ev.Tick < 0 {
		return fmt.Errorf("%w: negative tick %d", ErrBadEvent, ev.Tick)
	}
	if ev.Axis != "" {
		if _, ok := input.ParseAxis(ev.Axis); !ok {
			return fmt.Errorf("%w: axis %q", ErrUnknownInput, ev.Axis)
		}
		return nil
	}
	name := ev.Press + ev.Release
	if _, ok := input.ParseAction(name); !ok {
		return fmt.Errorf("%w: action %q", ErrUnknownInput, name)
	}
	return nil
}

// Drive applies every event due at or before tick.
func (tl *Timeline) Drive(tick int, l *input.Latch) error {
	for ; tl.next < len(tl.Events) && tl.Events[tl.next].Tick <= tick; tl.next++ {
		ev := tl.Events[tl.next]
		switch {
		case ev.Axis != "":
			a, _ := input.ParseAxis(ev.Axis)
			l.SetAxis(a, ev.Value)
		case ev.Press != "":
			a, _ := input.ParseAction(ev.Press)
			l.Press(a)
		default:
			a, _ := input.ParseAction(ev.Release)
			l.Release(a)
		}
	}
	return nil
}

// Ticks is the run length, at least one tick past the last event.
func (tl *Timeline) Ticks() int {
	if tl.Length > 0 {
		return tl.Length
	}
	if n := len(tl.Events); n > 0 {
		return tl.Events[n-1].Tick + 1
	}
	return DefaultTicks
}

// Rewind restarts the timeline from tick 0.
func (tl *Timeline) Rewind() {
	tl.next = 0
}

// Load picks a driver by file extension: .yaml/.yml timelines or .tengo
// scripts.
func Load(fsys fs.FS, path string) (Driver, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		tl, err := ParseTimeline(data)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", path, err)
		}
		return tl, nil
	case ".tengo":
		s, err := NewScript(data, DefaultTicks)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", path, err)
		}
		return s, nil
	}
	return nil, fmt.Errorf("scenario %s: unsupported extension", path)
}
