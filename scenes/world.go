package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/kcc/archetypes"
	"github.com/automoto/kcc/components"
	cfg "github.com/automoto/kcc/config"
	"github.com/automoto/kcc/shared/camera"
	"github.com/automoto/kcc/shared/collision"
	"github.com/automoto/kcc/shared/input"
	"github.com/automoto/kcc/shared/leveldata"
	"github.com/automoto/kcc/shared/movement"
	"github.com/automoto/kcc/systems"
	"github.com/automoto/kcc/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Scene2D runs the side-view controller on a static level.
type Scene2D struct {
	ecs    *ecs.ECS
	input  *donburi.Entry
	space  *donburi.Entry
	player *donburi.Entry
	camera *donburi.Entry
	tick   int
}

// NewScene2D builds a side-view scene on level using the installed tuning.
// With host set, keyboard and gamepad state feed the latch every tick.
func NewScene2D(level *leveldata.Level2D, host bool) (*Scene2D, error) {
	ecs := ecs.NewECS(donburi.NewWorld())

	if host {
		ecs.AddSystem(systems.PollHostInput)
	}
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePlayers2D)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(archetypes.Default, systems.DrawDebug)

	s := &Scene2D{ecs: ecs}
	s.input = factory.CreateInput(ecs)
	factory.CreateLevel2D(ecs, level, cfg.Controller2D.SnapTolerance)

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil, fmt.Errorf("level %q: no collision space", level.Name)
	}
	s.space = spaceEntry

	player, err := factory.CreatePlayer2D(ecs, level.Spawn(), cfg.Controller2D)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", level.Name, err)
	}
	s.player = player
	s.camera = factory.CreateCamera(ecs, s.Player().Actor.Position)
	return s, nil
}

func (s *Scene2D) Update() {
	s.ecs.Update()
	s.tick++
}

func (s *Scene2D) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	s.ecs.Draw(screen)
}

func (s *Scene2D) Latch() *input.Latch {
	return &components.Input.Get(s.input).Latch
}

func (s *Scene2D) Tick() int {
	return s.tick
}

func (s *Scene2D) Player() *movement.Controller2D {
	return components.Player2D.Get(s.player).Controller2D
}

func (s *Scene2D) Camera() *camera.Rig2D {
	return components.Camera.Get(s.camera).Rig2D
}

// ApplyTuning validates t and installs it between ticks. If the half extents
// changed the player's box is resized with its feet kept in place.
func (s *Scene2D) ApplyTuning(t cfg.Tuning) error {
	if err := cfg.Validate(t); err != nil {
		return err
	}
	if err := s.Player().SetConfig(t.Controller2D); err != nil {
		return err
	}
	cfg.Apply(t)

	s.Camera().SetConfig(t.Camera2D)
	components.Space.Get(s.space).SetTolerance(t.Controller2D.SnapTolerance)

	obj := components.Object.Get(s.player).Object
	w, h := 2*t.Controller2D.HalfExtents.X, 2*t.Controller2D.HalfExtents.Y
	if obj.W != w || obj.H != h {
		body := collision.ObjectBody{Object: obj}
		p := body.Position()
		p.Y += (h - obj.H) / 2
		obj.W, obj.H = w, h
		obj.SetShape(resolv.NewRectangle(0, 0, w, h))
		body.MoveTo(p)
	}
	return nil
}

func (s *Scene2D) Trace() string {
	a := s.Player().Actor
	return fmt.Sprintf("%5d %-8s pos=(%.3f, %.3f) vel=(%.3f, %.3f) facing=%+.0f air=%d",
		s.tick, a.Mode, a.Position.X, a.Position.Y, a.Velocity.X, a.Velocity.Y, a.Facing, a.AirMoves)
}
