package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/kcc/archetypes"
	"github.com/automoto/kcc/components"
	cfg "github.com/automoto/kcc/config"
	"github.com/automoto/kcc/shared/camera"
	"github.com/automoto/kcc/shared/input"
	"github.com/automoto/kcc/shared/leveldata"
	"github.com/automoto/kcc/shared/movement"
	"github.com/automoto/kcc/systems"
	"github.com/automoto/kcc/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Scene3D runs the third-person controller and orbit camera in a box world.
type Scene3D struct {
	ecs    *ecs.ECS
	input  *donburi.Entry
	world  *donburi.Entry
	player *donburi.Entry
	camera *donburi.Entry
	tick   int
}

func NewScene3D(level *leveldata.Level3D, host bool) (*Scene3D, error) {
	ecs := ecs.NewECS(donburi.NewWorld())

	if host {
		ecs.AddSystem(systems.PollHostInput)
	}
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePlayers3D)
	ecs.AddSystem(systems.UpdateCamera3D)

	ecs.AddRenderer(archetypes.Default, systems.DrawDebug3D)

	s := &Scene3D{ecs: ecs}
	s.input = factory.CreateInput(ecs)
	factory.CreateLevel3D(ecs, level, cfg.Controller3D.SnapTolerance)

	worldEntry, ok := components.BoxWorld.First(ecs.World)
	if !ok {
		return nil, fmt.Errorf("level %q: no box world", level.Name)
	}
	s.world = worldEntry

	player, err := factory.CreatePlayer3D(ecs, level.Spawn, level.Yaw, cfg.Controller3D)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", level.Name, err)
	}
	s.player = player
	s.camera = factory.CreateCamera3D(ecs, s.Player().Actor.Position, level.Yaw)
	return s, nil
}

func (s *Scene3D) Update() {
	s.ecs.Update()
	s.tick++
}

func (s *Scene3D) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	s.ecs.Draw(screen)
}

func (s *Scene3D) Latch() *input.Latch {
	return &components.Input.Get(s.input).Latch
}

func (s *Scene3D) Tick() int {
	return s.tick
}

func (s *Scene3D) Player() *movement.Controller3D {
	return components.Player3D.Get(s.player).Controller3D
}

func (s *Scene3D) Camera() *camera.Rig3D {
	return components.Camera3D.Get(s.camera).Rig3D
}

// ApplyTuning validates t and installs it between ticks.
func (s *Scene3D) ApplyTuning(t cfg.Tuning) error {
	if err := cfg.Validate(t); err != nil {
		return err
	}
	if err := s.Player().SetConfig(t.Controller3D); err != nil {
		return err
	}
	cfg.Apply(t)

	s.Camera().SetConfig(t.Camera3D)
	components.BoxWorld.Get(s.world).SetTolerance(t.Controller3D.SnapTolerance)
	return nil
}

func (s *Scene3D) Trace() string {
	a := s.Player().Actor
	return fmt.Sprintf("%5d %-8s pos=(%.3f, %.3f, %.3f) vel=(%.3f, %.3f, %.3f) yaw=%.3f air=%d",
		s.tick, a.Mode, a.Position.X(), a.Position.Y(), a.Position.Z(),
		a.Velocity.X(), a.Velocity.Y(), a.Velocity.Z(), a.Yaw, a.AirMoves)
}
