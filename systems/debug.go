package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/kcc/components"
	"github.com/automoto/kcc/shared/movement"
	"github.com/automoto/kcc/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	solidColor = color.RGBA{100, 100, 100, 255} // Grey
	eyeColor   = color.RGBA{255, 255, 0, 255}

	modeColors = map[movement.Mode]color.RGBA{
		movement.ModeGrounded: {0, 0, 255, 255},
		movement.ModeAirborne: {0, 255, 255, 255},
		movement.ModeOnWall:   {255, 128, 0, 255},
		movement.ModeClimbing: {0, 255, 0, 255},
		movement.ModeDashing:  {255, 0, 255, 255},
	}
)

// Pixels per metre in the 3D top-down view.
const topDownScale = 12

// DrawDebug draws the 2D collision space in world space, flipped so y
// points up on screen, with the player tinted by its mode.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	toScreen := func(x, y, h float64) (float32, float32) {
		return float32(x - camera.Position.X + float64(width)/2),
			float32(float64(height)/2 - (y + h - camera.Position.Y))
	}

	playerEntry, hasPlayer := tags.Player.First(ecs.World)
	var player *components.Player2DData
	if hasPlayer && playerEntry.HasComponent(components.Player2D) {
		player = components.Player2D.Get(playerEntry)
	}

	for _, obj := range space.Space().Objects() {
		c := color.RGBA{}
		switch {
		case obj.HasTags(tags.ResolvSolid):
			c = solidColor
		case obj.HasTags(tags.ResolvPlayer) && player != nil:
			c = modeColors[player.Actor.Mode]
		default:
			continue // The probe
		}
		x, y := toScreen(obj.X, obj.Y, obj.H)
		strokeRect(screen, x, y, float32(obj.W), float32(obj.H), c)
	}

	if player != nil {
		a := player.Actor
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"mode %s  pos (%.1f, %.1f)  vel (%.1f, %.1f)\nair moves %d  sprint %v  wall %v",
			a.Mode, a.Position.X, a.Position.Y, a.Velocity.X, a.Velocity.Y,
			a.AirMoves, a.Sprinting, a.WallDir))
	}
}

// DrawDebug3D draws a top-down (x, z) view of the box world centred on the
// camera focus, with the camera eye as a dot.
func DrawDebug3D(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera3D.First(ecs.World)
	if !ok {
		return
	}
	rig := components.Camera3D.Get(cameraEntry)
	worldEntry, ok := components.BoxWorld.First(ecs.World)
	if !ok {
		return
	}
	world := components.BoxWorld.Get(worldEntry)

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	toScreen := func(x, z float64) (float32, float32) {
		return float32((x-rig.Focus.X())*topDownScale + float64(width)/2),
			float32(float64(height)/2 - (z-rig.Focus.Z())*topDownScale)
	}

	for _, b := range world.Boxes() {
		x, y := toScreen(b.Min.X(), b.Max.Z())
		size := b.Size()
		strokeRect(screen, x, y, float32(size.X()*topDownScale), float32(size.Z()*topDownScale), solidColor)
	}

	if playerEntry, ok := tags.Player.First(ecs.World); ok && playerEntry.HasComponent(components.Player3D) {
		player := components.Player3D.Get(playerEntry)
		a := player.Actor
		half := player.Config().HalfExtents
		x, y := toScreen(a.Position.X()-half.X(), a.Position.Z()+half.Z())
		strokeRect(screen, x, y, float32(2*half.X()*topDownScale), float32(2*half.Z()*topDownScale), modeColors[a.Mode])

		fx, fy := toScreen(a.Position.X()+a.Facing.X(), a.Position.Z()+a.Facing.Z())
		vector.FillRect(screen, fx-1, fy-1, 3, 3, modeColors[a.Mode], false)

		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"mode %s  pos (%.2f, %.2f, %.2f)  yaw %.2f\nair moves %d  rotating %v",
			a.Mode, a.Position.X(), a.Position.Y(), a.Position.Z(), a.Yaw, a.AirMoves, rig.Rotating))
	}

	eye := rig.Eye()
	ex, ey := toScreen(eye.X(), eye.Z())
	vector.FillRect(screen, ex-2, ey-2, 4, 4, eyeColor, false)
}

func strokeRect(screen *ebiten.Image, x, y, w, h float32, c color.Color) {
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
