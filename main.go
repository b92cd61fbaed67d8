package main

import (
	"errors"
	"flag"
	"image"
	"log"
	"path/filepath"

	"github.com/automoto/kcc/config"
	"github.com/automoto/kcc/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type Game struct {
	bounds  image.Rectangle
	scene   scenes.Scene
	variant string
	level   string

	tuningPath string
	reload     <-chan string
	store      *config.ProfileStore
	profile    string
}

func NewGame(variant, level string) (*Game, error) {
	g := &Game{
		bounds:  image.Rectangle{},
		variant: variant,
		level:   level,
	}
	if err := g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// restart rebuilds the scene from the spawn with the installed tuning.
func (g *Game) restart() error {
	scene, err := scenes.New(g.variant, g.level, true)
	if err != nil {
		return err
	}
	g.scene = scene
	return nil
}

func (g *Game) Update() error {
	select {
	case path := <-g.reload:
		if filepath.Clean(path) == filepath.Clean(g.tuningPath) {
			g.applyTuning(path)
		}
	default:
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		if err := g.restart(); err != nil {
			log.Printf("Warning: Could not restart: %v", err)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF5) && g.store != nil:
		if err := g.store.Save(g.profile, config.Current()); err != nil {
			log.Printf("Warning: Could not save profile: %v", err)
		} else {
			log.Printf("Saved profile %q", g.profile)
		}
	}

	g.scene.Update()
	return nil
}

func (g *Game) applyTuning(path string) {
	t, err := config.Load(path)
	if err == nil {
		err = g.scene.ApplyTuning(t)
	}
	if err != nil {
		log.Printf("Warning: Kept previous tuning: %v", err)
		return
	}
	ebiten.SetTPS(config.Sim.TickRate)
	log.Printf("Reloaded tuning from %s", path)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	variant := flag.String("variant", scenes.Variant2D, "Controller variant: 2d or 3d")
	level := flag.String("level", "", "Embedded level name or a .tmx/.yaml file (empty = sample level)")
	tuningPath := flag.String("tuning", "", "Tuning YAML file")
	watch := flag.Bool("watch", false, "Reload the tuning file when it changes")
	profile := flag.String("profile", "default", "Tuning profile loaded at start and saved with F5")
	flag.Parse()

	// OpenProfiles logs its own warning; the sandbox runs without profiles.
	store, _ := config.OpenProfiles("kcc")

	tuning := config.Defaults()
	switch {
	case *tuningPath != "":
		t, err := config.Load(*tuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		tuning = t
	case store != nil:
		saved, err := store.Load(*profile)
		if err == nil {
			tuning = saved
		} else if !errors.Is(err, config.ErrNoProfile) {
			log.Printf("Warning: Could not load profile: %v", err)
		}
	}
	config.Apply(tuning)

	g, err := NewGame(*variant, *level)
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}
	g.tuningPath = *tuningPath
	g.store = store
	g.profile = *profile

	if *watch && *tuningPath != "" {
		w, err := config.NewWatcher(filepath.Dir(*tuningPath))
		if err != nil {
			log.Fatalf("Failed to watch tuning: %v", err)
		}
		defer w.Close()
		g.reload = w.Events
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("kcc sandbox")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.Sim.TickRate)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
