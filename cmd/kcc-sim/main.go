// Command kcc-sim steps a controller scene without a window, replaying a
// scenario and printing one trace line per tick.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/automoto/kcc/config"
	"github.com/automoto/kcc/scenes"
)

func main() {
	variant := flag.String("variant", scenes.Variant2D, "Controller variant: 2d or 3d")
	level := flag.String("level", "", "Embedded level name or a .tmx/.yaml file (empty = sample level)")
	tuningPath := flag.String("tuning", "", "Tuning YAML file")
	scenarioPath := flag.String("scenario", "", "Timeline .yaml or .tengo script (empty = sample scenario)")
	ticks := flag.Int("ticks", 0, "Ticks to run (0 = scenario length)")
	every := flag.Int("every", 1, "Print every Nth tick")
	watch := flag.Bool("watch", false, "Reload the tuning file when it changes")
	profile := flag.String("profile", "", "Start from a saved tuning profile")
	saveProfile := flag.String("save-profile", "", "Save the starting tuning under this name and exit")
	realtime := flag.Bool("realtime", false, "Step at the tick rate instead of as fast as possible")
	flag.Parse()

	var store *config.ProfileStore
	if *profile != "" || *saveProfile != "" {
		s, err := config.OpenProfiles("kcc")
		if err != nil {
			log.Fatalf("Failed to open profiles: %v", err)
		}
		store = s
	}

	tuning, err := config.Resolve(*tuningPath, *profile, store)
	if err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}
	config.Apply(tuning)

	if *saveProfile != "" {
		if err := store.Save(*saveProfile, tuning); err != nil {
			log.Fatalf("Failed to save profile: %v", err)
		}
		log.Printf("Saved profile %q", *saveProfile)
		return
	}

	scene, err := scenes.New(*variant, *level, false)
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}
	driver, err := scenes.LoadScenario(*variant, *scenarioPath)
	if err != nil {
		log.Fatalf("Failed to load scenario: %v", err)
	}
	n := *ticks
	if n <= 0 {
		n = driver.Ticks()
	}

	var reload <-chan string
	if *watch {
		if *tuningPath == "" {
			log.Fatalf("-watch needs -tuning")
		}
		w, err := config.NewWatcher(filepath.Dir(*tuningPath))
		if err != nil {
			log.Fatalf("Failed to watch tuning: %v", err)
		}
		defer w.Close()
		reload = w.Events
	}

	var stepErr error
	step := func() bool {
		select {
		case path := <-reload:
			if filepath.Clean(path) == filepath.Clean(*tuningPath) {
				applyTuning(scene, path)
			}
		default:
		}

		if err := driver.Drive(scene.Tick(), scene.Latch()); err != nil {
			stepErr = err
			return false
		}
		scene.Update()
		if *every > 0 && (scene.Tick()-1)%*every == 0 {
			fmt.Println(scene.Trace())
		}
		return scene.Tick() < n
	}

	if *realtime {
		loop := scenes.NewLoop(config.Sim.TickRate, step)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			loop.Stop()
		}()
		loop.Run()
	} else {
		for step() {
		}
	}

	if stepErr != nil {
		log.Fatalf("Scenario failed: %v", stepErr)
	}
}

// applyTuning installs a changed tuning file. A bad edit keeps the running
// tuning.
func applyTuning(scene scenes.Scene, path string) {
	t, err := config.Load(path)
	if err == nil {
		err = scene.ApplyTuning(t)
	}
	if err != nil {
		log.Printf("Warning: Kept previous tuning: %v", err)
		return
	}
	log.Printf("Reloaded tuning from %s", path)
}
