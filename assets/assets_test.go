package assets

import (
	"io/fs"
	"testing"

	"github.com/automoto/kcc/config"
)

func TestEmbeddedLevels(t *testing.T) {
	levels, names, err := LoadLevels2D()
	if err != nil {
		t.Fatalf("LoadLevels2D: %v", err)
	}
	if len(names) != 2 || names[0] != "room" || names[1] != "shaft" {
		t.Fatalf("names = %v", names)
	}
	for _, name := range names {
		level := levels[name]
		if len(level.Solids) == 0 || len(level.Spawns) == 0 {
			t.Errorf("%s: solids=%d spawns=%d", name, len(level.Solids), len(level.Spawns))
		}
	}
	if got := levels["room"].Spawn(); got.X != 64 || got.Y != 16 {
		t.Errorf("room spawn = %+v", got)
	}

	arena, err := LoadLevel3D("arena")
	if err != nil {
		t.Fatalf("LoadLevel3D: %v", err)
	}
	if arena.Name != "arena" || len(arena.Boxes) == 0 {
		t.Errorf("arena = %+v", arena)
	}
}

func TestEmbeddedScenarios(t *testing.T) {
	files, err := fs.Glob(Scenarios(), ScenarioDir+"/*")
	if err != nil || len(files) == 0 {
		t.Fatalf("glob: %v %v", files, err)
	}
	for _, path := range files {
		name := path[len(ScenarioDir)+1:]
		d, err := LoadScenario(name)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if d.Ticks() <= 0 {
			t.Errorf("%s: Ticks = %d", name, d.Ticks())
		}
	}
}

func TestDefaultTuningMatchesBuiltIn(t *testing.T) {
	tuning, err := config.Parse(DefaultTuning())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tuning != config.Defaults() {
		t.Errorf("shipped tuning drifted from Defaults:\n%+v\n%+v", tuning, config.Defaults())
	}
}
