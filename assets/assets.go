// Package assets embeds the sample levels, input scenarios and default
// tuning.
package assets

import (
	"embed"
	"io/fs"

	"github.com/automoto/kcc/shared/leveldata"
	"github.com/automoto/kcc/shared/scenario"
)

const (
	LevelDir    = "levels"
	ScenarioDir = "scenarios"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:scenarios
	scenarioFS embed.FS

	//go:embed tuning.yaml
	defaultTuning []byte
)

// Levels exposes the embedded level files under LevelDir.
func Levels() fs.FS {
	return levelFS
}

// Scenarios exposes the embedded scenarios under ScenarioDir.
func Scenarios() fs.FS {
	return scenarioFS
}

// DefaultTuning is the commented tuning file shipped with the sandbox.
func DefaultTuning() []byte {
	return defaultTuning
}

// LoadLevels2D loads every embedded side-view map, keyed by name.
func LoadLevels2D() (map[string]*leveldata.Level2D, []string, error) {
	return leveldata.LoadAll2D(levelFS, LevelDir)
}

// LoadLevel3D loads the embedded box level called name.
func LoadLevel3D(name string) (*leveldata.Level3D, error) {
	return leveldata.Load3D(levelFS, LevelDir+"/"+name+".yaml")
}

// LoadScenario loads an embedded scenario by file name, e.g. "tour.yaml".
func LoadScenario(file string) (scenario.Driver, error) {
	return scenario.Load(scenarioFS, ScenarioDir+"/"+file)
}
