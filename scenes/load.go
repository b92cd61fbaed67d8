package scenes

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/automoto/kcc/assets"
	"github.com/automoto/kcc/shared/leveldata"
	"github.com/automoto/kcc/shared/scenario"
)

const (
	Variant2D = "2d"
	Variant3D = "3d"
)

// Sample content used when nothing is named.
var (
	defaultLevels    = map[string]string{Variant2D: "room", Variant3D: "arena"}
	defaultScenarios = map[string]string{Variant2D: "tour.yaml", Variant3D: "orbit.yaml"}
)

// New builds a scene for variant. level is either the name of an embedded
// level or a path to a .tmx (2d) or .yaml (3d) file; empty picks the sample.
func New(variant, level string, host bool) (Scene, error) {
	if level == "" {
		level = defaultLevels[variant]
	}
	onDisk := filepath.Ext(level) != ""

	switch variant {
	case Variant2D:
		var l *leveldata.Level2D
		var err error
		if onDisk {
			l, err = leveldata.Load2D(os.DirFS(filepath.Dir(level)), filepath.Base(level))
		} else {
			var levels map[string]*leveldata.Level2D
			levels, _, err = assets.LoadLevels2D()
			if err == nil {
				if l = levels[level]; l == nil {
					err = fmt.Errorf("no embedded level %q", level)
				}
			}
		}
		if err != nil {
			return nil, err
		}
		return NewScene2D(l, host)
	case Variant3D:
		var l *leveldata.Level3D
		var err error
		if onDisk {
			l, err = leveldata.Load3D(os.DirFS(filepath.Dir(level)), filepath.Base(level))
		} else {
			l, err = assets.LoadLevel3D(level)
		}
		if err != nil {
			return nil, err
		}
		return NewScene3D(l, host)
	}
	return nil, fmt.Errorf("unknown variant %q, want %s or %s", variant, Variant2D, Variant3D)
}

// LoadScenario opens a scenario file on disk, or the variant's embedded
// sample when path is empty.
func LoadScenario(variant, path string) (scenario.Driver, error) {
	if path == "" {
		name, ok := defaultScenarios[variant]
		if !ok {
			return nil, fmt.Errorf("unknown variant %q", variant)
		}
		return assets.LoadScenario(name)
	}
	return scenario.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}
