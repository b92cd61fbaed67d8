package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
	"gopkg.in/yaml.v3"
)

// Tiled names the loader looks for.
const (
	SolidLayer      = "Solid"
	CollisionGroup  = "Collision"
	PlayerSpawnName = "PlayerSpawn"
)

var ErrInvalidLevel = errors.New("invalid level")

// Load2D parses a TMX file into y-up collision data. Solid tiles are merged
// into horizontal runs; rectangles in the Collision object group are added
// as they are. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func Load2D(fsys fs.FS, tmxPath string) (*Level2D, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	mapH := float64(levelMap.Height * levelMap.TileHeight)
	level := &Level2D{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), filepath.Ext(tmxPath)),
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: mapH,
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != SolidLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			run := 0
			flush := func(end int) {
				if run == 0 {
					return
				}
				level.Solids = append(level.Solids, Rect{
					X: float64(end-run) * tileW,
					Y: mapH - float64(y+1)*tileH,
					W: float64(run) * tileW,
					H: tileH,
				})
				run = 0
			}
			for x := 0; x < levelMap.Width; x++ {
				if layer.Tiles[y*levelMap.Width+x].IsNil() {
					flush(x)
					continue
				}
				run++
			}
			flush(levelMap.Width)
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case CollisionGroup:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				level.Solids = append(level.Solids, Rect{
					X: o.X,
					Y: mapH - (o.Y + o.Height),
					W: o.Width,
					H: o.Height,
				})
			}
		case PlayerSpawnName:
			for _, o := range og.Objects {
				level.Spawns = append(level.Spawns, SpawnPoint{
					X:     o.X,
					Y:     mapH - o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	sort.Slice(level.Spawns, func(i, j int) bool {
		return level.Spawns[i].Index < level.Spawns[j].Index
	})

	return level, nil
}

// LoadAll2D discovers all .tmx files in levelsDir within fsys and returns
// them keyed by stem name plus a sorted list of names.
func LoadAll2D(fsys fs.FS, levelsDir string) (map[string]*Level2D, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level2D, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := Load2D(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

// Load3D reads a YAML box level.
func Load3D(fsys fs.FS, path string) (*Level3D, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}
	level, err := Parse3D(data)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	if level.Name == "" {
		level.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return level, nil
}

// Parse3D decodes a YAML box level and rejects inverted or empty boxes.
func Parse3D(data []byte) (*Level3D, error) {
	level := &Level3D{}
	if err := yaml.Unmarshal(data, level); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}
	if len(level.Boxes) == 0 {
		return nil, fmt.Errorf("%w: no boxes", ErrInvalidLevel)
	}
	for i, b := range level.Boxes {
		for axis := 0; axis < 3; axis++ {
			if b.Max[axis] <= b.Min[axis] {
				return nil, fmt.Errorf("%w: box %d has max <= min on axis %d", ErrInvalidLevel, i, axis)
			}
		}
	}
	return level, nil
}
