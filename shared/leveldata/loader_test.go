package leveldata

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/go-gl/mathgl/mgl64"
)

const objectsTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="5">
 <objectgroup id="1" name="Collision">
  <object id="1" x="0" y="144" width="320" height="16"/>
  <object id="2" x="100" y="100"/>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="3" x="40" y="144">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
   <point/>
  </object>
  <object id="4" x="200" y="100">
   <properties>
    <property name="spawnIndex" type="int" value="0"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
</map>
`

const tilesTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="1">
 <tileset firstgid="1" name="tiles" tilewidth="16" tileheight="16" tilecount="1" columns="1">
  <image source="tiles.png" width="16" height="16"/>
 </tileset>
 <layer id="1" name="Solid" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,1,1,0,
1,1,0,1
</data>
 </layer>
</map>
`

func TestLoad2DObjects(t *testing.T) {
	fsys := fstest.MapFS{"levels/room.tmx": {Data: []byte(objectsTMX)}}
	level, err := Load2D(fsys, "levels/room.tmx")
	if err != nil {
		t.Fatalf("Load2D: %v", err)
	}
	if level.Name != "room" || level.Width != 320 || level.Height != 160 {
		t.Errorf("level = %q %vx%v", level.Name, level.Width, level.Height)
	}
	if len(level.Solids) != 1 || level.Solids[0] != (Rect{X: 0, Y: 0, W: 320, H: 16}) {
		t.Errorf("solids = %v", level.Solids)
	}
	want := []SpawnPoint{{X: 200, Y: 60, Index: 0}, {X: 40, Y: 16, Index: 1}}
	if len(level.Spawns) != len(want) {
		t.Fatalf("spawns = %v", level.Spawns)
	}
	for i := range want {
		if level.Spawns[i] != want[i] {
			t.Errorf("spawn %d = %v, want %v", i, level.Spawns[i], want[i])
		}
	}
	if level.Spawn() != want[0] {
		t.Errorf("Spawn() = %v", level.Spawn())
	}
}

func TestLoad2DMergesTileRuns(t *testing.T) {
	fsys := fstest.MapFS{"tiles.tmx": {Data: []byte(tilesTMX)}}
	level, err := Load2D(fsys, "tiles.tmx")
	if err != nil {
		t.Fatalf("Load2D: %v", err)
	}
	want := []Rect{
		{X: 16, Y: 16, W: 32, H: 16},
		{X: 0, Y: 0, W: 32, H: 16},
		{X: 48, Y: 0, W: 16, H: 16},
	}
	if len(level.Solids) != len(want) {
		t.Fatalf("solids = %v, want %v", level.Solids, want)
	}
	for i := range want {
		if level.Solids[i] != want[i] {
			t.Errorf("solid %d = %v, want %v", i, level.Solids[i], want[i])
		}
	}
}

func TestLoadAll2D(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": {Data: []byte(objectsTMX)},
		"levels/a.tmx": {Data: []byte(tilesTMX)},
	}
	levels, names, err := LoadAll2D(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAll2D: %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" || levels["b"] == nil {
		t.Errorf("names = %v", names)
	}
	if _, _, err := LoadAll2D(fstest.MapFS{}, "levels"); err == nil {
		t.Error("empty directory accepted")
	}
}

func TestSpawnFallback(t *testing.T) {
	level := &Level2D{Width: 100}
	if got := level.Spawn(); got != (SpawnPoint{X: 50}) {
		t.Errorf("Spawn() = %v", got)
	}
}

func TestParse3D(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr error
		boxes   int
	}{
		{
			name: "valid",
			src: `
name: steps
spawn: [1, 0, 2]
yaw: 1.5707963267948966
boxes:
  - min: [-10, -1, -10]
    max: [10, 0, 10]
  - min: [2, 0, 2]
    max: [4, 1, 4]
`,
			boxes: 2,
		},
		{name: "no boxes", src: "spawn: [0, 0, 0]\n", wantErr: ErrInvalidLevel},
		{
			name:    "inverted",
			src:     "boxes:\n  - min: [0, 0, 0]\n    max: [1, 0, 1]\n",
			wantErr: ErrInvalidLevel,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := Parse3D([]byte(tt.src))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse3D: %v", err)
			}
			if len(level.Boxes) != tt.boxes {
				t.Errorf("boxes = %d", len(level.Boxes))
			}
			if level.Spawn != (mgl64.Vec3{1, 0, 2}) || level.Name != "steps" {
				t.Errorf("spawn = %v name = %q", level.Spawn, level.Name)
			}
			if level.Boxes[1].Max != (mgl64.Vec3{4, 1, 4}) {
				t.Errorf("box 1 = %v", level.Boxes[1])
			}
		})
	}
}

func TestLoad3DNamesFromFile(t *testing.T) {
	fsys := fstest.MapFS{"arena.yaml": {Data: []byte("boxes:\n  - min: [-1, -1, -1]\n    max: [1, 0, 1]\n")}}
	level, err := Load3D(fsys, "arena.yaml")
	if err != nil {
		t.Fatalf("Load3D: %v", err)
	}
	if level.Name != "arena" {
		t.Errorf("name = %q", level.Name)
	}
	if _, err := Load3D(fsys, "missing.yaml"); err == nil {
		t.Error("missing file accepted")
	}
}

func TestDefaultLevels(t *testing.T) {
	if l := DefaultLevel2D(); len(l.Solids) == 0 || len(l.Spawns) != 1 {
		t.Errorf("default 2D level = %+v", l)
	}
	data := DefaultLevel3D()
	for i, b := range data.Boxes {
		for axis := 0; axis < 3; axis++ {
			if b.Max[axis] <= b.Min[axis] {
				t.Errorf("default box %d inverted on axis %d", i, axis)
			}
		}
	}
}
