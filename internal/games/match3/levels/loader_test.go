package levels

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

func TestDefaultLevels(t *testing.T) {
	loader := Default()

	lvls, err := loader.All()
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(lvls) != 5 {
		t.Fatalf("expected 5 built-in levels, got %d", len(lvls))
	}

	catalog, _ := core.NewCatalog(core.DefaultKinds(), nil)
	for i, lvl := range lvls {
		if lvl.ID != i+1 {
			t.Errorf("level %d has id %d", i, lvl.ID)
		}
		if err := lvl.Validate(catalog); err != nil {
			t.Errorf("level %d invalid: %v", lvl.ID, err)
		}
	}

	lvl, err := loader.Level(4)
	if err != nil {
		t.Fatalf("Level(4) failed: %v", err)
	}
	if lvl.Name != "Crossroads" || lvl.Moves != 18 || lvl.Target != 4000 {
		t.Errorf("level 4 = %q moves %d target %d", lvl.Name, lvl.Moves, lvl.Target)
	}
}

func TestLoaderLevel(t *testing.T) {
	fsys := fstest.MapFS{
		"level_1.txt":  {Data: []byte("012\n120\n201\n")},
		"level_2.yaml": {Data: []byte("name: Two\nrows: [\"01\", \"10\"]\n")},
		"readme.md":    {Data: []byte("not a level")},
	}
	loader := NewLoader(fsys)

	lvl, err := loader.Level(1)
	if err != nil {
		t.Fatalf("Level(1) failed: %v", err)
	}
	if lvl.Rows != 3 || lvl.Cols != 3 {
		t.Errorf("level 1 is %dx%d", lvl.Rows, lvl.Cols)
	}

	lvl, err = loader.Level(2)
	if err != nil {
		t.Fatalf("Level(2) failed: %v", err)
	}
	if lvl.Name != "Two" {
		t.Errorf("Name = %q", lvl.Name)
	}

	if _, err := loader.Level(3); !errors.Is(err, core.ErrLevelNotFound) {
		t.Errorf("Level(3) error = %v, expected ErrLevelNotFound", err)
	}
}

func TestLoaderReturnsCopies(t *testing.T) {
	loader := NewLoader(fstest.MapFS{
		"level_1.txt": {Data: []byte("01\n10\n")},
	})

	first, _ := loader.Level(1)
	first.Cells[0][0] = 9

	second, _ := loader.Level(1)
	if second.Cell(0, 0) != 0 {
		t.Error("mutating a returned level changed the cache")
	}
}

func TestLoaderMalformedLeavesCacheUntouched(t *testing.T) {
	fsys := fstest.MapFS{
		"level_1.txt": {Data: []byte("012\n120\n")},
		"level_2.txt": {Data: []byte("01x\n120\n")},
	}
	loader := NewLoader(fsys)

	if _, err := loader.Level(1); err != nil {
		t.Fatalf("Level(1) failed: %v", err)
	}

	// The source changes on disk; level 1 must still come from the cache.
	fsys["level_1.txt"] = &fstest.MapFile{Data: []byte("999\n999\n")}

	_, err := loader.Level(2)
	if !errors.Is(err, core.ErrMalformedLevel) {
		t.Fatalf("Level(2) error = %v, expected ErrMalformedLevel", err)
	}
	var le *core.LevelError
	if !errors.As(err, &le) || le.Line != 1 || le.Col != 3 {
		t.Errorf("error = %v, expected line 1 col 3", err)
	}

	lvl, err := loader.Level(1)
	if err != nil {
		t.Fatalf("Level(1) after failure: %v", err)
	}
	if lvl.Cell(0, 0) != 0 || lvl.Cell(1, 2) != 0 {
		t.Errorf("cached level 1 changed: %v", lvl.Cells)
	}

	// Failed loads are not cached.
	fsys["level_2.txt"] = &fstest.MapFile{Data: []byte("012\n120\n")}
	if _, err := loader.Level(2); err != nil {
		t.Errorf("Level(2) after fix failed: %v", err)
	}
}

func TestLoaderAllSkipsInvalid(t *testing.T) {
	loader := NewLoader(fstest.MapFS{
		"level_3.txt":  {Data: []byte("01\n10\n")},
		"level_1.yml":  {Data: []byte("grid: [[0, 1]]\n")},
		"level_2.txt":  {Data: []byte("")},
		"level_x.txt":  {Data: []byte("01\n")},
		"level_10.txt": {Data: []byte("0\n")},
	})

	ids, err := loader.IDs()
	if err != nil {
		t.Fatalf("IDs failed: %v", err)
	}
	expected := []int{1, 3, 10}
	if len(ids) != len(expected) {
		t.Fatalf("IDs() = %v, expected %v", ids, expected)
	}
	for i := range expected {
		if ids[i] != expected[i] {
			t.Errorf("IDs()[%d] = %d, expected %d", i, ids[i], expected[i])
		}
	}

	names, err := loader.Names()
	if err != nil {
		t.Fatalf("Names failed: %v", err)
	}
	if names[3] != "Level 3" {
		t.Errorf("Names()[3] = %q", names[3])
	}
}
