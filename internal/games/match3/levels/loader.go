// Package levels provides level loading functionality for Match-3.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/levels/formats"
)

//go:embed data/*
var embedded embed.FS

const filePrefix = "level_"

// Loader reads level_<n> files from a file system and caches every level
// that parsed successfully. It is safe for concurrent use.
type Loader struct {
	fsys fs.FS

	mu    sync.Mutex
	cache map[int]core.LevelSpec
}

// NewLoader creates a loader over fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys:  fsys,
		cache: make(map[int]core.LevelSpec),
	}
}

// NewDirLoader creates a loader over a directory on disk.
func NewDirLoader(root string) *Loader {
	return NewLoader(os.DirFS(root))
}

// Default returns a loader over the built-in levels.
func Default() *Loader {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return NewLoader(sub)
}

// Level returns the level with the given id. A failed load leaves the cache
// unchanged.
func (l *Loader) Level(id int) (core.LevelSpec, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level, ok := l.cache[id]; ok {
		return level.Clone(), nil
	}

	level, err := l.load(id)
	if err != nil {
		return core.LevelSpec{}, err
	}
	l.cache[id] = level
	return level.Clone(), nil
}

func (l *Loader) load(id int) (core.LevelSpec, error) {
	for _, ext := range formats.FormatExtensions() {
		name := fmt.Sprintf("%s%d%s", filePrefix, id, ext)
		data, err := fs.ReadFile(l.fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return core.LevelSpec{}, fmt.Errorf("reading %s: %w", name, err)
		}
		level, err := formats.Parse(id, data, ext)
		if err != nil {
			return core.LevelSpec{}, fmt.Errorf("parsing %s: %w", name, err)
		}
		return level, nil
	}
	return core.LevelSpec{}, fmt.Errorf("%w: %d", core.ErrLevelNotFound, id)
}

// All loads every level file that parses, sorted by id. Invalid files are
// skipped.
func (l *Loader) All() ([]core.LevelSpec, error) {
	ids, err := l.scan()
	if err != nil {
		return nil, err
	}

	levels := make([]core.LevelSpec, 0, len(ids))
	for _, id := range ids {
		level, err := l.Level(id)
		if err != nil {
			continue
		}
		levels = append(levels, level)
	}
	return levels, nil
}

// IDs returns the ids of all loadable levels in sorted order.
func (l *Loader) IDs() ([]int, error) {
	levels, err := l.All()
	if err != nil {
		return nil, err
	}
	ids := make([]int, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Names returns the display names of all loadable levels, keyed by id.
func (l *Loader) Names() (map[int]string, error) {
	levels, err := l.All()
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(levels))
	for _, lvl := range levels {
		names[lvl.ID] = lvl.Name
	}
	return names, nil
}

// scan lists the ids of level files at the file system root.
func (l *Loader) scan() ([]int, error) {
	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("listing levels: %w", err)
	}

	seen := make(map[int]bool)
	var ids []int
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		id, ok := parseFileID(e.Name())
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

// parseFileID extracts n from level_<n>.<ext> for a supported extension.
func parseFileID(name string) (int, bool) {
	ext := strings.ToLower(path.Ext(name))
	supported := false
	for _, e := range formats.FormatExtensions() {
		if ext == e {
			supported = true
			break
		}
	}
	if !supported {
		return 0, false
	}
	num, ok := strings.CutPrefix(strings.TrimSuffix(name, path.Ext(name)), filePrefix)
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(num)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
