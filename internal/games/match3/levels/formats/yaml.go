package formats

import (
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file. The layout is
// given either as digit rows or as a matrix of kind ids.
type YAMLLevel struct {
	Name   string   `yaml:"name"`
	Rows   []string `yaml:"rows,omitempty"`
	Grid   [][]int  `yaml:"grid,omitempty"`
	Moves  int      `yaml:"moves,omitempty"`
	Target int      `yaml:"target,omitempty"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(id int, data []byte) (core.LevelSpec, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return core.LevelSpec{}, &core.LevelError{Level: id, Msg: fmt.Sprintf("yaml: %v", err), Err: core.ErrMalformedLevel}
	}

	var cells [][]int
	switch {
	case len(yl.Rows) > 0 && len(yl.Grid) > 0:
		return core.LevelSpec{}, &core.LevelError{Level: id, Msg: "both rows and grid set", Err: core.ErrMalformedLevel}
	case len(yl.Rows) > 0:
		lineNos := make([]int, len(yl.Rows))
		for i := range lineNos {
			lineNos[i] = i + 1
		}
		var err error
		if cells, err = parseDigitRows(id, yl.Rows, lineNos); err != nil {
			return core.LevelSpec{}, err
		}
	case len(yl.Grid) > 0:
		cells = yl.Grid
	default:
		return core.LevelSpec{}, &core.LevelError{Level: id, Msg: "empty level", Err: core.ErrMalformedLevel}
	}

	name := yl.Name
	if name == "" {
		name = fmt.Sprintf("Level %d", id)
	}
	level := core.LevelSpec{
		ID:     id,
		Name:   name,
		Rows:   len(cells),
		Cols:   len(cells[0]),
		Cells:  cells,
		Moves:  yl.Moves,
		Target: yl.Target,
	}

	// Kinds are checked against the catalog when the board is created.
	for r, row := range cells {
		if len(row) != level.Cols {
			return core.LevelSpec{}, &core.LevelError{
				Level: id,
				Line:  r + 1,
				Msg:   fmt.Sprintf("%d cells, want %d", len(row), level.Cols),
				Err:   core.ErrMalformedLevel,
			}
		}
	}
	return level, nil
}
