// Package formats provides the level file parsers.
package formats

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

// ParseText parses the digit layout format: one line per row, one digit per
// cell. Blank lines are skipped and CRLF line endings are accepted.
func ParseText(id int, data []byte) (core.LevelSpec, error) {
	lines := make([]string, 0, 16)
	lineNos := make([]int, 0, 16)
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
		lineNos = append(lineNos, i+1)
	}
	if len(lines) == 0 {
		return core.LevelSpec{}, &core.LevelError{Level: id, Msg: "empty level", Err: core.ErrMalformedLevel}
	}

	cells, err := parseDigitRows(id, lines, lineNos)
	if err != nil {
		return core.LevelSpec{}, err
	}

	return core.LevelSpec{
		ID:    id,
		Name:  fmt.Sprintf("Level %d", id),
		Rows:  len(cells),
		Cols:  len(cells[0]),
		Cells: cells,
	}, nil
}

// parseDigitRows converts digit rows to kind ids. lineNos gives the source
// line of each row for error reporting.
func parseDigitRows(id int, rows []string, lineNos []int) ([][]int, error) {
	cells := make([][]int, len(rows))
	width := len(rows[0])
	for r, row := range rows {
		if len(row) != width {
			return nil, &core.LevelError{
				Level: id,
				Line:  lineNos[r],
				Msg:   fmt.Sprintf("%d cells, want %d", len(row), width),
				Err:   core.ErrMalformedLevel,
			}
		}
		cells[r] = make([]int, width)
		for c := range len(row) {
			ch := row[c]
			if ch < '0' || ch > '9' {
				return nil, &core.LevelError{
					Level: id,
					Line:  lineNos[r],
					Col:   c + 1,
					Msg:   fmt.Sprintf("invalid cell %q", ch),
					Err:   core.ErrMalformedLevel,
				}
			}
			cells[r][c] = int(ch - '0')
		}
	}
	return cells, nil
}

// FormatExtensions returns supported file extensions in lookup order.
func FormatExtensions() []string {
	return []string{".txt", ".yaml", ".yml"}
}

// Parse routes data to the parser for ext.
func Parse(id int, data []byte, ext string) (core.LevelSpec, error) {
	switch strings.ToLower(ext) {
	case ".txt":
		return ParseText(id, data)
	case ".yaml", ".yml":
		return ParseYAML(id, data)
	default:
		return core.LevelSpec{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
