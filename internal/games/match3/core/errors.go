package core

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrInvalidDimensions is returned for a grid with a non-positive dimension.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")

	// ErrNoTileKinds is returned when the catalog has no tile kinds.
	ErrNoTileKinds = errors.New("catalog has no tile kinds")

	// ErrUnknownTileKind is returned when a kind id is absent from the catalog.
	ErrUnknownTileKind = errors.New("unknown tile kind")

	// ErrLevelNotFound is returned when no level exists for an id.
	ErrLevelNotFound = errors.New("level not found")

	// ErrMalformedLevel is returned for an empty or unparsable level layout.
	ErrMalformedLevel = errors.New("malformed level")

	// ErrBusy is returned when a move is requested while the board is resolving.
	ErrBusy = errors.New("board is resolving")

	// ErrNotReady is returned when a move is requested before the board is created.
	ErrNotReady = errors.New("board is not ready")

	// ErrUnplayable is returned when the shuffle retry cap is exhausted.
	ErrUnplayable = errors.New("board has no legal move")
)

// LevelError describes where a level failed to parse or validate.
type LevelError struct {
	Level int    // Level id, 0 if unknown
	Line  int    // 1-based line, 0 if not line specific
	Col   int    // 1-based column, 0 if not column specific
	Msg   string // Human-readable reason
	Err   error  // Sentinel, usually ErrMalformedLevel
}

func (e *LevelError) Error() string {
	switch {
	case e.Line > 0 && e.Col > 0:
		return fmt.Sprintf("level %d: line %d col %d: %s: %v", e.Level, e.Line, e.Col, e.Msg, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("level %d: line %d: %s: %v", e.Level, e.Line, e.Msg, e.Err)
	default:
		return fmt.Sprintf("level %d: %s: %v", e.Level, e.Msg, e.Err)
	}
}

// Unwrap supports errors.Is against the sentinel.
func (e *LevelError) Unwrap() error {
	return e.Err
}

func outOfBounds(c Coord, rows, cols int) error {
	return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, rows, cols)
}
