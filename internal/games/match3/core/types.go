// Package core provides the resolution engine for the Match-3 puzzle game.
// This package is UI-agnostic: it detects runs, removes them, refills the grid
// under gravity and keeps the board playable. Pacing belongs to the caller.
package core

import "fmt"

// Kind identifies the matching type of a tile. Many tiles share one kind.
type Kind int

// Direction represents a swap direction derived from player input.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirRight
	DirDown
	DirLeft
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (dRow, dCol) offset for one step in this direction.
// Up decreases the row index, Down increases it.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirRight:
		return 0, 1
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction. DirNone stays DirNone.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return d
	}
}

// Coord addresses a grid cell. Row 0 is the top row.
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns a new Coord offset by (dRow, dCol).
func (c Coord) Add(dRow, dCol int) Coord {
	return Coord{Row: c.Row + dRow, Col: c.Col + dCol}
}

// Step returns the neighbouring Coord in the given direction.
func (c Coord) Step(d Direction) Coord {
	dr, dc := d.Delta()
	return c.Add(dr, dc)
}

// Move is a single player action: swap the tile at From with its neighbour in Dir.
type Move struct {
	From Coord
	Dir  Direction
}

// Target returns the cell the origin tile is swapped into.
func (m Move) Target() Coord {
	return m.From.Step(m.Dir)
}

// String returns a string representation of the move.
func (m Move) String() string {
	return fmt.Sprintf("%v %s", m.From, m.Dir)
}
