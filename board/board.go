// Package board models a single 4x4 tile-merge position and the move rule
// that produces successor positions.
package board

import (
	"errors"
	"fmt"
	"strings"
)

// Dim is the width and height of the board.
const Dim = 4

// Tile is the value of a single cell. 0 is an empty cell; anything else is
// a power of two.
type Tile uint32

// LargestTile is the biggest value a 4x4 board can ever hold. Parsed boards
// and goals above it are rejected, which also keeps merges clear of uint32
// overflow.
const LargestTile Tile = 1 << 17

var ErrBadBoard = errors.New("bad board")
var ErrBadDirection = errors.New("bad direction")

type Direction uint8

const (
	Up Direction = iota
	Left
	Down
	Right
)

// Directions is the order in which successors are generated.
var Directions = [...]Direction{Up, Left, Down, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Left:
		return "left"
	case Down:
		return "down"
	case Right:
		return "right"
	}
	return "none"
}

func parseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "left", "l":
		return Left, nil
	case "down", "d":
		return Down, nil
	case "right", "r":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadDirection, s)
}

// Board is a value type. Two boards are equal iff every cell matches, so a
// Board can be used directly as a map key.
type Board struct {
	grid [Dim][Dim]Tile
}

// FromRows builds a board from row-major cell values.
func FromRows(rows [Dim][Dim]Tile) Board {
	return Board{grid: rows}
}

func (b Board) Rows() [Dim][Dim]Tile {
	return b.grid
}

func (b Board) At(row, col int) Tile {
	return b.grid[row][col]
}

// IsGoal returns true if any cell holds the target value.
func (b Board) IsGoal(target Tile) bool {
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			if b.grid[i][j] == target {
				return true
			}
		}
	}
	return false
}

func (b Board) MaxTile() Tile {
	var m Tile
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			if b.grid[i][j] > m {
				m = b.grid[i][j]
			}
		}
	}
	return m
}

// Sum is the total of all tile values on the board.
func (b Board) Sum() uint64 {
	var s uint64
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			s += uint64(b.grid[i][j])
		}
	}
	return s
}

// TileCount is the number of non-empty cells.
func (b Board) TileCount() int {
	return Dim*Dim - len(b.emptyCells())
}

func (b Board) EmptyCount() int {
	return len(b.emptyCells())
}

// CanMove returns true if sliding in at least one direction would change
// the board.
func (b Board) CanMove() bool {
	for _, d := range Directions {
		if b.slide(d) != b {
			return true
		}
	}
	return false
}
