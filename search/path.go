package search

import (
	"slices"

	"github.com/samber/lo"

	"github.com/domino14/tilesearch/board"
)

// Parent records how a board was first (or most recently) reached.
type Parent struct {
	Board     board.Board
	Direction board.Direction
}

// ParentMap maps a board to the board and move that produced it. The start
// board never has an entry. A later write replaces an earlier one without
// comparing path costs.
type ParentMap map[board.Board]Parent

// Step is one move of a solution, along with the board it produced.
type Step struct {
	Board     board.Board
	Direction board.Direction
}

// ReconstructPath walks the parent map back from goal until it reaches a
// board with no parent, and returns the moves in forward order. The walk is
// capped at one step per map entry, so a malformed map cannot make it loop.
func ReconstructPath(parents ParentMap, goal board.Board) []Step {
	var path []Step
	current := goal
	for i := 0; i < len(parents); i++ {
		p, ok := parents[current]
		if !ok {
			break
		}
		path = append(path, Step{Board: current, Direction: p.Direction})
		current = p.Board
	}
	slices.Reverse(path)
	return path
}

// Directions lists the moves of a path by name.
func Directions(path []Step) []string {
	return lo.Map(path, func(s Step, _ int) string {
		return s.Direction.String()
	})
}
