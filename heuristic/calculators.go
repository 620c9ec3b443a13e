package heuristic

import "github.com/domino14/tilesearch/board"

const last = board.Dim - 1

// CornerCalculator rewards the largest tile sitting in any corner. An empty
// board counts, since its largest value (0) is in every corner.
type CornerCalculator struct {
	Weight uint64
}

func (c *CornerCalculator) Score(b board.Board) uint64 {
	m := b.MaxTile()
	if b.At(0, 0) == m || b.At(0, last) == m || b.At(last, 0) == m || b.At(last, last) == m {
		return c.Weight
	}
	return 0
}

type EmptyCellCalculator struct {
	Weight uint64
}

func (c *EmptyCellCalculator) Score(b board.Board) uint64 {
	return c.Weight * uint64(b.EmptyCount())
}

// MergeCalculator counts horizontally or vertically adjacent equal tiles.
type MergeCalculator struct {
	Weight uint64
}

func (c *MergeCalculator) Score(b board.Board) uint64 {
	var merges uint64
	g := b.Rows()
	for i := 0; i < board.Dim; i++ {
		for j := 0; j < board.Dim; j++ {
			if g[i][j] == 0 {
				continue
			}
			if j < last && g[i][j] == g[i][j+1] {
				merges++
			}
			if i < last && g[i][j] == g[i+1][j] {
				merges++
			}
		}
	}
	return c.Weight * merges
}

// MonotonicityCalculator adds up how much each tile exceeds its right and
// lower neighbor. A neighbor that is larger contributes nothing.
type MonotonicityCalculator struct {
	Weight uint64
}

func satSub(a, b board.Tile) uint64 {
	if a > b {
		return uint64(a - b)
	}
	return 0
}

func (c *MonotonicityCalculator) Score(b board.Board) uint64 {
	var mono uint64
	g := b.Rows()
	for i := 0; i < board.Dim; i++ {
		for j := 0; j < board.Dim; j++ {
			if j < last {
				mono += satSub(g[i][j], g[i][j+1])
			}
			if i < last {
				mono += satSub(g[i][j], g[i+1][j])
			}
		}
	}
	return c.Weight * mono
}

// SmoothnessCalculator adds up the absolute difference between every pair of
// adjacent non-empty tiles.
type SmoothnessCalculator struct {
	Weight uint64
}

func absDiff(a, b board.Tile) uint64 {
	if a > b {
		return uint64(a - b)
	}
	return uint64(b - a)
}

func (c *SmoothnessCalculator) Score(b board.Board) uint64 {
	var smooth uint64
	g := b.Rows()
	for i := 0; i < board.Dim; i++ {
		for j := 0; j < board.Dim; j++ {
			if g[i][j] == 0 {
				continue
			}
			if j < last && g[i][j+1] != 0 {
				smooth += absDiff(g[i][j], g[i][j+1])
			}
			if i < last && g[i+1][j] != 0 {
				smooth += absDiff(g[i][j], g[i+1][j])
			}
		}
	}
	return c.Weight * smooth
}
