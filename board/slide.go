package board

// mergePasses is the number of merge-and-compact rounds per line. Four
// tiles can merge at most three times, so a line is fully reduced after one
// slide and sliding the same way again changes nothing.
const mergePasses = 3

// line is one row or column, read so that index 0 is the edge tiles slide
// toward.
type line [Dim]Tile

func (l *line) compact() {
	var out line
	t := 0
	for i := 0; i < Dim; i++ {
		if l[i] != 0 {
			out[t] = l[i]
			t++
		}
	}
	*l = out
}

// mergeFirst merges the first adjacent equal pair, nearest the edge first.
func (l *line) mergeFirst() bool {
	for i := 0; i < Dim-1; i++ {
		if l[i] != 0 && l[i] == l[i+1] {
			l[i] *= 2
			l[i+1] = 0
			return true
		}
	}
	return false
}

func (l *line) collapse() {
	l.compact()
	for p := 0; p < mergePasses; p++ {
		if !l.mergeFirst() {
			return
		}
		l.compact()
	}
}

// cellsOf returns the coordinates of line k for direction d, starting at
// the edge tiles slide toward.
func cellsOf(d Direction, k int) [Dim][2]int {
	var pos [Dim][2]int
	for i := 0; i < Dim; i++ {
		switch d {
		case Up:
			pos[i] = [2]int{i, k}
		case Down:
			pos[i] = [2]int{Dim - 1 - i, k}
		case Left:
			pos[i] = [2]int{k, i}
		case Right:
			pos[i] = [2]int{k, Dim - 1 - i}
		}
	}
	return pos
}

// slide compacts and merges every line in direction d. It does not spawn.
func (b Board) slide(d Direction) Board {
	out := b
	for k := 0; k < Dim; k++ {
		cells := cellsOf(d, k)
		var l line
		for i, c := range cells {
			l[i] = b.grid[c[0]][c[1]]
		}
		l.collapse()
		for i, c := range cells {
			out.grid[c[0]][c[1]] = l[i]
		}
	}
	return out
}

// Slide is the deterministic half of a move: tiles compact and merge toward
// d, and nothing spawns.
func Slide(b Board, d Direction) Board {
	return b.slide(d)
}

// Apply slides the board in direction d. If anything moved, one new tile is
// spawned from s and the new board is returned with true. Otherwise b is
// returned unchanged with false, and s is not touched.
//
// Because of the spawn, two calls with the same board and direction can give
// different results. Each returned board is a one-off sample.
func Apply(b Board, d Direction, s Sampler) (Board, bool) {
	next := b.slide(d)
	if next == b {
		return b, false
	}
	next.spawn(s)
	return next, true
}

// Successor is a board reached from another by a single move.
type Successor struct {
	Board     Board
	Direction Direction
}

// Successors applies every direction to its own copy of b and returns the
// boards that changed, in Directions order.
func (b Board) Successors(s Sampler) []Successor {
	succs := make([]Successor, 0, len(Directions))
	for _, d := range Directions {
		next, moved := Apply(b, d, s)
		if moved {
			succs = append(succs, Successor{Board: next, Direction: d})
		}
	}
	return succs
}
