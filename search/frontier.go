package search

import (
	"container/heap"

	"github.com/domino14/tilesearch/board"
)

// entry is a board waiting to be expanded. Only priority orders the
// frontier; ties come out in no particular order.
type entry struct {
	priority uint64
	moves    int
	board    board.Board
}

// frontier is a min-heap on priority.
type frontier []*entry

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].priority < f[j].priority }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(*entry))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return e
}

func (f *frontier) push(e *entry) {
	heap.Push(f, e)
}

func (f *frontier) pop() *entry {
	return heap.Pop(f).(*entry)
}
