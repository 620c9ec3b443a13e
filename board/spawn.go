package board

import (
	"encoding/binary"

	"github.com/samber/lo"
	"lukechampine.com/frand"
)

// Sampler is a source of uniform random integers in [0, n).
// *frand.RNG satisfies it.
type Sampler interface {
	Intn(n int) int
}

// FourChance is the 1-in-N chance that a spawned tile is a 4 instead of a 2.
const FourChance = 10

// NewSampler returns a fast random sampler. A seed of 0 gives an
// unpredictable stream; any other seed gives a reproducible one.
func NewSampler(seed uint64) Sampler {
	if seed == 0 {
		return frand.New()
	}
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, seed)
	return frand.NewCustom(key, 1024, 12)
}

func (b Board) emptyCells() []int {
	return lo.Filter(lo.Range(Dim*Dim), func(idx int, _ int) bool {
		return b.grid[idx/Dim][idx%Dim] == 0
	})
}

// spawn drops a 2 (or, one time in FourChance, a 4) onto a random empty
// cell. The position is drawn before the value.
func (b *Board) spawn(s Sampler) bool {
	empty := b.emptyCells()
	if len(empty) == 0 {
		return false
	}
	pos := empty[s.Intn(len(empty))]
	val := Tile(2)
	if s.Intn(FourChance) == 0 {
		val = 4
	}
	b.grid[pos/Dim][pos%Dim] = val
	return true
}

// SpawnInitial returns a starting board: two spawned tiles on an empty grid.
func SpawnInitial(s Sampler) Board {
	var b Board
	b.spawn(s)
	b.spawn(s)
	return b
}
