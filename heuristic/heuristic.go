// Package heuristic scores how promising a board looks. The score is a sum
// of independent terms, each computed by its own Calculator.
//
// Higher scores mean a "better" looking board: more space, more pending
// merges, the big tile in a corner. Note that the search adds this score to
// the path length and expands the smallest total first.
package heuristic

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/domino14/tilesearch/board"
)

// Calculator computes a single term of the heuristic.
type Calculator interface {
	Score(b board.Board) uint64
}

// Weights are the multipliers for each term.
type Weights struct {
	Corner    uint64 `yaml:"corner"`
	Empty     uint64 `yaml:"empty"`
	Merge     uint64 `yaml:"merge"`
	Monotonic uint64 `yaml:"monotonic"`
	Smooth    uint64 `yaml:"smooth"`
}

var DefaultWeights = Weights{
	Corner:    25,
	Empty:     1,
	Merge:     2,
	Monotonic: 2,
	Smooth:    2,
}

// LoadWeights reads weights from a YAML file. Keys that are absent keep
// their default value.
func LoadWeights(path string) (Weights, error) {
	w := DefaultWeights
	bts, err := os.ReadFile(path)
	if err != nil {
		return w, err
	}
	if err := yaml.Unmarshal(bts, &w); err != nil {
		return w, fmt.Errorf("parsing weights %s: %w", path, err)
	}
	return w, nil
}

type Evaluator struct {
	calculators []Calculator
}

func NewEvaluator(w Weights) *Evaluator {
	return &Evaluator{calculators: []Calculator{
		&CornerCalculator{Weight: w.Corner},
		&EmptyCellCalculator{Weight: w.Empty},
		&MergeCalculator{Weight: w.Merge},
		&MonotonicityCalculator{Weight: w.Monotonic},
		&SmoothnessCalculator{Weight: w.Smooth},
	}}
}

// NewCustomEvaluator sums an arbitrary set of calculators.
func NewCustomEvaluator(calculators ...Calculator) *Evaluator {
	return &Evaluator{calculators: calculators}
}

// Evaluate is a pure function of b.
func (e *Evaluator) Evaluate(b board.Board) uint64 {
	return lo.SumBy(e.calculators, func(c Calculator) uint64 {
		return c.Score(b)
	})
}

var defaultEvaluator = NewEvaluator(DefaultWeights)

// Evaluate scores b with the default weights.
func Evaluate(b board.Board) uint64 {
	return defaultEvaluator.Evaluate(b)
}
