package stats

import (
	"errors"
	"time"

	"github.com/domino14/tilesearch/board"
	"github.com/domino14/tilesearch/search"
)

var ErrNoTrials = errors.New("no trials were recorded")

// Confidence is the confidence level, in percent, of reported intervals.
const Confidence = 95.0

// TrialRecord holds everything measured for a single trial. All of it is
// recorded together, so the per-trial samples always line up.
type TrialRecord struct {
	Trial     int
	Start     board.Board
	Goal      board.Tile
	Outcome   search.Outcome
	Moves     int
	Expanded  int
	Generated int
	Elapsed   time.Duration
}

// RecordFromResult builds the record for trial number n.
func RecordFromResult(n int, res *search.Result) TrialRecord {
	return TrialRecord{
		Trial:     n,
		Start:     res.Start,
		Goal:      res.Goal,
		Outcome:   res.Outcome,
		Moves:     res.Moves(),
		Expanded:  res.Expanded,
		Generated: res.Generated,
		Elapsed:   res.Elapsed,
	}
}

// Accumulator collects trial records. It is owned by whoever runs the trials
// and is not safe for concurrent use.
type Accumulator struct {
	records  []TrialRecord
	expanded Statistic
	elapsed  Statistic
	moves    Statistic
	outcomes map[search.Outcome]int
}

func NewAccumulator() *Accumulator {
	return &Accumulator{outcomes: make(map[search.Outcome]int)}
}

func (a *Accumulator) Add(r TrialRecord) {
	a.records = append(a.records, r)
	a.outcomes[r.Outcome]++
	a.expanded.Push(float64(r.Expanded))
	a.elapsed.Push(float64(r.Elapsed) / float64(time.Millisecond))
	if r.Outcome == search.Succeeded {
		a.moves.Push(float64(r.Moves))
	}
}

func (a *Accumulator) Records() []TrialRecord {
	return a.records
}

// MovesPerSuccess lists the move counts of the successful trials.
func (a *Accumulator) MovesPerSuccess() []float64 {
	var mv []float64
	for _, r := range a.records {
		if r.Outcome == search.Succeeded {
			mv = append(mv, float64(r.Moves))
		}
	}
	return mv
}

// Summary is the aggregate over all recorded trials. Expansion and timing
// averages cover every trial; move averages cover only successful ones.
type Summary struct {
	Trials    int `json:"trials" yaml:"trials"`
	Succeeded int `json:"succeeded" yaml:"succeeded"`
	Exhausted int `json:"exhausted" yaml:"exhausted"`
	Aborted   int `json:"aborted" yaml:"aborted"`

	AvgExpanded   float64 `json:"avg_expanded" yaml:"avg_expanded"`
	AvgElapsedMs  float64 `json:"avg_elapsed_ms" yaml:"avg_elapsed_ms"`
	AvgMoves      float64 `json:"avg_moves" yaml:"avg_moves"`
	StdevMoves    float64 `json:"stdev_moves" yaml:"stdev_moves"`
	MovesInterval float64 `json:"moves_ci95" yaml:"moves_ci95"`
	MinMoves      int     `json:"min_moves" yaml:"min_moves"`
	MaxMoves      int     `json:"max_moves" yaml:"max_moves"`
}

// Summary returns the aggregate. With no trials recorded it returns a zero
// summary and ErrNoTrials rather than dividing by zero.
func (a *Accumulator) Summary() (Summary, error) {
	s := Summary{
		Trials:    len(a.records),
		Succeeded: a.outcomes[search.Succeeded],
		Exhausted: a.outcomes[search.Exhausted],
		Aborted:   a.outcomes[search.Aborted],
	}
	if s.Trials == 0 {
		return s, ErrNoTrials
	}
	s.AvgExpanded = a.expanded.Mean()
	s.AvgElapsedMs = a.elapsed.Mean()
	if a.moves.Count() > 0 {
		s.AvgMoves = a.moves.Mean()
		s.StdevMoves = a.moves.Stdev()
		s.MovesInterval = a.moves.HalfWidth(Confidence)
		s.MinMoves = int(a.moves.Min())
		s.MaxMoves = int(a.moves.Max())
	}
	return s, nil
}
