// Package search runs a best-first search over tile-merge boards, looking
// for any board that holds a goal tile.
//
// Frontier priority is the heuristic score of a board plus the number of
// moves taken to reach it, and the smallest priority is expanded first.
// Because every move spawns a random tile, a successor is a one-off sample:
// expanding the same board twice can give different children, and the
// usual A* optimality argument does not apply.
package search

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/tilesearch/board"
)

var ErrBadGoal = errors.New("goal tile must be non-zero")

// Evaluator scores a board. See the heuristic package.
type Evaluator interface {
	Evaluate(b board.Board) uint64
}

type Outcome int

const (
	// Succeeded means a goal board was popped and a path built for it.
	Succeeded Outcome = iota
	// Exhausted means the frontier ran dry without reaching the goal.
	Exhausted
	// Aborted means the context was cancelled or the expansion budget ran
	// out before either of the above.
	Aborted
)

func (o Outcome) String() string {
	switch o {
	case Succeeded:
		return "succeeded"
	case Exhausted:
		return "exhausted"
	case Aborted:
		return "aborted"
	}
	return "unknown"
}

// Result is what one call to Solve produced.
type Result struct {
	Outcome Outcome
	Start   board.Board
	Goal    board.Tile
	// Final is the goal board when the search succeeded.
	Final board.Board
	Path  []Step
	// Expanded counts boards added to the closed set.
	Expanded int
	// Generated counts successors pushed onto the frontier.
	Generated   int
	MaxFrontier int
	Elapsed     time.Duration
}

// Moves is the length of the solution path.
func (r *Result) Moves() int {
	return len(r.Path)
}

// ctxCheckInterval is how many pops go by between context checks.
const ctxCheckInterval = 256

type Solver struct {
	evaluator     Evaluator
	sampler       board.Sampler
	maxExpansions int
	logEvery      int

	// expandHook, if set, sees every board as it enters the closed set.
	expandHook func(board.Board)
	// parentHook, if set, sees every parent map write.
	parentHook func(child, parent board.Board, d board.Direction)
}

func NewSolver(evaluator Evaluator, sampler board.Sampler) *Solver {
	return &Solver{evaluator: evaluator, sampler: sampler}
}

// SetMaxExpansions caps the closed set. 0 means no cap.
func (s *Solver) SetMaxExpansions(n int) {
	s.maxExpansions = n
}

// SetLogEvery logs progress at debug level every n expansions. 0 turns it
// off.
func (s *Solver) SetLogEvery(n int) {
	s.logEvery = n
}

// Solve searches from start until a board containing goal is popped, the
// frontier is empty, or the search is aborted. Running out of boards is not
// an error; it is reported through Result.Outcome.
func (s *Solver) Solve(ctx context.Context, start board.Board, goal board.Tile) (*Result, error) {
	if goal == 0 {
		return nil, ErrBadGoal
	}
	t0 := time.Now()
	res := &Result{Start: start, Goal: goal}
	defer func() {
		res.Elapsed = time.Since(t0)
	}()

	fr := &frontier{}
	closed := make(map[board.Board]struct{})
	parents := make(ParentMap)

	fr.push(&entry{priority: 0, moves: 0, board: start})

	pops := 0
	for fr.Len() > 0 {
		if pops%ctxCheckInterval == 0 && ctx.Err() != nil {
			log.Debug().Err(ctx.Err()).Int("expanded", len(closed)).Msg("search-cancelled")
			res.Outcome = Aborted
			res.Expanded = len(closed)
			return res, nil
		}
		pops++
		cur := fr.pop()

		if cur.board.IsGoal(goal) {
			res.Outcome = Succeeded
			res.Final = cur.board
			res.Path = ReconstructPath(parents, cur.board)
			res.Expanded = len(closed)
			return res, nil
		}
		if _, ok := closed[cur.board]; ok {
			continue
		}
		if s.maxExpansions > 0 && len(closed) >= s.maxExpansions {
			log.Debug().Int("budget", s.maxExpansions).Msg("expansion-budget-spent")
			res.Outcome = Aborted
			res.Expanded = len(closed)
			return res, nil
		}
		closed[cur.board] = struct{}{}
		if s.expandHook != nil {
			s.expandHook(cur.board)
		}

		for _, succ := range cur.board.Successors(s.sampler) {
			if _, ok := closed[succ.Board]; ok {
				continue
			}
			priority := s.evaluator.Evaluate(succ.Board) + uint64(cur.moves) + 1
			fr.push(&entry{priority: priority, moves: cur.moves + 1, board: succ.Board})
			// a later expansion reaching the same board overwrites the parent.
			parents[succ.Board] = Parent{Board: cur.board, Direction: succ.Direction}
			if s.parentHook != nil {
				s.parentHook(succ.Board, cur.board, succ.Direction)
			}
			res.Generated++
		}
		if fr.Len() > res.MaxFrontier {
			res.MaxFrontier = fr.Len()
		}
		if s.logEvery > 0 && len(closed)%s.logEvery == 0 {
			log.Debug().
				Int("expanded", len(closed)).
				Int("frontier", fr.Len()).
				Int("moves", cur.moves).
				Uint64("priority", cur.priority).
				Str("board", cur.board.String()).
				Uint64("fp", cur.board.Fingerprint()).
				Msg("search-progress")
		}
	}
	res.Outcome = Exhausted
	res.Expanded = len(closed)
	return res, nil
}
