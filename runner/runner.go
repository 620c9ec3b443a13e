// Package runner plays a batch of independent search trials one after the
// other and collects their statistics.
package runner

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/domino14/tilesearch/board"
	"github.com/domino14/tilesearch/heuristic"
	"github.com/domino14/tilesearch/results"
	"github.com/domino14/tilesearch/search"
	"github.com/domino14/tilesearch/stats"
)

var ErrBadOptions = errors.New("bad trial options")

type Options struct {
	Iterations int
	Goal       board.Tile
	// Start, if set, is used for every trial instead of a random board.
	Start         *board.Board
	Seed          uint64
	Weights       heuristic.Weights
	MaxExpansions int
	LogEvery      int
	Quiet         bool
	Histogram     bool
}

type TrialRunner struct {
	opts     Options
	sampler  board.Sampler
	solver   *search.Solver
	printer  *Printer
	trialLog *results.TrialLog
}

func NewTrialRunner(opts Options, out io.Writer) (*TrialRunner, error) {
	if opts.Iterations < 0 {
		return nil, errors.Join(ErrBadOptions, errors.New("iterations must not be negative"))
	}
	if opts.Goal == 0 {
		return nil, errors.Join(ErrBadOptions, search.ErrBadGoal)
	}
	sampler := board.NewSampler(opts.Seed)
	solver := search.NewSolver(heuristic.NewEvaluator(opts.Weights), sampler)
	solver.SetMaxExpansions(opts.MaxExpansions)
	solver.SetLogEvery(opts.LogEvery)
	return &TrialRunner{
		opts:    opts,
		sampler: sampler,
		solver:  solver,
		printer: NewPrinter(out, opts.Quiet),
	}, nil
}

// SetTrialLog makes the runner record every trial in tl as well.
func (r *TrialRunner) SetTrialLog(tl *results.TrialLog) {
	r.trialLog = tl
}

// Run plays all trials in order, adding each one to acc. If ctx is
// cancelled, the trial in progress ends as aborted and no more are started;
// what was collected so far stays in acc.
func (r *TrialRunner) Run(ctx context.Context, acc *stats.Accumulator) error {
	for i := 1; i <= r.opts.Iterations; i++ {
		if ctx.Err() != nil {
			log.Info().Int("completed", i-1).Msg("stopping-early")
			break
		}
		if err := r.runTrial(ctx, i, acc); err != nil {
			return err
		}
	}
	if r.opts.Histogram {
		return r.printer.MovesHistogram(acc.MovesPerSuccess())
	}
	return nil
}

func (r *TrialRunner) startBoard() board.Board {
	if r.opts.Start != nil {
		return *r.opts.Start
	}
	return board.SpawnInitial(r.sampler)
}

func (r *TrialRunner) runTrial(ctx context.Context, n int, acc *stats.Accumulator) error {
	start := r.startBoard()
	r.printer.TrialStart(n, start, r.opts.Goal)

	res, err := r.solver.Solve(ctx, start, r.opts.Goal)
	if err != nil {
		return err
	}
	r.printer.TrialResult(res)

	log.Info().
		Int("trial", n).
		Str("outcome", res.Outcome.String()).
		Int("moves", res.Moves()).
		Int("expanded", res.Expanded).
		Dur("elapsed", res.Elapsed).
		Msg("trial-done")
	if res.Outcome == search.Succeeded {
		log.Debug().Str("path", PathSummary(res.Path)).Msg("trial-path")
	}

	rec := stats.RecordFromResult(n, res)
	acc.Add(rec)
	if r.trialLog != nil {
		// a failed insert is logged and the batch goes on.
		if err := r.trialLog.Record(context.WithoutCancel(ctx), rec); err != nil {
			log.Err(err).Int("trial", n).Msg("trial-log-failed")
		}
	}
	return nil
}
