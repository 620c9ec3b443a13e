package runner

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/tilesearch/board"
	"github.com/domino14/tilesearch/heuristic"
	"github.com/domino14/tilesearch/results"
	"github.com/domino14/tilesearch/search"
	"github.com/domino14/tilesearch/stats"
)

func parse(t *testing.T, s string) *board.Board {
	t.Helper()
	b, err := board.Parse(s)
	if err != nil {
		t.Fatal(err)
	}
	return &b
}

func TestRunTrials(t *testing.T) {
	is := is.New(t)
	var out bytes.Buffer
	r, err := NewTrialRunner(Options{
		Iterations: 3,
		Goal:       4,
		Start:      parse(t, "2 0 0 0/0 0 0 0/0 0 0 0/0 2 0 0"),
		Seed:       1,
		Weights:    heuristic.DefaultWeights,
		Histogram:  true,
	}, &out)
	is.NoErr(err)
	acc := stats.NewAccumulator()
	is.NoErr(r.Run(context.Background(), acc))

	s, err := acc.Summary()
	is.NoErr(err)
	is.Equal(s.Trials, 3)
	is.Equal(s.Succeeded, 3)
	is.True(s.AvgMoves >= 1)

	txt := out.String()
	is.Equal(strings.Count(txt, "Starting board:"), 3)
	is.True(strings.Contains(txt, "Trial 3, goal 4"))
	is.Equal(strings.Count(txt, "Number of moves:"), 3)
	is.True(strings.Contains(txt, "Move 1: "))
	is.True(strings.Contains(txt, "Moves per solved trial:"))
}

func TestRunRandomStarts(t *testing.T) {
	is := is.New(t)
	var out bytes.Buffer
	r, err := NewTrialRunner(Options{
		Iterations:    2,
		Goal:          8,
		Seed:          3,
		Weights:       heuristic.DefaultWeights,
		MaxExpansions: 20000,
		Quiet:         true,
	}, &out)
	is.NoErr(err)
	acc := stats.NewAccumulator()
	is.NoErr(r.Run(context.Background(), acc))
	is.Equal(len(acc.Records()), 2)
	is.True(!strings.Contains(out.String(), "Starting board:"))
}

func TestRunStuckBoard(t *testing.T) {
	is := is.New(t)
	var out bytes.Buffer
	r, err := NewTrialRunner(Options{
		Iterations: 1,
		Goal:       2048,
		Start:      parse(t, "2 4 2 4/4 2 4 2/2 4 2 4/4 2 4 2"),
		Weights:    heuristic.DefaultWeights,
	}, &out)
	is.NoErr(err)
	acc := stats.NewAccumulator()
	is.NoErr(r.Run(context.Background(), acc))
	is.True(strings.Contains(out.String(), "No path found (exhausted)"))
	is.Equal(acc.Records()[0].Outcome, search.Exhausted)
}

func TestRunCancelled(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r, err := NewTrialRunner(Options{Iterations: 5, Goal: 2048, Weights: heuristic.DefaultWeights}, &bytes.Buffer{})
	is.NoErr(err)
	acc := stats.NewAccumulator()
	is.NoErr(r.Run(ctx, acc))
	_, err = acc.Summary()
	is.True(errors.Is(err, stats.ErrNoTrials))
}

func TestRunWithTrialLog(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	tl, err := results.OpenTrialLog(ctx, filepath.Join(t.TempDir(), "trials.db"))
	is.NoErr(err)
	defer tl.Close()

	r, err := NewTrialRunner(Options{
		Iterations: 2,
		Goal:       4,
		Start:      parse(t, "2 0 0 0/0 0 0 0/0 0 0 0/0 2 0 0"),
		Weights:    heuristic.DefaultWeights,
		Quiet:      true,
	}, &bytes.Buffer{})
	is.NoErr(err)
	r.SetTrialLog(tl)
	is.NoErr(r.Run(ctx, stats.NewAccumulator()))
	n, err := tl.Count(ctx)
	is.NoErr(err)
	is.Equal(n, 2)
}

func TestBadOptions(t *testing.T) {
	is := is.New(t)
	_, err := NewTrialRunner(Options{Iterations: 1, Goal: 0}, &bytes.Buffer{})
	is.True(errors.Is(err, ErrBadOptions))
	is.True(errors.Is(err, search.ErrBadGoal))
	_, err = NewTrialRunner(Options{Iterations: -1, Goal: 4}, &bytes.Buffer{})
	is.True(errors.Is(err, ErrBadOptions))
}

func TestPathSummary(t *testing.T) {
	is := is.New(t)
	path := []search.Step{{Direction: board.Up}, {Direction: board.Left}}
	is.Equal(PathSummary(path), "up, left")
	is.Equal(PathSummary(nil), "")
}
