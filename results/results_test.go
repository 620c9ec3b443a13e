package results

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/tilesearch/board"
	"github.com/domino14/tilesearch/search"
	"github.com/domino14/tilesearch/stats"
)

var sampleSummary = stats.Summary{
	Trials:        4,
	Succeeded:     3,
	Aborted:       1,
	AvgExpanded:   1234.5,
	AvgElapsedMs:  12.25,
	AvgMoves:      17,
	StdevMoves:    2,
	MovesInterval: 2.26,
	MinMoves:      15,
	MaxMoves:      19,
}

func TestFormatText(t *testing.T) {
	txt := FormatText(sampleSummary)
	assert.Contains(t, txt, "Trials: 4 (succeeded 3, exhausted 0, aborted 1)")
	assert.Contains(t, txt, "Average boards expanded: 1234.50")
	assert.Contains(t, txt, "Average time elapsed: 12.250 ms")
	assert.Contains(t, txt, "Average moves made (solved trials): 17.00 ± 2.26")
}

func TestWriteSummaryRoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out.yaml", "out.yml", "out.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, WriteSummary(path, sampleSummary))
		got, err := ReadSummary(path)
		require.NoError(t, err)
		assert.Equal(t, sampleSummary, got, name)
	}
}

func TestWriteSummaryText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")
	require.NoError(t, WriteSummary(path, sampleSummary))
	bts, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, FormatText(sampleSummary), string(bts))
	_, err = ReadSummary(path)
	assert.Error(t, err)
}

func TestWriteSummaryBadPath(t *testing.T) {
	err := WriteSummary(filepath.Join(t.TempDir(), "missing", "out.txt"), sampleSummary)
	assert.Error(t, err)
}

func TestTrialLog(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "trials.db")

	tl, err := OpenTrialLog(ctx, path)
	require.NoError(t, err)
	start, err := board.Parse("2 0 0 0/0 0 0 0/0 0 0 0/0 2 0 0")
	require.NoError(t, err)
	for i := 1; i <= 3; i++ {
		require.NoError(t, tl.Record(ctx, stats.TrialRecord{
			Trial: i, Start: start, Goal: 64, Outcome: search.Succeeded,
			Moves: 20 + i, Expanded: 100 * i, Elapsed: time.Duration(i) * time.Millisecond,
		}))
	}
	n, err := tl.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	var outcome, fp string
	require.NoError(t, tl.db.QueryRowContext(ctx,
		`SELECT outcome, start_fp FROM trials WHERE trial = 2`).Scan(&outcome, &fp))
	assert.Equal(t, "succeeded", outcome)
	assert.Len(t, fp, 16)
	require.NoError(t, tl.Close())

	// a second run appends to the same table under a new run id
	tl2, err := OpenTrialLog(ctx, path)
	require.NoError(t, err)
	defer tl2.Close()
	assert.NotEqual(t, tl.RunID(), tl2.RunID())
	n, err = tl2.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.True(t, strings.Count(tl2.RunID(), "-") == 4)
}
