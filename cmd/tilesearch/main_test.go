package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/tilesearch/board"
	"github.com/domino14/tilesearch/config"
	"github.com/domino14/tilesearch/results"
)

func TestParseArgs(t *testing.T) {
	n, goal, err := parseArgs([]string{"10", "2048"})
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, board.Tile(2048), goal)

	_, goal, err = parseArgs([]string{"1", "131072"})
	require.NoError(t, err)
	assert.Equal(t, board.LargestTile, goal)

	for _, args := range [][]string{
		nil,
		{"10"},
		{"ten", "2048"},
		{"10", "goal"},
		{"-1", "2048"},
		{"10", "100"},
		{"10", "1"},
		{"10", "262144"},
		{"10", "2147483648"},
		{"1", "2", "3"},
	} {
		_, _, err := parseArgs(args)
		assert.True(t, errors.Is(err, config.ErrUsage), "%v", args)
	}
}

func TestRunWritesResults(t *testing.T) {
	dir := t.TempDir()
	resultsPath := filepath.Join(dir, "results.yaml")
	weightsPath := filepath.Join(dir, "weights.yaml")
	require.NoError(t, os.WriteFile(weightsPath, []byte("corner: 10\n"), 0644))

	cfg := &config.Config{}
	require.NoError(t, cfg.Load([]string{
		"--results-file", resultsPath,
		"--trial-db", filepath.Join(dir, "trials.db"),
		"--weights", weightsPath,
		"--start", "2 0 0 0/0 0 0 0/0 0 0 0/0 2 0 0",
		"--seed", "9",
		"2", "4",
	}))
	n, goal, err := parseArgs(cfg.Args())
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, n, goal, &out))
	assert.Contains(t, out.String(), "Trials: 2 (succeeded 2")

	s, err := results.ReadSummary(resultsPath)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Trials)
	assert.Equal(t, 2, s.Succeeded)
	assert.GreaterOrEqual(t, s.AvgMoves, 1.0)
}

func TestRunZeroTrials(t *testing.T) {
	resultsPath := filepath.Join(t.TempDir(), "results.json")
	cfg := &config.Config{}
	require.NoError(t, cfg.Load([]string{"--results-file", resultsPath, "0", "2048"}))

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, 0, 2048, &out))
	s, err := results.ReadSummary(resultsPath)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Trials)
	assert.Equal(t, 0.0, s.AvgMoves)
}

func TestRunBadStartBoard(t *testing.T) {
	cfg := &config.Config{}
	require.NoError(t, cfg.Load([]string{
		"--results-file", filepath.Join(t.TempDir(), "r.txt"),
		"--start", "2 0 0",
		"1", "4",
	}))
	err := run(context.Background(), cfg, 1, 4, &bytes.Buffer{})
	assert.True(t, errors.Is(err, config.ErrUsage))
}
