package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/bits"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/tilesearch/board"
	"github.com/domino14/tilesearch/config"
	"github.com/domino14/tilesearch/heuristic"
	"github.com/domino14/tilesearch/results"
	"github.com/domino14/tilesearch/runner"
	"github.com/domino14/tilesearch/search"
	"github.com/domino14/tilesearch/stats"
)

const usageText = "Usage: tilesearch [flags] <iterations> <goal>"

func usageExit(err error) {
	fmt.Fprintln(os.Stderr, err)
	fmt.Fprintln(os.Stderr, usageText)
	os.Exit(2)
}

func setupLogging(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")
}

// parseArgs reads the two positional arguments: the number of trials and
// the tile value to search for.
func parseArgs(args []string) (int, board.Tile, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("%w: expected 2 arguments, got %d", config.ErrUsage, len(args))
	}
	iterations, err := strconv.Atoi(args[0])
	if err != nil || iterations < 0 {
		return 0, 0, fmt.Errorf("%w: iterations must be a non-negative integer, got %q", config.ErrUsage, args[0])
	}
	goal, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil || goal < 2 || bits.OnesCount64(goal) != 1 {
		return 0, 0, fmt.Errorf("%w: goal must be a power of two, got %q", config.ErrUsage, args[1])
	}
	if goal > uint64(board.LargestTile) {
		return 0, 0, fmt.Errorf("%w: goal must be at most %d, got %q", config.ErrUsage, board.LargestTile, args[1])
	}
	return iterations, board.Tile(goal), nil
}

func optionsFromConfig(cfg *config.Config, iterations int, goal board.Tile) (runner.Options, error) {
	opts := runner.Options{
		Iterations:    iterations,
		Goal:          goal,
		Seed:          cfg.GetUint64(config.ConfigSeed),
		Weights:       heuristic.DefaultWeights,
		MaxExpansions: cfg.GetInt(config.ConfigMaxExpansions),
		LogEvery:      cfg.GetInt(config.ConfigLogEvery),
		Quiet:         cfg.GetBool(config.ConfigQuiet),
		Histogram:     cfg.GetBool(config.ConfigHistogram),
	}
	if path := cfg.GetString(config.ConfigWeightsFile); path != "" {
		w, err := heuristic.LoadWeights(path)
		if err != nil {
			return opts, err
		}
		opts.Weights = w
	}
	if s := cfg.GetString(config.ConfigStartBoard); s != "" {
		b, err := board.Parse(s)
		if err != nil {
			return opts, fmt.Errorf("%w: %v", config.ErrUsage, err)
		}
		opts.Start = &b
	}
	if opts.MaxExpansions == 0 {
		opts.MaxExpansions = search.BudgetFromMemory(cfg.GetFloat64(config.ConfigMemoryFraction))
	}
	return opts, nil
}

func run(ctx context.Context, cfg *config.Config, iterations int, goal board.Tile, out io.Writer) error {
	opts, err := optionsFromConfig(cfg, iterations, goal)
	if err != nil {
		return err
	}
	tr, err := runner.NewTrialRunner(opts, out)
	if err != nil {
		return err
	}
	if path := cfg.GetString(config.ConfigTrialDB); path != "" {
		tl, err := results.OpenTrialLog(ctx, path)
		if err != nil {
			return err
		}
		defer tl.Close()
		tr.SetTrialLog(tl)
	}

	acc := stats.NewAccumulator()
	if err := tr.Run(ctx, acc); err != nil {
		return err
	}
	summary, err := acc.Summary()
	if errors.Is(err, stats.ErrNoTrials) {
		log.Warn().Msg("no trials completed; summary is all zeros")
	}
	runner.NewPrinter(out, opts.Quiet).Summary(summary)
	return results.WriteSummary(cfg.GetString(config.ConfigResultsFile), summary)
}

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		usageExit(err)
	}
	setupLogging(cfg.GetBool(config.ConfigDebug))
	log.Debug().Msgf("Loaded config: %v", cfg.SanitizedSettings())

	iterations, goal, err := parseArgs(cfg.Args())
	if err != nil {
		usageExit(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, iterations, goal, os.Stdout); err != nil {
		if errors.Is(err, config.ErrUsage) {
			usageExit(err)
		}
		log.Error().Err(err).Msg("run-failed")
		os.Exit(1)
	}
}
