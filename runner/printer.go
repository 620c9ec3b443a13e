package runner

import (
	"fmt"
	"io"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/domino14/tilesearch/board"
	"github.com/domino14/tilesearch/results"
	"github.com/domino14/tilesearch/search"
	"github.com/domino14/tilesearch/stats"
)

const separator = "================================="

const histogramBins = 10
const histogramWidth = 40

// Printer writes human-readable trial reports.
type Printer struct {
	w     io.Writer
	p     *message.Printer
	quiet bool
}

func NewPrinter(w io.Writer, quiet bool) *Printer {
	return &Printer{w: w, p: message.NewPrinter(language.English), quiet: quiet}
}

func (pr *Printer) printBoard(b board.Board) {
	io.WriteString(pr.w, b.ToDisplayText())
}

func (pr *Printer) TrialStart(n int, start board.Board, goal board.Tile) {
	fmt.Fprintln(pr.w, separator)
	fmt.Fprintf(pr.w, "Trial %d, goal %d\n", n, goal)
	if pr.quiet {
		return
	}
	fmt.Fprintln(pr.w, "Starting board:")
	pr.printBoard(start)
}

func (pr *Printer) TrialResult(res *search.Result) {
	switch res.Outcome {
	case search.Succeeded:
		if !pr.quiet {
			for i, step := range res.Path {
				fmt.Fprintf(pr.w, "Move %d: %s\n", i+1, step.Direction)
				pr.printBoard(step.Board)
			}
		}
		fmt.Fprintf(pr.w, "Number of moves: %d\n", res.Moves())
	default:
		fmt.Fprintf(pr.w, "No path found (%s)\n", res.Outcome)
	}
	fmt.Fprintf(pr.w, "Time taken: %v\n", res.Elapsed)
	pr.p.Fprintf(pr.w, "Boards expanded: %d (generated %d, largest frontier %d)\n",
		res.Expanded, res.Generated, res.MaxFrontier)
}

func (pr *Printer) Summary(s stats.Summary) {
	fmt.Fprintln(pr.w, separator)
	io.WriteString(pr.w, results.FormatText(s))
}

// MovesHistogram draws the distribution of moves per solved trial. It
// prints nothing when no trial succeeded.
func (pr *Printer) MovesHistogram(moves []float64) error {
	if len(moves) == 0 {
		return nil
	}
	fmt.Fprintln(pr.w, "Moves per solved trial:")
	if lo.Min(moves) == lo.Max(moves) {
		fmt.Fprintf(pr.w, "all %d took %.0f\n", len(moves), moves[0])
		return nil
	}
	h := histogram.Hist(histogramBins, moves)
	return histogram.Fprint(pr.w, h, histogram.Linear(histogramWidth))
}

// PathSummary is the move list on one line, e.g. "up, left, left".
func PathSummary(path []search.Step) string {
	return strings.Join(search.Directions(path), ", ")
}
