// Package results persists what a batch of trials produced.
package results

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/domino14/tilesearch/stats"
)

// FormatText renders the summary the way it is printed to the console and
// written to plain-text results files.
func FormatText(s stats.Summary) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Trials: %d (succeeded %d, exhausted %d, aborted %d)\n",
		s.Trials, s.Succeeded, s.Exhausted, s.Aborted)
	fmt.Fprintf(&sb, "Average boards expanded: %.2f\n", s.AvgExpanded)
	fmt.Fprintf(&sb, "Average time elapsed: %.3f ms\n", s.AvgElapsedMs)
	fmt.Fprintf(&sb, "Average moves made (solved trials): %.2f", s.AvgMoves)
	if s.Succeeded > 1 {
		fmt.Fprintf(&sb, " ± %.2f (stdev %.2f, min %d, max %d)",
			s.MovesInterval, s.StdevMoves, s.MinMoves, s.MaxMoves)
	}
	sb.WriteString("\n")
	return sb.String()
}

// Marshal encodes the summary in the format implied by the file extension:
// .yaml/.yml, .json, or plain text for anything else.
func Marshal(path string, s stats.Summary) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Marshal(s)
	case ".json":
		bts, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(bts, '\n'), nil
	}
	return []byte(FormatText(s)), nil
}

// WriteSummary writes the summary to path, replacing any existing file.
func WriteSummary(path string, s stats.Summary) error {
	bts, err := Marshal(path, s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, bts, 0644); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	log.Info().Str("path", path).Int("trials", s.Trials).Msg("wrote-results")
	return nil
}

// ReadSummary reads back a YAML or JSON summary file.
func ReadSummary(path string) (stats.Summary, error) {
	var s stats.Summary
	bts, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bts, &s)
	case ".json":
		err = json.Unmarshal(bts, &s)
	default:
		err = fmt.Errorf("cannot read back a plain-text summary: %s", path)
	}
	return s, err
}
