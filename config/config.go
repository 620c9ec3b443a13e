package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug          = "debug"
	ConfigSeed           = "seed"
	ConfigResultsFile    = "results-file"
	ConfigTrialDB        = "trial-db"
	ConfigWeightsFile    = "weights"
	ConfigMaxExpansions  = "max-expansions"
	ConfigMemoryFraction = "memory-fraction"
	ConfigLogEvery       = "log-every"
	ConfigStartBoard     = "start"
	ConfigHistogram      = "histogram"
	ConfigQuiet          = "quiet"
)

var ErrUsage = errors.New("usage error")

// Config holds settings from flags and TILESEARCH_* environment variables.
// Flags win over the environment.
type Config struct {
	viper.Viper
	args []string
}

func (c *Config) Load(args []string) error {
	c.Viper = *viper.New()

	fs := pflag.NewFlagSet("tilesearch", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.Uint64(ConfigSeed, 0, "random seed; 0 picks a fresh seed every run")
	fs.String(ConfigResultsFile, "results.txt", "file for the summary statistics (.yaml, .json, or plain text)")
	fs.String(ConfigTrialDB, "", "sqlite database to log every trial to")
	fs.String(ConfigWeightsFile, "", "yaml file with heuristic weights")
	fs.Int(ConfigMaxExpansions, 0, "abort a trial after this many expansions (0 = no limit)")
	fs.Float64(ConfigMemoryFraction, 0, "derive the expansion limit from this fraction of system memory")
	fs.Int(ConfigLogEvery, 0, "log search progress every n expansions at debug level")
	fs.String(ConfigStartBoard, "", `fixed start board, e.g. "2 0 0 0/0 0 0 0/0 0 0 0/0 2 0 0"`)
	fs.Bool(ConfigHistogram, false, "print a histogram of moves per solved trial")
	fs.Bool(ConfigQuiet, false, "do not print boards for each trial")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.SetEnvPrefix("tilesearch")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	c.args = fs.Args()
	return nil
}

// Args are the positional arguments left after flag parsing.
func (c *Config) Args() []string {
	return c.args
}

// SanitizedSettings is safe to log.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
