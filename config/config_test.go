package config

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestLoadDefaults(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load([]string{"10", "2048"}))
	is.Equal(c.Args(), []string{"10", "2048"})
	is.Equal(c.GetString(ConfigResultsFile), "results.txt")
	is.Equal(c.GetInt(ConfigMaxExpansions), 0)
	is.Equal(c.GetBool(ConfigDebug), false)
	is.Equal(c.GetUint64(ConfigSeed), uint64(0))
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load([]string{"--seed", "42", "--results-file=out.yaml", "--debug", "3", "64"}))
	is.Equal(c.GetUint64(ConfigSeed), uint64(42))
	is.Equal(c.GetString(ConfigResultsFile), "out.yaml")
	is.True(c.GetBool(ConfigDebug))
	is.Equal(c.Args(), []string{"3", "64"})
}

func TestLoadEnv(t *testing.T) {
	is := is.New(t)
	t.Setenv("TILESEARCH_MAX_EXPANSIONS", "5000")
	t.Setenv("TILESEARCH_TRIAL_DB", "trials.db")
	c := &Config{}
	is.NoErr(c.Load([]string{"1", "8"}))
	is.Equal(c.GetInt(ConfigMaxExpansions), 5000)
	is.Equal(c.GetString(ConfigTrialDB), "trials.db")

	// an explicit flag beats the environment
	is.NoErr(c.Load([]string{"--max-expansions", "7", "1", "8"}))
	is.Equal(c.GetInt(ConfigMaxExpansions), 7)
}

func TestLoadBadFlag(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	err := c.Load([]string{"--no-such-flag", "1", "8"})
	is.True(errors.Is(err, ErrUsage))
}

func TestSanitizedSettings(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load(nil))
	s := c.SanitizedSettings()
	is.Equal(s[ConfigResultsFile], "results.txt")
}
