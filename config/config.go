package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug          = "debug"
	ConfigConfigFile     = "config"
	ConfigLexiconPath    = "lexicon-path"
	ConfigDefaultLexicon = "default-lexicon"
	ConfigMaxLength      = "max-length"
	ConfigMinLength      = "min-length"
	ConfigThreads        = "threads"
	ConfigStrategy       = "strategy"
	ConfigSort           = "sort"
	ConfigDedupe         = "dedupe"
	ConfigTop            = "top"
	ConfigBoardFile      = "board-file"
	ConfigRandomDim      = "random"
	ConfigHistogram      = "histogram"
	ConfigCPUProfile     = "cpu-profile"
)

const (
	StrategyPrefix = "prefix"
	StrategyExact  = "exact"

	SortAscending  = "asc"
	SortDescending = "desc"
)

var ErrInvalidSetting = errors.New("invalid setting")

type Config struct {
	*viper.Viper
	args []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigLexiconPath, "./data/lexica")
	v.SetDefault(ConfigDefaultLexicon, "enable1")
	v.SetDefault(ConfigMaxLength, 8)
	v.SetDefault(ConfigMinLength, 1)
	v.SetDefault(ConfigThreads, runtime.NumCPU())
	v.SetDefault(ConfigStrategy, StrategyPrefix)
	v.SetDefault(ConfigSort, SortAscending)
	v.SetDefault(ConfigDedupe, false)
	v.SetDefault(ConfigTop, 0)
	v.SetDefault(ConfigRandomDim, 0)
	v.SetDefault(ConfigHistogram, false)
}

// DefaultConfig returns a config with every setting at its default. It is
// mostly meant for tests.
func DefaultConfig() Config {
	v := viper.New()
	setDefaults(v)
	return Config{Viper: v}
}

// Load reads settings, in decreasing order of precedence, from command-line
// flags, WORDHUNT_* environment variables, an optional config file, and the
// defaults.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	setDefaults(c.Viper)

	fs := pflag.NewFlagSet("wordhunt", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigConfigFile, "", "path to a config file (yaml, toml or json)")
	fs.String(ConfigLexiconPath, "./data/lexica", "directory holding word lists and kwg files")
	fs.String(ConfigDefaultLexicon, "enable1", "the lexicon to use, without extension")
	fs.Int(ConfigMaxLength, 8, "maximum number of tiles in a word")
	fs.Int(ConfigMinLength, 1, "minimum number of tiles in a reported word")
	fs.Int(ConfigThreads, runtime.NumCPU(), "number of search goroutines")
	fs.String(ConfigStrategy, StrategyPrefix, "search strategy: prefix (pruned) or exact (unpruned)")
	fs.String(ConfigSort, SortAscending, "sort order of the results: asc or desc")
	fs.Bool(ConfigDedupe, false, "report each word once, with its best score")
	fs.Int(ConfigTop, 0, "only print this many results (0 for all)")
	fs.String(ConfigBoardFile, "", "YAML file to load the board from")
	fs.Int(ConfigRandomDim, 0, "roll a random board of this size instead of reading one")
	fs.Bool(ConfigHistogram, false, "print a histogram of word scores")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()

	c.SetEnvPrefix("wordhunt")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	if cf := c.GetString(ConfigConfigFile); cf != "" {
		c.SetConfigFile(cf)
		if err := c.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}
	return c.Validate()
}

// Args returns the positional arguments left over after flag parsing.
func (c *Config) Args() []string {
	return c.args
}

// Validate checks that enumerated and numeric settings are in range.
func (c *Config) Validate() error {
	switch s := c.GetString(ConfigStrategy); s {
	case StrategyPrefix, StrategyExact:
	default:
		return fmt.Errorf("%w: %s=%q", ErrInvalidSetting, ConfigStrategy, s)
	}
	switch s := c.GetString(ConfigSort); s {
	case SortAscending, SortDescending:
	default:
		return fmt.Errorf("%w: %s=%q", ErrInvalidSetting, ConfigSort, s)
	}
	if c.GetInt(ConfigMaxLength) < 1 {
		return fmt.Errorf("%w: %s must be at least 1", ErrInvalidSetting, ConfigMaxLength)
	}
	if c.GetInt(ConfigMinLength) < 1 {
		return fmt.Errorf("%w: %s must be at least 1", ErrInvalidSetting, ConfigMinLength)
	}
	if c.GetInt(ConfigThreads) < 1 {
		return fmt.Errorf("%w: %s must be at least 1", ErrInvalidSetting, ConfigThreads)
	}
	return nil
}

// AdjustRelativePaths makes a relative lexicon path relative to basepath,
// unless it already exists relative to the working directory.
func (c *Config) AdjustRelativePaths(basepath string) {
	p := c.GetString(ConfigLexiconPath)
	if filepath.IsAbs(p) {
		return
	}
	if _, err := os.Stat(p); err == nil {
		return
	}
	c.Set(ConfigLexiconPath, filepath.Join(basepath, p))
}

// SanitizedSettings returns all settings, for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
