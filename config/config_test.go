package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	is.Equal(cfg.GetInt(ConfigMaxLength), 8)
	is.Equal(cfg.GetString(ConfigStrategy), StrategyPrefix)
	is.Equal(cfg.GetString(ConfigSort), SortAscending)
	is.True(cfg.GetInt(ConfigThreads) >= 1)
	is.NoErr(cfg.Validate())
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	err := cfg.Load([]string{"--max-length", "5", "--sort=desc", "--dedupe", "o e i j / r e c r / d a s a / r i t e"})
	is.NoErr(err)
	is.Equal(cfg.GetInt(ConfigMaxLength), 5)
	is.Equal(cfg.GetString(ConfigSort), SortDescending)
	is.True(cfg.GetBool(ConfigDedupe))
	is.Equal(cfg.GetString(ConfigStrategy), StrategyPrefix)
	is.Equal(cfg.Args(), []string{"o e i j / r e c r / d a s a / r i t e"})
}

func TestLoadEnv(t *testing.T) {
	is := is.New(t)
	t.Setenv("WORDHUNT_MAX_LENGTH", "6")
	t.Setenv("WORDHUNT_STRATEGY", "exact")
	cfg := &Config{}
	is.NoErr(cfg.Load(nil))
	is.Equal(cfg.GetInt(ConfigMaxLength), 6)
	is.Equal(cfg.GetString(ConfigStrategy), StrategyExact)

	// flags beat the environment.
	is.NoErr(cfg.Load([]string{"--max-length=3"}))
	is.Equal(cfg.GetInt(ConfigMaxLength), 3)
}

func TestLoadConfigFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "wordhunt.yaml")
	is.NoErr(os.WriteFile(path, []byte("threads: 2\ndefault-lexicon: twl06\n"), 0o644))
	cfg := &Config{}
	is.NoErr(cfg.Load([]string{"--config", path}))
	is.Equal(cfg.GetInt(ConfigThreads), 2)
	is.Equal(cfg.GetString(ConfigDefaultLexicon), "twl06")
}

func TestLoadInvalid(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	err := cfg.Load([]string{"--strategy", "greedy"})
	is.True(errors.Is(err, ErrInvalidSetting))
	err = cfg.Load([]string{"--max-length", "0"})
	is.True(errors.Is(err, ErrInvalidSetting))
	err = cfg.Load([]string{"--no-such-flag"})
	is.True(err != nil)
}
