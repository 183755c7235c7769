package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordhunt/board"
	"github.com/domino14/wordhunt/config"
	"github.com/domino14/wordhunt/kwg"
	"github.com/domino14/wordhunt/lexicon"
	"github.com/domino14/wordhunt/ranking"
	"github.com/domino14/wordhunt/search"
)

var (
	GitVersion string
)

const (
	histogramBins  = 15
	histogramWidth = 40
)

func setupLogging(cfg *config.Config) {
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
	if cfg.GetBool(config.ConfigDebug) {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")
}

func main() {
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}
	exPath := filepath.Dir(ex)

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(cfg)
	cfg.AdjustRelativePaths(exPath)
	log.Debug().Str("version", GitVersion).Interface("settings", cfg.SanitizedSettings()).Msg("loaded-config")

	if fn := cfg.GetString(config.ConfigCPUProfile); fn != "" {
		f, err := os.Create(fn)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		log.Error().Err(err).Msg("wordhunt-failed")
		pprof.StopCPUProfile()
		stop()
		os.Exit(1)
	}
}

// boardSupplier picks where the board comes from: a random roll, a YAML
// file, the positional arguments, or the reference board if none of those
// were given.
func boardSupplier(cfg *config.Config) board.Supplier {
	if dim := cfg.GetInt(config.ConfigRandomDim); dim > 0 {
		return board.RandomSupplier{Dim: dim, Options: board.DefaultRandomOptions}
	}
	if fn := cfg.GetString(config.ConfigBoardFile); fn != "" {
		return board.YAMLFileSupplier(fn)
	}
	if len(cfg.Args()) == 0 {
		return board.TextSupplier(board.ReferenceBoard)
	}
	return board.TextSupplier(strings.Join(cfg.Args(), " "))
}

func orderFromConfig(cfg *config.Config) ranking.Order {
	if cfg.GetString(config.ConfigSort) == config.SortDescending {
		return ranking.Descending
	}
	return ranking.Ascending
}

func newSolver(cfg *config.Config) (*search.Solver, error) {
	lexName := cfg.GetString(config.ConfigDefaultLexicon)
	opts := []search.Option{
		search.WithThreads(cfg.GetInt(config.ConfigThreads)),
		search.WithMinLength(cfg.GetInt(config.ConfigMinLength)),
		search.WithRanking(ranking.Options{
			Order:          orderFromConfig(cfg),
			DedupeMaxScore: cfg.GetBool(config.ConfigDedupe),
		}),
	}
	if cfg.GetString(config.ConfigStrategy) == config.StrategyExact {
		dict, err := lexicon.Get(cfg, lexName)
		if err != nil {
			return nil, err
		}
		return search.NewSolver(dict, append(opts, search.WithStrategy(search.StrategyExact))...)
	}
	k, err := kwg.Get(cfg, lexName)
	if err != nil {
		return nil, err
	}
	return search.NewSolver(kwg.Lexicon{KWG: *k},
		append(opts, search.WithStrategy(search.StrategyPrefix), search.WithWordGraph(k))...)
}

// topResults returns the n best results, keeping the requested order.
func topResults(results []ranking.Result, n int, order ranking.Order) []ranking.Result {
	if n <= 0 || n >= len(results) {
		return results
	}
	if order == ranking.Descending {
		return results[:n]
	}
	return results[len(results)-n:]
}

func run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	b, err := boardSupplier(cfg).Board()
	if err != nil {
		return fmt.Errorf("building board: %w", err)
	}
	solver, err := newSolver(cfg)
	if err != nil {
		return fmt.Errorf("loading lexicon: %w", err)
	}

	fmt.Fprint(out, b.ToDisplayText())
	results, err := solver.Solve(ctx, b, cfg.GetInt(config.ConfigMaxLength))
	if err != nil {
		return err
	}
	for _, r := range topResults(results, cfg.GetInt(config.ConfigTop), orderFromConfig(cfg)) {
		fmt.Fprintln(out, r.String())
	}

	sum := ranking.Summarize(results)
	fmt.Fprintf(out, "found %d words (%d distinct), best %d, mean %.2f, sd %.2f\n",
		sum.Count, sum.Distinct, sum.Max, sum.Mean, sum.StdDev)
	if cfg.GetBool(config.ConfigHistogram) {
		return ranking.FprintHistogram(out, results, histogramBins, histogramWidth)
	}
	return nil
}
