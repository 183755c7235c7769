// Package search finds every board path that spells a dictionary word.
//
// Every starting cell is searched independently, in its own goroutine,
// with no state shared between them apart from the read-only board and
// word list. Paths are grown depth first, one neighboring cell at a time,
// and every path along the way is checked against the word list, so words
// shorter than the maximum length are found too.
package search

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/wordhunt/board"
	"github.com/domino14/wordhunt/kwg"
	"github.com/domino14/wordhunt/lexicon"
	"github.com/domino14/wordhunt/ranking"
	"github.com/domino14/wordhunt/tilemapping"
	"github.com/domino14/wordhunt/word"
)

var (
	ErrBadMaxLength = errors.New("maximum word length must be at least 1")
	ErrNoBoard      = errors.New("no board to search")
	ErrNoWordGraph  = errors.New("prefix search needs a word graph")
	ErrNoLexicon    = errors.New("no lexicon to search against")
)

// WordGraph is a prefix index over a word list. A node index of 0 means
// "no node": nothing can follow.
type WordGraph interface {
	GetRootNodeIndex() uint32
	NextNodeIdx(nodeIdx uint32, letter tilemapping.MachineLetter) uint32
	InLetterSet(letter tilemapping.MachineLetter, nodeIdx uint32) bool
}

// Strategy selects how the search decides which branches to follow.
type Strategy int

const (
	// StrategyPrefix walks a word graph alongside the path and cuts a
	// branch as soon as its letters are not the start of any word.
	StrategyPrefix Strategy = iota
	// StrategyExact only tests whole-word membership. It never prunes, so
	// it visits every path up to the maximum length: on an NxN board that
	// is on the order of N*N * 8^(maxLength-1) paths.
	StrategyExact
)

func (s Strategy) String() string {
	switch s {
	case StrategyPrefix:
		return "prefix"
	case StrategyExact:
		return "exact"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Stats counts the work done by one search.
type Stats struct {
	Tasks        int
	PathsVisited uint64
	WordsFound   int
	Elapsed      time.Duration
}

// Solver searches boards against one word list. A Solver holds no
// per-search state and may be used by several goroutines at once.
type Solver struct {
	lex       lexicon.Lexicon
	graph     WordGraph
	strategy  Strategy
	threads   int
	minLength int
	rankOpts  ranking.Options
}

type Option func(*Solver)

// WithThreads bounds the number of starting cells searched at once.
func WithThreads(n int) Option {
	return func(s *Solver) { s.threads = n }
}

func WithStrategy(st Strategy) Option {
	return func(s *Solver) { s.strategy = st }
}

// WithMinLength hides words with fewer tiles than n. Shorter paths are
// still extended.
func WithMinLength(n int) Option {
	return func(s *Solver) { s.minLength = n }
}

// WithWordGraph supplies an already built prefix index for the lexicon.
func WithWordGraph(g WordGraph) Option {
	return func(s *Solver) { s.graph = g }
}

func WithRanking(opts ranking.Options) Option {
	return func(s *Solver) { s.rankOpts = opts }
}

// NewSolver makes a solver for lex. For the prefix strategy a word graph is
// built from lex unless one was passed in with WithWordGraph.
func NewSolver(lex lexicon.Lexicon, opts ...Option) (*Solver, error) {
	s := &Solver{
		lex:       lex,
		strategy:  StrategyPrefix,
		threads:   runtime.NumCPU(),
		minLength: 1,
	}
	for _, o := range opts {
		o(s)
	}
	if s.threads < 1 {
		s.threads = 1
	}
	if lex == nil && (s.strategy != StrategyPrefix || s.graph == nil) {
		return nil, ErrNoLexicon
	}
	if s.strategy == StrategyPrefix && s.graph == nil {
		g, err := graphFor(lex)
		if err != nil {
			return nil, err
		}
		s.graph = g
	}
	return s, nil
}

func graphFor(lex lexicon.Lexicon) (WordGraph, error) {
	switch l := lex.(type) {
	case *lexicon.Dictionary:
		return kwg.FromDictionary(l)
	case kwg.Lexicon:
		return &l.KWG, nil
	case *kwg.Lexicon:
		return &l.KWG, nil
	}
	return nil, fmt.Errorf("%w: lexicon %s", ErrNoWordGraph, lex.Name())
}

// Solve finds every path of at most maxLength tiles on b that spells a word
// in dict, and returns them ranked by score.
func Solve(ctx context.Context, b *board.Board, dict lexicon.Lexicon, maxLength int,
	opts ...Option) ([]ranking.Result, error) {

	s, err := NewSolver(dict, opts...)
	if err != nil {
		return nil, err
	}
	return s.Solve(ctx, b, maxLength)
}

// Solve searches b and ranks the results.
func (s *Solver) Solve(ctx context.Context, b *board.Board, maxLength int) ([]ranking.Result, error) {
	perTask, _, err := s.Search(ctx, b, maxLength)
	if err != nil {
		return nil, err
	}
	return ranking.Rank(perTask, s.rankOpts), nil
}

// Search runs one task per starting cell and returns each task's results,
// in row-major order of the starting cells. Any error fails the whole
// search; no partial results are returned.
func (s *Solver) Search(ctx context.Context, b *board.Board, maxLength int) ([][]ranking.Result, Stats, error) {
	if b == nil {
		return nil, Stats{}, ErrNoBoard
	}
	if maxLength < 1 {
		return nil, Stats{}, fmt.Errorf("%w: got %d", ErrBadMaxLength, maxLength)
	}
	ts := time.Now()
	starts := b.Locations()
	results := make([][]ranking.Result, len(starts))
	visited := make([]uint64, len(starts))

	log.Debug().Int("tasks", len(starts)).Int("threads", s.threads).
		Int("max-length", maxLength).Stringer("strategy", s.strategy).Msg("search-started")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.threads)
	for i, start := range starts {
		i, start := i, start
		g.Go(func() error {
			t := &task{
				solver:    s,
				ctx:       gctx,
				maxLength: maxLength,
				w:         word.NewWithCapacity(b, start, maxLength),
			}
			if err := t.run(); err != nil {
				return err
			}
			results[i] = t.results
			visited[i] = t.visited
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Debug().Err(err).Msg("search-aborted")
		return nil, Stats{}, err
	}

	stats := Stats{Tasks: len(starts), Elapsed: time.Since(ts)}
	for i := range starts {
		stats.PathsVisited += visited[i]
		stats.WordsFound += len(results[i])
	}
	log.Debug().Uint64("paths", stats.PathsVisited).Int("found", stats.WordsFound).
		Dur("elapsed", stats.Elapsed).Msg("search-finished")
	return results, stats, nil
}

// task is the search from a single starting cell. It owns its word, which
// is grown and shrunk in place; found words are copied out.
type task struct {
	solver    *Solver
	ctx       context.Context
	maxLength int
	w         *word.Word
	results   []ranking.Result
	visited   uint64
}

func (t *task) run() error {
	switch t.solver.strategy {
	case StrategyPrefix:
		root := t.solver.graph.GetRootNodeIndex()
		if root == 0 {
			return nil
		}
		return t.extendPrefix(root)
	case StrategyExact:
		return t.extendExact()
	}
	return fmt.Errorf("unknown strategy %v", t.solver.strategy)
}

func (t *task) emit() {
	if t.w.Len() >= t.solver.minLength {
		t.results = append(t.results, ranking.NewResult(t.w.Copy()))
	}
}

// extendPrefix handles the word's last tile, which has not been looked up
// in the graph yet; nodeIdx is the node it must be found under.
func (t *task) extendPrefix(nodeIdx uint32) error {
	if err := t.ctx.Err(); err != nil {
		return err
	}
	t.visited++
	last := t.w.Last()
	ml := t.w.Board().TileAt(last).Letter()
	if t.solver.graph.InLetterSet(ml, nodeIdx) {
		t.emit()
	}
	next := t.solver.graph.NextNodeIdx(nodeIdx, ml)
	if next == 0 || t.w.Len() >= t.maxLength {
		return nil
	}
	for _, adj := range t.w.Board().Adjacent(last) {
		if t.w.Contains(adj) {
			continue
		}
		t.w.Extend(adj)
		err := t.extendPrefix(next)
		t.w.Pop()
		if err != nil {
			return err
		}
	}
	return nil
}

func (t *task) extendExact() error {
	if err := t.ctx.Err(); err != nil {
		return err
	}
	t.visited++
	if t.solver.lex.HasWord(t.w.Text()) {
		t.emit()
	}
	if t.w.Len() >= t.maxLength {
		return nil
	}
	for _, adj := range t.w.Board().Adjacent(t.w.Last()) {
		if t.w.Contains(adj) {
			continue
		}
		t.w.Extend(adj)
		err := t.extendExact()
		t.w.Pop()
		if err != nil {
			return err
		}
	}
	return nil
}
