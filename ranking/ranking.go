// Package ranking merges the words found from every starting cell and
// orders them by score.
package ranking

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"github.com/domino14/wordhunt/word"
)

// Result is one found word. Two different paths that spell the same word
// are two results.
type Result struct {
	Word  string
	Score uint64
	Path  *word.Word
}

func (r Result) String() string {
	return fmt.Sprintf("%s, %d", r.Word, r.Score)
}

// NewResult scores w.
func NewResult(w *word.Word) Result {
	return Result{Word: w.Text(), Score: w.Score(), Path: w}
}

type Order int

const (
	Ascending Order = iota
	Descending
)

type Options struct {
	Order Order
	// DedupeMaxScore keeps only the best scoring path for every word.
	// Among equal scores the earliest one wins.
	DedupeMaxScore bool
}

// Rank concatenates the per-task lists in order and sorts them by score.
// The sort is stable, so ties keep the order they were found in.
func Rank(perTask [][]Result, opts Options) []Result {
	all := lo.Flatten(perTask)
	if opts.DedupeMaxScore {
		all = dedupe(all)
	}
	if opts.Order == Descending {
		sort.SliceStable(all, func(i, j int) bool { return all[i].Score > all[j].Score })
	} else {
		sort.SliceStable(all, func(i, j int) bool { return all[i].Score < all[j].Score })
	}
	return all
}

func dedupe(results []Result) []Result {
	best := map[string]int{}
	out := make([]Result, 0, len(results))
	for _, r := range results {
		idx, ok := best[r.Word]
		if !ok {
			best[r.Word] = len(out)
			out = append(out, r)
			continue
		}
		if r.Score > out[idx].Score {
			out[idx] = r
		}
	}
	return out
}

// Summary describes a result list.
type Summary struct {
	Count    int
	Distinct int
	Total    uint64
	Max      uint64
	Mean     float64
	StdDev   float64
}

// Summarize computes count and score statistics over results.
func Summarize(results []Result) Summary {
	if len(results) == 0 {
		return Summary{}
	}
	s := Summary{
		Count:    len(results),
		Distinct: len(lo.Uniq(lo.Map(results, func(r Result, _ int) string { return r.Word }))),
	}
	for _, r := range results {
		if s.Total > math.MaxUint64-r.Score {
			s.Total = math.MaxUint64
		} else {
			s.Total += r.Score
		}
		s.Max = max(s.Max, r.Score)
	}
	scores := scoresOf(results)
	if len(scores) > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(scores, nil)
	} else {
		s.Mean = scores[0]
	}
	return s
}

func scoresOf(results []Result) []float64 {
	return lo.Map(results, func(r Result, _ int) float64 { return float64(r.Score) })
}

// FprintHistogram writes a histogram of the result scores to w.
func FprintHistogram(w io.Writer, results []Result, bins, width int) error {
	if len(results) == 0 {
		_, err := io.WriteString(w, "no results\n")
		return err
	}
	hist := histogram.Hist(bins, scoresOf(results))
	return histogram.Fprint(w, hist, histogram.Linear(width))
}
