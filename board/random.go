package board

import (
	"fmt"
	"strings"

	"lukechampine.com/frand"
)

// Intn is the random source used for random boards. *frand.RNG satisfies it.
type Intn interface {
	Intn(n int) int
}

type frandSource struct{}

func (frandSource) Intn(n int) int {
	return frand.Intn(n)
}

// StandardDice are the sixteen dice of a modern 4x4 set. The Q face is the
// QU ligature.
var StandardDice = []string{
	"AAEEGN", "ABBJOO", "ACHOPS", "AFFKPS",
	"AOOTTW", "CIMOTU", "DEILRX", "DELRVY",
	"DISTTY", "EEGHNW", "EEINSU", "EHRTVW",
	"EIOSST", "ELRTTY", "HIMNUQ", "HLNNRZ",
}

// RandomOptions controls bonus tiles on random boards. An odds value of n
// gives every tile a one-in-n chance of that bonus; 0 disables it.
type RandomOptions struct {
	LetterMultiplierOdds int
	WordMultiplierOdds   int
}

// DefaultRandomOptions sprinkles a few bonus tiles, roughly like the mobile
// game does.
var DefaultRandomOptions = RandomOptions{
	LetterMultiplierOdds: 8,
	WordMultiplierOdds:   16,
}

// Random rolls a dim x dim board. Boards larger than 4x4 reuse the standard
// dice. If rng is nil, frand is used.
func Random(dim int, rng Intn, opts RandomOptions) (*Board, error) {
	if dim < 1 {
		return nil, fmt.Errorf("%w: dimension %d", ErrEmptyBoard, dim)
	}
	if rng == nil {
		rng = frandSource{}
	}
	n := dim * dim
	dice := make([]string, n)
	for i := range dice {
		dice[i] = StandardDice[i%len(StandardDice)]
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		dice[i], dice[j] = dice[j], dice[i]
	}
	rows := make([][]Tile, dim)
	for r := range rows {
		rows[r] = make([]Tile, dim)
		for c := range rows[r] {
			die := dice[r*dim+c]
			letter := strings.ToLower(string(die[rng.Intn(len(die))]))
			if letter == "q" {
				letter = "qu"
			}
			lm, wm := 1, 1
			if opts.LetterMultiplierOdds > 0 && rng.Intn(opts.LetterMultiplierOdds) == 0 {
				lm = 2 + rng.Intn(2)
			} else if opts.WordMultiplierOdds > 0 && rng.Intn(opts.WordMultiplierOdds) == 0 {
				wm = 2 + rng.Intn(2)
			}
			t, err := NewTile(letter, lm, wm)
			if err != nil {
				return nil, err
			}
			rows[r][c] = t
		}
	}
	return New(rows)
}
