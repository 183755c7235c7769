// Package word holds the Word type: a path of adjacent, non-repeating cells
// on one board, which may or may not spell a dictionary word.
package word

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strings"

	"github.com/domino14/wordhunt/board"
	"github.com/domino14/wordhunt/tilemapping"
)

var (
	ErrEmpty       = errors.New("word has no cells")
	ErrTooLong     = errors.New("word is longer than the maximum length")
	ErrOutOfBounds = errors.New("cell is off the board")
	ErrRepeated    = errors.New("cell used more than once")
	ErrNotAdjacent = errors.New("consecutive cells are not adjacent")
)

// Word is an ordered sequence of board locations. Extend does not check
// adjacency or reuse; the caller (normally the search) is responsible for
// only extending into free neighbors. Validate checks everything.
type Word struct {
	board *board.Board
	locs  []board.Location
}

// New starts a word at a single cell.
func New(b *board.Board, start board.Location) *Word {
	return &Word{board: b, locs: []board.Location{start}}
}

// NewWithCapacity starts a word whose backing array can grow to capacity
// cells without reallocating. No word is longer than the board has cells,
// so capacity is clamped to that.
func NewWithCapacity(b *board.Board, start board.Location, capacity int) *Word {
	capacity = min(capacity, b.Dim()*b.Dim())
	locs := make([]board.Location, 1, max(capacity, 1))
	locs[0] = start
	return &Word{board: b, locs: locs}
}

// FromLocations builds a word from a full list of cells. It does not
// validate; call Validate if the cells come from outside the search.
func FromLocations(b *board.Board, locs ...board.Location) *Word {
	cp := make([]board.Location, len(locs))
	copy(cp, locs)
	return &Word{board: b, locs: cp}
}

func (w *Word) Board() *board.Board {
	return w.board
}

// Len is the number of tiles in the word. A QU tile counts once.
func (w *Word) Len() int {
	return len(w.locs)
}

// Last returns the most recently added cell.
func (w *Word) Last() board.Location {
	return w.locs[len(w.locs)-1]
}

// Locations returns the word's cells in order. The returned slice must not
// be modified.
func (w *Word) Locations() []board.Location {
	return w.locs
}

// Extend appends loc to the word.
func (w *Word) Extend(loc board.Location) {
	w.locs = append(w.locs, loc)
}

// Pop removes the last cell and reports whether it did. The start cell is
// never removed: on a single-cell word Pop does nothing and returns false.
func (w *Word) Pop() bool {
	if len(w.locs) < 2 {
		return false
	}
	w.locs = w.locs[:len(w.locs)-1]
	return true
}

// Contains returns true if loc is already part of the word.
func (w *Word) Contains(loc board.Location) bool {
	for _, l := range w.locs {
		if l == loc {
			return true
		}
	}
	return false
}

// Copy returns an independent copy, sized exactly.
func (w *Word) Copy() *Word {
	return FromLocations(w.board, w.locs...)
}

// MachineWord returns the tiles along the word.
func (w *Word) MachineWord() tilemapping.MachineWord {
	mw := make(tilemapping.MachineWord, len(w.locs))
	for i, loc := range w.locs {
		mw[i] = w.board.TileAt(loc).Letter()
	}
	return mw
}

// Text concatenates the letters of every tile, in order.
func (w *Word) Text() string {
	var sb strings.Builder
	sb.Grow(len(w.locs) + 1)
	for _, loc := range w.locs {
		sb.WriteString(w.board.TileAt(loc).Letter().UserVisible())
	}
	return sb.String()
}

// Score is the sum of each tile's letter value times its letter multiplier,
// times the product of every tile's word multiplier. Arithmetic saturates
// at math.MaxUint64 rather than wrapping.
func (w *Word) Score() uint64 {
	var sum uint64
	mult := uint64(1)
	for _, loc := range w.locs {
		t := w.board.TileAt(loc)
		sum = satAdd(sum, satMul(t.LetterValue(), t.LetterMultiplier()))
		mult = satMul(mult, t.WordMultiplier())
	}
	return satMul(sum, mult)
}

func satAdd(a, b uint64) uint64 {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return s
}

func satMul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}

// Validate checks that the word is non-empty, no longer than maxLength
// (ignored if maxLength <= 0), stays on the board, never reuses a cell and
// only ever steps to a neighboring cell.
func (w *Word) Validate(maxLength int) error {
	if len(w.locs) == 0 {
		return ErrEmpty
	}
	if maxLength > 0 && len(w.locs) > maxLength {
		return fmt.Errorf("%w: %d > %d", ErrTooLong, len(w.locs), maxLength)
	}
	seen := make(map[board.Location]bool, len(w.locs))
	for i, loc := range w.locs {
		if !w.board.InBounds(loc) {
			return fmt.Errorf("%w: %v", ErrOutOfBounds, loc)
		}
		if seen[loc] {
			return fmt.Errorf("%w: %v", ErrRepeated, loc)
		}
		seen[loc] = true
		if i > 0 && w.locs[i-1].Chebyshev(loc) != 1 {
			return fmt.Errorf("%w: %v -> %v", ErrNotAdjacent, w.locs[i-1], loc)
		}
	}
	return nil
}

// CoordsString lists the word's cells, e.g. "(2,0)(2,1)(1,0)".
func (w *Word) CoordsString() string {
	var sb strings.Builder
	for _, loc := range w.locs {
		sb.WriteString(loc.String())
	}
	return sb.String()
}

func (w *Word) String() string {
	return fmt.Sprintf("<word: %v %v score: %v>", w.Text(), w.CoordsString(), w.Score())
}
