package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/domino14/wordhunt/tilemapping"
)

// ErrBadMultiplier is returned when a tile multiplier is not a positive integer.
var ErrBadMultiplier = errors.New("multiplier must be a positive integer")

// A Tile is a single cell of the grid: a letter plus its bonus markings.
// Tiles are immutable once made.
type Tile struct {
	letter           tilemapping.MachineLetter
	letterMultiplier uint64
	wordMultiplier   uint64
}

// NewTile makes a tile. letterMult and wordMult must be at least 1; use 1 for
// a tile without that bonus.
func NewTile(letter string, letterMult, wordMult int) (Tile, error) {
	ml, err := tilemapping.Val(letter)
	if err != nil {
		return Tile{}, err
	}
	if letterMult < 1 || wordMult < 1 {
		return Tile{}, fmt.Errorf("%w: tile %s has %dL %dW", ErrBadMultiplier,
			ml.UserVisible(), letterMult, wordMult)
	}
	return Tile{
		letter:           ml,
		letterMultiplier: uint64(letterMult),
		wordMultiplier:   uint64(wordMult),
	}, nil
}

// MustTile is like NewTile but panics on error. Useful for fixed test boards.
func MustTile(letter string, letterMult, wordMult int) Tile {
	t, err := NewTile(letter, letterMult, wordMult)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Tile) Letter() tilemapping.MachineLetter {
	return t.letter
}

// LetterValue is the base value of the letter, without any multiplier.
func (t Tile) LetterValue() uint64 {
	return t.letter.Value()
}

func (t Tile) LetterMultiplier() uint64 {
	return t.letterMultiplier
}

func (t Tile) WordMultiplier() uint64 {
	return t.wordMultiplier
}

func (t Tile) valid() bool {
	return t.letter.IsValid() && t.letterMultiplier >= 1 && t.wordMultiplier >= 1
}

// String returns the tile in the same token form that ParseTile reads,
// e.g. "e", "e3L", "qu2W".
func (t Tile) String() string {
	var sb strings.Builder
	sb.WriteString(t.letter.UserVisible())
	if t.letterMultiplier > 1 {
		sb.WriteString(strconv.FormatUint(t.letterMultiplier, 10))
		sb.WriteByte('L')
	}
	if t.wordMultiplier > 1 {
		sb.WriteString(strconv.FormatUint(t.wordMultiplier, 10))
		sb.WriteByte('W')
	}
	return sb.String()
}
