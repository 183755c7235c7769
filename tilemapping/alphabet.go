package tilemapping

import (
	"errors"
	"fmt"
	"strings"
)

// A "letter" or tile is internally represented by a byte.
// The 0 value is never a real letter; it marks "no letter".
// The letter A is represented by 1, B by 2, ... all the way to 26. There is
// no standalone Q: position 17 holds the QU ligature, which occupies a single
// tile on the grid but prints as two characters.
const (
	// NumLetters is the size of the closed tile alphabet.
	NumLetters = 26
	// Ligature is the only multi-character tile.
	Ligature = "qu"
)

// ErrUnknownLetter is returned for any string that is not one of the
// NumLetters tile letters.
var ErrUnknownLetter = errors.New("not a valid tile letter")

// MachineLetter is a machine-only representation of a tile letter.
type MachineLetter byte

type MachineWord []MachineLetter

var userVisible = [NumLetters + 1]string{
	"",
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", Ligature, "r", "s", "t", "u", "v", "w", "x", "y", "z",
}

// letterValues is the fixed base point table, indexed by MachineLetter.
var letterValues = [NumLetters + 1]uint64{
	0,
	1, 4, 4, 2, 1, 4, 3, 3, 1, 10, 5, 2, 4,
	2, 1, 4, 10, 1, 1, 1, 2, 5, 4, 10, 3, 10,
}

var vals map[string]MachineLetter

func init() {
	vals = make(map[string]MachineLetter, NumLetters)
	for i := 1; i <= NumLetters; i++ {
		vals[userVisible[i]] = MachineLetter(i)
	}
}

// Val returns the machine letter for a single tile letter. Upper-case input
// is accepted.
func Val(letter string) (MachineLetter, error) {
	ml, ok := vals[strings.ToLower(letter)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLetter, letter)
	}
	return ml, nil
}

// IsValid returns true if this is one of the NumLetters tile letters.
func (ml MachineLetter) IsValid() bool {
	return ml >= 1 && ml <= NumLetters
}

// UserVisible turns the machine letter into its printed form. An invalid
// letter prints as the empty string.
func (ml MachineLetter) UserVisible() string {
	if !ml.IsValid() {
		return ""
	}
	return userVisible[ml]
}

// Value returns the base point value of the letter.
func (ml MachineLetter) Value() uint64 {
	if !ml.IsValid() {
		return 0
	}
	return letterValues[ml]
}

func (ml MachineLetter) String() string {
	return ml.UserVisible()
}

// UserVisible turns the passed-in machine word into a user-visible string.
func (mw MachineWord) UserVisible() string {
	var sb strings.Builder
	for _, l := range mw {
		sb.WriteString(l.UserVisible())
	}
	return sb.String()
}

// ToMachineWord converts a lower-case word into tiles. A q must be followed
// by a u; together they become the ligature tile.
func ToMachineWord(word string) (MachineWord, error) {
	mls, err := ToMachineLetters(word)
	if err != nil {
		return nil, err
	}
	return MachineWord(mls), nil
}

// ToMachineLetters creates an array of MachineLetters from the given string.
func ToMachineLetters(word string) ([]MachineLetter, error) {
	letters := make([]MachineLetter, 0, len(word))
	for i := 0; i < len(word); i++ {
		if strings.HasPrefix(word[i:], Ligature) {
			letters = append(letters, vals[Ligature])
			i++
			continue
		}
		ml, ok := vals[word[i:i+1]]
		if !ok {
			return nil, fmt.Errorf("%w: %q in %q", ErrUnknownLetter, word[i:i+1], word)
		}
		letters = append(letters, ml)
	}
	return letters, nil
}
