package tilemapping

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestToMachineLetters(t *testing.T) {
	is := is.New(t)
	// QUEST is only 4 tiles despite being 5 characters long.
	mls, err := ToMachineLetters("quest")
	is.NoErr(err)
	is.Equal(mls, []MachineLetter{17, 5, 19, 20})

	mls, err = ToMachineLetters("aqua")
	is.NoErr(err)
	is.Equal(mls, []MachineLetter{1, 17, 1})

	_, err = ToMachineLetters("qat")
	is.True(errors.Is(err, ErrUnknownLetter))

	_, err = ToMachineLetters("café")
	is.True(errors.Is(err, ErrUnknownLetter))
}

func TestUserVisible(t *testing.T) {
	is := is.New(t)
	mw := MachineWord{17, 21, 9, 20}
	is.Equal(mw.UserVisible(), "quuit")
	is.Equal(MachineLetter(0).UserVisible(), "")
	is.Equal(MachineLetter(27).UserVisible(), "")
}

func TestVal(t *testing.T) {
	is := is.New(t)
	ml, err := Val("QU")
	is.NoErr(err)
	is.Equal(ml.UserVisible(), "qu")

	ml, err = Val("E")
	is.NoErr(err)
	is.Equal(ml, MachineLetter(5))

	_, err = Val("q")
	is.True(errors.Is(err, ErrUnknownLetter))
	_, err = Val("")
	is.True(errors.Is(err, ErrUnknownLetter))
	_, err = Val("ab")
	is.True(errors.Is(err, ErrUnknownLetter))
}

func TestLetterValues(t *testing.T) {
	is := is.New(t)
	expected := map[string]uint64{
		"a": 1, "b": 4, "c": 4, "d": 2, "e": 1, "f": 4, "g": 3, "h": 3,
		"i": 1, "j": 10, "k": 5, "l": 2, "m": 4, "n": 2, "o": 1, "p": 4,
		"qu": 10, "r": 1, "s": 1, "t": 1, "u": 2, "v": 5, "w": 4, "x": 10,
		"y": 3, "z": 10,
	}
	is.Equal(len(expected), NumLetters)
	for letter, v := range expected {
		ml, err := Val(letter)
		is.NoErr(err)
		is.Equal(ml.Value(), v)
	}
}
