package board

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"lukechampine.com/frand"

	"github.com/domino14/wordhunt/tilemapping"
)

func TestParseReferenceBoard(t *testing.T) {
	is := is.New(t)
	b, err := Parse(ReferenceBoard)
	is.NoErr(err)
	is.Equal(b.Dim(), 4)

	e := b.TileAt(Location{0, 1})
	is.Equal(e.Letter().UserVisible(), "e")
	is.Equal(e.LetterMultiplier(), uint64(3))
	is.Equal(e.WordMultiplier(), uint64(1))

	ew := b.TileAt(Location{1, 1})
	is.Equal(ew.LetterMultiplier(), uint64(1))
	is.Equal(ew.WordMultiplier(), uint64(3))

	j := b.TileAt(Location{0, 3})
	is.Equal(j.LetterValue(), uint64(10))

	is.Equal(b.String(), ReferenceBoard)
}

func TestParseRoundTrip(t *testing.T) {
	is := is.New(t)
	for _, s := range []string{ReferenceBoard, PlainBoard, QuBoard, "a2L3W"} {
		b, err := Parse(s)
		is.NoErr(err)
		b2, err := Parse(b.String())
		is.NoErr(err)
		is.Equal(b.String(), b2.String())
	}
}

func TestParseSeparators(t *testing.T) {
	is := is.New(t)
	b, err := Parse("A,B\n/ QU,d2w")
	is.NoErr(err)
	is.Equal(b.String(), "a b / qu d2W")
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		board string
		err   error
	}{
		{"empty", "   ", ErrEmptyBoard},
		{"not square", "a b / c", ErrNotSquare},
		{"too many rows", "a / b", ErrNotSquare},
		{"bare q", "q a / b c", tilemapping.ErrUnknownLetter},
		{"two letters", "ab c / d e", tilemapping.ErrUnknownLetter},
		{"zero multiplier", "a0L b / c d", ErrBadMultiplier},
		{"bad token", "a3X b / c d", ErrBadToken},
		{"digits only", "3 b / c d", ErrBadToken},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.board)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.err), "got %v", err)
		})
	}
}

func TestNewRejectsZeroTile(t *testing.T) {
	is := is.New(t)
	_, err := New([][]Tile{{{}}})
	is.True(errors.Is(err, tilemapping.ErrUnknownLetter))
}

func TestAdjacentCounts(t *testing.T) {
	b, err := Parse(PlainBoard)
	require.NoError(t, err)

	assert.Len(t, b.Adjacent(Location{0, 0}), 3)
	assert.Len(t, b.Adjacent(Location{3, 3}), 3)
	assert.Len(t, b.Adjacent(Location{0, 2}), 5)
	assert.Len(t, b.Adjacent(Location{2, 0}), 5)
	assert.Len(t, b.Adjacent(Location{1, 1}), 8)
	assert.Len(t, b.Adjacent(Location{2, 2}), 8)

	for _, loc := range b.Locations() {
		for _, n := range b.Adjacent(loc) {
			assert.True(t, b.InBounds(n))
			assert.Equal(t, 1, loc.Chebyshev(n), "%v -> %v", loc, n)
		}
	}
	assert.ElementsMatch(t, []Location{{0, 1}, {1, 0}, {1, 1}}, b.Adjacent(Location{0, 0}))
}

func TestSingleCellBoard(t *testing.T) {
	is := is.New(t)
	b, err := Parse("a")
	is.NoErr(err)
	is.Equal(b.Dim(), 1)
	is.Equal(len(b.Adjacent(Location{0, 0})), 0)
}

func TestLoadYAML(t *testing.T) {
	is := is.New(t)
	doc := `
rows:
  - [o, e3L, i3L, j]
  - [r, e3W, c3L, r]
  - [d, a, s, a]
  - [r, i, t, e]
`
	b, err := LoadYAML(strings.NewReader(doc))
	is.NoErr(err)
	is.Equal(b.String(), ReferenceBoard)

	out, err := yaml.Marshal(b)
	is.NoErr(err)
	b2, err := LoadYAML(bytes.NewReader(out))
	is.NoErr(err)
	is.Equal(b2.String(), ReferenceBoard)

	_, err = LoadYAML(strings.NewReader("columns: []\n"))
	is.True(err != nil)

	_, err = LoadYAML(strings.NewReader(""))
	is.True(errors.Is(err, ErrEmptyBoard))
}

func TestRandomBoard(t *testing.T) {
	is := is.New(t)
	rng := frand.NewCustom(make([]byte, 32), 1024, 12)
	for _, dim := range []int{1, 4, 5} {
		b, err := Random(dim, rng, DefaultRandomOptions)
		is.NoErr(err)
		is.Equal(b.Dim(), dim)
		// Every random board must survive a round trip through its text form.
		b2, err := Parse(b.String())
		is.NoErr(err)
		is.Equal(b.String(), b2.String())
	}

	_, err := Random(0, rng, DefaultRandomOptions)
	is.True(errors.Is(err, ErrEmptyBoard))
}

func TestRandomBoardIsSeeded(t *testing.T) {
	is := is.New(t)
	seed := make([]byte, 32)
	seed[0] = 7
	b1, err := Random(4, frand.NewCustom(seed, 1024, 12), RandomOptions{})
	is.NoErr(err)
	b2, err := Random(4, frand.NewCustom(seed, 1024, 12), RandomOptions{})
	is.NoErr(err)
	is.Equal(b1.String(), b2.String())
	for _, loc := range b1.Locations() {
		is.Equal(b1.TileAt(loc).LetterMultiplier(), uint64(1))
		is.Equal(b1.TileAt(loc).WordMultiplier(), uint64(1))
	}
}

func TestSuppliers(t *testing.T) {
	is := is.New(t)
	var s Supplier = TextSupplier(ReferenceBoard)
	b, err := s.Board()
	is.NoErr(err)
	is.Equal(b.Dim(), 4)

	s = RandomSupplier{Dim: 3}
	b, err = s.Board()
	is.NoErr(err)
	is.Equal(b.Dim(), 3)

	s = YAMLFileSupplier("/nonexistent/board.yaml")
	_, err = s.Board()
	is.True(err != nil)
}
