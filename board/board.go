package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domino14/wordhunt/tilemapping"
)

var (
	ErrEmptyBoard = errors.New("board has no rows")
	ErrNotSquare  = errors.New("board is not square")
)

// A Location is a (row, column) coordinate on the board.
type Location struct {
	Row int
	Col int
}

func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.Row, l.Col)
}

// Chebyshev returns the king-move distance between two locations.
func (l Location) Chebyshev(o Location) int {
	return max(abs(l.Row-o.Row), abs(l.Col-o.Col))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// neighborOffsets are the eight king moves.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is a square grid of tiles. A Board is never modified after New
// returns it, so it can be shared freely between goroutines.
type Board struct {
	dim   int
	tiles []Tile
	// adjacent[row*dim+col] holds the in-bounds neighbors of that cell.
	adjacent [][]Location
}

// New builds a board from rows of tiles. Every row must have as many tiles
// as there are rows, and every tile must be a valid one.
func New(rows [][]Tile) (*Board, error) {
	dim := len(rows)
	if dim == 0 {
		return nil, ErrEmptyBoard
	}
	b := &Board{
		dim:   dim,
		tiles: make([]Tile, 0, dim*dim),
	}
	for r, row := range rows {
		if len(row) != dim {
			return nil, fmt.Errorf("%w: row %d has %d tiles, expected %d",
				ErrNotSquare, r, len(row), dim)
		}
		for c, t := range row {
			if !t.letter.IsValid() {
				return nil, fmt.Errorf("%w: at %v", tilemapping.ErrUnknownLetter,
					Location{r, c})
			}
			if !t.valid() {
				return nil, fmt.Errorf("%w: at %v", ErrBadMultiplier, Location{r, c})
			}
			b.tiles = append(b.tiles, t)
		}
	}
	b.adjacent = make([][]Location, dim*dim)
	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			b.adjacent[r*dim+c] = b.computeAdjacent(Location{r, c})
		}
	}
	return b, nil
}

func (b *Board) computeAdjacent(loc Location) []Location {
	adj := make([]Location, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		n := Location{loc.Row + off[0], loc.Col + off[1]}
		if b.InBounds(n) {
			adj = append(adj, n)
		}
	}
	return adj
}

// Dim returns the side length of the board.
func (b *Board) Dim() int {
	return b.dim
}

// InBounds returns true if loc is on the board.
func (b *Board) InBounds(loc Location) bool {
	return loc.Row >= 0 && loc.Row < b.dim && loc.Col >= 0 && loc.Col < b.dim
}

// TileAt returns the tile at loc. loc must be in bounds.
func (b *Board) TileAt(loc Location) Tile {
	return b.tiles[loc.Row*b.dim+loc.Col]
}

// Adjacent returns every location within one king move of loc, excluding
// loc itself. The returned slice is shared; callers must not modify it.
func (b *Board) Adjacent(loc Location) []Location {
	return b.adjacent[loc.Row*b.dim+loc.Col]
}

// Locations returns all locations of the board in row-major order.
func (b *Board) Locations() []Location {
	locs := make([]Location, 0, b.dim*b.dim)
	for r := 0; r < b.dim; r++ {
		for c := 0; c < b.dim; c++ {
			locs = append(locs, Location{r, c})
		}
	}
	return locs
}

// Rows returns the board's tokens, one slice per row.
func (b *Board) Rows() [][]string {
	rows := make([][]string, b.dim)
	for r := 0; r < b.dim; r++ {
		rows[r] = make([]string, b.dim)
		for c := 0; c < b.dim; c++ {
			rows[r][c] = b.TileAt(Location{r, c}).String()
		}
	}
	return rows
}

// String returns the board in the format that Parse reads.
func (b *Board) String() string {
	rows := b.Rows()
	strs := make([]string, len(rows))
	for i, r := range rows {
		strs[i] = strings.Join(r, " ")
	}
	return strings.Join(strs, " / ")
}

// ToDisplayText renders the board as a grid, with multipliers shown next to
// each letter.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for c := 0; c < b.dim; c++ {
		fmt.Fprintf(&sb, "%-6d", c)
	}
	sb.WriteString("\n   " + strings.Repeat("-", b.dim*6) + "\n")
	for r := 0; r < b.dim; r++ {
		fmt.Fprintf(&sb, "%2d|", r)
		for c := 0; c < b.dim; c++ {
			fmt.Fprintf(&sb, "%-6s", b.TileAt(Location{r, c}).String())
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("   " + strings.Repeat("-", b.dim*6) + "\n")
	return sb.String()
}
