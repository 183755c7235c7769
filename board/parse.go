package board

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// ErrBadToken is returned for a tile token that does not have the
// <letter>[<n>L][<n>W] shape.
var ErrBadToken = errors.New("malformed tile token")

var tileTokenRegex = regexp.MustCompile(`^([A-Za-z]+)(?:(\d+)[lL])?(?:(\d+)[wW])?$`)

// ParseTile parses a single tile token such as "e", "E3L", "qu", "a2L3W".
func ParseTile(token string) (Tile, error) {
	m := tileTokenRegex.FindStringSubmatch(strings.TrimSpace(token))
	if m == nil {
		return Tile{}, fmt.Errorf("%w: %q", ErrBadToken, token)
	}
	lm, wm := 1, 1
	var err error
	if m[2] != "" {
		if lm, err = strconv.Atoi(m[2]); err != nil {
			return Tile{}, fmt.Errorf("%w: %q", ErrBadToken, token)
		}
	}
	if m[3] != "" {
		if wm, err = strconv.Atoi(m[3]); err != nil {
			return Tile{}, fmt.Errorf("%w: %q", ErrBadToken, token)
		}
	}
	return NewTile(m[1], lm, wm)
}

func splitTokens(row string) []string {
	return strings.FieldsFunc(row, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
}

// Parse reads a board from its text form. Rows are separated by slashes and
// tiles within a row by whitespace or commas:
//
//	o e3L i3L j / r e3W c3L r / d a s a / r i t e
func Parse(s string) (*Board, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyBoard
	}
	rowStrs := strings.Split(s, "/")
	tokens := make([][]string, len(rowStrs))
	for i, r := range rowStrs {
		tokens[i] = splitTokens(r)
	}
	return FromTokens(tokens)
}

// FromTokens builds a board from rows of tile tokens.
func FromTokens(tokens [][]string) (*Board, error) {
	rows := make([][]Tile, len(tokens))
	for r, rowTokens := range tokens {
		rows[r] = make([]Tile, len(rowTokens))
		for c, tok := range rowTokens {
			t, err := ParseTile(tok)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
			rows[r][c] = t
		}
	}
	return New(rows)
}
