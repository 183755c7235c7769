package board

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// boardDoc is the YAML form of a board:
//
//	rows:
//	  - [o, e3L, i3L, j]
//	  - [r, e3W, c3L, r]
//	  - [d, a, s, a]
//	  - [r, i, t, e]
type boardDoc struct {
	Rows [][]string `yaml:"rows"`
}

// LoadYAML reads a single YAML board document.
func LoadYAML(r io.Reader) (*Board, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc boardDoc
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyBoard
		}
		return nil, fmt.Errorf("decoding board yaml: %w", err)
	}
	return FromTokens(doc.Rows)
}

// MarshalYAML implements yaml.Marshaler.
func (b *Board) MarshalYAML() (interface{}, error) {
	return boardDoc{Rows: b.Rows()}, nil
}
