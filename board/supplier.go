package board

import (
	"fmt"
	"os"
)

// A Supplier produces a fully built board, or fails before any search runs.
type Supplier interface {
	Board() (*Board, error)
}

// TextSupplier parses a board in the Parse text form.
type TextSupplier string

func (s TextSupplier) Board() (*Board, error) {
	return Parse(string(s))
}

// YAMLFileSupplier loads a board from a YAML file on disk.
type YAMLFileSupplier string

func (s YAMLFileSupplier) Board() (*Board, error) {
	f, err := os.Open(string(s))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	b, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", string(s), err)
	}
	return b, nil
}

// RandomSupplier rolls a new random board each time it is asked.
type RandomSupplier struct {
	Dim     int
	Options RandomOptions
	Rand    Intn
}

func (s RandomSupplier) Board() (*Board, error) {
	return Random(s.Dim, s.Rand, s.Options)
}
