package board

// This file contains some sample boards, used for testing and as CLI
// defaults.

const (
	// ReferenceBoard is a 4x4 board with triple-letter tiles on the top row
	// and a triple-word E in the second row.
	ReferenceBoard = "o e3L i3L j / r e3W c3L r / d a s a / r i t e"

	// PlainBoard has no bonus tiles at all.
	PlainBoard = "c a t s / o r e d / w i n e / s t u b"

	// QuBoard has the ligature tile in the corner.
	QuBoard = "qu e s t / i t e a / e r a s / t s l y"
)
