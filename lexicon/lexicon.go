package lexicon

// Lexicon is anything that can say whether a string is a valid word.
// Words are always in normalized form; see Normalize.
type Lexicon interface {
	Name() string
	HasWord(word string) bool
}

// AcceptAll accepts every string. It is useful for enumerating all paths
// on a board.
type AcceptAll struct{}

func (lex AcceptAll) Name() string {
	return "AcceptAll"
}

func (lex AcceptAll) HasWord(word string) bool {
	return true
}
