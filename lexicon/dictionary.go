package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// ErrNoWords is returned by Load if the source held no words at all.
var ErrNoWords = errors.New("word list is empty")

// Dictionary is an immutable set of normalized words.
type Dictionary struct {
	name  string
	words map[string]struct{}
}

type normalizer struct {
	lower cases.Caser
}

func newNormalizer() *normalizer {
	return &normalizer{lower: cases.Lower(language.Und)}
}

func (n *normalizer) normalize(s string) string {
	return norm.NFC.String(n.lower.String(strings.TrimSpace(s)))
}

// Normalize puts a word into the form that dictionaries store and that
// word texts are produced in: trimmed, lower-case, NFC.
func Normalize(s string) string {
	return newNormalizer().normalize(s)
}

// New makes a dictionary from the given words. Words are normalized and
// duplicates and blanks dropped.
func New(name string, words ...string) *Dictionary {
	n := newNormalizer()
	d := &Dictionary{name: name, words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if w = n.normalize(w); w != "" {
			d.words[w] = struct{}{}
		}
	}
	return d
}

// Load reads a word list, one word per line. Only the first
// whitespace-separated field of each line is used, so annotated lists work
// as well. Lines that are not valid UTF-8 are decoded as ISO-8859-1.
func Load(r io.Reader, name string) (*Dictionary, error) {
	n := newNormalizer()
	d := &Dictionary{name: name, words: make(map[string]struct{})}
	decoder := charmap.ISO8859_1.NewDecoder()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if !utf8.Valid(line) {
			decoded, err := decoder.Bytes(line)
			if err != nil {
				return nil, fmt.Errorf("decoding line in %s: %w", name, err)
			}
			line = decoded
		}
		fields := strings.Fields(string(line))
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		d.words[n.normalize(fields[0])] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if len(d.words) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoWords, name)
	}
	log.Debug().Str("lexicon", name).Int("num-words", len(d.words)).Msg("loaded-dictionary")
	return d, nil
}

// LoadFile loads a word list from disk. The dictionary is named after the
// file, without its extension.
func LoadFile(filename string) (*Dictionary, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return Load(f, name)
}

func (d *Dictionary) Name() string {
	return d.name
}

// HasWord is an exact membership test; word must already be normalized.
func (d *Dictionary) HasWord(word string) bool {
	_, ok := d.words[word]
	return ok
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Words returns every word, sorted.
func (d *Dictionary) Words() []string {
	ws := make([]string, 0, len(d.words))
	for w := range d.words {
		ws = append(ws, w)
	}
	sort.Strings(ws)
	return ws
}
