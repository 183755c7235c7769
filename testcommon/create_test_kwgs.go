package testcommon

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/domino14/wordhunt/config"
	"github.com/domino14/wordhunt/kwg"
	"github.com/domino14/wordhunt/lexicon"
)

// WriteWordList writes words, one per line, to <lexicon-path>/<name>.txt.
func WriteWordList(cfg *config.Config, name string, words []string) error {
	f, err := os.Create(filepath.Join(cfg.GetString(config.ConfigLexiconPath), name+lexicon.WordListExtension))
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, word := range words {
		if _, err := w.WriteString(word + "\n"); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// CreateKWGs compiles every named word list in the lexicon path into a
// .kwg file next to it, unless the .kwg already exists.
func CreateKWGs(cfg *config.Config, lexica []string) error {
	for _, lex := range lexica {
		base := filepath.Join(cfg.GetString(config.ConfigLexiconPath), lex)
		if _, err := os.Stat(base + kwg.Extension); !os.IsNotExist(err) {
			continue
		}
		dict, err := lexicon.LoadFile(base + lexicon.WordListExtension)
		if err != nil {
			return err
		}
		k, err := kwg.FromDictionary(dict)
		if err != nil {
			return err
		}
		f, err := os.Create(base + kwg.Extension)
		if err != nil {
			return err
		}
		if err := k.Write(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}
