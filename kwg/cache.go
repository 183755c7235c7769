package kwg

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordhunt/cache"
	"github.com/domino14/wordhunt/config"
	"github.com/domino14/wordhunt/lexicon"
)

const (
	CacheKeyPrefix = "kwg:"
	Extension      = ".kwg"
)

// CacheLoadFunc is the function that loads an object into the global cache.
// A compiled .kwg file is preferred; without one, the graph is built from
// the plain word list of the same name.
func CacheLoadFunc(cfg *config.Config, key string) (interface{}, error) {
	lexiconName := strings.TrimPrefix(key, CacheKeyPrefix)
	k, err := LoadKWG(filepath.Join(cfg.GetString(config.ConfigLexiconPath), lexiconName+Extension))
	if err == nil {
		return k, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	log.Debug().Str("lexicon", lexiconName).Msg("no-kwg-file-building-from-word-list")
	dict, err := lexicon.Get(cfg, lexiconName)
	if err != nil {
		return nil, err
	}
	return FromDictionary(dict)
}

// LoadKWG reads a compiled graph from disk. The lexicon is named after the
// file.
func LoadKWG(filename string) (*KWG, error) {
	log.Debug().Msgf("Loading %v ...", filename)
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	lexname, found := strings.CutSuffix(filepath.Base(filename), Extension)
	if !found {
		return nil, errors.New("filename not in correct format")
	}
	k, err := ScanKWG(file)
	if err != nil {
		return nil, err
	}
	k.lexiconName = lexname
	return k, nil
}

// FromDictionary builds a graph holding every word of dict.
func FromDictionary(dict *lexicon.Dictionary) (*KWG, error) {
	k, _, err := Build(dict.Name(), dict.Words())
	return k, err
}

// Get loads a named KWG from the cache, a file, or a word list.
func Get(cfg *config.Config, name string) (*KWG, error) {
	key := CacheKeyPrefix + name
	obj, err := cache.Load(cfg, key, CacheLoadFunc)
	if err != nil {
		return nil, err
	}
	ret, ok := obj.(*KWG)
	if !ok {
		return nil, errors.New("could not read kwg from file")
	}
	return ret, nil
}
