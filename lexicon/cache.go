package lexicon

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/domino14/wordhunt/cache"
	"github.com/domino14/wordhunt/config"
)

const (
	CacheKeyPrefix = "dictionary:"
	// WordListExtension is the extension of plain word lists in the
	// lexicon path.
	WordListExtension = ".txt"
)

// CacheLoadFunc is the function that loads an object into the global cache.
func CacheLoadFunc(cfg *config.Config, key string) (interface{}, error) {
	lexiconName := strings.TrimPrefix(key, CacheKeyPrefix)
	return LoadFile(filepath.Join(cfg.GetString(config.ConfigLexiconPath),
		lexiconName+WordListExtension))
}

// Get loads a named dictionary from the cache or from a file.
func Get(cfg *config.Config, name string) (*Dictionary, error) {
	key := CacheKeyPrefix + name
	obj, err := cache.Load(cfg, key, CacheLoadFunc)
	if err != nil {
		return nil, err
	}
	ret, ok := obj.(*Dictionary)
	if !ok {
		return nil, errors.New("could not read dictionary from file")
	}
	return ret, nil
}
