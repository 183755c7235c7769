// Package cache holds large objects, such as dictionaries and compiled word
// graphs, that many searches share. Each object is loaded at most once.
package cache

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordhunt/config"
)

type loadFunc func(cfg *config.Config, key string) (interface{}, error)

// entry is one cached object. Its lock is held while the object loads, so
// concurrent callers for the same key wait for a single load, while loads
// of other keys (including ones started by the loader itself) go ahead.
type entry struct {
	sync.Mutex
	obj    interface{}
	loaded bool
}

type objectCache struct {
	sync.Mutex
	entries map[string]*entry
}

var global = &objectCache{entries: map[string]*entry{}}

func (c *objectCache) entry(key string) *entry {
	c.Lock()
	defer c.Unlock()
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	return e
}

func (c *objectCache) get(cfg *config.Config, key string, loadFunc loadFunc) (interface{}, error) {
	e := c.entry(key)
	e.Lock()
	defer e.Unlock()
	if e.loaded {
		log.Debug().Str("key", key).Msg("cache-hit")
		return e.obj, nil
	}
	log.Debug().Str("key", key).Msg("cache-load")
	obj, err := loadFunc(cfg, key)
	if err != nil {
		return nil, err
	}
	e.obj, e.loaded = obj, true
	return obj, nil
}

func (c *objectCache) evict(key string) {
	c.Lock()
	defer c.Unlock()
	delete(c.entries, key)
}

// Load returns the object named by key, calling loadFunc to create it the
// first time. Failed loads are not remembered. loadFunc may itself call
// Load for a different key.
func Load(cfg *config.Config, key string, loadFunc loadFunc) (interface{}, error) {
	return global.get(cfg, key, loadFunc)
}

// Evict drops key from the cache so the next Load reloads it.
func Evict(key string) {
	global.evict(key)
}
