package assets

import (
	"encoding/base64"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache is a read-through cache of base64-encoded assets. Entries are
// written once per name and never evicted; concurrent first loads of the
// same name collapse into a single Load call.
type Cache struct {
	loader Loader

	group singleflight.Group

	mu      sync.RWMutex
	encoded map[string]string
}

// NewCache builds an empty cache reading through loader.
func NewCache(loader Loader) *Cache {
	return &Cache{
		loader:  loader,
		encoded: make(map[string]string),
	}
}

// Encoded returns the base64 encoding of the named asset, loading it on
// first use. Load failures are not cached, so a later call may retry.
func (c *Cache) Encoded(name string) (string, error) {
	c.mu.RLock()
	enc, ok := c.encoded[name]
	c.mu.RUnlock()
	if ok {
		return enc, nil
	}

	v, err, _ := c.group.Do(name, func() (any, error) {
		c.mu.RLock()
		enc, ok := c.encoded[name]
		c.mu.RUnlock()
		if ok {
			return enc, nil
		}

		raw, err := c.loader.Load(name)
		if err != nil {
			return nil, err
		}

		enc = base64.StdEncoding.EncodeToString(raw)

		c.mu.Lock()
		c.encoded[name] = enc
		c.mu.Unlock()

		return enc, nil
	})
	if err != nil {
		return "", fmt.Errorf("encode asset %s: %w", name, err)
	}

	return v.(string), nil
}
