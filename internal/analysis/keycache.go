package analysis

import (
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/phonetic"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultKeyCacheSize is used when a non-positive size is configured.
const DefaultKeyCacheSize = 4096

// KeyCache memoises the lower-cased phonetic keys of a word. Names repeat
// heavily across documents and queries.
type KeyCache struct {
	encoder *phonetic.Encoder
	cache   *lru.Cache[string, []string]
}

// NewKeyCache wraps encoder with an LRU of the given size.
func NewKeyCache(encoder *phonetic.Encoder, size int) *KeyCache {
	if size <= 0 {
		size = DefaultKeyCacheSize
	}
	cache, _ := lru.New[string, []string](size)
	return &KeyCache{encoder: encoder, cache: cache}
}

// Keys returns the keys of word in the order produced by
// phonetic.Encoder.EncodeMany. The returned slice must not be modified.
func (c *KeyCache) Keys(word string) []string {
	if keys, ok := c.cache.Get(word); ok {
		return keys
	}
	keys := c.encoder.PhoneticKeys(word)
	c.cache.Add(word, keys)
	return keys
}

// Encoder returns the underlying encoder.
func (c *KeyCache) Encoder() *phonetic.Encoder {
	return c.encoder
}

// Len reports the number of cached words.
func (c *KeyCache) Len() int {
	return c.cache.Len()
}
