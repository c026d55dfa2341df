package translate

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/go-pkgz/lgr"
	gocache "github.com/patrickmn/go-cache"

	"newsmap/pkg/domain"
)

// minTextLen is the shortest text worth translating; shorter tokens come
// back unchanged without touching the cache or the network
const minTextLen = 2

// Cache memoizes translations by (target language, text). Entries live for
// the process lifetime unless a TTL is configured. Lookups that miss call
// the wrapped translator; failures fail open and return the original text,
// so a broken translation service never drops an item.
type Cache struct {
	store      *gocache.Cache
	translator Translator
}

// NewCache creates a translation cache over the given translator. A zero
// ttl means entries never expire.
func NewCache(translator Translator, ttl time.Duration) *Cache {
	expiration := gocache.NoExpiration
	cleanup := time.Duration(0)
	if ttl > 0 {
		expiration = ttl
		cleanup = ttl
	}
	return &Cache{
		store:      gocache.New(expiration, cleanup),
		translator: translator,
	}
}

// Translate returns the translation of text into the target language,
// served from cache when possible. It never fails: on any translator error
// the original text is returned.
func (c *Cache) Translate(ctx context.Context, text string, target domain.Lang) string {
	if utf8.RuneCountInString(text) < minTextLen {
		return text
	}

	key := fmt.Sprintf("%s:%s", target, text)
	if cached, found := c.store.Get(key); found {
		return cached.(string)
	}

	translated, err := c.translator.Translate(ctx, text, target)
	if err != nil {
		lgr.Printf("[WARN] translation failed, using original text: %v", err)
		return text
	}

	c.store.Set(key, translated, gocache.DefaultExpiration)
	return translated
}

// Len returns the number of cached translations
func (c *Cache) Len() int {
	return c.store.ItemCount()
}
