package storage

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/yourusername/career-advisor/internal/domain/repository"
)

// memorySuggestionCache jarayon ichidagi LRU; lru.Cache o'zi thread-safe
type memorySuggestionCache struct {
	items *lru.Cache[string, string]
}

// NewMemorySuggestionCache capacity ta elementgacha saqlaydigan LRU kesh.
// capacity < 1 bo'lsa 1 deb olinadi.
func NewMemorySuggestionCache(capacity int) (repository.SuggestionCache, error) {
	if capacity < 1 {
		capacity = 1
	}
	items, err := lru.New[string, string](capacity)
	if err != nil {
		return nil, err
	}
	return &memorySuggestionCache{items: items}, nil
}

func (c *memorySuggestionCache) Get(ctx context.Context, key string) (string, bool, error) {
	markup, ok := c.items.Get(key)
	return markup, ok, nil
}

func (c *memorySuggestionCache) Set(ctx context.Context, key, markup string) error {
	c.items.Add(key, markup)
	return nil
}

func (c *memorySuggestionCache) Len(ctx context.Context) (int, error) {
	return c.items.Len(), nil
}

func (c *memorySuggestionCache) Clear(ctx context.Context) error {
	c.items.Purge()
	return nil
}
