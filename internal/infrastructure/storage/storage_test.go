package storage

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/career-advisor/internal/domain/entity"
	"github.com/yourusername/career-advisor/internal/domain/repository"
)

func newSuggestionCache(t *testing.T, capacity int) repository.SuggestionCache {
	t.Helper()
	c, err := NewMemorySuggestionCache(capacity)
	require.NoError(t, err)
	return c
}

func TestMemorySuggestionCache_EvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	c := newSuggestionCache(t, 2)

	require.NoError(t, c.Set(ctx, "a", "A"))
	require.NoError(t, c.Set(ctx, "b", "B"))

	// "a" ni ishlatamiz, endi "b" eng eski
	_, ok, _ := c.Get(ctx, "a")
	require.True(t, ok)
	require.NoError(t, c.Set(ctx, "c", "C"))

	_, ok, _ = c.Get(ctx, "b")
	assert.False(t, ok)
	v, ok, _ := c.Get(ctx, "a")
	assert.True(t, ok)
	assert.Equal(t, "A", v)
	n, _ := c.Len(ctx)
	assert.Equal(t, 2, n)
}

func TestMemorySuggestionCache_BoundHolds(t *testing.T) {
	ctx := context.Background()
	c := newSuggestionCache(t, 100)
	for i := 0; i < 250; i++ {
		require.NoError(t, c.Set(ctx, fmt.Sprintf("k%d", i), "v"))
	}
	n, _ := c.Len(ctx)
	assert.Equal(t, 100, n)

	_, ok, _ := c.Get(ctx, "k149")
	assert.False(t, ok)
	_, ok, _ = c.Get(ctx, "k150")
	assert.True(t, ok)
}

func TestMemorySuggestionCache_OverwriteAndClear(t *testing.T) {
	ctx := context.Background()
	c := newSuggestionCache(t, 3)
	require.NoError(t, c.Set(ctx, "a", "1"))
	require.NoError(t, c.Set(ctx, "a", "2"))

	v, _, _ := c.Get(ctx, "a")
	assert.Equal(t, "2", v)
	n, _ := c.Len(ctx)
	assert.Equal(t, 1, n)

	require.NoError(t, c.Clear(ctx))
	n, _ = c.Len(ctx)
	assert.Zero(t, n)
}

func TestMemorySuggestionCache_Concurrent(t *testing.T) {
	ctx := context.Background()
	c := newSuggestionCache(t, 10)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%5)
			_ = c.Set(ctx, key, "v")
			_, _, _ = c.Get(ctx, key)
		}(i)
	}
	wg.Wait()
	n, _ := c.Len(ctx)
	assert.Equal(t, 5, n)
}

func TestMemorySuggestionCache_NonPositiveCapacityKeepsOne(t *testing.T) {
	ctx := context.Background()
	c := newSuggestionCache(t, 0)
	require.NoError(t, c.Set(ctx, "a", "A"))
	require.NoError(t, c.Set(ctx, "b", "B"))

	n, _ := c.Len(ctx)
	assert.Equal(t, 1, n)
	v, ok, _ := c.Get(ctx, "b")
	assert.True(t, ok)
	assert.Equal(t, "B", v)
}

func TestMemorySuggestionCache_GetRefreshesRecencyAcrossOverwrite(t *testing.T) {
	ctx := context.Background()
	c := newSuggestionCache(t, 2)
	require.NoError(t, c.Set(ctx, "a", "1"))
	require.NoError(t, c.Set(ctx, "b", "1"))
	// qayta yozish ham "a" ni yangi qiladi
	require.NoError(t, c.Set(ctx, "a", "2"))
	require.NoError(t, c.Set(ctx, "c", "1"))

	_, ok, _ := c.Get(ctx, "b")
	assert.False(t, ok)
	v, ok, _ := c.Get(ctx, "a")
	assert.True(t, ok)
	assert.Equal(t, "2", v)
}

func TestMemoryTranscript_RecentNewestFirstAndBounded(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryTranscriptRepository(3)
	for i := 1; i <= 5; i++ {
		require.NoError(t, r.Append(ctx, entity.Turn{ID: fmt.Sprintf("t%d", i)}))
	}

	n, _ := r.Len(ctx)
	assert.Equal(t, 3, n)

	turns, err := r.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, "t5", turns[0].ID)
	assert.Equal(t, "t4", turns[1].ID)

	all, _ := r.Recent(ctx, 0)
	assert.Len(t, all, 3)
	assert.Equal(t, "t3", all[2].ID)

	require.NoError(t, r.Clear(ctx))
	all, _ = r.Recent(ctx, 0)
	assert.Empty(t, all)
}
