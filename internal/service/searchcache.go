package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// maxRecentSearches caps the per-user recipe search history.
const maxRecentSearches = 5

// RecentSearchCache remembers a user's recent free-text recipe searches,
// most-recent first, deduplicated, capped at maxRecentSearches. Unlike a
// session it survives logout; it is the durable counterpart of the session
// record.
type RecentSearchCache interface {
	Add(ctx context.Context, userID, query string) error
	List(ctx context.Context, userID string) ([]string, error)
}

func searchKey(userID string) string {
	return fmt.Sprintf("recipe:searches:%s", userID)
}

// RedisSearchCache keeps the history in a redis list.
type RedisSearchCache struct {
	client *redis.Client
}

func NewRedisSearchCache(client *redis.Client) *RedisSearchCache {
	return &RedisSearchCache{client: client}
}

func (c *RedisSearchCache) Add(ctx context.Context, userID, query string) error {
	key := searchKey(userID)
	pipe := c.client.Pipeline()
	pipe.LRem(ctx, key, 0, query)
	pipe.LPush(ctx, key, query)
	pipe.LTrim(ctx, key, 0, maxRecentSearches-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record recent search: %w", err)
	}
	return nil
}

func (c *RedisSearchCache) List(ctx context.Context, userID string) ([]string, error) {
	entries, err := c.client.LRange(ctx, searchKey(userID), 0, maxRecentSearches-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list recent searches: %w", err)
	}
	return entries, nil
}

// MemorySearchCache is a process-local RecentSearchCache.
type MemorySearchCache struct {
	mu       sync.Mutex
	searches map[string][]string
}

func NewMemorySearchCache() *MemorySearchCache {
	return &MemorySearchCache{searches: make(map[string][]string)}
}

func (c *MemorySearchCache) Add(_ context.Context, userID, query string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	updated := []string{query}
	for _, s := range c.searches[userID] {
		if s != query {
			updated = append(updated, s)
		}
	}
	if len(updated) > maxRecentSearches {
		updated = updated[:maxRecentSearches]
	}
	c.searches[userID] = updated
	return nil
}

func (c *MemorySearchCache) List(_ context.Context, userID string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.searches[userID]...), nil
}
