package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultPageTTL is used when NewPageStore is given a non-positive TTL
const DefaultPageTTL = time.Hour

// PageStore caches rendered page bodies in Redis
type PageStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageStore creates a page store writing entries with the given TTL
func NewPageStore(client *redis.Client, ttl time.Duration) *PageStore {
	if ttl <= 0 {
		ttl = DefaultPageTTL
	}
	return &PageStore{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached body for key, or nil on a cache miss
func (s *PageStore) Get(ctx context.Context, key string) ([]byte, error) {
	body, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("failed to get cached page: %w", err)
	}
	return body, nil
}

// Put stores a rendered body under key
func (s *PageStore) Put(ctx context.Context, key string, body []byte) error {
	if err := s.client.Set(ctx, key, body, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache page: %w", err)
	}
	return nil
}

// Flush removes every cached page
func (s *PageStore) Flush(ctx context.Context) (int, error) {
	removed := 0
	iter := s.client.Scan(ctx, 0, KeyPrefixPage+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return removed, fmt.Errorf("failed to delete page key: %w", err)
		}
		removed++
	}
	if err := iter.Err(); err != nil {
		return removed, fmt.Errorf("failed to flush pages: %w", err)
	}
	return removed, nil
}

// Ping checks that Redis answers
func (s *PageStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
