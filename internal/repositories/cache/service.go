package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SanmaySarada/CardGeniusMVP/internal/models"

	"github.com/redis/go-redis/v9"
)

// CacheService is a JSON-over-redis cache shared by the wallet and places
// services. Values are serialized as versionless JSON blobs.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// Card-list caching

func cardsKey(userID uint) string {
	return fmt.Sprintf("cards:user:%d", userID)
}

func (s *CacheService) CacheCards(ctx context.Context, userID uint, cards []models.Card) error {
	return s.Set(ctx, cardsKey(userID), cards)
}

func (s *CacheService) GetCards(ctx context.Context, userID uint) ([]models.Card, bool, error) {
	var cards []models.Card
	found, err := s.Get(ctx, cardsKey(userID), &cards)
	if err != nil || !found {
		return nil, false, err
	}
	return cards, true, nil
}

func (s *CacheService) InvalidateCards(ctx context.Context, userID uint) error {
	return s.Delete(ctx, cardsKey(userID))
}

// HealthCheck pings redis.
func (s *CacheService) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

// FlushAll flushes all keys from the cache
func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

// Close closes the Redis client connection
func (s *CacheService) Close() error {
	return s.client.Close()
}
