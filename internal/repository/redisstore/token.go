package redisstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/athletex/gym-api/internal/repository"
)

const keyPrefix = "revoked_token:"

// TokenStore keeps revoked session tokens until their natural expiry.
type TokenStore struct {
	client *redis.Client
}

func NewTokenStore(url string) (*TokenStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &TokenStore{client: client}, nil
}

// key hashes the token so raw credentials never land in Redis
func key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return keyPrefix + hex.EncodeToString(sum[:])
}

func (s *TokenStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if err := s.client.Set(ctx, key(token), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (s *TokenStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	_, err := s.client.Get(ctx, key(token)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check token: %w", err)
	}
	return true, nil
}

func (s *TokenStore) Close() error {
	return s.client.Close()
}

var _ repository.TokenStore = (*TokenStore)(nil)
