package cache

import (
	"context"
	"errors"
	"time"

	"github.com/chooselife/strongfoundations/services/auth-service/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	refreshTTL = 7 * 24 * time.Hour
	resetTTL   = 15 * time.Minute
)

// TokenCache keeps the server-side half of refresh and password-reset tokens.
// A token missing from the cache is treated as revoked.
type TokenCache struct {
	client *redis.Client
}

func NewTokenCache(client *redis.Client) *TokenCache {
	return &TokenCache{client: client}
}

func (c *TokenCache) SaveRefresh(ctx context.Context, userID string, refreshToken string) error {
	return c.client.Set(ctx, "refresh_token:"+refreshToken, userID, refreshTTL).Err()
}

func (c *TokenCache) CheckRefresh(ctx context.Context, refreshToken string) (string, error) {
	return c.get(ctx, "refresh_token:"+refreshToken)
}

func (c *TokenCache) DeleteRefresh(ctx context.Context, refreshToken string) error {
	return c.client.Del(ctx, "refresh_token:"+refreshToken).Err()
}

func (c *TokenCache) SaveResetToken(ctx context.Context, token string, userID string) error {
	return c.client.Set(ctx, "reset_token:"+token, userID, resetTTL).Err()
}

// TakeResetToken returns the user a reset token belongs to and deletes it so
// the token works once.
func (c *TokenCache) TakeResetToken(ctx context.Context, token string) (string, error) {
	val, err := c.client.GetDel(ctx, "reset_token:"+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrInvalidToken
	}
	return val, err
}

func (c *TokenCache) get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrInvalidToken
	}
	if err != nil {
		return "", err
	}
	return val, nil
}
