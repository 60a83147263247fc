package cache

import (
	"context"
	"testing"
	"time"

	"github.com/chooselife/strongfoundations/services/auth-service/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T) (*TokenCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewTokenCache(client), mr
}

func TestRefreshLifecycle(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.SaveRefresh(ctx, "u1", "tok"))
	got, err := c.CheckRefresh(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "u1", got)

	require.NoError(t, c.DeleteRefresh(ctx, "tok"))
	_, err = c.CheckRefresh(ctx, "tok")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	require.NoError(t, c.SaveRefresh(ctx, "u1", "tok2"))
	mr.FastForward(8 * 24 * time.Hour)
	_, err = c.CheckRefresh(ctx, "tok2")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestResetTokenIsSingleUse(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.SaveResetToken(ctx, "reset", "u1"))
	got, err := c.TakeResetToken(ctx, "reset")
	require.NoError(t, err)
	assert.Equal(t, "u1", got)

	_, err = c.TakeResetToken(ctx, "reset")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
