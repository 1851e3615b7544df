package cache_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/discool/storefront/internal/cache"
	"github.com/discool/storefront/internal/config"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartSnapshot struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func newTestCache(t *testing.T) (cache.Cache, redismock.ClientMock, *config.CacheConfig) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := &config.CacheConfig{DefaultTTL: 10 * time.Minute}

	return cache.NewRedisCache(client, cfg), mock, cfg
}

func TestRedisCacheGet(t *testing.T) {
	ctx := t.Context()
	key := cache.Key(cache.SessionKeyPrefix, "abc")
	stored := cartSnapshot{ProductID: "7", Quantity: 2}
	raw, err := json.Marshal(stored)
	require.NoError(t, err)

	t.Run("Success - Hit", func(t *testing.T) {
		// Arrange
		c, mock, _ := newTestCache(t)
		mock.ExpectGet(key).SetVal(string(raw))

		// Act
		var got cartSnapshot
		found, err := c.Get(ctx, key, &got)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, stored, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Miss", func(t *testing.T) {
		// Arrange
		c, mock, _ := newTestCache(t)
		mock.ExpectGet(key).SetErr(redis.Nil)

		// Act
		var got cartSnapshot
		found, err := c.Get(ctx, key, &got)

		// Assert
		require.NoError(t, err)
		assert.False(t, found)
		assert.Zero(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Down", func(t *testing.T) {
		// Arrange
		c, mock, _ := newTestCache(t)
		down := errors.New("connection refused")
		mock.ExpectGet(key).SetErr(down)

		// Act
		var got cartSnapshot
		found, err := c.Get(ctx, key, &got)

		// Assert
		require.Error(t, err)
		assert.False(t, found)
		assert.ErrorIs(t, err, down)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Corrupt Payload", func(t *testing.T) {
		// Arrange
		c, mock, _ := newTestCache(t)
		mock.ExpectGet(key).SetVal(`{"product_id":"7","quantity":"two"}`)

		// Act
		var got cartSnapshot
		found, err := c.Get(ctx, key, &got)

		// Assert
		require.Error(t, err)
		assert.False(t, found)

		var typeErr *json.UnmarshalTypeError
		assert.ErrorAs(t, err, &typeErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheSet(t *testing.T) {
	ctx := t.Context()
	key := cache.Key(cache.CategoryKeyPrefix, "all")
	value := []cartSnapshot{{ProductID: "1", Quantity: 1}}
	raw, err := json.Marshal(value)
	require.NoError(t, err)

	t.Run("Success - Explicit TTL", func(t *testing.T) {
		// Arrange
		c, mock, _ := newTestCache(t)
		mock.ExpectSet(key, raw, time.Hour).SetVal("OK")

		// Act
		err := c.Set(ctx, key, value, time.Hour)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Falls Back To Default TTL", func(t *testing.T) {
		// Arrange
		c, mock, cfg := newTestCache(t)
		mock.ExpectSet(key, raw, cfg.DefaultTTL).SetVal("OK")

		// Act
		err := c.Set(ctx, key, value, 0)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Unencodable Value", func(t *testing.T) {
		// Arrange
		c, mock, _ := newTestCache(t)

		// Act
		err := c.Set(ctx, key, make(chan int), time.Minute)

		// Assert
		var unsupported *json.UnsupportedTypeError
		require.ErrorAs(t, err, &unsupported)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		c, mock, _ := newTestCache(t)
		boom := errors.New("OOM command not allowed")
		mock.ExpectSet(key, raw, time.Minute).SetErr(boom)

		// Act
		err := c.Set(ctx, key, value, time.Minute)

		// Assert
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheDeleteAndPing(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Delete", func(t *testing.T) {
		// Arrange
		c, mock, _ := newTestCache(t)
		mock.ExpectDel("storefront:session:abc").SetVal(1)

		// Act
		err := c.Delete(ctx, "storefront:session:abc")

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Ping", func(t *testing.T) {
		// Arrange
		c, mock, _ := newTestCache(t)
		mock.ExpectPing().SetErr(errors.New("i/o timeout"))

		// Act
		err := c.Ping(ctx)

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "redis ping failed")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestKey(t *testing.T) {
	assert.Equal(t, "storefront:session:abc", cache.Key(cache.SessionKeyPrefix, "abc"))
	assert.Equal(t, "storefront:categories:all", cache.Key(cache.CategoryKeyPrefix, "all"))
}
