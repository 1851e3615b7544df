package repository_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/discool/storefront/internal/cache"
	"github.com/discool/storefront/internal/config"
	"github.com/discool/storefront/internal/models"
	repository "github.com/discool/storefront/internal/repositories"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository(t *testing.T) {
	ctx := t.Context()
	ttl := 2 * time.Hour

	newRepo := func(t *testing.T) (repository.SessionRepository, redismock.ClientMock) {
		t.Helper()

		client, mock := redismock.NewClientMock()
		c := cache.NewRedisCache(client, &config.CacheConfig{DefaultTTL: time.Minute})

		return repository.NewSessionRepo(c, ttl), mock
	}

	t.Run("Success - Load Existing Cart", func(t *testing.T) {
		// Arrange
		repo, mock := newRepo(t)

		stored := models.NewSession("s-1")
		require.NoError(t, stored.Cart.Add(models.CartLineItem{ProductID: "7", UnitPrice: decimal.NewFromInt(100), MaxStock: 3}, 2))
		raw, err := json.Marshal(stored)
		require.NoError(t, err)

		mock.ExpectGet("storefront:session:s-1").SetVal(string(raw))

		// Act
		session, found, err := repo.GetSession(ctx, "s-1")

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, 2, session.Cart.Totals().TotalItems)
		assert.Equal(t, models.StepCart, session.Checkout.Step)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Unknown Session", func(t *testing.T) {
		// Arrange
		repo, mock := newRepo(t)
		mock.ExpectGet("storefront:session:gone").SetErr(redis.Nil)

		// Act
		session, found, err := repo.GetSession(ctx, "gone")

		// Assert
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, session)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Save Uses Session TTL", func(t *testing.T) {
		// Arrange
		repo, mock := newRepo(t)
		session := models.NewSession("s-2")

		mock.CustomMatch(func(expected, actual []interface{}) error {
			assert.Equal(t, "set", actual[0])
			assert.Equal(t, "storefront:session:s-2", actual[1])
			payload, ok := actual[2].([]byte)
			require.True(t, ok)
			assert.Contains(t, string(payload), `"id":"s-2"`)
			assert.Equal(t, expected[3:], actual[3:], "ttl arguments")
			return nil
		}).ExpectSet("storefront:session:s-2", []byte("ignored"), ttl).SetVal("OK")

		// Act
		err := repo.SaveSession(ctx, session)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error On Delete", func(t *testing.T) {
		// Arrange
		repo, mock := newRepo(t)
		mock.ExpectDel("storefront:session:s-3").SetErr(errors.New("READONLY"))

		// Act
		err := repo.DeleteSession(ctx, "s-3")

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "deleting session")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
