package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-treasury-ledger/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestBalanceCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewBalanceCacheRepository(rdb, 2*time.Second)

	balance := models.AccountBalance{
		AccountID: "ACC-001-USD",
		Balance:   decimal.RequireFromString("1000.50"),
		Currency:  "USD",
		Status:    models.StatusActive,
	}

	t.Run("Set and Get balance", func(t *testing.T) {
		err := repo.Set(ctx, balance.AccountID, balance)
		assert.NoError(t, err)

		got, err := repo.Get(ctx, balance.AccountID)
		assert.NoError(t, err)
		assert.Equal(t, balance.AccountID, got.AccountID)
		assert.Equal(t, balance.Currency, got.Currency)
		assert.Equal(t, balance.Status, got.Status)
		assert.True(t, got.Balance.Equal(balance.Balance))
	})

	t.Run("Get missing key returns error", func(t *testing.T) {
		_, err := repo.Get(ctx, "ACC-404")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "balance not found in cache")
	})

	t.Run("Invalidate drops the cached balance", func(t *testing.T) {
		err := repo.Set(ctx, balance.AccountID, balance)
		assert.NoError(t, err)

		err = repo.Invalidate(ctx, balance.AccountID)
		assert.NoError(t, err)

		_, err = repo.Get(ctx, balance.AccountID)
		assert.Error(t, err)
	})

	t.Run("Invalidate on missing key is a no-op", func(t *testing.T) {
		err := repo.Invalidate(ctx, "ACC-404")
		assert.NoError(t, err)
	})

	t.Run("Cached balance expires", func(t *testing.T) {
		err := repo.Set(ctx, "ACC-002-USD", balance)
		assert.NoError(t, err)

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		_, err = repo.Get(ctx, "ACC-002-USD")
		assert.Error(t, err)
	})
}
