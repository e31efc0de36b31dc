package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-treasury-ledger/internal/logger"
	"github.com/sbilibin2017/gw-treasury-ledger/internal/models"
)

// BalanceCacheRepository caches account balance projections in Redis.
// Only committed state is ever written; the transfer engine invalidates
// both accounts after a commit.
type BalanceCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached balances
}

// NewBalanceCacheRepository creates a new repository instance with the given TTL.
func NewBalanceCacheRepository(client *redis.Client, expiration time.Duration) *BalanceCacheRepository {
	return &BalanceCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func balanceKey(accountID string) string {
	return fmt.Sprintf("account_balance:%s", accountID)
}

// Get fetches a cached balance projection for an account.
func (r *BalanceCacheRepository) Get(ctx context.Context, accountID string) (*models.AccountBalance, error) {
	key := balanceKey(accountID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("balance not found in cache for %s", accountID)
		}
		return nil, err
	}

	var balance models.AccountBalance
	if err := json.Unmarshal([]byte(val), &balance); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", balance,
		"error", nil,
	)

	return &balance, nil
}

// Set caches a balance projection with expiration.
func (r *BalanceCacheRepository) Set(ctx context.Context, accountID string, balance models.AccountBalance) error {
	key := balanceKey(accountID)

	data, err := json.Marshal(balance)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// Invalidate drops the cached balance for an account after a committed transfer.
func (r *BalanceCacheRepository) Invalidate(ctx context.Context, accountID string) error {
	key := balanceKey(accountID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
