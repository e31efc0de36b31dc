package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-treasury-ledger/internal/logger"
	"github.com/sbilibin2017/gw-treasury-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// AccountReadRepository handles account read operations.
type AccountReadRepository struct {
	db *sqlx.DB
}

func NewAccountReadRepository(db *sqlx.DB) *AccountReadRepository {
	return &AccountReadRepository{db: db}
}

// GetByID returns the account with the given id, or sql.ErrNoRows.
func (r *AccountReadRepository) GetByID(ctx context.Context, accountID string) (*models.AccountDB, error) {
	const query = `
		SELECT account_id, name, currency, account_type, status, balance, created_at
		FROM accounts
		WHERE account_id = $1
	`

	var account models.AccountDB
	err := r.db.GetContext(ctx, &account, query, accountID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &account, nil
}

// List returns accounts, optionally filtered by currency. The currency filter
// is normalized to uppercase and compared exactly; an empty currency means all
// accounts. Order follows the primary key, stable within one snapshot.
func (r *AccountReadRepository) List(ctx context.Context, currency string) ([]models.AccountDB, error) {
	const query = `
		SELECT account_id, name, currency, account_type, status, balance, created_at
		FROM accounts
		WHERE ($1 = '' OR currency = $1)
		ORDER BY account_id
	`

	currency = strings.ToUpper(strings.TrimSpace(currency))

	var accounts []models.AccountDB
	err := r.db.SelectContext(ctx, &accounts, query, currency)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{currency},
		"result_count", len(accounts),
		"error", err,
	)

	return accounts, err
}

// AccountWriteRepository handles account mutations for the transfer engine.
// All methods run against the transaction in the context when one is present.
type AccountWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAccountWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AccountWriteRepository {
	return &AccountWriteRepository{db: db, txGetter: txGetter}
}

func (r *AccountWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetForUpdate reads an account under an exclusive row lock. The lock is held
// until the surrounding transaction commits or rolls back. Callers lock
// accounts in lexicographic id order to avoid deadlock.
func (r *AccountWriteRepository) GetForUpdate(ctx context.Context, accountID string) (*models.AccountDB, error) {
	const query = `
		SELECT account_id, name, currency, account_type, status, balance, created_at
		FROM accounts
		WHERE account_id = $1
		FOR UPDATE
	`

	var account models.AccountDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &account, query, accountID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &account, nil
}

// ApplyBalanceDelta adds delta (negative for a debit) to the account balance
// and returns the updated row. Must run inside the same transaction as the
// paired transaction insert.
func (r *AccountWriteRepository) ApplyBalanceDelta(ctx context.Context, accountID string, delta decimal.Decimal) (*models.AccountDB, error) {
	const query = `
		UPDATE accounts
		SET balance = balance + $2
		WHERE account_id = $1
		RETURNING account_id, name, currency, account_type, status, balance, created_at
	`

	var account models.AccountDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &account, query, accountID, delta)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID, delta},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &account, nil
}
