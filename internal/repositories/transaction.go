package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-treasury-ledger/internal/logger"
	"github.com/sbilibin2017/gw-treasury-ledger/internal/models"
)

// ErrDuplicateID is returned when a transaction id already exists in the log.
var ErrDuplicateID = errors.New("duplicate transaction id")

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// TransactionWriteRepository appends records to the transaction log.
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a transaction record and returns the stored row. Ids are never
// overwritten: inserting an existing id fails with ErrDuplicateID.
func (r *TransactionWriteRepository) Save(ctx context.Context, txn models.TransactionDB) (*models.TransactionDB, error) {
	const query = `
		INSERT INTO transactions (transaction_id, from_account, to_account, amount, currency, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING transaction_id, from_account, to_account, amount, currency, description, status, created_at
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var stored models.TransactionDB
	err := sqlx.GetContext(ctx, executor, &stored, query,
		txn.TransactionID, txn.FromAccount, txn.ToAccount,
		txn.Amount, txn.Currency, txn.Description, txn.Status, txn.CreatedAt,
	)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{txn.TransactionID, txn.FromAccount, txn.ToAccount, txn.Amount, txn.Currency},
		"error", err,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateID
		}
		return nil, err
	}
	return &stored, nil
}

// TransactionReadRepository handles transaction log reads.
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// List returns all transactions ordered most recent first; created_at ties are
// broken by insertion order.
func (r *TransactionReadRepository) List(ctx context.Context) ([]models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, from_account, to_account, amount, currency, description, status, created_at
		FROM transactions
		ORDER BY created_at DESC, seq DESC
	`

	var txns []models.TransactionDB
	err := r.db.SelectContext(ctx, &txns, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result_count", len(txns),
		"error", err,
	)

	return txns, err
}

// GetByID returns the transaction with the given id, or sql.ErrNoRows.
func (r *TransactionReadRepository) GetByID(ctx context.Context, transactionID string) (*models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, from_account, to_account, amount, currency, description, status, created_at
		FROM transactions
		WHERE transaction_id = $1
	`

	var txn models.TransactionDB
	err := r.db.GetContext(ctx, &txn, query, transactionID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{transactionID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &txn, nil
}
