package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sbilibin2017/gw-treasury-ledger/internal/logger"
	"github.com/sbilibin2017/gw-treasury-ledger/internal/models"
)

// AccountReader defines account read access.
type AccountReader interface {
	GetByID(ctx context.Context, accountID string) (*models.AccountDB, error)   // Returns one account
	List(ctx context.Context, currency string) ([]models.AccountDB, error)      // Returns accounts, optionally filtered by currency
}

// TransactionReader defines transaction log read access.
type TransactionReader interface {
	List(ctx context.Context) ([]models.TransactionDB, error)                          // Returns transactions newest first
	GetByID(ctx context.Context, transactionID string) (*models.TransactionDB, error)  // Returns one transaction
}

// BalanceCache caches balance projections.
type BalanceCache interface {
	Get(ctx context.Context, accountID string) (*models.AccountBalance, error)          // Returns a cached balance
	Set(ctx context.Context, accountID string, balance models.AccountBalance) error     // Caches a balance
}

// QueryService exposes read-only projections of the account store and the
// transaction log. It only ever sees committed state.
type QueryService struct {
	accounts     AccountReader
	transactions TransactionReader
	cache        BalanceCache
}

// NewQueryService creates a new QueryService. cache is optional.
func NewQueryService(accounts AccountReader, transactions TransactionReader, cache BalanceCache) *QueryService {
	return &QueryService{
		accounts:     accounts,
		transactions: transactions,
		cache:        cache,
	}
}

// ListAccounts returns all accounts, or only those in the given currency.
func (s *QueryService) ListAccounts(ctx context.Context, currency string) ([]models.Account, error) {
	rows, err := s.accounts.List(ctx, currency)
	if err != nil {
		logger.Log.Errorw("failed to list accounts", "currency", currency, "error", err)
		return nil, err
	}

	accounts := make([]models.Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, models.NewAccountFromDB(row))
	}
	return accounts, nil
}

// GetBalance returns the balance projection for one account, read through the
// cache when one is configured.
func (s *QueryService) GetBalance(ctx context.Context, accountID string) (*models.AccountBalance, error) {
	if s.cache != nil {
		if balance, err := s.cache.Get(ctx, accountID); err == nil {
			return balance, nil
		}
	}

	row, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		logger.Log.Errorw("failed to get account", "account_id", accountID, "error", err)
		return nil, err
	}

	balance := models.AccountBalance{
		AccountID: row.AccountID,
		Balance:   row.Balance,
		Currency:  row.Currency,
		Status:    row.Status,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, accountID, balance); err != nil {
			logger.Log.Errorw("failed to cache balance", "account_id", accountID, "error", err)
		}
	}

	return &balance, nil
}

// ListTransactions returns all transactions, most recent first.
func (s *QueryService) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	rows, err := s.transactions.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "error", err)
		return nil, err
	}

	txns := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		txns = append(txns, models.NewTransactionFromDB(row))
	}
	return txns, nil
}

// GetTransaction returns one transaction by id.
func (s *QueryService) GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error) {
	row, err := s.transactions.GetByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		logger.Log.Errorw("failed to get transaction", "transaction_id", transactionID, "error", err)
		return nil, err
	}

	txn := models.NewTransactionFromDB(*row)
	return &txn, nil
}
