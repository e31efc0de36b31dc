package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-treasury-ledger/internal/logger"
)

// CreateSchema creates the accounts and transactions tables if they do not exist.
func CreateSchema(ctx context.Context, db *sqlx.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			account_id VARCHAR(50) PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			currency CHAR(3) NOT NULL,
			account_type VARCHAR(50) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'Active',
			balance NUMERIC(15,2) NOT NULL DEFAULT 0.00 CHECK (balance >= 0),
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS transactions (
			seq BIGSERIAL,
			transaction_id VARCHAR(50) PRIMARY KEY,
			from_account VARCHAR(50) NOT NULL REFERENCES accounts(account_id),
			to_account VARCHAR(50) NOT NULL REFERENCES accounts(account_id),
			amount NUMERIC(15,2) NOT NULL CHECK (amount > 0),
			currency CHAR(3) NOT NULL,
			description VARCHAR(255) NOT NULL DEFAULT '',
			status VARCHAR(20) NOT NULL DEFAULT 'Completed',
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_created_at ON transactions (created_at DESC, seq DESC);`,
	}

	for _, m := range migrations {
		if _, err := db.ExecContext(ctx, m); err != nil {
			logger.Log.Errorw("failed to apply migration", "error", err)
			return err
		}
	}
	return nil
}

type seedAccount struct {
	id          string
	name        string
	currency    string
	accountType string
	balance     string
}

type seedTransaction struct {
	id          string
	fromAccount string
	toAccount   string
	amount      string
	currency    string
	description string
}

// SeedSampleData inserts the sample treasury accounts and transactions.
// Inserts are idempotent: existing ids are left untouched.
func SeedSampleData(ctx context.Context, db *sqlx.DB) error {
	accounts := []seedAccount{
		{"ACC-001-USD", "Trading Account USD", "USD", "Trading", "1000000.00"},
		{"ACC-002-USD", "Settlement Account USD", "USD", "Settlement", "500000.00"},
		{"ACC-003-EUR", "Trading Account EUR", "EUR", "Trading", "750000.00"},
		{"ACC-004-EUR", "Settlement Account EUR", "EUR", "Settlement", "300000.00"},
		{"ACC-005-GBP", "Trading Account GBP", "GBP", "Trading", "600000.00"},
		{"ACC-006-JPY", "Trading Account JPY", "JPY", "Trading", "100000000.00"},
	}

	const insertAccount = `
		INSERT INTO accounts (account_id, name, currency, account_type, status, balance)
		VALUES ($1, $2, $3, $4, 'Active', $5)
		ON CONFLICT (account_id) DO NOTHING
	`

	for _, a := range accounts {
		if _, err := db.ExecContext(ctx, insertAccount, a.id, a.name, a.currency, a.accountType, a.balance); err != nil {
			logger.Log.Errorw("failed to seed account", "account_id", a.id, "error", err)
			return err
		}
	}

	transactions := []seedTransaction{
		{"TXN-SAMPLE01", "ACC-001-USD", "ACC-002-USD", "50000.00", "USD", "Initial settlement transfer"},
		{"TXN-SAMPLE02", "ACC-003-EUR", "ACC-004-EUR", "25000.00", "EUR", "Daily settlement"},
	}

	const insertTransaction = `
		INSERT INTO transactions (transaction_id, from_account, to_account, amount, currency, description, status)
		VALUES ($1, $2, $3, $4, $5, $6, 'Completed')
		ON CONFLICT (transaction_id) DO NOTHING
	`

	for _, t := range transactions {
		if _, err := db.ExecContext(ctx, insertTransaction, t.id, t.fromAccount, t.toAccount, t.amount, t.currency, t.description); err != nil {
			logger.Log.Errorw("failed to seed transaction", "transaction_id", t.id, "error", err)
			return err
		}
	}

	logger.Log.Infow("sample data seeded", "accounts", len(accounts), "transactions", len(transactions))
	return nil
}
