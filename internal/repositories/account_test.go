package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-treasury-ledger/internal/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, err := container.Host(ctx)
	assert.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	assert.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	db, err := sqlx.Connect("pgx", dsn)
	assert.NoError(t, err)

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	assert.NoError(t, CreateSchema(ctx, db))

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

// --- Helpers ---
func insertAccount(t *testing.T, db *sqlx.DB, id, currency, balance string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO accounts (account_id, name, currency, account_type, status, balance)
		VALUES ($1, $2, $3, 'Trading', 'Active', $4)`,
		id, "Account "+id, currency, balance)
	assert.NoError(t, err)
}

func getBalance(t *testing.T, db *sqlx.DB, accountID string) decimal.Decimal {
	t.Helper()
	var balance decimal.Decimal
	err := db.Get(&balance, `SELECT balance FROM accounts WHERE account_id = $1`, accountID)
	assert.NoError(t, err)
	return balance
}

// --- AccountReadRepository Tests ---
func TestAccountReadRepository_GetByID(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	insertAccount(t, db, "ACC-001-USD", "USD", "1000.00")

	reader := NewAccountReadRepository(db)

	t.Run("Existing account", func(t *testing.T) {
		account, err := reader.GetByID(ctx, "ACC-001-USD")
		assert.NoError(t, err)
		assert.Equal(t, "ACC-001-USD", account.AccountID)
		assert.Equal(t, "USD", account.Currency)
		assert.Equal(t, "Active", account.Status)
		assert.True(t, account.Balance.Equal(decimal.RequireFromString("1000.00")))
	})

	t.Run("Unknown account", func(t *testing.T) {
		_, err := reader.GetByID(ctx, "ACC-404")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestAccountReadRepository_List(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	insertAccount(t, db, "ACC-002-USD", "USD", "500.00")
	insertAccount(t, db, "ACC-001-USD", "USD", "1000.00")
	insertAccount(t, db, "ACC-003-EUR", "EUR", "750.00")

	reader := NewAccountReadRepository(db)

	t.Run("All accounts ordered by id", func(t *testing.T) {
		accounts, err := reader.List(ctx, "")
		assert.NoError(t, err)
		assert.Len(t, accounts, 3)
		assert.Equal(t, "ACC-001-USD", accounts[0].AccountID)
		assert.Equal(t, "ACC-002-USD", accounts[1].AccountID)
		assert.Equal(t, "ACC-003-EUR", accounts[2].AccountID)
	})

	t.Run("Filter by currency, case-insensitive", func(t *testing.T) {
		accounts, err := reader.List(ctx, "usd")
		assert.NoError(t, err)
		assert.Len(t, accounts, 2)
		for _, a := range accounts {
			assert.Equal(t, "USD", a.Currency)
		}
	})

	t.Run("Unknown currency yields empty list", func(t *testing.T) {
		accounts, err := reader.List(ctx, "CHF")
		assert.NoError(t, err)
		assert.Empty(t, accounts)
	})
}

// --- AccountWriteRepository Tests ---
func TestAccountWriteRepository_GetForUpdate(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	insertAccount(t, db, "ACC-001-USD", "USD", "1000.00")

	writer := NewAccountWriteRepository(db, TxFromContext)

	account, err := writer.GetForUpdate(ctx, "ACC-001-USD")
	assert.NoError(t, err)
	assert.True(t, account.Balance.Equal(decimal.RequireFromString("1000.00")))

	_, err = writer.GetForUpdate(ctx, "ACC-404")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestAccountWriteRepository_ApplyBalanceDelta(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	insertAccount(t, db, "ACC-001-USD", "USD", "1000.00")

	writer := NewAccountWriteRepository(db, TxFromContext)

	account, err := writer.ApplyBalanceDelta(ctx, "ACC-001-USD", decimal.RequireFromString("-300.00"))
	assert.NoError(t, err)
	assert.True(t, account.Balance.Equal(decimal.RequireFromString("700.00")))
	assert.True(t, getBalance(t, db, "ACC-001-USD").Equal(decimal.RequireFromString("700.00")))

	account, err = writer.ApplyBalanceDelta(ctx, "ACC-001-USD", decimal.RequireFromString("50.00"))
	assert.NoError(t, err)
	assert.True(t, account.Balance.Equal(decimal.RequireFromString("750.00")))
}

func TestAccountWriteRepository_UsesTxFromContext(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	insertAccount(t, db, "ACC-001-USD", "USD", "1000.00")

	writer := NewAccountWriteRepository(db, TxFromContext)
	runner := NewTxRunner(db)

	// A rolled-back transaction must leave the balance untouched.
	err := runner.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := writer.ApplyBalanceDelta(ctx, "ACC-001-USD", decimal.RequireFromString("-999.00")); err != nil {
			return err
		}
		return fmt.Errorf("force rollback")
	})
	assert.Error(t, err)
	assert.True(t, getBalance(t, db, "ACC-001-USD").Equal(decimal.RequireFromString("1000.00")))
}

// --- Seed Tests ---
func TestSeedSampleData(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	assert.NoError(t, SeedSampleData(ctx, db))
	// Seeding twice must not duplicate or reset anything.
	assert.NoError(t, SeedSampleData(ctx, db))

	reader := NewAccountReadRepository(db)
	accounts, err := reader.List(ctx, "")
	assert.NoError(t, err)
	assert.Len(t, accounts, 6)
	assert.True(t, getBalance(t, db, "ACC-001-USD").Equal(decimal.RequireFromString("1000000.00")))

	txnReader := NewTransactionReadRepository(db)
	txns, err := txnReader.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, txns, 2)
}
