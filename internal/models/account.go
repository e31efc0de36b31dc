package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account statuses as stored in the database.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// AccountDB represents an account row in the database.
type AccountDB struct {
	AccountID   string          `db:"account_id"`   // Business key, e.g. ACC-001-USD
	Name        string          `db:"name"`         // Display name of the account
	Currency    string          `db:"currency"`     // ISO 4217 currency code
	AccountType string          `db:"account_type"` // Free-form category, e.g. Trading, Settlement
	Status      string          `db:"status"`       // Active or Inactive
	Balance     decimal.Decimal `db:"balance"`      // Current balance, never negative
	CreatedAt   time.Time       `db:"created_at"`   // Timestamp when the account was created
}

// Account is the API projection of an account.
// swagger:model Account
type Account struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Currency    string          `json:"currency"`
	AccountType string          `json:"account_type"`
	Status      string          `json:"status"`
	Balance     decimal.Decimal `json:"balance"`
	CreatedAt   time.Time       `json:"created_at"`
}

// AccountBalance is the balance projection returned by the balance endpoint
// and cached in Redis.
// swagger:model AccountBalance
type AccountBalance struct {
	AccountID string          `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currency"`
	Status    string          `json:"status"`
}

// NewAccountFromDB converts a database row to its API projection.
func NewAccountFromDB(row AccountDB) Account {
	return Account{
		ID:          row.AccountID,
		Name:        row.Name,
		Currency:    row.Currency,
		AccountType: row.AccountType,
		Status:      row.Status,
		Balance:     row.Balance,
		CreatedAt:   row.CreatedAt,
	}
}
