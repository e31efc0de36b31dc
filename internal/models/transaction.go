package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts and balances serialize as plain decimal numbers, matching the
	// wire format of the legacy TRMS endpoints.
	decimal.MarshalJSONWithoutQuotes = true
}

// StatusCompleted is the only status a persisted transaction can have.
// Failed transfers are rejected before any record is written.
const StatusCompleted = "Completed"

// TransactionDB represents a transaction row in the database.
type TransactionDB struct {
	TransactionID string          `db:"transaction_id"` // Unique id, e.g. TXN-1A2B3C4D
	FromAccount   string          `db:"from_account"`   // Debited account id
	ToAccount     string          `db:"to_account"`     // Credited account id
	Amount        decimal.Decimal `db:"amount"`         // Transferred amount, strictly positive
	Currency      string          `db:"currency"`       // Currency the transfer is denominated in
	Description   string          `db:"description"`    // Optional free text
	Status        string          `db:"status"`         // Always Completed once persisted
	CreatedAt     time.Time       `db:"created_at"`     // Commit-time timestamp
}

// Transaction is the API projection of a completed transfer.
// swagger:model Transaction
type Transaction struct {
	ID          string          `json:"id"`
	FromAccount string          `json:"from_account"`
	ToAccount   string          `json:"to_account"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewTransactionFromDB converts a database row to its API projection.
func NewTransactionFromDB(row TransactionDB) Transaction {
	return Transaction{
		ID:          row.TransactionID,
		FromAccount: row.FromAccount,
		ToAccount:   row.ToAccount,
		Amount:      row.Amount,
		Currency:    row.Currency,
		Description: row.Description,
		Status:      row.Status,
		CreatedAt:   row.CreatedAt,
	}
}

// TransactionEvent is the payload published to Kafka after a transfer commits.
type TransactionEvent struct {
	TransactionID string `json:"transaction_id"` // Unique identifier of the posted transfer
	FromAccount   string `json:"from_account"`   // Debited account id
	ToAccount     string `json:"to_account"`     // Credited account id
	Amount        string `json:"amount"`         // Decimal amount as text
	Currency      string `json:"currency"`       // Transfer currency
	Timestamp     int64  `json:"timestamp"`      // Unix timestamp of the commit
}
