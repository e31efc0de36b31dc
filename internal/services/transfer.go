package services

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-treasury-ledger/internal/logger"
	"github.com/sbilibin2017/gw-treasury-ledger/internal/models"
	"github.com/sbilibin2017/gw-treasury-ledger/internal/repositories"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// TxRunner executes a function inside a single database transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// AccountLocker reads accounts under row locks and applies balance deltas.
type AccountLocker interface {
	GetForUpdate(ctx context.Context, accountID string) (*models.AccountDB, error)                           // Locks and returns an account row
	ApplyBalanceDelta(ctx context.Context, accountID string, delta decimal.Decimal) (*models.AccountDB, error) // Adds delta to the balance
}

// TransactionSaver appends records to the transaction log.
type TransactionSaver interface {
	Save(ctx context.Context, txn models.TransactionDB) (*models.TransactionDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                  // Closes the Kafka writer
}

// BalanceInvalidator drops cached balances after a committed transfer.
type BalanceInvalidator interface {
	Invalidate(ctx context.Context, accountID string) error
}

// TransferService is the posting engine: it validates a transfer request,
// debits one account and credits the other, and appends the transaction
// record, all inside a single database transaction.
type TransferService struct {
	tx             TxRunner
	accounts       AccountLocker
	transactions   TransactionSaver
	cache          BalanceInvalidator
	kafkaWriter    KafkaWriter
	strictCurrency bool
}

// NewTransferService creates a new TransferService. cache and kafkaWriter are
// optional; strictCurrency enables the currency-match check on both accounts.
func NewTransferService(
	tx TxRunner,
	accounts AccountLocker,
	transactions TransactionSaver,
	cache BalanceInvalidator,
	kafkaWriter KafkaWriter,
	strictCurrency bool,
) *TransferService {
	return &TransferService{
		tx:             tx,
		accounts:       accounts,
		transactions:   transactions,
		cache:          cache,
		kafkaWriter:    kafkaWriter,
		strictCurrency: strictCurrency,
	}
}

// newTransactionID generates a TXN- id with an 8-character uppercase hex
// suffix drawn from a random uuid.
func newTransactionID() string {
	id := uuid.New()
	return "TXN-" + strings.ToUpper(hex.EncodeToString(id[:4]))
}

// parseAmount parses a strictly positive decimal with at most two fractional digits.
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if !amount.IsPositive() || amount.Exponent() < -2 {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}

// Transfer validates and posts a transfer. Validation failures abort before
// any mutation; the debit, credit and log append either all commit or none do.
func (s *TransferService) Transfer(ctx context.Context, req models.TransferRequest) (*models.Transaction, error) {
	for _, f := range []struct{ name, value string }{
		{"from_account", req.FromAccount},
		{"to_account", req.ToAccount},
		{"amount", req.Amount},
		{"currency", req.Currency},
	} {
		if strings.TrimSpace(f.value) == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}

	if req.FromAccount == req.ToAccount {
		return nil, ErrSelfTransfer
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))

	var stored *models.TransactionDB
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		source, target, err := s.lockAccounts(ctx, req.FromAccount, req.ToAccount)
		if err != nil {
			return err
		}

		if s.strictCurrency && (source.Currency != currency || target.Currency != currency) {
			return ErrCurrencyMismatch
		}

		// Funds check happens under the held row locks, immediately before the
		// mutation, so concurrent transfers cannot jointly overdraw the source.
		if source.Balance.LessThan(amount) {
			return ErrInsufficientFunds
		}

		if _, err := s.accounts.ApplyBalanceDelta(ctx, req.FromAccount, amount.Neg()); err != nil {
			return err
		}
		if _, err := s.accounts.ApplyBalanceDelta(ctx, req.ToAccount, amount); err != nil {
			return err
		}

		stored, err = s.appendRecord(ctx, models.TransactionDB{
			TransactionID: newTransactionID(),
			FromAccount:   req.FromAccount,
			ToAccount:     req.ToAccount,
			Amount:        amount,
			Currency:      currency,
			Description:   req.Description,
			Status:        models.StatusCompleted,
			CreatedAt:     time.Now().UTC(),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.invalidateBalances(ctx, req.FromAccount, req.ToAccount)
	s.publishTransaction(ctx, *stored)

	txn := models.NewTransactionFromDB(*stored)
	return &txn, nil
}

// lockAccounts acquires row locks on both accounts in lexicographic id order
// so two transfers over the same pair in opposite directions cannot deadlock.
func (s *TransferService) lockAccounts(ctx context.Context, fromID, toID string) (source, target *models.AccountDB, err error) {
	ids := []string{fromID, toID}
	sort.Strings(ids)

	locked := make(map[string]*models.AccountDB, 2)
	for _, id := range ids {
		account, err := s.accounts.GetForUpdate(ctx, id)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, nil, err
		}
		locked[id] = account
	}

	if locked[fromID] == nil {
		return nil, nil, ErrSourceNotFound
	}
	if locked[toID] == nil {
		return nil, nil, ErrTargetNotFound
	}
	return locked[fromID], locked[toID], nil
}

// appendRecord inserts the transaction, retrying once with a fresh id if the
// generated one collides.
func (s *TransferService) appendRecord(ctx context.Context, txn models.TransactionDB) (*models.TransactionDB, error) {
	stored, err := s.transactions.Save(ctx, txn)
	if errors.Is(err, repositories.ErrDuplicateID) {
		logger.Log.Warnw("transaction id collision, retrying", "transaction_id", txn.TransactionID)
		txn.TransactionID = newTransactionID()
		stored, err = s.transactions.Save(ctx, txn)
		if errors.Is(err, repositories.ErrDuplicateID) {
			return nil, ErrDuplicateTransaction
		}
	}
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// invalidateBalances drops cached balances for both accounts after a commit.
func (s *TransferService) invalidateBalances(ctx context.Context, accountIDs ...string) {
	if s.cache == nil {
		return
	}
	for _, id := range accountIDs {
		if err := s.cache.Invalidate(ctx, id); err != nil {
			logger.Log.Errorw("failed to invalidate cached balance", "account_id", id, "error", err)
		}
	}
}

// publishTransaction publishes a committed transfer to Kafka. Publishing is
// best-effort and never affects the posting result.
func (s *TransferService) publishTransaction(ctx context.Context, txn models.TransactionDB) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.TransactionID)
		return
	}

	event := models.TransactionEvent{
		TransactionID: txn.TransactionID,
		FromAccount:   txn.FromAccount,
		ToAccount:     txn.ToAccount,
		Amount:        txn.Amount.StringFixed(2),
		Currency:      txn.Currency,
		Timestamp:     txn.CreatedAt.Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal transaction event", "transaction_id", txn.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(txn.TransactionID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish transaction to Kafka", "transaction_id", txn.TransactionID, "error", err)
	} else {
		logger.Log.Infow("transaction published to Kafka", "transaction_id", txn.TransactionID, "amount", txn.Amount)
	}
}
