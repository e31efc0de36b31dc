package services

import "errors"

var (
	// ErrMissingField is returned when a required transfer field is empty.
	// Wrapped with the field name, e.g. "missing required field: from_account".
	ErrMissingField = errors.New("missing required field")

	// ErrSelfTransfer is returned when source and target account ids are equal.
	// Moving money from an account to itself would produce a balance-neutral
	// no-op record and is rejected outright.
	ErrSelfTransfer = errors.New("source and target accounts must differ")

	// ErrInvalidAmount is returned when the amount is not a positive decimal
	// with at most two fractional digits.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrSourceNotFound is returned when the source account does not exist.
	ErrSourceNotFound = errors.New("source account not found")

	// ErrTargetNotFound is returned when the target account does not exist.
	ErrTargetNotFound = errors.New("target account not found")

	// ErrInsufficientFunds is returned when the source balance cannot cover the amount.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrCurrencyMismatch is returned in strict-currency mode when the transfer
	// currency differs from either account's currency.
	ErrCurrencyMismatch = errors.New("transfer currency does not match account currency")

	// ErrAccountNotFound is returned by queries for a missing account.
	ErrAccountNotFound = errors.New("account not found")

	// ErrTransactionNotFound is returned by queries for a missing transaction.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrDuplicateTransaction is returned when id generation collides twice in a
	// row, which should never happen in practice.
	ErrDuplicateTransaction = errors.New("duplicate transaction id")
)
