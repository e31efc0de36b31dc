package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-treasury-ledger/internal/logger"
	"github.com/sbilibin2017/gw-treasury-ledger/internal/models"
	"github.com/sbilibin2017/gw-treasury-ledger/internal/services"
)

// TransactionLister defines the interface that the service must implement.
type TransactionLister interface {
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
}

// TransactionGetter defines the interface that the service must implement.
type TransactionGetter interface {
	GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error)
}

// TransactionsErrorResponse represents an error response for transaction queries
// swagger:model TransactionsErrorResponse
type TransactionsErrorResponse struct {
	// Error message
	// example: Transaction not found
	Error string `json:"error"`
}

// NewListTransactionsHandler returns an HTTP handler for listing transactions.
// @Summary List transactions
// @Description Returns all transactions, most recent first
// @Tags transactions
// @Produce json
// @Success 200 {array} models.Transaction "Transactions"
// @Failure 500 {object} handlers.TransactionsErrorResponse "Internal server error"
// @Router /trms/transactions [get]
func NewListTransactionsHandler(svc TransactionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		txns, err := svc.ListTransactions(ctx)
		if err != nil {
			logger.Log.Errorw("failed to list transactions", "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TransactionsErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(txns)
	}
}

// NewGetTransactionHandler returns an HTTP handler for fetching one transaction.
// @Summary Get transaction
// @Description Returns one transaction by id
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction id"
// @Success 200 {object} models.Transaction "Transaction"
// @Failure 404 {object} handlers.TransactionsErrorResponse "Transaction not found"
// @Failure 500 {object} handlers.TransactionsErrorResponse "Internal server error"
// @Router /trms/transactions/{id} [get]
func NewGetTransactionHandler(svc TransactionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		transactionID := chi.URLParam(r, "id")

		txn, err := svc.GetTransaction(ctx, transactionID)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			if errors.Is(err, services.ErrTransactionNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TransactionsErrorResponse{Error: "Transaction not found"})
				return
			}
			logger.Log.Errorw("failed to get transaction", "transaction_id", transactionID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TransactionsErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(txn)
	}
}
