package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-treasury-ledger/internal/logger"
	"github.com/sbilibin2017/gw-treasury-ledger/internal/models"
	"github.com/sbilibin2017/gw-treasury-ledger/internal/services"
)

// TransferCreator defines the interface that the posting engine must implement.
type TransferCreator interface {
	Transfer(ctx context.Context, req models.TransferRequest) (*models.Transaction, error)
}

// NewCreateTransactionHandler returns an HTTP handler for posting a transfer.
// @Summary Create transaction
// @Description Validates a transfer, atomically moves funds between two accounts and records the transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body models.TransferRequest true "Transfer Request"
// @Success 201 {object} models.Transaction "Posted transaction"
// @Failure 400 {object} models.TransferErrorResponse "Validation or business rule failure"
// @Failure 404 {object} models.TransferErrorResponse "Source or target account not found"
// @Failure 500 {object} models.TransferErrorResponse "Internal server error"
// @Router /trms/transactions [post]
func NewCreateTransactionHandler(svc TransferCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req models.TransferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode transfer request", "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.TransferErrorResponse{Error: "Invalid request body"})
			return
		}

		txn, err := svc.Transfer(ctx, req)
		if err != nil {
			writeTransferError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(txn)
	}
}

// writeTransferError maps engine error kinds to HTTP statuses. Validation and
// business-rule failures are 400, missing accounts 404, anything else 500.
func writeTransferError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	switch {
	case errors.Is(err, services.ErrMissingField),
		errors.Is(err, services.ErrSelfTransfer),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInsufficientFunds),
		errors.Is(err, services.ErrCurrencyMismatch):
		w.WriteHeader(http.StatusBadRequest)
	case errors.Is(err, services.ErrSourceNotFound),
		errors.Is(err, services.ErrTargetNotFound):
		w.WriteHeader(http.StatusNotFound)
	default:
		logger.Log.Errorw("transfer failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.TransferErrorResponse{Error: "Internal server error"})
		return
	}

	json.NewEncoder(w).Encode(models.TransferErrorResponse{Error: capitalize(err.Error())})
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
