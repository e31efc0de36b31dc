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

// BalanceReader defines the interface that the service must implement.
type BalanceReader interface {
	GetBalance(ctx context.Context, accountID string) (*models.AccountBalance, error)
}

// BalanceErrorResponse represents an error response when fetching a balance
// swagger:model BalanceErrorResponse
type BalanceErrorResponse struct {
	// Error message
	// example: Account not found
	Error string `json:"error"`
}

// NewGetBalanceHandler returns an HTTP handler for fetching an account balance.
// @Summary Get account balance
// @Description Returns the current balance of one account
// @Tags accounts
// @Produce json
// @Param id path string true "Account id"
// @Success 200 {object} models.AccountBalance "Account balance"
// @Failure 404 {object} handlers.BalanceErrorResponse "Account not found"
// @Failure 500 {object} handlers.BalanceErrorResponse "Internal server error"
// @Router /trms/accounts/{id}/balance [get]
func NewGetBalanceHandler(svc BalanceReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		accountID := chi.URLParam(r, "id")

		balance, err := svc.GetBalance(ctx, accountID)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			if errors.Is(err, services.ErrAccountNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Account not found"})
				return
			}
			logger.Log.Errorw("failed to get balance", "account_id", accountID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(balance)
	}
}
