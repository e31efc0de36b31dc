package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-treasury-ledger/internal/logger"
	"github.com/sbilibin2017/gw-treasury-ledger/internal/models"
)

// AccountLister defines the interface that the service must implement.
type AccountLister interface {
	ListAccounts(ctx context.Context, currency string) ([]models.Account, error)
}

// AccountsErrorResponse represents an error response when listing accounts
// swagger:model AccountsErrorResponse
type AccountsErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// NewListAccountsHandler returns an HTTP handler for listing accounts.
// @Summary List accounts
// @Description Returns all accounts, optionally filtered by currency
// @Tags accounts
// @Produce json
// @Param currency query string false "Currency filter (ISO 4217)"
// @Success 200 {array} models.Account "Accounts"
// @Failure 500 {object} handlers.AccountsErrorResponse "Internal server error"
// @Router /trms/accounts [get]
func NewListAccountsHandler(svc AccountLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		currency := r.URL.Query().Get("currency")

		accounts, err := svc.ListAccounts(ctx, currency)
		if err != nil {
			logger.Log.Errorw("failed to list accounts", "currency", currency, "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AccountsErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(accounts)
	}
}
