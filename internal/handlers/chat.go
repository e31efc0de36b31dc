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

// ChatResponder defines the interface that the chat service must implement.
type ChatResponder interface {
	Respond(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
}

// NewChatHandler returns an HTTP handler for the chat assistant.
// @Summary Chat with the treasury assistant
// @Description Answers natural-language questions about accounts, balances and transactions
// @Tags chat
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Chat Request"
// @Success 200 {object} models.ChatResponse "Assistant reply"
// @Failure 400 {object} models.ChatErrorResponse "Message is required"
// @Failure 500 {object} models.ChatErrorResponse "Internal server error"
// @Router /chat [post]
func NewChatHandler(svc ChatResponder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req models.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode chat request", "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.ChatErrorResponse{Error: "Invalid request body"})
			return
		}

		resp, err := svc.Respond(ctx, req)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			if errors.Is(err, services.ErrEmptyMessage) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.ChatErrorResponse{Error: "Message is required"})
				return
			}
			logger.Log.Errorw("failed to process chat message", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(models.ChatErrorResponse{Error: "Failed to process chat message"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
