package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-treasury-ledger/internal/models"
	"github.com/sbilibin2017/gw-treasury-ledger/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// withURLParam injects a chi route parameter into the request context.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetBalanceHandler(t *testing.T) {
	balance := &models.AccountBalance{
		AccountID: "ACC-001-USD",
		Balance:   decimal.RequireFromString("1000.50"),
		Currency:  "USD",
		Status:    models.StatusActive,
	}

	tests := []struct {
		name               string
		accountID          string
		setupMocks         func(mockReader *MockBalanceReader)
		expectedStatusCode int
		expectedError      string
	}{
		{
			name:      "existing account",
			accountID: "ACC-001-USD",
			setupMocks: func(mockReader *MockBalanceReader) {
				mockReader.EXPECT().GetBalance(gomock.Any(), "ACC-001-USD").Return(balance, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:      "unknown account",
			accountID: "ACC-404",
			setupMocks: func(mockReader *MockBalanceReader) {
				mockReader.EXPECT().GetBalance(gomock.Any(), "ACC-404").Return(nil, services.ErrAccountNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
			expectedError:      "Account not found",
		},
		{
			name:      "internal error",
			accountID: "ACC-001-USD",
			setupMocks: func(mockReader *MockBalanceReader) {
				mockReader.EXPECT().GetBalance(gomock.Any(), "ACC-001-USD").Return(nil, assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedError:      "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := NewMockBalanceReader(ctrl)
			tt.setupMocks(mockReader)

			handler := NewGetBalanceHandler(mockReader)

			req := httptest.NewRequest(http.MethodGet, "/api/trms/accounts/"+tt.accountID+"/balance", nil)
			req = withURLParam(req, "id", tt.accountID)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			if tt.expectedStatusCode == http.StatusOK {
				var got models.AccountBalance
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, balance.AccountID, got.AccountID)
				assert.True(t, got.Balance.Equal(balance.Balance))
			} else {
				var errResp BalanceErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
				assert.Equal(t, tt.expectedError, errResp.Error)
			}
		})
	}
}
