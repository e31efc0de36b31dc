package models

// TransferRequest represents the JSON body for posting a transfer
// swagger:model TransferRequest
type TransferRequest struct {
	// Source account id
	// required: true
	// example: ACC-001-USD
	FromAccount string `json:"from_account"`

	// Target account id
	// required: true
	// example: ACC-002-USD
	ToAccount string `json:"to_account"`

	// Amount as a decimal string with at most two fractional digits
	// required: true
	// example: 300.00
	Amount string `json:"amount"`

	// Currency
	// required: true
	// example: USD
	Currency string `json:"currency"`

	// Optional description
	// example: Daily settlement
	Description string `json:"description"`
}

// TransferErrorResponse represents an error response for a rejected transfer
// swagger:model TransferErrorResponse
type TransferErrorResponse struct {
	// Error message
	// example: Insufficient funds
	Error string `json:"error"`
}
