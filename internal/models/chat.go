package models

// ChatRequest represents the JSON body for a chat message
// swagger:model ChatRequest
type ChatRequest struct {
	// User message in natural language
	// required: true
	// example: Show me all USD accounts
	Message string `json:"message"`

	// Conversation id, generated when omitted
	// example: 3f7b4a6e-8f1d-4c2a-9b0e-d4c7a1e52b10
	ConversationID string `json:"conversation_id"`
}

// ChatResponse represents the assistant reply
// swagger:model ChatResponse
type ChatResponse struct {
	Response       string `json:"response"`
	ConversationID string `json:"conversation_id"`
	Timestamp      string `json:"timestamp"`
	Status         string `json:"status"`
}

// ChatErrorResponse represents an error response from the chat endpoint
// swagger:model ChatErrorResponse
type ChatErrorResponse struct {
	// Error message
	// example: Message is required
	Error string `json:"error"`
}
