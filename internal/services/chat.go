package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-treasury-ledger/internal/logger"
	"github.com/sbilibin2017/gw-treasury-ledger/internal/models"
)

// ErrEmptyMessage is returned when a chat request carries no message.
var ErrEmptyMessage = errors.New("message is required")

// ChatQuerier is the slice of the query service the chat assistant needs.
type ChatQuerier interface {
	ListAccounts(ctx context.Context, currency string) ([]models.Account, error)
	GetBalance(ctx context.Context, accountID string) (*models.AccountBalance, error)
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
}

// ChatService answers treasury questions by keyword-matching the message and
// calling the read-only query endpoints. It holds no state of its own.
type ChatService struct {
	querier ChatQuerier
}

func NewChatService(querier ChatQuerier) *ChatService {
	return &ChatService{querier: querier}
}

const helpText = `I'm your treasury assistant! I can help you with:

Account management:
- View accounts by currency (e.g. "Show me USD accounts")
- Check account balances (e.g. "Check balance for ACC-001-USD")

Transactions:
- View recent transactions
- Help create new transactions

Just ask me in natural language! For example:
- "Show me all EUR accounts"
- "What's the balance of ACC-001-USD?"
- "Show recent transactions"`

const transferGuidance = `To create a transaction, I need the following information:
- Source account ID
- Target account ID
- Amount
- Currency
- Description (optional)

Please provide these details and I'll help you book the transaction.`

// Respond produces a reply for the given chat message. A fresh conversation id
// is generated when the request carries none.
func (s *ChatService) Respond(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrEmptyMessage
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	return &models.ChatResponse{
		Response:       s.reply(ctx, req.Message),
		ConversationID: conversationID,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		Status:         "success",
	}, nil
}

func (s *ChatService) reply(ctx context.Context, message string) string {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "account") && detectCurrency(lower) != "":
		return s.accountsReply(ctx, detectCurrency(lower))
	case strings.Contains(lower, "balance"):
		return s.balanceReply(ctx, message)
	case strings.Contains(lower, "transaction") || strings.Contains(lower, "transfer"):
		if strings.Contains(lower, "create") || strings.Contains(lower, "book") || strings.Contains(lower, "transfer") {
			return transferGuidance
		}
		return s.transactionsReply(ctx)
	case strings.Contains(lower, "help") || strings.Contains(lower, "what can you do"):
		return helpText
	default:
		return "I'm your treasury assistant. I can help you with account queries, balance checks and transactions. What would you like to know?"
	}
}

func detectCurrency(lower string) string {
	for _, c := range []string{"usd", "eur", "gbp", "jpy"} {
		if strings.Contains(lower, c) {
			return strings.ToUpper(c)
		}
	}
	return ""
}

func (s *ChatService) accountsReply(ctx context.Context, currency string) string {
	accounts, err := s.querier.ListAccounts(ctx, currency)
	if err != nil {
		logger.Log.Errorw("chat: failed to list accounts", "currency", currency, "error", err)
		return "Sorry, I couldn't retrieve account information at the moment."
	}
	if len(accounts) == 0 {
		return fmt.Sprintf("No %s accounts found in the system.", currency)
	}

	lines := make([]string, 0, len(accounts))
	for _, acc := range accounts {
		lines = append(lines, fmt.Sprintf("- %s (%s) - Status: %s", acc.Name, acc.ID, acc.Status))
	}
	return fmt.Sprintf("I found %d %s accounts in the system:\n\n%s", len(accounts), currency, strings.Join(lines, "\n"))
}

func (s *ChatService) balanceReply(ctx context.Context, message string) string {
	accountID := ""
	for _, word := range strings.Fields(message) {
		upper := strings.ToUpper(strings.Trim(word, ".,!?"))
		if strings.Contains(upper, "ACC-") {
			accountID = upper
			break
		}
	}
	if accountID == "" {
		return "Please specify an account ID to check the balance. For example: 'Check balance for ACC-001-USD'"
	}

	balance, err := s.querier.GetBalance(ctx, accountID)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return fmt.Sprintf("Account %s not found.", accountID)
		}
		logger.Log.Errorw("chat: failed to get balance", "account_id", accountID, "error", err)
		return "Sorry, I couldn't retrieve balance information at the moment."
	}

	return fmt.Sprintf("Account %s has a balance of %s %s. Status: %s",
		balance.AccountID, balance.Balance.StringFixed(2), balance.Currency, balance.Status)
}

func (s *ChatService) transactionsReply(ctx context.Context) string {
	txns, err := s.querier.ListTransactions(ctx)
	if err != nil {
		logger.Log.Errorw("chat: failed to list transactions", "error", err)
		return "Sorry, I couldn't retrieve transaction information at the moment."
	}
	if len(txns) == 0 {
		return "No transactions found in the system."
	}

	if len(txns) > 5 {
		txns = txns[:5]
	}
	lines := make([]string, 0, len(txns))
	for _, txn := range txns {
		lines = append(lines, fmt.Sprintf("- %s: %s %s from %s to %s",
			txn.ID, txn.Amount.StringFixed(2), txn.Currency, txn.FromAccount, txn.ToAccount))
	}
	return fmt.Sprintf("Here are the most recent transactions:\n\n%s", strings.Join(lines, "\n"))
}
