package handlers

import "github.com/moneta-app/finance-tracker/internal/models"

type TransactionRequest struct {
	Description string   `json:"description"`
	Amount      *float64 `json:"amount"`
	Category    string   `json:"category"`
	Date        string   `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
}

type TransactionResponse struct {
	ID          int     `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	UserID      int     `json:"user_id"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type TransactionsSearchResult struct {
	Data []TransactionResponse `json:"data"`
	Meta Meta                  `json:"meta,omitempty"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type AssistantQueryRequest struct {
	Message string `json:"message"`
}

type AssistantQueryResponse struct {
	Success  bool `json:"success"`
	Response any  `json:"response"`
}

type AssistantErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func toTransactionResponse(t models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Description: t.Description,
		Amount:      t.Amount,
		Category:    t.Category,
		Date:        t.Date,
		UserID:      t.UserID,
	}
}
