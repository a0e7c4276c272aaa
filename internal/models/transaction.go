package models

// TransactionKind discriminates the two transaction collections.
type TransactionKind string

const (
	KindExpense TransactionKind = "expense"
	KindIncome  TransactionKind = "income"
)

// Transaction represents a single monetary record owned by a user.
// The owner (UserID) is set at creation time and never changes afterwards.
type Transaction struct {
	ID          int             `json:"id"`
	Kind        TransactionKind `json:"-"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"` // calendar date, YYYY-MM-DD
	UserID      int             `json:"user_id"`
	CreatedAt   string          `json:"created_at,omitempty"`
	UpdatedAt   string          `json:"updated_at,omitempty"`
}
