// Package command defines the structured commands the assistant and the
// direct API dispatch, and the handlers that execute them.
package command

import "fmt"

// Action enumerates the supported operations. The dispatcher matches it
// exhaustively; adding an action means adding a case there.
type Action string

const (
	ActionAddExpense      Action = "addExpense"
	ActionAddIncome       Action = "addIncome"
	ActionSearchExpenses  Action = "searchExpenses"
	ActionSearchIncomes   Action = "searchIncomes"
	ActionGetExpenseStats Action = "getExpenseStats"
	ActionGetIncomeStats  Action = "getIncomeStats"
	ActionGetOverallStats Action = "getOverallStats"
	ActionGetTotalBalance Action = "getTotalBalance"
)

// Actions lists every supported action, in the order advertised to the model.
func Actions() []Action {
	return []Action{
		ActionAddExpense,
		ActionAddIncome,
		ActionSearchExpenses,
		ActionSearchIncomes,
		ActionGetExpenseStats,
		ActionGetIncomeStats,
		ActionGetOverallStats,
		ActionGetTotalBalance,
	}
}

// Range is an explicit absolute date range, both bounds inclusive.
type Range struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Filter narrows search and stats commands. At most one of Period, Date and
// Range is meaningful at a time; Period and Range resolve to concrete bounds
// via ResolveRange before use.
type Filter struct {
	Category string   `json:"category,omitempty"`
	Period   string   `json:"period,omitempty"` // day, week, month or year
	Date     string   `json:"date,omitempty"`
	Amount   *float64 `json:"amount,omitempty"`
	Range    *Range   `json:"range,omitempty"`
}

// Command is the structured form of one user request. It is ephemeral:
// produced by the interpreter or a direct call, consumed by one dispatch,
// never persisted. Amount is a pointer so an absent amount is distinguishable
// from an explicit zero.
type Command struct {
	Action      Action   `json:"action"`
	Amount      *float64 `json:"amount"`
	Category    string   `json:"category"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
	Filters     *Filter  `json:"filters"`
}

// ValidationError reports a missing or malformed command field. No write
// happens when one is returned.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
