package command

import (
	"fmt"
	"time"

	"github.com/moneta-app/finance-tracker/internal/models"
	"github.com/moneta-app/finance-tracker/internal/repo"
	"github.com/moneta-app/finance-tracker/internal/stats"
)

// OverallStats pairs the independently computed expense and income summaries.
// The two underlying queries are not atomic with respect to each other; a
// write landing between them is observed by at most one side.
type OverallStats struct {
	Expenses stats.Basic `json:"expenses"`
	Incomes  stats.Basic `json:"incomes"`
}

// Balance is the result of a getTotalBalance command.
type Balance struct {
	TotalBalance float64 `json:"totalBalance"`
}

// Dispatcher routes a validated Command to its handler. Results are
// heterogeneous by action: a confirmation string for adds, a transaction
// slice for searches, a stats object otherwise.
type Dispatcher struct {
	transactions repo.TransactionRepository
	now          func() time.Time
}

func NewDispatcher(transactions repo.TransactionRepository) *Dispatcher {
	return &Dispatcher{
		transactions: transactions,
		now:          time.Now,
	}
}

// Dispatch executes cmd on behalf of userID. An action outside the supported
// set is not an error: it yields a descriptive message as a normal result.
func (d *Dispatcher) Dispatch(cmd Command, userID int) (any, error) {
	switch cmd.Action {
	case ActionAddExpense:
		return d.add(models.KindExpense, cmd, userID)
	case ActionAddIncome:
		return d.add(models.KindIncome, cmd, userID)
	case ActionSearchExpenses:
		return d.search(models.KindExpense, cmd.Filters, userID)
	case ActionSearchIncomes:
		return d.search(models.KindIncome, cmd.Filters, userID)
	case ActionGetExpenseStats:
		return d.kindStats(models.KindExpense, cmd.Filters, userID)
	case ActionGetIncomeStats:
		return d.kindStats(models.KindIncome, cmd.Filters, userID)
	case ActionGetOverallStats:
		return d.overallStats(cmd.Filters, userID)
	case ActionGetTotalBalance:
		return d.totalBalance(userID)
	default:
		return fmt.Sprintf("Sorry, I don't know how to handle action %q.", string(cmd.Action)), nil
	}
}

func (d *Dispatcher) add(kind models.TransactionKind, cmd Command, userID int) (any, error) {
	// Amount must be present and strictly positive; the two cases are
	// reported separately so an explicit zero is not mistaken for absence.
	if cmd.Amount == nil {
		return nil, ValidationError{Field: "amount", Reason: "amount is required"}
	}
	if *cmd.Amount <= 0 {
		return nil, ValidationError{Field: "amount", Reason: "amount must be greater than zero"}
	}
	if cmd.Category == "" {
		return nil, ValidationError{Field: "category", Reason: "category is required"}
	}

	date := cmd.Date
	if date == "" {
		date = d.now().Format(ISODate)
	} else if _, err := time.Parse(ISODate, date); err != nil {
		return nil, ValidationError{Field: "date", Reason: "date must be in YYYY-MM-DD format"}
	}

	nowStr := d.now().Format(time.RFC3339)
	_, err := d.transactions.Create(models.Transaction{
		Kind:        kind,
		Description: cmd.Description,
		Amount:      *cmd.Amount,
		Category:    cmd.Category,
		Date:        date,
		UserID:      userID,
		CreatedAt:   nowStr,
		UpdatedAt:   nowStr,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", kind, err)
	}

	label := "Expense"
	if kind == models.KindIncome {
		label = "Income"
	}
	return fmt.Sprintf("%s of %v added under category %s.", label, *cmd.Amount, cmd.Category), nil
}

func (d *Dispatcher) search(kind models.TransactionKind, f *Filter, userID int) (any, error) {
	filter := repo.TransactionFilter{}
	if f != nil {
		filter.Category = f.Category
		filter.Date = f.Date
		filter.Amount = f.Amount
	}

	rows, err := d.transactions.Filter(kind, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("search %ss: %w", kind, err)
	}
	return rows, nil
}

func (d *Dispatcher) kindStats(kind models.TransactionKind, f *Filter, userID int) (any, error) {
	basic, err := d.rangeStats(kind, f, userID)
	if err != nil {
		return nil, err
	}
	return basic, nil
}

func (d *Dispatcher) rangeStats(kind models.TransactionKind, f *Filter, userID int) (stats.Basic, error) {
	start, end := ResolveRange(f, d.now())

	rows, err := d.transactions.Filter(kind, userID, repo.TransactionFilter{
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return stats.Basic{}, fmt.Errorf("%s stats: %w", kind, err)
	}

	if kind == models.KindIncome {
		return stats.BasicStats(nil, Amounts(rows)), nil
	}
	return stats.BasicStats(Amounts(rows), nil), nil
}

func (d *Dispatcher) overallStats(f *Filter, userID int) (any, error) {
	// Two independent reads, deliberately not wrapped in a transaction.
	expenses, err := d.rangeStats(models.KindExpense, f, userID)
	if err != nil {
		return nil, err
	}
	incomes, err := d.rangeStats(models.KindIncome, f, userID)
	if err != nil {
		return nil, err
	}
	return OverallStats{Expenses: expenses, Incomes: incomes}, nil
}

func (d *Dispatcher) totalBalance(userID int) (any, error) {
	totalIncome, err := d.transactions.SumByKind(models.KindIncome, userID)
	if err != nil {
		return nil, fmt.Errorf("sum incomes: %w", err)
	}
	totalExpense, err := d.transactions.SumByKind(models.KindExpense, userID)
	if err != nil {
		return nil, fmt.Errorf("sum expenses: %w", err)
	}
	return Balance{TotalBalance: totalIncome - totalExpense}, nil
}

// Amounts projects a transaction slice onto its amounts, in order.
func Amounts(transactions []models.Transaction) []float64 {
	amounts := make([]float64, len(transactions))
	for i, t := range transactions {
		amounts[i] = t.Amount
	}
	return amounts
}
