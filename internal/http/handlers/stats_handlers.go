package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/moneta-app/finance-tracker/internal/command"
	"github.com/moneta-app/finance-tracker/internal/models"
	"github.com/moneta-app/finance-tracker/internal/repo"
	"github.com/moneta-app/finance-tracker/internal/stats"
)

// BalanceSummary reports the overall balance across all recorded transactions.
type BalanceSummary struct {
	TotalIncomes  float64 `json:"totalIncomes"`
	TotalExpenses float64 `json:"totalExpenses"`
	TotalBalance  float64 `json:"totalBalance"`
}

// GetBalanceHandler godoc
// @Summary Overall balance across all transactions
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} BalanceSummary
// @Failure 500 {string} string "Internal error"
// @Router /stats/sum [get]
func GetBalanceHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserID(r)
	if err != nil {
		http.Error(w, "missing or invalid token", http.StatusUnauthorized)
		return
	}

	totalIncomes, err := transactionRepo.SumByKind(models.KindIncome, userID)
	if err != nil {
		http.Error(w, "could not compute balance", http.StatusInternalServerError)
		return
	}
	totalExpenses, err := transactionRepo.SumByKind(models.KindExpense, userID)
	if err != nil {
		http.Error(w, "could not compute balance", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(BalanceSummary{
		TotalIncomes:  totalIncomes,
		TotalExpenses: totalExpenses,
		TotalBalance:  totalIncomes - totalExpenses,
	})
}

// GetExpenseStatsHandler godoc
// @Summary Summed expense statistics for a period
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param period query string false "Relative period: day, week, month or year"
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} stats.Basic
// @Failure 500 {string} string "Internal error"
// @Router /stats/expenses [get]
func GetExpenseStatsHandler(w http.ResponseWriter, r *http.Request) {
	kindStats(w, r, models.KindExpense)
}

// GetIncomeStatsHandler godoc
// @Summary Summed income statistics for a period
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param period query string false "Relative period: day, week, month or year"
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} stats.Basic
// @Failure 500 {string} string "Internal error"
// @Router /stats/incomes [get]
func GetIncomeStatsHandler(w http.ResponseWriter, r *http.Request) {
	kindStats(w, r, models.KindIncome)
}

func kindStats(w http.ResponseWriter, r *http.Request, kind models.TransactionKind) {
	userID, err := GetUserID(r)
	if err != nil {
		http.Error(w, "missing or invalid token", http.StatusUnauthorized)
		return
	}

	rows, err := transactionsInRange(r, kind, userID)
	if err != nil {
		http.Error(w, "could not compute stats", http.StatusInternalServerError)
		return
	}

	var result stats.Basic
	if kind == models.KindIncome {
		result = stats.BasicStats(nil, command.Amounts(rows))
	} else {
		result = stats.BasicStats(command.Amounts(rows), nil)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetAdvancedExpenseStatsHandler godoc
// @Summary Median, average and deviation of expense amounts for a period
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param period query string false "Relative period: day, week, month or year"
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} stats.Advanced
// @Failure 500 {string} string "Internal error"
// @Router /stats/expenses/advanced [get]
func GetAdvancedExpenseStatsHandler(w http.ResponseWriter, r *http.Request) {
	advancedStats(w, r, models.KindExpense)
}

// GetAdvancedIncomeStatsHandler godoc
// @Summary Median, average and deviation of income amounts for a period
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param period query string false "Relative period: day, week, month or year"
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} stats.Advanced
// @Failure 500 {string} string "Internal error"
// @Router /stats/incomes/advanced [get]
func GetAdvancedIncomeStatsHandler(w http.ResponseWriter, r *http.Request) {
	advancedStats(w, r, models.KindIncome)
}

func advancedStats(w http.ResponseWriter, r *http.Request, kind models.TransactionKind) {
	userID, err := GetUserID(r)
	if err != nil {
		http.Error(w, "missing or invalid token", http.StatusUnauthorized)
		return
	}

	rows, err := transactionsInRange(r, kind, userID)
	if err != nil {
		http.Error(w, "could not compute stats", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats.AdvancedStats(command.Amounts(rows)))
}

func transactionsInRange(r *http.Request, kind models.TransactionKind, userID int) ([]models.Transaction, error) {
	q := r.URL.Query()
	filter := &command.Filter{Period: q.Get("period")}
	if start, end := q.Get("start"), q.Get("end"); start != "" || end != "" {
		filter.Range = &command.Range{Start: start, End: end}
	}

	start, end := command.ResolveRange(filter, time.Now())
	return transactionRepo.Filter(kind, userID, repo.TransactionFilter{
		StartDate: start,
		EndDate:   end,
	})
}
