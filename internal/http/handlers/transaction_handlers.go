package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/moneta-app/finance-tracker/internal/models"
	"github.com/moneta-app/finance-tracker/internal/repo"
)

// CreateExpenseHandler godoc
// @Summary Record a new expense
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param transaction body TransactionRequest true "Expense to record"
// @Success 201 {object} TransactionResponse
// @Failure 400 {array} TransactionValidationError
// @Failure 500 {string} string "Internal error"
// @Router /expenses [post]
func CreateExpenseHandler(w http.ResponseWriter, r *http.Request) {
	createTransaction(w, r, models.KindExpense)
}

// CreateIncomeHandler godoc
// @Summary Record a new income
// @Tags incomes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param transaction body TransactionRequest true "Income to record"
// @Success 201 {object} TransactionResponse
// @Failure 400 {array} TransactionValidationError
// @Failure 500 {string} string "Internal error"
// @Router /incomes [post]
func CreateIncomeHandler(w http.ResponseWriter, r *http.Request) {
	createTransaction(w, r, models.KindIncome)
}

func createTransaction(w http.ResponseWriter, r *http.Request, kind models.TransactionKind) {
	userID, err := GetUserID(r)
	if err != nil {
		http.Error(w, "missing or invalid token", http.StatusUnauthorized)
		return
	}

	var req TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateTransaction(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	now := time.Now().Format(time.RFC3339)
	created, err := transactionRepo.Create(models.Transaction{
		Kind:        kind,
		Description: req.Description,
		Amount:      *req.Amount,
		Category:    req.Category,
		Date:        date,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		http.Error(w, "could not create "+string(kind), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toTransactionResponse(created))
}

// GetExpenseByIDHandler godoc
// @Summary Get an expense by ID
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Expense ID"
// @Success 200 {object} TransactionResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /expenses/{id} [get]
func GetExpenseByIDHandler(w http.ResponseWriter, r *http.Request) {
	getTransactionByID(w, r, models.KindExpense)
}

// GetIncomeByIDHandler godoc
// @Summary Get an income by ID
// @Tags incomes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Income ID"
// @Success 200 {object} TransactionResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /incomes/{id} [get]
func GetIncomeByIDHandler(w http.ResponseWriter, r *http.Request) {
	getTransactionByID(w, r, models.KindIncome)
}

func getTransactionByID(w http.ResponseWriter, r *http.Request, kind models.TransactionKind) {
	userID, err := GetUserID(r)
	if err != nil {
		http.Error(w, "missing or invalid token", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid transaction ID", http.StatusBadRequest)
		return
	}

	transaction, err := transactionRepo.GetByID(kind, id, userID)
	if err != nil {
		if errors.Is(err, repo.ErrTransactionNotFound) {
			http.Error(w, string(kind)+" not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch "+string(kind), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toTransactionResponse(transaction))
}

// UpdateExpenseHandler godoc
// @Summary Update an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Expense ID"
// @Param transaction body TransactionRequest true "Updated expense"
// @Success 200 {object} TransactionResponse
// @Failure 400 {array} TransactionValidationError
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /expenses/{id} [put]
func UpdateExpenseHandler(w http.ResponseWriter, r *http.Request) {
	updateTransaction(w, r, models.KindExpense)
}

// UpdateIncomeHandler godoc
// @Summary Update an income
// @Tags incomes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Income ID"
// @Param transaction body TransactionRequest true "Updated income"
// @Success 200 {object} TransactionResponse
// @Failure 400 {array} TransactionValidationError
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /incomes/{id} [put]
func UpdateIncomeHandler(w http.ResponseWriter, r *http.Request) {
	updateTransaction(w, r, models.KindIncome)
}

func updateTransaction(w http.ResponseWriter, r *http.Request, kind models.TransactionKind) {
	userID, err := GetUserID(r)
	if err != nil {
		http.Error(w, "missing or invalid token", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid transaction ID", http.StatusBadRequest)
		return
	}

	var req TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateTransaction(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	// Keep the stored date when the update omits it.
	date := req.Date
	if date == "" {
		existing, err := transactionRepo.GetByID(kind, id, userID)
		if err != nil {
			if errors.Is(err, repo.ErrTransactionNotFound) {
				http.Error(w, string(kind)+" not found", http.StatusNotFound)
				return
			}
			http.Error(w, "could not fetch "+string(kind), http.StatusInternalServerError)
			return
		}
		date = existing.Date
	}

	updated, err := transactionRepo.Update(models.Transaction{
		ID:          id,
		Kind:        kind,
		Description: req.Description,
		Amount:      *req.Amount,
		Category:    req.Category,
		Date:        date,
		UserID:      userID,
		UpdatedAt:   time.Now().Format(time.RFC3339),
	})
	if err != nil {
		if errors.Is(err, repo.ErrTransactionNotFound) {
			http.Error(w, string(kind)+" not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update "+string(kind), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toTransactionResponse(updated))
}

// DeleteExpenseHandler godoc
// @Summary Delete an expense
// @Tags expenses
// @Security BearerAuth
// @Param id path int true "Expense ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /expenses/{id} [delete]
func DeleteExpenseHandler(w http.ResponseWriter, r *http.Request) {
	deleteTransaction(w, r, models.KindExpense)
}

// DeleteIncomeHandler godoc
// @Summary Delete an income
// @Tags incomes
// @Security BearerAuth
// @Param id path int true "Income ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /incomes/{id} [delete]
func DeleteIncomeHandler(w http.ResponseWriter, r *http.Request) {
	deleteTransaction(w, r, models.KindIncome)
}

func deleteTransaction(w http.ResponseWriter, r *http.Request, kind models.TransactionKind) {
	userID, err := GetUserID(r)
	if err != nil {
		http.Error(w, "missing or invalid token", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid transaction ID", http.StatusBadRequest)
		return
	}

	if err := transactionRepo.Delete(kind, id, userID); err != nil {
		if errors.Is(err, repo.ErrTransactionNotFound) {
			http.Error(w, string(kind)+" not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete "+string(kind), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SearchExpensesHandler godoc
// @Summary Search expenses with filters
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param category query string false "Category substring"
// @Param date query string false "Exact calendar date (YYYY-MM-DD)"
// @Param amount query number false "Exact amount"
// @Success 200 {object} TransactionsSearchResult
// @Failure 500 {string} string "Internal error"
// @Router /expenses/search [get]
func SearchExpensesHandler(w http.ResponseWriter, r *http.Request) {
	searchTransactions(w, r, models.KindExpense)
}

// SearchIncomesHandler godoc
// @Summary Search incomes with filters
// @Tags incomes
// @Produce json
// @Security BearerAuth
// @Param category query string false "Category substring"
// @Param date query string false "Exact calendar date (YYYY-MM-DD)"
// @Param amount query number false "Exact amount"
// @Success 200 {object} TransactionsSearchResult
// @Failure 500 {string} string "Internal error"
// @Router /incomes/search [get]
func SearchIncomesHandler(w http.ResponseWriter, r *http.Request) {
	searchTransactions(w, r, models.KindIncome)
}

func searchTransactions(w http.ResponseWriter, r *http.Request, kind models.TransactionKind) {
	userID, err := GetUserID(r)
	if err != nil {
		http.Error(w, "missing or invalid token", http.StatusUnauthorized)
		return
	}

	q := r.URL.Query()
	filter := repo.TransactionFilter{
		Category: q.Get("category"),
		Date:     q.Get("date"),
		Amount:   parseFloatPtr(q.Get("amount")),
	}

	transactions, err := transactionRepo.Filter(kind, userID, filter)
	if err != nil {
		http.Error(w, "could not search "+string(kind)+"s", http.StatusInternalServerError)
		return
	}

	resp := TransactionsSearchResult{
		Data: make([]TransactionResponse, len(transactions)),
		Meta: Meta{TotalCount: len(transactions)},
	}
	for i, t := range transactions {
		resp.Data[i] = toTransactionResponse(t)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func parseFloatPtr(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
