package repo

import (
	"strings"
	"sync"

	"github.com/moneta-app/finance-tracker/internal/models"
)

// InMemoryTransactionRepository is an in-memory implementation of
// TransactionRepository, used by the handler and dispatcher test suites.
// It is mutex-guarded because the assistant tests exercise it concurrently.
type InMemoryTransactionRepository struct {
	mu           sync.Mutex
	transactions []models.Transaction
	nextID       int
}

// NewInMemoryTransactionRepository creates a new instance of InMemoryTransactionRepository.
func NewInMemoryTransactionRepository() *InMemoryTransactionRepository {
	return &InMemoryTransactionRepository{
		transactions: []models.Transaction{},
		nextID:       1,
	}
}

func (r *InMemoryTransactionRepository) Create(t models.Transaction) (models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = r.nextID
	r.nextID++
	r.transactions = append(r.transactions, t)
	return t, nil
}

func (r *InMemoryTransactionRepository) GetByID(kind models.TransactionKind, id, userID int) (models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.transactions {
		if t.Kind == kind && t.ID == id && t.UserID == userID {
			return t, nil
		}
	}
	return models.Transaction{}, ErrTransactionNotFound
}

func (r *InMemoryTransactionRepository) Update(t models.Transaction) (models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.transactions {
		if existing.Kind == t.Kind && existing.ID == t.ID && existing.UserID == t.UserID {
			r.transactions[i] = t
			return t, nil
		}
	}
	return models.Transaction{}, ErrTransactionNotFound
}

func (r *InMemoryTransactionRepository) Delete(kind models.TransactionKind, id, userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.transactions {
		if t.Kind == kind && t.ID == id && t.UserID == userID {
			r.transactions = append(r.transactions[:i], r.transactions[i+1:]...)
			return nil
		}
	}
	return ErrTransactionNotFound
}

func (r *InMemoryTransactionRepository) Filter(kind models.TransactionKind, userID int, f TransactionFilter) ([]models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := []models.Transaction{}
	for _, t := range r.transactions {
		if t.Kind == kind && t.UserID == userID && matchesFilter(t, f) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

func (r *InMemoryTransactionRepository) SumByKind(kind models.TransactionKind, userID int) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var total float64
	for _, t := range r.transactions {
		if t.Kind == kind && t.UserID == userID {
			total += t.Amount
		}
	}
	return total, nil
}

// Clear removes all transactions. Test helper.
func (r *InMemoryTransactionRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transactions = []models.Transaction{}
	r.nextID = 1
}

func matchesFilter(t models.Transaction, f TransactionFilter) bool {
	if f.Category != "" && !strings.Contains(strings.ToLower(t.Category), strings.ToLower(f.Category)) {
		return false
	}
	if f.Date != "" && t.Date != f.Date {
		return false
	}
	if f.Amount != nil && t.Amount != *f.Amount {
		return false
	}
	// ISO dates compare correctly as strings
	if f.StartDate != "" && t.Date < f.StartDate {
		return false
	}
	if f.EndDate != "" && t.Date > f.EndDate {
		return false
	}
	return true
}
