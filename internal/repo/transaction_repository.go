package repo

import (
	"errors"

	"github.com/moneta-app/finance-tracker/internal/models"
)

// TransactionRepository defines the interface for expense and income data
// operations. Every method takes the owner's user id as a mandatory predicate;
// a transaction is never visible outside queries scoped to its owner.
type TransactionRepository interface {
	Create(t models.Transaction) (models.Transaction, error)
	GetByID(kind models.TransactionKind, id, userID int) (models.Transaction, error)
	Update(t models.Transaction) (models.Transaction, error)
	Delete(kind models.TransactionKind, id, userID int) error
	Filter(kind models.TransactionKind, userID int, f TransactionFilter) ([]models.Transaction, error)
	SumByKind(kind models.TransactionKind, userID int) (float64, error)
}

// ErrTransactionNotFound is returned when a transaction does not exist or is
// owned by a different user.
var ErrTransactionNotFound = errors.New("transaction not found")

// ErrDuplicatedValueUnique is returned on unique constraint violations.
var ErrDuplicatedValueUnique = errors.New("duplicated value for unique field")
