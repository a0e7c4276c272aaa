package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/moneta-app/finance-tracker/internal/models"
)

type PostgresTransactionRepository struct {
	db *sql.DB
}

func NewPostgresTransactionRepository(db *sql.DB) *PostgresTransactionRepository {
	return &PostgresTransactionRepository{db: db}
}

func (r *PostgresTransactionRepository) Create(t models.Transaction) (models.Transaction, error) {
	query := `INSERT INTO transactions (kind, description, amount, category, date, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query,
		t.Kind, t.Description, t.Amount, t.Category, t.Date, t.UserID, t.CreatedAt, t.UpdatedAt).Scan(&t.ID)
	if err != nil && strings.Contains(err.Error(), "unique constraint") {
		return models.Transaction{}, ErrDuplicatedValueUnique
	}
	return t, err
}

func (r *PostgresTransactionRepository) GetByID(kind models.TransactionKind, id, userID int) (models.Transaction, error) {
	query := `SELECT id, description, amount, category, to_char(date, 'YYYY-MM-DD'), user_id
		FROM transactions WHERE kind = $1 AND id = $2 AND user_id = $3`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	t := models.Transaction{Kind: kind}
	err := r.db.QueryRowContext(ctx, query, kind, id, userID).
		Scan(&t.ID, &t.Description, &t.Amount, &t.Category, &t.Date, &t.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Transaction{}, ErrTransactionNotFound
	}
	return t, err
}

func (r *PostgresTransactionRepository) Update(t models.Transaction) (models.Transaction, error) {
	query := `UPDATE transactions SET description = $1, amount = $2, category = $3, date = $4, updated_at = $5
		WHERE kind = $6 AND id = $7 AND user_id = $8`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query,
		t.Description, t.Amount, t.Category, t.Date, t.UpdatedAt, t.Kind, t.ID, t.UserID)
	if err != nil {
		return models.Transaction{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Transaction{}, ErrTransactionNotFound
	}
	return t, nil
}

func (r *PostgresTransactionRepository) Delete(kind models.TransactionKind, id, userID int) error {
	query := `DELETE FROM transactions WHERE kind = $1 AND id = $2 AND user_id = $3`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, kind, id, userID)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

func (r *PostgresTransactionRepository) Filter(kind models.TransactionKind, userID int, f TransactionFilter) ([]models.Transaction, error) {
	conditions, args, _ := transactionConditions(kind, userID, f)

	query := `SELECT id, description, amount, category, to_char(date, 'YYYY-MM-DD'), user_id
		FROM transactions WHERE 1=1` + conditions + " ORDER BY date, id"

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		t := models.Transaction{Kind: kind}
		if err := rows.Scan(&t.ID, &t.Description, &t.Amount, &t.Category, &t.Date, &t.UserID); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func (r *PostgresTransactionRepository) SumByKind(kind models.TransactionKind, userID int) (float64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE kind = $1 AND user_id = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var total float64
	err := r.db.QueryRowContext(ctx, query, kind, userID).Scan(&total)
	return total, err
}

func transactionConditions(kind models.TransactionKind, userID int, f TransactionFilter) (string, []any, int) {
	query := ""
	argIdx := 1
	args := []any{}

	query += fmt.Sprintf(" AND kind = $%d", argIdx)
	args = append(args, kind)
	argIdx++
	query += fmt.Sprintf(" AND user_id = $%d", argIdx)
	args = append(args, userID)
	argIdx++

	if f.Category != "" {
		query += fmt.Sprintf(" AND category ILIKE $%d", argIdx)
		args = append(args, "%"+f.Category+"%")
		argIdx++
	}
	if f.Date != "" {
		query += fmt.Sprintf(" AND date = $%d", argIdx)
		args = append(args, f.Date)
		argIdx++
	}
	if f.Amount != nil {
		query += fmt.Sprintf(" AND amount = $%d", argIdx)
		args = append(args, *f.Amount)
		argIdx++
	}
	if f.StartDate != "" {
		query += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, f.StartDate)
		argIdx++
	}
	if f.EndDate != "" {
		query += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, f.EndDate)
		argIdx++
	}

	return query, args, argIdx
}
