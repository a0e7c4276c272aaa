package handlers

import (
	"strings"
	"time"
)

type TransactionValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateTransaction(t TransactionRequest) []TransactionValidationError {
	errs := []TransactionValidationError{}
	if strings.TrimSpace(t.Description) == "" {
		errs = append(errs, TransactionValidationError{Field: "Description", Description: "Description is required"})
	}
	// Presence and positivity are distinct checks: an explicit 0 is rejected
	// for being non-positive, not for being absent.
	if t.Amount == nil {
		errs = append(errs, TransactionValidationError{Field: "Amount", Description: "Amount is required"})
	} else if *t.Amount <= 0 {
		errs = append(errs, TransactionValidationError{Field: "Amount", Description: "Amount must be greater than zero"})
	}
	if strings.TrimSpace(t.Category) == "" {
		errs = append(errs, TransactionValidationError{Field: "Category", Description: "Category is required"})
	}
	if t.Date != "" {
		if _, err := time.Parse("2006-01-02", t.Date); err != nil {
			errs = append(errs, TransactionValidationError{Field: "Date", Description: "Date must be in YYYY-MM-DD format"})
		}
	}
	return errs
}
