package handlers

import (
	"github.com/moneta-app/finance-tracker/internal/ai"
	"github.com/moneta-app/finance-tracker/internal/auth"
	"github.com/moneta-app/finance-tracker/internal/repo"
)

var (
	transactionRepo repo.TransactionRepository
	userRepo        repo.UserRepository
	refreshStore    auth.RefreshTokenStore
	interpreter     *ai.Interpreter
)

func SetTransactionRepo(r repo.TransactionRepository) {
	transactionRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetRefreshStore(s auth.RefreshTokenStore) {
	refreshStore = s
}

func SetInterpreter(i *ai.Interpreter) {
	interpreter = i
}
