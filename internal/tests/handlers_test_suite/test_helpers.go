package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"golang.org/x/crypto/bcrypt"

	"github.com/moneta-app/finance-tracker/internal/ai"
	"github.com/moneta-app/finance-tracker/internal/auth"
	"github.com/moneta-app/finance-tracker/internal/command"
	api "github.com/moneta-app/finance-tracker/internal/http"
	handler "github.com/moneta-app/finance-tracker/internal/http/handlers"
	rl "github.com/moneta-app/finance-tracker/internal/http/rate_limiter"
	"github.com/moneta-app/finance-tracker/internal/models"
	"github.com/moneta-app/finance-tracker/internal/repo"
)

var (
	token           string
	transactionRepo *repo.InMemoryTransactionRepository
	userRepo        *repo.InMemoryUserRepository
	refreshStore    *auth.MemoryRefreshStore
	model           *scriptedModel
)

// scriptedModel stands in for the language model: each test assigns the reply
// it should hand back.
type scriptedModel struct {
	reply string
	err   error
}

func (m *scriptedModel) Complete(_ context.Context, _, _ string) (string, error) {
	return m.reply, m.err
}

func init() {
	setupTestRepos("secret")
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	transactionRepo = repo.NewInMemoryTransactionRepository()
	handler.SetTransactionRepo(transactionRepo)

	userRepo = repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	refreshStore = auth.NewMemoryRefreshStore()
	handler.SetRefreshStore(refreshStore)

	model = &scriptedModel{}
	handler.SetInterpreter(ai.NewInterpreter(model, command.NewDispatcher(transactionRepo)))

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: string(hash),
	})
}

func clearAllTransactions() {
	transactionRepo.Clear()
}

func resetRateLimiter() {
	rl.CleanupAllVisitors()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func doJSON(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createTransaction(r http.Handler, path string, t handler.TransactionRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, path, t)
}

func amountPtr(v float64) *float64 { return &v }
