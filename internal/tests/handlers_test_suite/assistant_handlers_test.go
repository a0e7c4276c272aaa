package handlers_test_suite

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	api "github.com/moneta-app/finance-tracker/internal/http"
	handler "github.com/moneta-app/finance-tracker/internal/http/handlers"
)

func askAssistant(t *testing.T, r http.Handler, message string) *handler.AssistantQueryResponse {
	t.Helper()

	w := doJSON(r, http.MethodPost, "/assistant/query", handler.AssistantQueryRequest{Message: message})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.AssistantQueryResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	return &resp
}

func TestAssistantQueryHandler_AddExpense(t *testing.T) {
	t.Cleanup(clearAllTransactions)
	r := api.NewRouter()

	model.reply = `{"action":"addExpense","amount":45,"category":"food","description":"groceries","date":"2025-10-20"}`
	model.err = nil

	resp := askAssistant(t, r, "I spent 45 on groceries")

	if !resp.Success {
		t.Error("expected success")
	}
	msg, ok := resp.Response.(string)
	if !ok {
		t.Fatalf("expected a confirmation string, got %T", resp.Response)
	}
	if !strings.Contains(msg, "45") || !strings.Contains(msg, "food") {
		t.Errorf("unexpected confirmation: %q", msg)
	}

	w := doJSON(r, http.MethodGet, "/expenses/search?category=food", nil)
	var search handler.TransactionsSearchResult
	json.NewDecoder(w.Body).Decode(&search)
	if len(search.Data) != 1 {
		t.Fatalf("expected the expense to be recorded, found %d", len(search.Data))
	}
	if search.Data[0].Amount != 45 {
		t.Errorf("expected amount 45, got %v", search.Data[0].Amount)
	}
}

func TestAssistantQueryHandler_FencedReply(t *testing.T) {
	t.Cleanup(clearAllTransactions)
	r := api.NewRouter()

	model.reply = "```json\n{\"action\":\"addIncome\",\"amount\":2500,\"category\":\"salary\"}\n```"
	model.err = nil

	resp := askAssistant(t, r, "got my salary of 2500")
	if !resp.Success {
		t.Error("expected success for fenced model reply")
	}

	w := doJSON(r, http.MethodGet, "/incomes/search", nil)
	var search handler.TransactionsSearchResult
	json.NewDecoder(w.Body).Decode(&search)
	if len(search.Data) != 1 {
		t.Errorf("expected the income to be recorded, found %d", len(search.Data))
	}
}

func TestAssistantQueryHandler_TotalBalance(t *testing.T) {
	t.Cleanup(clearAllTransactions)
	r := api.NewRouter()

	createTransaction(r, "/incomes", handler.TransactionRequest{
		Description: "Salary", Amount: amountPtr(2500), Category: "salary", Date: "2025-10-01",
	})
	createTransaction(r, "/expenses", handler.TransactionRequest{
		Description: "Rent", Amount: amountPtr(800), Category: "housing", Date: "2025-10-02",
	})

	model.reply = `{"action":"getTotalBalance"}`
	model.err = nil

	resp := askAssistant(t, r, "what's my balance?")

	result, ok := resp.Response.(map[string]any)
	if !ok {
		t.Fatalf("expected an object response, got %T", resp.Response)
	}
	if result["totalBalance"] != 1700.0 {
		t.Errorf("expected totalBalance 1700, got %v", result["totalBalance"])
	}
}

func TestAssistantQueryHandler_UnknownAction(t *testing.T) {
	t.Cleanup(clearAllTransactions)
	r := api.NewRouter()

	model.reply = `{"action":"transferMoney","amount":100}`
	model.err = nil

	resp := askAssistant(t, r, "send 100 to bob")
	if !resp.Success {
		t.Error("unsupported actions should still produce a successful reply")
	}
	msg, ok := resp.Response.(string)
	if !ok || !strings.Contains(msg, "transferMoney") {
		t.Errorf("expected a message naming the unsupported action, got %v", resp.Response)
	}
}

func TestAssistantQueryHandler_GarbageReply(t *testing.T) {
	t.Cleanup(clearAllTransactions)
	r := api.NewRouter()

	model.reply = "I'm sorry, I cannot help with that."
	model.err = nil

	w := doJSON(r, http.MethodPost, "/assistant/query", handler.AssistantQueryRequest{Message: "???"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var resp handler.AssistantErrorResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Success {
		t.Error("expected success=false")
	}
	if strings.Contains(resp.Error, "sorry, I cannot") {
		t.Error("raw model output must not leak into the error message")
	}
}

func TestAssistantQueryHandler_ValidationError(t *testing.T) {
	t.Cleanup(clearAllTransactions)
	r := api.NewRouter()

	model.reply = `{"action":"addExpense","category":"food"}`
	model.err = nil

	w := doJSON(r, http.MethodPost, "/assistant/query", handler.AssistantQueryRequest{Message: "add an expense"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a command missing its amount, got %d", w.Code)
	}
}

func TestAssistantQueryHandler_ModelFailure(t *testing.T) {
	t.Cleanup(clearAllTransactions)
	r := api.NewRouter()

	model.reply = ""
	model.err = errors.New("upstream unavailable")

	w := doJSON(r, http.MethodPost, "/assistant/query", handler.AssistantQueryRequest{Message: "hello"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var resp handler.AssistantErrorResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if strings.Contains(resp.Error, "upstream unavailable") {
		t.Error("upstream error details must not leak to the client")
	}
}

func TestAssistantQueryHandler_EmptyMessage(t *testing.T) {
	t.Cleanup(clearAllTransactions)
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/assistant/query", handler.AssistantQueryRequest{Message: "  "})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty message, got %d", w.Code)
	}
}
