package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/moneta-app/finance-tracker/internal/http"
	handler "github.com/moneta-app/finance-tracker/internal/http/handlers"
)

func postCredentials(r http.Handler, path, username, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(handler.CredentialsRequest{Username: username, Password: password})
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterHandler(t *testing.T) {
	resetRateLimiter()
	r := api.NewRouter()

	w := postCredentials(r, "/register", "alice", "s3cret")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp handler.RegisterResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token for the new user")
	}
}

func TestRegisterHandler_DuplicateUsername(t *testing.T) {
	resetRateLimiter()
	r := api.NewRouter()

	if w := postCredentials(r, "/register", "bob", "pw"); w.Code != http.StatusCreated {
		t.Fatalf("first registration failed: %d", w.Code)
	}
	w := postCredentials(r, "/register", "bob", "pw")
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 Conflict, got %d", w.Code)
	}
}

func TestRegisterHandler_MissingFields(t *testing.T) {
	resetRateLimiter()
	r := api.NewRouter()

	w := postCredentials(r, "/register", "", "pw")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty username, got %d", w.Code)
	}

	w = postCredentials(r, "/register", "carol", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty password, got %d", w.Code)
	}
}

func TestLoginHandler(t *testing.T) {
	resetRateLimiter()
	r := api.NewRouter()

	w := postCredentials(r, "/login", "admin", "secret")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Token == "" || resp.RefreshToken == "" {
		t.Errorf("expected both tokens, got %+v", resp)
	}
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	resetRateLimiter()
	r := api.NewRouter()

	w := postCredentials(r, "/login", "admin", "wrong")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestLoginHandler_UnknownUser(t *testing.T) {
	resetRateLimiter()
	r := api.NewRouter()

	w := postCredentials(r, "/login", "nobody", "pw")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestRefreshHandler(t *testing.T) {
	resetRateLimiter()
	r := api.NewRouter()

	w := postCredentials(r, "/login", "admin", "secret")
	var login handler.LoginResult
	json.NewDecoder(w.Body).Decode(&login)

	body, _ := json.Marshal(handler.RefreshRequest{RefreshToken: login.RefreshToken})
	req := httptest.NewRequest(http.MethodPost, "/refresh", bytes.NewReader(body))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var refreshed handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&refreshed); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if refreshed.Token == "" {
		t.Error("expected a fresh access token")
	}
}

func TestRefreshHandler_UnknownToken(t *testing.T) {
	resetRateLimiter()
	r := api.NewRouter()

	body, _ := json.Marshal(handler.RefreshRequest{RefreshToken: "not-a-token"})
	req := httptest.NewRequest(http.MethodPost, "/refresh", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestLogoutHandler_RevokesRefreshToken(t *testing.T) {
	resetRateLimiter()
	r := api.NewRouter()

	w := postCredentials(r, "/login", "admin", "secret")
	var login handler.LoginResult
	json.NewDecoder(w.Body).Decode(&login)

	w = doJSON(r, http.MethodPost, "/logout", handler.RefreshRequest{RefreshToken: login.RefreshToken})
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	body, _ := json.Marshal(handler.RefreshRequest{RefreshToken: login.RefreshToken})
	req := httptest.NewRequest(http.MethodPost, "/refresh", bytes.NewReader(body))
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)

	if w2.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 after revocation, got %d", w2.Code)
	}
}

func TestLoginRateLimiting(t *testing.T) {
	resetRateLimiter()
	t.Cleanup(resetRateLimiter)
	r := api.NewRouter()

	limited := false
	for i := 0; i < 20; i++ {
		w := postCredentials(r, "/login", "admin", "wrong")
		if w.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	if !limited {
		t.Error("expected a 429 after exhausting the rate limit burst")
	}
}
