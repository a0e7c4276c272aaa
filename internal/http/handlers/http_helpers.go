package handlers

import (
	"net/http"

	"github.com/moneta-app/finance-tracker/internal/auth"
)

// GetUserID extracts the authenticated user's id from the request's bearer
// token. The auth middleware has already rejected requests without one.
func GetUserID(r *http.Request) (int, error) {
	_, claims, err := auth.TokenClaims(r.Header.Get("Authorization"))
	if err != nil {
		return 0, err
	}
	return auth.UserIDFromClaims(claims)
}
