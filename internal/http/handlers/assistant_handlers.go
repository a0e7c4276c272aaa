package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/moneta-app/finance-tracker/internal/ai"
	"github.com/moneta-app/finance-tracker/internal/command"
)

// AssistantQueryHandler godoc
// @Summary Run a natural-language finance command
// @Description Interprets a free-text message ("add 45 for groceries") into a
// @Description structured command and executes it for the authenticated user.
// @Tags assistant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param query body AssistantQueryRequest true "Natural-language message"
// @Success 200 {object} AssistantQueryResponse
// @Failure 400 {object} AssistantErrorResponse
// @Failure 500 {object} AssistantErrorResponse
// @Router /assistant/query [post]
func AssistantQueryHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserID(r)
	if err != nil {
		http.Error(w, "missing or invalid token", http.StatusUnauthorized)
		return
	}

	var req AssistantQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		assistantError(w, http.StatusBadRequest, "message is required")
		return
	}

	result, err := interpreter.Query(r.Context(), req.Message, userID)
	if err != nil {
		var validation command.ValidationError
		switch {
		case errors.As(err, &validation):
			assistantError(w, http.StatusBadRequest, validation.Error())
		case errors.Is(err, ai.ErrInterpretation):
			assistantError(w, http.StatusInternalServerError, "could not understand the request")
		default:
			assistantError(w, http.StatusInternalServerError, "failed to process your request")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AssistantQueryResponse{Success: true, Response: result})
}

func assistantError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(AssistantErrorResponse{Success: false, Error: msg})
}
