package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MrSnakeDoc/slatrack/internal/domain"
	"github.com/MrSnakeDoc/slatrack/internal/httpserver/deps"
	"github.com/MrSnakeDoc/slatrack/internal/logger"
)

// Short error codes carried in the error body alongside the human message.
const (
	codeNotFound   = "not_found"
	codeValidation = "validation_error"
	codeInternal   = "internal_error"
)

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: codeValidation, Message: message})
}

func notFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, errorBody{Error: codeNotFound, Message: message})
}

// writeDomainError maps registry/store errors onto the HTTP error contract.
func writeDomainError(w http.ResponseWriter, d deps.Deps, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		notFound(w, err.Error())
	case errors.Is(err, domain.ErrDuplicateName),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrStatusUnchanged):
		badRequest(w, err.Error())
	default:
		d.Logger.Error("request failed", logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorBody{
			Error:   codeInternal,
			Message: "internal server error",
		})
	}
}
