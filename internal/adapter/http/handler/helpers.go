package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/iho/payledger/internal/adapter/http/dto"
	"github.com/iho/payledger/internal/domain"
)

// writeJSON writes a success envelope.
func writeJSON(w http.ResponseWriter, status int, data any) {
	writeEnvelope(w, status, dto.Response{Success: true, Data: data})
}

// writeMessage writes a success envelope with a message and optional data.
func writeMessage(w http.ResponseWriter, status int, data any, message string) {
	writeEnvelope(w, status, dto.Response{Success: true, Data: data, Message: message})
}

// writeList writes a success envelope with pagination.
func writeList(w http.ResponseWriter, data any, pagination *dto.Pagination) {
	writeEnvelope(w, http.StatusOK, dto.Response{Success: true, Data: data, Pagination: pagination})
}

func writeEnvelope(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{Success: false, Error: message})
}

// writeDomainError maps a domain error to an HTTP status and writes it.
// Unexpected errors surface a generic message only.
func writeDomainError(w http.ResponseWriter, err error, fallback string) {
	status := mapDomainError(err)
	if status == http.StatusInternalServerError {
		writeError(w, status, fallback)
		return
	}

	writeError(w, status, err.Error())
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrPaymentNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNothingToUpdate),
		errors.Is(err, domain.ErrInvalidAccountName),
		errors.Is(err, domain.ErrInvalidDescription),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidPaymentType),
		errors.Is(err, domain.ErrInvalidAccountID),
		errors.Is(err, domain.ErrNegativeBalance):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseIDParam parses the {id} URL parameter.
func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

// parseInt64Query parses an int64 query parameter, 0 when absent or invalid.
func parseInt64Query(r *http.Request, key string) int64 {
	val := r.URL.Query().Get(key)
	if val == "" {
		return 0
	}
	i, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0
	}
	return i
}
