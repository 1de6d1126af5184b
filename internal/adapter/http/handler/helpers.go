package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/kioko/vaultledger/internal/adapter/http/dto"
	"github.com/kioko/vaultledger/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrVaultNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrClientNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCashCountNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrProcessingNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCashCountAlreadyReceived):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInsufficientVaultFunds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAmountDenominationsDrift):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNegativeDenomination):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidDate):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrReceiveFailed):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
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

// parseDateQuery parses the date query parameter. ok is false when the
// parameter is absent.
func parseDateQuery(r *http.Request) (day domain.CalendarDate, ok bool, err error) {
	val := r.URL.Query().Get("date")
	if val == "" {
		return domain.CalendarDate{}, false, nil
	}
	day, err = domain.ParseCalendarDate(val)
	return day, err == nil, err
}
