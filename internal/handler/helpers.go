package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/vyanckus/food-delivery-api/internal/catalog"
	"github.com/vyanckus/food-delivery-api/internal/order"
)

// ErrorResponse is the error body shared by every endpoint.
type ErrorResponse struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
}

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("handler: failed to marshal JSON response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"Internal server error","status":500}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		log.Error().Err(err).Msg("handler: failed to write JSON response")
	}
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
		Status:    code,
	})
}

// respondWithDomainError maps a typed domain error to its HTTP status.
// Anything uncategorized becomes a generic 500: the detail stays in the log
// and is not returned to the caller.
func respondWithDomainError(w http.ResponseWriter, err error) {
	statusCode := mapErrorToStatusCode(err)

	if statusCode == http.StatusInternalServerError {
		log.Error().Err(err).Msg("handler: unexpected error")
		respondWithError(w, statusCode, "Internal server error")
		return
	}

	log.Warn().Int("status", statusCode).Msg(err.Error())
	respondWithError(w, statusCode, err.Error())
}

func mapErrorToStatusCode(err error) int {
	var categoryNotFound *catalog.CategoryNotFoundError
	var productNotFound *catalog.ProductNotFoundError
	var invalidOrder *order.InvalidOrderError

	switch {
	case errors.As(err, &categoryNotFound), errors.As(err, &productNotFound):
		return http.StatusNotFound
	case errors.As(err, &invalidOrder):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
