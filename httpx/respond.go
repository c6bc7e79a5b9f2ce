package httpx

import (
	"encoding/json"
	"net/http"

	"qrdine/apperr"

	"go.uber.org/zap"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteError renders err as {"error": message} with the status of its kind.
// Only unclassified failures are logged; domain errors are the caller's concern.
func WriteError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError && logger != nil {
		logger.Error("request failed", zap.Error(err))
	}
	WriteJSON(w, status, map[string]string{"error": apperr.Message(err)})
}

// DecodeJSON decodes the request body into v, reporting malformed input as a
// validation error.
func DecodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Validation("invalid JSON format: %v", err)
	}
	return nil
}

func Health(service string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": service,
		})
	}
}
