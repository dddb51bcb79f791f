package middleware

import (
	"encoding/json"
	"net/http"

	"estate-ledger/internal/model"
)

// writeErrorEnvelope writes the same error envelope the handlers emit.
func writeErrorEnvelope(w http.ResponseWriter, status int, code string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Success: false,
		Error:   &model.APIError{Code: code, Message: message},
	})
}
