package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
)

func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				// Logging runs inside Recovery, so the id is only on the response header.
				requestID := RequestID(r.Context())
				if requestID == "" {
					requestID = w.Header().Get(requestIDHeader)
				}
				slog.Error("panic recovered",
					"request_id", requestID,
					"error", fmt.Sprintf("%v", recovered),
					"stack", string(debug.Stack()))
				writeErrorEnvelope(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
