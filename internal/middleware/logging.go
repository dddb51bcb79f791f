package middleware

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// errorBody is the part of the response envelope read back for logging.
type errorBody struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
}

// RequestID returns the id assigned to the request by Logging, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, requestID)
		r = r.WithContext(context.WithValue(r.Context(), requestIDKey{}, requestID))

		started := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		defer func() {
			// A panic still gets an access line; Recovery above writes the response.
			if recovered := recover(); recovered != nil {
				wrapped.status = http.StatusInternalServerError
				logRequest(r, wrapped, requestID, started)
				panic(recovered)
			}
		}()

		next.ServeHTTP(wrapped, r)
		logRequest(r, wrapped, requestID, started)
	})
}

func logRequest(r *http.Request, wrapped *responseWriter, requestID string, started time.Time) {
	attrs := []any{
		"request_id", requestID,
		"method", r.Method,
		"path", r.URL.Path,
		"status", wrapped.status,
		"duration_ms", time.Since(started).Milliseconds(),
		"client_ip", r.RemoteAddr,
	}

	if wrapped.status >= 400 && r.URL.RawQuery != "" {
		attrs = append(attrs, "query", r.URL.RawQuery)
	}

	if wrapped.status >= 400 && wrapped.body.Len() > 0 {
		var parsed errorBody
		if err := json.Unmarshal(wrapped.body.Bytes(), &parsed); err == nil && parsed.Error != nil {
			attrs = append(attrs, "error_code", parsed.Error.Code, "error_message", parsed.Error.Message)
			if parsed.Error.Details != "" {
				attrs = append(attrs, "error_details", parsed.Error.Details)
			}
		}
	}

	switch {
	case wrapped.status >= 500:
		slog.Error("request", attrs...)
	case wrapped.status >= 400:
		slog.Warn("request", attrs...)
	default:
		slog.Info("request", attrs...)
	}
}

type responseWriter struct {
	http.ResponseWriter
	status      int
	body        bytes.Buffer
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if rw.wroteHeader {
		return
	}
	rw.status = statusCode
	rw.wroteHeader = true
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	// Only error bodies are buffered.
	if rw.status >= 400 {
		rw.body.Write(b)
	}
	return rw.ResponseWriter.Write(b)
}

// Hijack lets the websocket upgrade pass through the logging wrapper.
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := rw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not support hijacking")
	}
	return hijacker.Hijack()
}
