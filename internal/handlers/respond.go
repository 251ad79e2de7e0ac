package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/gestorai/gestorai/internal/auth"
	"github.com/gestorai/gestorai/internal/domain"
	"github.com/gestorai/gestorai/internal/middleware"
)

const maxJSONBody = 1 << 20

// Logger interface for handlers
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// writeJSON is a helper for sending JSON responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError is a helper for sending JSON error responses.
func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps a service error onto its status. Only AppError
// messages reach the client; anything else becomes a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger Logger, err error) {
	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		logger.Error("unclassified service error", "path", r.URL.Path, "request_id", middleware.RequestIDFrom(r.Context()), "error", err)
		writeError(w, "Erro interno no servidor.", http.StatusInternalServerError)
		return
	}

	status := statusFor(appErr.Type)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			"operation", appErr.Operation,
			"path", r.URL.Path,
			"request_id", middleware.RequestIDFrom(r.Context()),
			"error", err,
		)
	}
	writeError(w, appErr.Message, status)
}

func statusFor(t domain.ErrorType) int {
	switch t {
	case domain.ErrTypeValidation:
		return http.StatusBadRequest
	case domain.ErrTypeUnauthorized:
		return http.StatusUnauthorized
	case domain.ErrTypeConflict:
		return http.StatusConflict
	case domain.ErrTypeNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// decodeJSON reads a bounded JSON body into dst. An empty body leaves dst untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// identity returns the caller set by the auth guard. Routes without the guard
// never call it.
func identity(r *http.Request) auth.Identity {
	id, _ := middleware.IdentityFrom(r.Context())
	return id
}

func pathID(r *http.Request, name string) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
