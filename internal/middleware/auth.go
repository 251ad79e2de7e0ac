package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gestorai/gestorai/internal/auth"
)

// NewAuthGuard rejects requests without a valid bearer token and puts the
// verified identity in the request context.
func NewAuthGuard(tokens *auth.TokenManager, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeJSONError(w, http.StatusUnauthorized, "Token não fornecido.")
				return
			}

			identity, err := tokens.Verify(token)
			if err != nil {
				logger.Warn("rejected bearer token",
					"path", r.URL.Path,
					"request_id", RequestIDFrom(r.Context()),
					"error", err,
				)
				writeJSONError(w, http.StatusUnauthorized, "Token inválido.")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
