package handlers

import (
	"net/http"
	"strings"

	"github.com/gestorai/gestorai/internal/dtos"
)

type LogHandler struct {
	logger Logger
}

func NewLogHandler(logger Logger) *LogHandler {
	return &LogHandler{logger: logger}
}

// LogFrontendEvent handles POST /api/log, forwarding browser logs into the
// server log at the level the client asked for.
func (h *LogHandler) LogFrontendEvent(w http.ResponseWriter, r *http.Request) {
	var payload dtos.ClientLogDTO
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, "Corpo da requisição inválido.", http.StatusBadRequest)
		return
	}
	payload.Level = strings.ToLower(strings.TrimSpace(payload.Level))
	if err := dtos.Validate(payload); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	keysAndValues := []interface{}{"source", "client", "context", payload.Context}
	switch payload.Level {
	case "error":
		h.logger.Error(payload.Message, keysAndValues...)
	case "warn":
		h.logger.Warn(payload.Message, keysAndValues...)
	case "debug":
		h.logger.Debug(payload.Message, keysAndValues...)
	default:
		h.logger.Info(payload.Message, keysAndValues...)
	}

	w.WriteHeader(http.StatusNoContent)
}
