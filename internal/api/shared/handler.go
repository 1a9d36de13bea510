package shared

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Anastasia-front/contacts-api/internal/platform/logger"
	"github.com/Anastasia-front/contacts-api/internal/redact"
)

// HandlerFunc is a controller: it either writes a success response or
// returns an error for the terminal handler. Controllers never write errors
// themselves.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Wrap adapts a HandlerFunc to http.HandlerFunc, forwarding any returned
// error to HandleError.
func Wrap(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			HandleError(w, r, err)
		}
	}
}

// HandleError is the terminal stage of every request. It translates err with
// MapError and writes {"message": ...} with the resulting status.
//
// 5xx errors are logged at ERROR with the redacted cause; 4xx at DEBUG.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	httpErr := MapError(err)

	log := logger.FromContextOrDefault(r.Context(), slog.Default())
	level := slog.LevelDebug
	if httpErr.Status >= http.StatusInternalServerError {
		level = slog.LevelError
	} else if httpErr.Status == http.StatusTooManyRequests {
		level = slog.LevelWarn
	}

	log.LogAttrs(r.Context(), level, "API error response",
		slog.String("trace_id", GetTraceID(r.Context())),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status_code", httpErr.Status),
		slog.String("message", httpErr.Message),
		slog.String("error", redact.Error(err)),
		slog.String("error_type", fmt.Sprintf("%T", err)),
	)

	RespondWithJSON(w, r, httpErr.Status, MessageResponse{Message: httpErr.Message})
}

// NotFound answers requests that matched no route.
func NotFound(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, r, http.StatusNotFound, MessageResponse{Message: MsgNotFound})
}
