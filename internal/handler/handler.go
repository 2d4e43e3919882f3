// Package handler provides HTTP request handlers.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/userecho/userecho/internal/handler/dto"
	"github.com/userecho/userecho/internal/middleware"
)

// Fixed response messages.
const (
	WelcomeMessage        = "Welcome to the userecho API, written in Go!"
	MsgRouteNotFound      = "Route not found"
	MsgInternalError      = "Internal server error"
	msgMissingUserFields  = "Name and email are required"
	msgInvalidEmailFormat = "Invalid email format"
)

// HandlerFunc is an http.HandlerFunc that may fail. A returned error is
// passed to Handler.ServerError; the function must not have written a
// response in that case.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handler holds the shared pieces of every endpoint: the root routes and
// the catch-all error responder.
type Handler struct {
	logger     *slog.Logger
	production bool
}

// New creates a new Handler instance. In production mode, 500 responses
// carry a generic message instead of the error text.
func New(logger *slog.Logger, production bool) *Handler {
	return &Handler{
		logger:     logger,
		production: production,
	}
}

// Welcome returns the welcome message.
// GET /
func (h *Handler) Welcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.Message(WelcomeMessage))
}

// NotFound handles 404 responses. It also serves unmatched methods.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, dto.Fail(MsgRouteNotFound))
}

// Wrap adapts fn to an http.HandlerFunc, routing returned errors to
// ServerError.
func (h *Handler) Wrap(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.ServerError(w, r, err)
		}
	}
}

// ServerError logs err and writes a 500 response. It is the single place
// where unhandled errors and recovered panics end up.
func (h *Handler) ServerError(w http.ResponseWriter, r *http.Request, err error) {
	attrs := []any{
		slog.String("request_id", middleware.RequestIDFromContext(r.Context())),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()),
	}

	var panicErr *middleware.PanicError
	if errors.As(err, &panicErr) {
		attrs = append(attrs, slog.String("stack", string(panicErr.Stack)))
	}

	h.logger.ErrorContext(r.Context(), "unhandled error", attrs...)

	msg := err.Error()
	if h.production {
		msg = MsgInternalError
	}
	writeJSON(w, http.StatusInternalServerError, dto.Fail(msg))
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// The status line is already out; nothing useful left to send.
		_ = err
	}
}
