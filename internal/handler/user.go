package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/userecho/userecho/internal/handler/dto"
	"github.com/userecho/userecho/internal/middleware"
	"github.com/userecho/userecho/internal/service"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	svc    *service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /api/users.
// The created user is returned but not stored.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) error {
	req, err := decodeCreateUserRequest(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, dto.Fail(middleware.MsgBodyTooLarge))
			return nil
		}
		return fmt.Errorf("decode request body: %w", err)
	}

	input := service.CreateUserInput{
		Name:  req.NameString(),
		Email: req.EmailString(),
	}

	user, err := h.svc.CreateUser(r.Context(), input)
	if err != nil {
		return h.handleServiceError(w, r, err)
	}

	h.logger.InfoContext(r.Context(), "user_created", "user_id", user.ID)

	writeJSON(w, http.StatusCreated, dto.OK(dto.ToUserResponse(user)))
	return nil
}

// handleServiceError writes a 400 for validation failures and returns any
// other error for the catch-all responder.
func (h *UserHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) error {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		h.logger.DebugContext(r.Context(), "user_rejected", "reason", "missing_fields")
		writeJSON(w, http.StatusBadRequest, dto.Fail(msgMissingUserFields))
	case errors.Is(err, service.ErrInvalidEmail):
		h.logger.DebugContext(r.Context(), "user_rejected", "reason", "invalid_email")
		writeJSON(w, http.StatusBadRequest, dto.Fail(msgInvalidEmailFormat))
	default:
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

var (
	errTrailingData = errors.New("unexpected data after JSON value")
	errNotContainer = errors.New("JSON body must be an object or array")
)

// decodeCreateUserRequest reads a JSON or form-encoded body. An empty body,
// a JSON array, or an unsupported or unparseable content type yields an
// empty request.
func decodeCreateUserRequest(r *http.Request) (dto.CreateUserRequest, error) {
	var req dto.CreateUserRequest

	mediaType := ""
	if ct := r.Header.Get("Content-Type"); ct != "" {
		parsed, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return req, nil
		}
		mediaType = parsed
	}

	switch {
	case mediaType == "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return req, err
		}
		if name := r.PostForm.Get("name"); name != "" {
			req.Name = name
		}
		if email := r.PostForm.Get("email"); email != "" {
			req.Email = email
		}
		return req, nil

	case mediaType == "" || mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
		if r.Body == nil {
			return req, nil
		}
		return decodeJSONBody(r.Body)

	default:
		return req, nil
	}
}

// decodeJSONBody accepts exactly one top-level object or array.
func decodeJSONBody(body io.Reader) (dto.CreateUserRequest, error) {
	var req dto.CreateUserRequest

	dec := json.NewDecoder(body)
	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return req, nil
		}
		return req, err
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, err
		}
		return req, errTrailingData
	}

	switch val := v.(type) {
	case map[string]any:
		req.Name = val["name"]
		req.Email = val["email"]
	case []any:
		// Arrays parse but have no named fields.
	default:
		return req, errNotContainer
	}
	return req, nil
}
