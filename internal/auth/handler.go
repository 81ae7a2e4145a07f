package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/gitau15/YarnLoft/internal/shared"
)

// Handler wires HTTP endpoints for authentication flows.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator.New(),
	}
}

// MountRoutes registers auth routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router, mw Middleware) {
	r.Post("/register", h.handleRegister)
	r.Post("/login", h.handleLogin)
	r.Group(func(r chi.Router) {
		r.Use(mw.Require)
		r.Get("/me", h.handleMe)
		r.Put("/me", h.handleUpdateMe)
		r.Post("/logout", h.handleLogout)
	})
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !h.decode(w, r, &req) {
		return
	}
	session, err := h.service.Register(r.Context(), req)
	if err != nil {
		shared.RespondError(h.logger, w, err)
		return
	}
	shared.JSONMessage(w, http.StatusCreated, session, "User registered successfully")
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.decode(w, r, &req) {
		return
	}
	session, err := h.service.Login(r.Context(), req)
	if err != nil {
		shared.RespondError(h.logger, w, err)
		return
	}
	shared.JSONMessage(w, http.StatusOK, session, "Login successful")
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		shared.RespondError(h.logger, w, shared.ErrNoToken)
		return
	}
	profile, err := h.service.Profile(r.Context(), identity.ID)
	if err != nil {
		shared.RespondError(h.logger, w, err)
		return
	}
	shared.JSON(w, http.StatusOK, profile)
}

func (h *Handler) handleUpdateMe(w http.ResponseWriter, r *http.Request) {
	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		shared.RespondError(h.logger, w, shared.ErrNoToken)
		return
	}
	var req UpdateProfileRequest
	if !h.decode(w, r, &req) {
		return
	}
	profile, err := h.service.UpdateProfile(r.Context(), identity.ID, req)
	if err != nil {
		shared.RespondError(h.logger, w, err)
		return
	}
	shared.JSONMessage(w, http.StatusOK, profile, "Profile updated successfully")
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	// Stateless tokens cannot be revoked; success is purely a client signal
	// to discard the stored token.
	shared.JSONMessage(w, http.StatusOK, nil, "Logout successful")
}

// decode parses and validates a JSON body, writing the error response itself
// when the body is unusable.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		shared.Fail(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := h.validator.Struct(dest); err != nil {
		fields := make(map[string]string)
		var verrs validator.ValidationErrors
		if ok := asValidationErrors(err, &verrs); ok {
			for _, fieldErr := range verrs {
				fields[fieldErr.Field()] = fieldMessage(fieldErr)
			}
		} else {
			fields["body"] = err.Error()
		}
		shared.RespondError(h.logger, w, shared.NewValidationError(fields))
		return false
	}
	return true
}

func asValidationErrors(err error, dest *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if ok {
		*dest = verrs
	}
	return ok
}

func fieldMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "email":
		return "invalid email address"
	case "min":
		return "must be at least " + fieldErr.Param() + " characters"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fieldErr.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}
