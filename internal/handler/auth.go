package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/skycast/skycast-go/internal/middleware"
	"github.com/skycast/skycast-go/internal/model"
	"github.com/skycast/skycast-go/internal/service"
)

// AuthHandler handles registration, login and the returning-client auth check.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleRegister handles POST /api/register requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, failureResponse("invalid request body"))
		return
	}

	if err := h.service.Register(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameRequired), errors.Is(err, service.ErrPasswordRequired):
			writeJSON(w, http.StatusBadRequest, failureResponse(err.Error()))
		default:
			// Duplicate usernames fall through here too; the client only
			// learns the reason through the details text.
			slog.Error("registration failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, failureDetails("registration failed", err.Error()))
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// HandleLogin handles POST /api/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, failureResponse("invalid request body"))
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrInvalidPassword):
			writeJSON(w, http.StatusBadRequest, failureResponse(err.Error()))
		default:
			slog.Error("login failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, failureResponse("login failed"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleCheckAuth handles GET /api/check-auth requests.
func (h *AuthHandler) HandleCheckAuth(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, failureResponse("unauthorized"))
		return
	}

	user, err := h.service.CheckAuth(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]any{"loggedIn": false, "error": "user not found"})
			return
		}
		slog.Error("auth check failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"loggedIn": false, "error": "failed to fetch user data"})
		return
	}

	writeJSON(w, http.StatusOK, model.CheckAuthResponse{LoggedIn: true, User: user})
}
