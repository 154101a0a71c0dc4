package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/lead-cms/internal/infra/http/middleware"
	"github.com/xavierca1/lead-cms/internal/session"
	"github.com/xavierca1/lead-cms/internal/usecase"
)

type AuthHandler struct {
	Sessions *session.Manager
}

func NewAuthHandler(sessions *session.Manager) *AuthHandler {
	return &AuthHandler{Sessions: sessions}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON")
		return
	}

	identity, err := h.Sessions.Login(req.Email, req.Password)
	if err != nil {
		middleware.RecordLogin("failure")
		writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS")
		return
	}

	middleware.RecordLogin("success")
	writeJSON(w, http.StatusOK, identity)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Logout()
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.Sessions.Current()
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED")
		return
	}
	writeJSON(w, http.StatusOK, identity)
}

// Navigation returns the sections the current role may see, in menu order.
func (h *AuthHandler) Navigation(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.Sessions.Current()
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"role":     identity.Role,
		"sections": usecase.VisibleSections(identity.Role),
	})
}
