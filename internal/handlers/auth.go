package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/ledgerline/go-billing/internal/auth"
	"github.com/ledgerline/go-billing/internal/httpx"
	"github.com/ledgerline/go-billing/internal/store"
)

// AuthHandler handles JSON login and logout.
type AuthHandler struct {
	store *store.Store
	log   *zap.Logger
}

func NewAuthHandler(s *store.Store, log *zap.Logger) *AuthHandler {
	return &AuthHandler{store: s, log: log}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /login. On success it sets the signed session cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		httpx.JSONError(w, http.StatusBadRequest, "email_and_password_required", nil)
		return
	}

	user, err := h.store.UserByEmail(r.Context(), req.Email)
	if err != nil || !user.CheckPassword(req.Password) {
		// Same response for unknown email and wrong password.
		httpx.JSONError(w, http.StatusUnauthorized, "invalid_credentials", nil)
		return
	}

	auth.CreateSession(w, user.ID)
	h.log.Info("user logged in", zap.Uint("user_id", user.ID))
	httpx.JSON(w, http.StatusOK, map[string]any{"id": user.ID, "email": user.Email, "name": user.Name})
}

// Logout handles POST /logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSession(w)
	httpx.JSON(w, http.StatusOK, map[string]any{"ok": true})
}

// Healthz is the liveness probe.
func Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
