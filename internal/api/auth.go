package api

import (
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/nmarkovic/magacin/internal/auth"
	"github.com/nmarkovic/magacin/internal/model"
	"github.com/nmarkovic/magacin/internal/warehouse"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	Store     *warehouse.Store
	JWTSecret string
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		jsonError(w, http.StatusBadRequest, "email and password required")
		return
	}

	user := h.Store.UserByEmail(req.Email)
	if user == nil || user.PasswordHash == "" {
		jsonError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		slog.Warn("login failed", "email", req.Email, "remote", r.RemoteAddr)
		jsonError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, user.ID, user.Name, user.Email, user.Role)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	slog.Info("user logged in", "user", user.Name, "role", user.Role)
	jsonResponse(w, http.StatusOK, loginResponse{Token: token, User: sanitizeUser(*user)})
}

// sanitizeUser strips the password hash before a user leaves the API.
func sanitizeUser(u model.User) model.User {
	u.PasswordHash = ""
	return u
}
