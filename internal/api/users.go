package api

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/nmarkovic/magacin/internal/model"
	"github.com/nmarkovic/magacin/internal/warehouse"
)

// UsersHandler handles user management endpoints (admin only).
type UsersHandler struct {
	Store *warehouse.Store
}

type userRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	UserCode string `json:"userCode"`
	Password string `json:"password"`
}

// List handles GET /api/users.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users := h.Store.Users()
	sanitized := make([]model.User, 0, len(users))
	for _, u := range users {
		sanitized = append(sanitized, sanitizeUser(u))
	}
	jsonResponse(w, http.StatusOK, sanitized)
}

// Create handles POST /api/users.
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" {
		jsonError(w, http.StatusBadRequest, "name and email required")
		return
	}

	user := model.User{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		UserCode: req.UserCode,
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			jsonError(w, http.StatusInternalServerError, "failed to hash password")
			return
		}
		user.PasswordHash = string(hash)
	}

	created, err := h.Store.CreateUser(r.Context(), user)
	if err != nil {
		storeError(w, err)
		return
	}

	jsonResponse(w, http.StatusCreated, sanitizeUser(*created))
}

// Update handles PUT /api/users/{id}. An empty password keeps the current
// one.
func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user := model.User{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		UserCode: req.UserCode,
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			jsonError(w, http.StatusInternalServerError, "failed to hash password")
			return
		}
		user.PasswordHash = string(hash)
	}

	updated, err := h.Store.UpdateUser(r.Context(), r.PathValue("id"), user)
	if err != nil {
		storeError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, sanitizeUser(*updated))
}

// Delete handles DELETE /api/users/{id}.
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteUser(r.Context(), r.PathValue("id")); err != nil {
		storeError(w, err)
		return
	}
	jsonResponse(w, http.StatusNoContent, nil)
}
