package api

import (
	"net/http"

	"github.com/nmarkovic/magacin/internal/model"
	"github.com/nmarkovic/magacin/internal/warehouse"
)

// ProjectsHandler handles project endpoints.
type ProjectsHandler struct {
	Store *warehouse.Store
}

// List handles GET /api/projects.
func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	projects := h.Store.Projects()
	if projects == nil {
		projects = []model.Project{}
	}
	jsonResponse(w, http.StatusOK, projects)
}

// Create handles POST /api/projects.
func (h *ProjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.Project
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	project, err := h.Store.CreateProject(r.Context(), req)
	if err != nil {
		storeError(w, err)
		return
	}

	jsonResponse(w, http.StatusCreated, project)
}

// Update handles PUT /api/projects/{id}.
func (h *ProjectsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.Project
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	project, err := h.Store.UpdateProject(r.Context(), r.PathValue("id"), req)
	if err != nil {
		storeError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, project)
}

// Delete handles DELETE /api/projects/{id}.
func (h *ProjectsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteProject(r.Context(), r.PathValue("id")); err != nil {
		storeError(w, err)
		return
	}
	jsonResponse(w, http.StatusNoContent, nil)
}
