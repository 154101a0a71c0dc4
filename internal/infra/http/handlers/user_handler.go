package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/lead-cms/internal/entity"
	"github.com/xavierca1/lead-cms/internal/infra/http/middleware"
	"github.com/xavierca1/lead-cms/internal/store"
)

type UserHandler struct {
	Users *store.UserStore
}

func NewUserHandler(users *store.UserStore) *UserHandler {
	return &UserHandler{Users: users}
}

// List supports ?assignable=true for the assignment dropdowns: only sales
// engineers and managers qualify, admins never do.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("assignable") == "true" {
		writeJSON(w, http.StatusOK, h.Users.AssignmentCandidates())
		return
	}
	writeJSON(w, http.StatusOK, h.Users.List())
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := h.Users.FindByID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input entity.UserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON")
		return
	}

	user, err := h.Users.Add(input)
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR")
		return
	}

	middleware.RecordEntityCreated("user")
	writeJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch entity.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON")
		return
	}

	h.Users.Update(chi.URLParam(r, "id"), patch)
	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.Users.Remove(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}
