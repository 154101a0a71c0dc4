package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/lead-cms/internal/entity"
	"github.com/xavierca1/lead-cms/internal/infra/http/middleware"
	"github.com/xavierca1/lead-cms/internal/store"
)

type SparePartHandler struct {
	SpareParts *store.SparePartStore
}

func NewSparePartHandler(parts *store.SparePartStore) *SparePartHandler {
	return &SparePartHandler{SpareParts: parts}
}

func (h *SparePartHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.SpareParts.List())
}

func (h *SparePartHandler) Get(w http.ResponseWriter, r *http.Request) {
	part, ok := h.SpareParts.FindByID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND")
		return
	}
	writeJSON(w, http.StatusOK, part)
}

func (h *SparePartHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input entity.SparePartInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON")
		return
	}

	part, err := h.SpareParts.Add(input)
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR")
		return
	}

	middleware.RecordEntityCreated("spare_part")
	writeJSON(w, http.StatusCreated, part)
}

func (h *SparePartHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch entity.SparePartPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON")
		return
	}

	h.SpareParts.Update(chi.URLParam(r, "id"), patch)
	w.WriteHeader(http.StatusNoContent)
}

func (h *SparePartHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.SpareParts.Remove(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}
