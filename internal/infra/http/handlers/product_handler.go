package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/lead-cms/internal/entity"
	"github.com/xavierca1/lead-cms/internal/infra/http/middleware"
	"github.com/xavierca1/lead-cms/internal/store"
)

type ProductHandler struct {
	Products *store.ProductStore
}

func NewProductHandler(products *store.ProductStore) *ProductHandler {
	return &ProductHandler{Products: products}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Products.List())
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, ok := h.Products.FindByID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input entity.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON")
		return
	}

	product, err := h.Products.Add(input)
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR")
		return
	}

	middleware.RecordEntityCreated("product")
	writeJSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch entity.ProductPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON")
		return
	}

	h.Products.Update(chi.URLParam(r, "id"), patch)
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.Products.Remove(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}
