package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/lead-cms/internal/entity"
	"github.com/xavierca1/lead-cms/internal/infra/http/middleware"
	"github.com/xavierca1/lead-cms/internal/session"
	"github.com/xavierca1/lead-cms/internal/store"
	"github.com/xavierca1/lead-cms/internal/usecase"
)

// ProposalHandler mirrors LeadHandler minus memos.
type ProposalHandler struct {
	Proposals  *store.ProposalStore
	Products   *store.ProductStore
	SpareParts *store.SparePartStore
	Sessions   *session.Manager
	AssignUC   *usecase.AssignProposalUseCase
}

func NewProposalHandler(proposals *store.ProposalStore, products *store.ProductStore, parts *store.SparePartStore, sessions *session.Manager, assignUC *usecase.AssignProposalUseCase) *ProposalHandler {
	return &ProposalHandler{
		Proposals:  proposals,
		Products:   products,
		SpareParts: parts,
		Sessions:   sessions,
		AssignUC:   assignUC,
	}
}

func (h *ProposalHandler) List(w http.ResponseWriter, r *http.Request) {
	if userID := r.URL.Query().Get("assigned_to"); userID != "" {
		writeJSON(w, http.StatusOK, h.Proposals.GetByAssignee(userID))
		return
	}
	writeJSON(w, http.StatusOK, h.Proposals.List())
}

func (h *ProposalHandler) Get(w http.ResponseWriter, r *http.Request) {
	proposal, ok := h.Proposals.FindByID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND")
		return
	}
	writeJSON(w, http.StatusOK, proposal)
}

func (h *ProposalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input entity.ProposalInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON")
		return
	}

	proposal, err := h.Proposals.Add(input)
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR")
		return
	}

	middleware.RecordEntityCreated("proposal")
	writeJSON(w, http.StatusCreated, proposal)
}

func (h *ProposalHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch entity.ProposalPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON")
		return
	}

	h.Proposals.Update(chi.URLParam(r, "id"), patch)
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProposalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.Proposals.Remove(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProposalHandler) AddFollowUp(w http.ResponseWriter, r *http.Request) {
	var input entity.FollowUpInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON")
		return
	}

	h.Proposals.AddFollowUp(chi.URLParam(r, "id"), input, h.Sessions.Actor())
	middleware.RecordNestedAppend("follow_up")
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProposalHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON")
		return
	}

	err := h.AssignUC.Execute(r.Context(), chi.URLParam(r, "id"), req.UserID, h.Sessions.Actor())
	if err != nil {
		writeAssignError(w, err)
		return
	}

	middleware.RecordAssignment("proposal")
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProposalHandler) AddAttachments(w http.ResponseWriter, r *http.Request) {
	var attachments []entity.Attachment
	if err := json.NewDecoder(r.Body).Decode(&attachments); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON")
		return
	}

	if err := h.Proposals.AddAttachments(chi.URLParam(r, "id"), attachments); err != nil {
		writeError(w, http.StatusBadRequest, "ATTACHMENT_LIMIT")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProposalHandler) Product(w http.ResponseWriter, r *http.Request) {
	proposal, ok := h.Proposals.FindByID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND")
		return
	}

	product, ok := h.Products.FindByID(proposal.ProductID)
	if !ok {
		writeError(w, http.StatusNotFound, "PRODUCT_NOT_FOUND")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *ProposalHandler) SparePartsList(w http.ResponseWriter, r *http.Request) {
	proposal, ok := h.Proposals.FindByID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND")
		return
	}
	writeJSON(w, http.StatusOK, h.SpareParts.Resolve(proposal.SparePartIDs))
}
