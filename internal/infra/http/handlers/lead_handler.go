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

type LeadHandler struct {
	Leads      *store.LeadStore
	Products   *store.ProductStore
	SpareParts *store.SparePartStore
	Sessions   *session.Manager
	AssignUC   *usecase.AssignLeadUseCase
}

func NewLeadHandler(leads *store.LeadStore, products *store.ProductStore, parts *store.SparePartStore, sessions *session.Manager, assignUC *usecase.AssignLeadUseCase) *LeadHandler {
	return &LeadHandler{
		Leads:      leads,
		Products:   products,
		SpareParts: parts,
		Sessions:   sessions,
		AssignUC:   assignUC,
	}
}

// List supports the console's derived views through query parameters:
// ?status=, ?assigned_to= and ?negotiation=true.
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	switch {
	case q.Get("negotiation") == "true":
		writeJSON(w, http.StatusOK, h.Leads.GetNegotiating())
	case q.Get("status") != "":
		writeJSON(w, http.StatusOK, h.Leads.GetByStatus(entity.LeadStatus(q.Get("status"))))
	case q.Get("assigned_to") != "":
		writeJSON(w, http.StatusOK, h.Leads.GetByAssignee(q.Get("assigned_to")))
	default:
		writeJSON(w, http.StatusOK, h.Leads.List())
	}
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	lead, ok := h.Leads.FindByID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND")
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input entity.LeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON")
		return
	}

	lead, err := h.Leads.Add(input)
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR")
		return
	}

	middleware.RecordEntityCreated("lead")
	writeJSON(w, http.StatusCreated, lead)
}

// Update is a silent no-op for unknown ids, like the store beneath it.
func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch entity.LeadPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON")
		return
	}

	h.Leads.Update(chi.URLParam(r, "id"), patch)
	w.WriteHeader(http.StatusNoContent)
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.Leads.Remove(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *LeadHandler) AddMemo(w http.ResponseWriter, r *http.Request) {
	var input entity.MemoInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON")
		return
	}
	if !input.Category.Valid() {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR")
		return
	}

	h.Leads.AddMemo(chi.URLParam(r, "id"), input, h.Sessions.Actor())
	middleware.RecordNestedAppend("memo")
	w.WriteHeader(http.StatusNoContent)
}

func (h *LeadHandler) AddFollowUp(w http.ResponseWriter, r *http.Request) {
	var input entity.FollowUpInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON")
		return
	}

	h.Leads.AddFollowUp(chi.URLParam(r, "id"), input, h.Sessions.Actor())
	middleware.RecordNestedAppend("follow_up")
	w.WriteHeader(http.StatusNoContent)
}

type AssignRequest struct {
	UserID string `json:"user_id"`
}

func (h *LeadHandler) Assign(w http.ResponseWriter, r *http.Request) {
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

	middleware.RecordAssignment("lead")
	w.WriteHeader(http.StatusNoContent)
}

func (h *LeadHandler) AddAttachments(w http.ResponseWriter, r *http.Request) {
	var attachments []entity.Attachment
	if err := json.NewDecoder(r.Body).Decode(&attachments); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON")
		return
	}

	if err := h.Leads.AddAttachments(chi.URLParam(r, "id"), attachments); err != nil {
		writeError(w, http.StatusBadRequest, "ATTACHMENT_LIMIT")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Product resolves the lead's productId against the catalog. A dangling
// reference is a plain 404, never a server error.
func (h *LeadHandler) Product(w http.ResponseWriter, r *http.Request) {
	lead, ok := h.Leads.FindByID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND")
		return
	}

	product, ok := h.Products.FindByID(lead.ProductID)
	if !ok {
		writeError(w, http.StatusNotFound, "PRODUCT_NOT_FOUND")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// SparePartsList resolves sparePartIds, silently skipping deleted parts.
func (h *LeadHandler) SparePartsList(w http.ResponseWriter, r *http.Request) {
	lead, ok := h.Leads.FindByID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND")
		return
	}
	writeJSON(w, http.StatusOK, h.SpareParts.Resolve(lead.SparePartIDs))
}

func writeAssignError(w http.ResponseWriter, err error) {
	if domainErr, ok := err.(*usecase.DomainError); ok {
		switch domainErr.Code {
		case "LEAD_NOT_FOUND", "PROPOSAL_NOT_FOUND":
			writeError(w, http.StatusNotFound, domainErr.Code)
		default:
			writeError(w, http.StatusBadRequest, domainErr.Code)
		}
		return
	}
	writeError(w, http.StatusInternalServerError, "INTERNAL")
}
