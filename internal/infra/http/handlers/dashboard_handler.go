package handlers

import (
	"net/http"

	"github.com/xavierca1/lead-cms/internal/store"
	"github.com/xavierca1/lead-cms/internal/usecase"
)

type DashboardHandler struct {
	Leads     *store.LeadStore
	Proposals *store.ProposalStore
	Users     *store.UserStore
}

func NewDashboardHandler(leads *store.LeadStore, proposals *store.ProposalStore, users *store.UserStore) *DashboardHandler {
	return &DashboardHandler{Leads: leads, Proposals: proposals, Users: users}
}

func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary := usecase.BuildDashboardSummary(h.Leads.List(), h.Proposals.List(), h.Users.List())
	writeJSON(w, http.StatusOK, summary)
}
