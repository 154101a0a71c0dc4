package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/xavierca1/lead-cms/internal/infra/http/middleware"
	"github.com/xavierca1/lead-cms/internal/report"
	"github.com/xavierca1/lead-cms/internal/store"
)

// ReportHandler serves the admin-only CSV downloads. File names carry the
// export date so consecutive downloads do not clobber each other.
type ReportHandler struct {
	Leads     *store.LeadStore
	Proposals *store.ProposalStore
	Users     *store.UserStore
}

func NewReportHandler(leads *store.LeadStore, proposals *store.ProposalStore, users *store.UserStore) *ReportHandler {
	return &ReportHandler{Leads: leads, Proposals: proposals, Users: users}
}

// LeadsCSV exports all leads, or one assignee's slice with ?user=.
func (h *ReportHandler) LeadsCSV(w http.ResponseWriter, r *http.Request) {
	leads := h.Leads.List()
	if userID := r.URL.Query().Get("user"); userID != "" {
		leads = h.Leads.GetByAssignee(userID)
	}
	h.serveCSV(w, "leads", report.LeadsCSV(leads, h.resolveUserName))
}

func (h *ReportHandler) ProposalsCSV(w http.ResponseWriter, r *http.Request) {
	proposals := h.Proposals.List()
	if userID := r.URL.Query().Get("user"); userID != "" {
		proposals = h.Proposals.GetByAssignee(userID)
	}
	h.serveCSV(w, "proposals", report.ProposalsCSV(proposals, h.resolveUserName))
}

func (h *ReportHandler) serveCSV(w http.ResponseWriter, kind, body string) {
	filename := fmt.Sprintf("%s_%s.csv", kind, time.Now().UTC().Format("2006-01-02"))

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))

	middleware.RecordReportDownload(kind)
}

func (h *ReportHandler) resolveUserName(userID string) string {
	if userID == "" {
		return "Unassigned"
	}
	user, ok := h.Users.FindByID(userID)
	if !ok {
		return "Unassigned"
	}
	return user.Name
}
