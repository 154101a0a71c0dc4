package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/lead-cms/internal/infra/http/middleware"
	"github.com/xavierca1/lead-cms/internal/session"
	"github.com/xavierca1/lead-cms/internal/store"
	"github.com/xavierca1/lead-cms/internal/usecase"
)

func newAuthRouter() (*chi.Mux, *session.Manager) {
	users := store.NewUserStore(store.SeedUsers())
	sessions := session.NewManager(users, store.SeedCredentials(), nil)
	reports := NewReportHandler(
		store.NewLeadStore(store.SeedLeads()),
		store.NewProposalStore(store.SeedProposals()),
		users,
	)
	auth := NewAuthHandler(sessions)

	r := chi.NewRouter()
	r.Post("/auth/login", auth.Login)
	r.Post("/auth/logout", auth.Logout)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(sessions))
		r.Get("/auth/me", auth.Me)
		r.Get("/auth/navigation", auth.Navigation)
	})
	r.Route("/reports", func(r chi.Router) {
		r.Use(middleware.RequireSection(sessions, usecase.SectionReports))
		r.Get("/leads.csv", reports.LeadsCSV)
	})
	return r, sessions
}

func login(t *testing.T, r *chi.Mux, email, password string) *httptest.ResponseRecorder {
	t.Helper()

	body, _ := json.Marshal(LoginRequest{Email: email, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func get(r *chi.Mux, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuth_LoginReturnsSanitizedIdentity(t *testing.T) {
	r, _ := newAuthRouter()

	rec := login(t, r, "admin@company.com", "admin123")
	assert.Equal(t, http.StatusOK, rec.Code)

	var identity session.Identity
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &identity))
	assert.Equal(t, "John Admin", identity.Name)
	assert.Equal(t, "admin", string(identity.Role))
	assert.NotContains(t, rec.Body.String(), "admin123")
}

func TestAuth_LoginRejectsBadPassword(t *testing.T) {
	r, _ := newAuthRouter()

	rec := login(t, r, "admin@company.com", "wrong")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestAuth_MeRequiresSession(t *testing.T) {
	r, _ := newAuthRouter()

	rec := get(r, "/auth/me")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	login(t, r, "manager@company.com", "manager123")
	rec = get(r, "/auth/me")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mike Manager")
}

func TestAuth_LogoutEndsSession(t *testing.T) {
	r, _ := newAuthRouter()
	login(t, r, "admin@company.com", "admin123")

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/auth/me").Code)
}

func TestAuth_NavigationFollowsRole(t *testing.T) {
	r, _ := newAuthRouter()

	login(t, r, "engineer@company.com", "engineer123")
	rec := get(r, "/auth/navigation")
	assert.Equal(t, http.StatusOK, rec.Code)

	var nav struct {
		Role     string            `json:"role"`
		Sections []usecase.Section `json:"sections"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &nav))
	assert.Equal(t, "sales_engineer", nav.Role)
	assert.Equal(t, []usecase.Section{
		usecase.SectionDashboard, usecase.SectionLeads, usecase.SectionProposals,
	}, nav.Sections)
}

func TestAuth_ReportsAreAdminOnly(t *testing.T) {
	r, _ := newAuthRouter()

	// Anonymous: 401.
	assert.Equal(t, http.StatusUnauthorized, get(r, "/reports/leads.csv").Code)

	// Manager: authenticated but outside the section table, 403.
	login(t, r, "manager@company.com", "manager123")
	rec := get(r, "/reports/leads.csv")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")

	// Admin: full CSV.
	login(t, r, "admin@company.com", "admin123")
	rec = get(r, "/reports/leads.csv")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "leads_")
	assert.Contains(t, rec.Body.String(), "Tech Solutions Inc")
}
