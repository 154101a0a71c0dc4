package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/lead-cms/internal/entity"
	"github.com/xavierca1/lead-cms/internal/session"
	"github.com/xavierca1/lead-cms/internal/store"
	"github.com/xavierca1/lead-cms/internal/usecase"
)

type testEnv struct {
	router     *chi.Mux
	leads      *store.LeadStore
	proposals  *store.ProposalStore
	products   *store.ProductStore
	spareParts *store.SparePartStore
	users      *store.UserStore
	sessions   *session.Manager
}

// newTestEnv wires real stores behind the routes, seeded with the demo
// dataset. No broker: assignments work, notifications are skipped.
func newTestEnv() *testEnv {
	leads := store.NewLeadStore(store.SeedLeads())
	proposals := store.NewProposalStore(store.SeedProposals())
	products := store.NewProductStore(store.SeedProducts())
	spareParts := store.NewSparePartStore(store.SeedSpareParts())
	users := store.NewUserStore(store.SeedUsers())
	sessions := session.NewManager(users, store.SeedCredentials(), nil)

	leadHandler := NewLeadHandler(leads, products, spareParts, sessions,
		usecase.NewAssignLeadUseCase(leads, users, nil))
	proposalHandler := NewProposalHandler(proposals, products, spareParts, sessions,
		usecase.NewAssignProposalUseCase(proposals, users, nil))

	r := chi.NewRouter()
	r.Route("/leads", func(r chi.Router) {
		r.Get("/", leadHandler.List)
		r.Post("/", leadHandler.Create)
		r.Get("/{id}", leadHandler.Get)
		r.Put("/{id}", leadHandler.Update)
		r.Delete("/{id}", leadHandler.Delete)
		r.Post("/{id}/memos", leadHandler.AddMemo)
		r.Post("/{id}/follow-ups", leadHandler.AddFollowUp)
		r.Post("/{id}/assign", leadHandler.Assign)
		r.Post("/{id}/attachments", leadHandler.AddAttachments)
		r.Get("/{id}/product", leadHandler.Product)
		r.Get("/{id}/spare-parts", leadHandler.SparePartsList)
	})
	r.Route("/proposals", func(r chi.Router) {
		r.Get("/", proposalHandler.List)
		r.Post("/", proposalHandler.Create)
		r.Get("/{id}", proposalHandler.Get)
		r.Post("/{id}/assign", proposalHandler.Assign)
	})

	return &testEnv{
		router:     r,
		leads:      leads,
		proposals:  proposals,
		products:   products,
		spareParts: spareParts,
		users:      users,
		sessions:   sessions,
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestLeadHandler_ListAndFilters(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/leads", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var leads []entity.Lead
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &leads))
	assert.Len(t, leads, 3)

	rec = env.do(t, http.MethodGet, "/leads?negotiation=true", nil)
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &leads))
	assert.Len(t, leads, 1)
	assert.Equal(t, "Global Manufacturing", leads[0].Company)

	rec = env.do(t, http.MethodGet, "/leads?status=new", nil)
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &leads))
	assert.Len(t, leads, 1)

	rec = env.do(t, http.MethodGet, "/leads?assigned_to=3", nil)
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &leads))
	assert.Len(t, leads, 1)
	assert.Equal(t, "Innovation Labs", leads[0].Company)
}

func TestLeadHandler_CreateAndGet(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/leads", entity.LeadInput{
		Company:     "Acme Robotics",
		ContactName: "Ana Lima",
		Email:       "ana@acme.example",
		Status:      entity.LeadStatusNew,
		Source:      entity.SourcePhone,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created entity.Lead
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)

	rec = env.do(t, http.MethodGet, "/leads/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/leads/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLeadHandler_CreateValidation(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/leads", entity.LeadInput{Company: "No Contact"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")

	req := httptest.NewRequest(http.MethodPost, "/leads", bytes.NewBufferString("{broken"))
	rec2 := httptest.NewRecorder()
	env.router.ServeHTTP(rec2, req)
	assert.Equal(t, http.StatusBadRequest, rec2.Code)
	assert.Contains(t, rec2.Body.String(), "INVALID_JSON")
}

func TestLeadHandler_UpdateUnknownIDIsNoContent(t *testing.T) {
	env := newTestEnv()

	company := "Ghost"
	rec := env.do(t, http.MethodPut, "/leads/nope", entity.LeadPatch{Company: &company})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodDelete, "/leads/nope", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Len(t, env.leads.List(), 3)
}

func TestLeadHandler_MemoStampsSessionActor(t *testing.T) {
	env := newTestEnv()
	_, err := env.sessions.Login("engineer@company.com", "engineer123")
	assert.NoError(t, err)

	rec := env.do(t, http.MethodPost, "/leads/1/memos", entity.MemoInput{
		Category: entity.MemoKeyAccount,
		Content:  "flagship account",
	})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	lead, _ := env.leads.FindByID("1")
	assert.Len(t, lead.Memos, 1)
	assert.Equal(t, "Jane Engineer", lead.Memos[0].CreatedBy)
}

func TestLeadHandler_MemoAnonymousActor(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/leads/1/memos", entity.MemoInput{
		Category: entity.MemoSpare,
		Content:  "quoted spares",
	})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	lead, _ := env.leads.FindByID("1")
	assert.Equal(t, "Unknown", lead.Memos[0].CreatedBy)
}

func TestLeadHandler_MemoRejectsUnknownCategory(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/leads/1/memos", map[string]string{
		"category": "gossip",
		"content":  "x",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeadHandler_Assign(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/leads/1/assign", AssignRequest{UserID: "2"})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	lead, _ := env.leads.FindByID("1")
	assert.Equal(t, "2", lead.AssignedTo)

	// Admins are never assignable.
	rec = env.do(t, http.MethodPost, "/leads/1/assign", AssignRequest{UserID: "1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_NOT_ASSIGNABLE")

	rec = env.do(t, http.MethodPost, "/leads/nope/assign", AssignRequest{UserID: "2"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "LEAD_NOT_FOUND")
}

func TestLeadHandler_AttachmentLimit(t *testing.T) {
	env := newTestEnv()
	env.leads.SetAttachmentLimit(1)

	rec := env.do(t, http.MethodPost, "/leads/1/attachments", []entity.Attachment{{FileName: "quote.pdf"}})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodPost, "/leads/1/attachments", []entity.Attachment{{FileName: "extra.pdf"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "ATTACHMENT_LIMIT")
}

func TestLeadHandler_ProductResolution(t *testing.T) {
	env := newTestEnv()

	productID := "1"
	env.leads.Update("1", entity.LeadPatch{ProductID: &productID})
	rec := env.do(t, http.MethodGet, "/leads/1/product", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "R-2000iA/100P")

	// Dangling reference is a plain 404.
	env.products.Remove("1")
	rec = env.do(t, http.MethodGet, "/leads/1/product", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PRODUCT_NOT_FOUND")
}

func TestLeadHandler_SparePartsSkipDangling(t *testing.T) {
	env := newTestEnv()
	env.spareParts.Remove("1")

	rec := env.do(t, http.MethodGet, "/leads/2/spare-parts", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var parts []entity.SparePart
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parts))
	assert.Empty(t, parts)
}

func TestProposalHandler_CreateAndAssign(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/proposals", entity.ProposalInput{
		Title:  "Arc Welding Cell",
		Client: "Acme Robotics",
		Status: entity.ProposalDraft,
		Value:  64000,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created entity.Proposal
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = env.do(t, http.MethodPost, "/proposals/"+created.ID+"/assign", AssignRequest{UserID: "3"})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	proposal, _ := env.proposals.FindByID(created.ID)
	assert.Equal(t, "3", proposal.AssignedTo)

	rec = env.do(t, http.MethodPost, "/proposals/nope/assign", AssignRequest{UserID: "3"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PROPOSAL_NOT_FOUND")
}
