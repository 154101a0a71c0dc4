package store

import (
	"sync"

	"github.com/google/uuid"
	"github.com/xavierca1/lead-cms/internal/entity"
)

// DefaultAttachmentLimit mirrors the console's file picker cap.
const DefaultAttachmentLimit = 5

// LeadStore owns the lead mapping. Nothing else mutates it; every method
// runs to completion under the lock, so operations apply in invocation order.
type LeadStore struct {
	mu              sync.Mutex
	leads           map[string]*entity.Lead
	order           []string
	clock           touchClock
	attachmentLimit int
}

func NewLeadStore(seed []entity.Lead) *LeadStore {
	s := &LeadStore{
		leads:           make(map[string]*entity.Lead),
		order:           make([]string, 0, len(seed)),
		attachmentLimit: DefaultAttachmentLimit,
	}
	for i := range seed {
		lead := seed[i]
		s.leads[lead.ID] = &lead
		s.order = append(s.order, lead.ID)
	}
	return s
}

func (s *LeadStore) SetAttachmentLimit(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attachmentLimit = n
}

// List returns every lead in insertion order. Callers get copies; the
// store's records are never handed out.
func (s *LeadStore) List() []entity.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Lead, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, cloneLead(s.leads[id]))
	}
	return out
}

func (s *LeadStore) FindByID(id string) (entity.Lead, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead, ok := s.leads[id]
	if !ok {
		return entity.Lead{}, false
	}
	return cloneLead(lead), true
}

// Add generates the identifier and timestamps; callers never supply them.
// Missing required fields are rejected with a ValidationError.
func (s *LeadStore) Add(in entity.LeadInput) (entity.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead, err := entity.NewLead(in, s.clock.Now())
	if err != nil {
		return entity.Lead{}, err
	}

	s.leads[lead.ID] = lead
	s.order = append(s.order, lead.ID)
	return cloneLead(lead), nil
}

// Update merges the patch into the record and refreshes updated_at. Unknown
// ids are a silent no-op; the caller cannot tell, and that is deliberate.
func (s *LeadStore) Update(id string, patch entity.LeadPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead, ok := s.leads[id]
	if !ok {
		return
	}
	patch.Apply(lead)
	lead.UpdatedAt = s.clock.Now()
}

func (s *LeadStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.leads[id]; !ok {
		return
	}
	delete(s.leads, id)
	for i, other := range s.order {
		if other == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *LeadStore) GetByStatus(status entity.LeadStatus) []entity.Lead {
	return s.filter(func(l *entity.Lead) bool { return l.Status == status })
}

func (s *LeadStore) GetNegotiating() []entity.Lead {
	return s.filter(func(l *entity.Lead) bool { return l.Negotiation })
}

func (s *LeadStore) GetByAssignee(userID string) []entity.Lead {
	return s.filter(func(l *entity.Lead) bool { return l.AssignedTo == userID })
}

// AddMemo appends to the lead's memo list. The memo id and created_at are
// generated here, created_by comes from the acting identity.
func (s *LeadStore) AddMemo(leadID string, in entity.MemoInput, actor entity.Actor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead, ok := s.leads[leadID]
	if !ok {
		return
	}

	now := s.clock.Now()
	lead.Memos = append(lead.Memos, entity.Memo{
		ID:        uuid.New().String(),
		Category:  in.Category,
		Content:   in.Content,
		CreatedAt: now,
		CreatedBy: actor.DisplayName(),
	})
	lead.UpdatedAt = now
}

// AddFollowUp appends to the follow-up history and refreshes updated_at.
func (s *LeadStore) AddFollowUp(leadID string, in entity.FollowUpInput, actor entity.Actor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead, ok := s.leads[leadID]
	if !ok {
		return
	}

	lead.FollowUps = append(lead.FollowUps, entity.FollowUp{
		ID:        uuid.New().String(),
		Date:      in.Date,
		Action:    in.Action,
		Notes:     in.Notes,
		CreatedBy: actor.DisplayName(),
	})
	lead.UpdatedAt = s.clock.Now()
}

// Assign sets assigned_to. The sales_engineer/manager role contract is the
// caller's responsibility (see usecase.AssignLead), not the store's.
func (s *LeadStore) Assign(leadID, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead, ok := s.leads[leadID]
	if !ok {
		return
	}
	lead.AssignedTo = userID
	lead.UpdatedAt = s.clock.Now()
}

// AddAttachments appends opaque blobs up to the configured limit. Content is
// never inspected.
func (s *LeadStore) AddAttachments(leadID string, attachments []entity.Attachment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead, ok := s.leads[leadID]
	if !ok {
		return nil
	}

	if len(lead.Attachments)+len(attachments) > s.attachmentLimit {
		return &entity.ValidationError{Field: "attachments", Message: "attachment limit exceeded"}
	}
	lead.Attachments = append(lead.Attachments, attachments...)
	lead.UpdatedAt = s.clock.Now()
	return nil
}

func (s *LeadStore) filter(keep func(*entity.Lead) bool) []entity.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []entity.Lead
	for _, id := range s.order {
		if lead := s.leads[id]; keep(lead) {
			out = append(out, cloneLead(lead))
		}
	}
	return out
}

func cloneLead(l *entity.Lead) entity.Lead {
	out := *l
	out.SparePartIDs = append([]string{}, l.SparePartIDs...)
	out.Memos = append([]entity.Memo{}, l.Memos...)
	out.FollowUps = append([]entity.FollowUp{}, l.FollowUps...)
	out.Attachments = append([]entity.Attachment(nil), l.Attachments...)
	return out
}
