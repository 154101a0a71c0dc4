package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/lead-cms/internal/entity"
)

// ProposalStore mirrors LeadStore minus memo support. Proposals carry no
// updated_at, so mutations touch nothing but the patched fields.
type ProposalStore struct {
	mu              sync.Mutex
	proposals       map[string]*entity.Proposal
	order           []string
	attachmentLimit int
}

func NewProposalStore(seed []entity.Proposal) *ProposalStore {
	s := &ProposalStore{
		proposals:       make(map[string]*entity.Proposal),
		order:           make([]string, 0, len(seed)),
		attachmentLimit: DefaultAttachmentLimit,
	}
	for i := range seed {
		proposal := seed[i]
		s.proposals[proposal.ID] = &proposal
		s.order = append(s.order, proposal.ID)
	}
	return s
}

func (s *ProposalStore) SetAttachmentLimit(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attachmentLimit = n
}

func (s *ProposalStore) List() []entity.Proposal {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Proposal, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, cloneProposal(s.proposals[id]))
	}
	return out
}

func (s *ProposalStore) FindByID(id string) (entity.Proposal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	proposal, ok := s.proposals[id]
	if !ok {
		return entity.Proposal{}, false
	}
	return cloneProposal(proposal), true
}

func (s *ProposalStore) Add(in entity.ProposalInput) (entity.Proposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	proposal, err := entity.NewProposal(in, time.Now().UTC())
	if err != nil {
		return entity.Proposal{}, err
	}

	s.proposals[proposal.ID] = proposal
	s.order = append(s.order, proposal.ID)
	return cloneProposal(proposal), nil
}

func (s *ProposalStore) Update(id string, patch entity.ProposalPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	proposal, ok := s.proposals[id]
	if !ok {
		return
	}
	patch.Apply(proposal)
}

func (s *ProposalStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.proposals[id]; !ok {
		return
	}
	delete(s.proposals, id)
	for i, other := range s.order {
		if other == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *ProposalStore) GetByAssignee(userID string) []entity.Proposal {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []entity.Proposal
	for _, id := range s.order {
		if proposal := s.proposals[id]; proposal.AssignedTo == userID {
			out = append(out, cloneProposal(proposal))
		}
	}
	return out
}

func (s *ProposalStore) AddFollowUp(proposalID string, in entity.FollowUpInput, actor entity.Actor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	proposal, ok := s.proposals[proposalID]
	if !ok {
		return
	}

	proposal.FollowUps = append(proposal.FollowUps, entity.FollowUp{
		ID:        uuid.New().String(),
		Date:      in.Date,
		Action:    in.Action,
		Notes:     in.Notes,
		CreatedBy: actor.DisplayName(),
	})
}

func (s *ProposalStore) Assign(proposalID, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	proposal, ok := s.proposals[proposalID]
	if !ok {
		return
	}
	proposal.AssignedTo = userID
}

func (s *ProposalStore) AddAttachments(proposalID string, attachments []entity.Attachment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	proposal, ok := s.proposals[proposalID]
	if !ok {
		return nil
	}

	if len(proposal.Attachments)+len(attachments) > s.attachmentLimit {
		return &entity.ValidationError{Field: "attachments", Message: "attachment limit exceeded"}
	}
	proposal.Attachments = append(proposal.Attachments, attachments...)
	return nil
}

func cloneProposal(p *entity.Proposal) entity.Proposal {
	out := *p
	out.SparePartIDs = append([]string{}, p.SparePartIDs...)
	out.FollowUps = append([]entity.FollowUp{}, p.FollowUps...)
	out.Attachments = append([]entity.Attachment(nil), p.Attachments...)
	return out
}
