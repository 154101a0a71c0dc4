package usecase

import (
	"context"
	"fmt"

	"github.com/xavierca1/lead-cms/internal/entity"
	"github.com/xavierca1/lead-cms/internal/infra/queue"
)

// AssignLeadUseCase owns the producer-side assignment contract: the store
// itself accepts any user id, so the checks live here, in front of it.
type AssignLeadUseCase struct {
	Leads LeadAssignStore
	Users UserFinder
	Queue QueueProducerInterface
}

func NewAssignLeadUseCase(leads LeadAssignStore, users UserFinder, producer QueueProducerInterface) *AssignLeadUseCase {
	return &AssignLeadUseCase{Leads: leads, Users: users, Queue: producer}
}

func (uc *AssignLeadUseCase) Execute(ctx context.Context, leadID, userID string, actor entity.Actor) error {
	lead, ok := uc.Leads.FindByID(leadID)
	if !ok {
		return &DomainError{Code: "LEAD_NOT_FOUND", Message: "lead not found"}
	}

	assignee, err := validateAssignee(uc.Users, userID)
	if err != nil {
		return err
	}

	uc.Leads.Assign(leadID, userID)

	// Notification is fire-and-queue: the assignment above already happened
	// and is not rolled back when the broker is down.
	if uc.Queue != nil {
		payload := queue.AssignmentPayload{
			Kind:          queue.KindLead,
			EntityID:      lead.ID,
			EntityTitle:   lead.Company,
			AssigneeID:    assignee.ID,
			AssigneeName:  assignee.Name,
			AssigneeEmail: assignee.Email,
			AssignedBy:    actor.DisplayName(),
		}
		if err := uc.Queue.PublishAssignment(ctx, payload); err != nil {
			return &TechnicalError{
				Code:    "QUEUE_PUBLISH_FAILED",
				Message: fmt.Sprintf("assignment stored, notification not queued: %v", err),
			}
		}
	}
	return nil
}

type AssignProposalUseCase struct {
	Proposals ProposalAssignStore
	Users     UserFinder
	Queue     QueueProducerInterface
}

func NewAssignProposalUseCase(proposals ProposalAssignStore, users UserFinder, producer QueueProducerInterface) *AssignProposalUseCase {
	return &AssignProposalUseCase{Proposals: proposals, Users: users, Queue: producer}
}

func (uc *AssignProposalUseCase) Execute(ctx context.Context, proposalID, userID string, actor entity.Actor) error {
	proposal, ok := uc.Proposals.FindByID(proposalID)
	if !ok {
		return &DomainError{Code: "PROPOSAL_NOT_FOUND", Message: "proposal not found"}
	}

	assignee, err := validateAssignee(uc.Users, userID)
	if err != nil {
		return err
	}

	uc.Proposals.Assign(proposalID, userID)

	if uc.Queue != nil {
		payload := queue.AssignmentPayload{
			Kind:          queue.KindProposal,
			EntityID:      proposal.ID,
			EntityTitle:   proposal.Title,
			AssigneeID:    assignee.ID,
			AssigneeName:  assignee.Name,
			AssigneeEmail: assignee.Email,
			AssignedBy:    actor.DisplayName(),
		}
		if err := uc.Queue.PublishAssignment(ctx, payload); err != nil {
			return &TechnicalError{
				Code:    "QUEUE_PUBLISH_FAILED",
				Message: fmt.Sprintf("assignment stored, notification not queued: %v", err),
			}
		}
	}
	return nil
}

func validateAssignee(users UserFinder, userID string) (entity.User, error) {
	user, ok := users.FindByID(userID)
	if !ok {
		return entity.User{}, &DomainError{Code: "USER_NOT_FOUND", Message: "assignee not found"}
	}
	if !user.Role.Assignable() {
		return entity.User{}, &DomainError{
			Code:    "USER_NOT_ASSIGNABLE",
			Message: "assignee must be a sales engineer or manager",
		}
	}
	if user.Status != entity.UserActive {
		return entity.User{}, &DomainError{Code: "USER_INACTIVE", Message: "assignee is inactive"}
	}
	return user, nil
}
