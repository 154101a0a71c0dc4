package usecase

import (
	"context"

	"github.com/xavierca1/lead-cms/internal/entity"
	"github.com/xavierca1/lead-cms/internal/infra/queue"
)

type LeadAssignStore interface {
	FindByID(id string) (entity.Lead, bool)
	Assign(leadID, userID string)
}

type ProposalAssignStore interface {
	FindByID(id string) (entity.Proposal, bool)
	Assign(proposalID, userID string)
}

type UserFinder interface {
	FindByID(id string) (entity.User, bool)
}

type QueueProducerInterface interface {
	PublishAssignment(ctx context.Context, payload queue.AssignmentPayload) error
}
