package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/lead-cms/internal/entity"
)

func TestBuildDashboardSummary(t *testing.T) {
	leads := []entity.Lead{
		{Status: entity.LeadStatusNew, EstimatedValue: 1000},
		{Status: entity.LeadStatusNegotiation, EstimatedValue: 2000, Negotiation: true},
		{Status: entity.LeadStatusWon, EstimatedValue: 4000},
		{Status: entity.LeadStatusLost, EstimatedValue: 8000},
	}
	proposals := []entity.Proposal{
		{Status: entity.ProposalDraft, Value: 100},
		{Status: entity.ProposalSent, Value: 200},
		{Status: entity.ProposalApproved, Value: 400},
		{Status: entity.ProposalRejected, Value: 800},
	}
	users := []entity.User{
		{Status: entity.UserActive},
		{Status: entity.UserActive},
		{Status: entity.UserInactive},
	}

	summary := BuildDashboardSummary(leads, proposals, users)

	assert.Equal(t, 4, summary.TotalLeads)
	assert.Equal(t, 1, summary.NegotiatingLeads)
	assert.Equal(t, 1, summary.LeadsByStatus[entity.LeadStatusWon])
	// Won and lost leads are out of the pipeline.
	assert.Equal(t, 3000.0, summary.PipelineValue)

	assert.Equal(t, 4, summary.TotalProposals)
	// Only draft and sent proposals count as open value.
	assert.Equal(t, 300.0, summary.ProposalValue)
	assert.Equal(t, 1, summary.ProposalsByStatus[entity.ProposalApproved])

	assert.Equal(t, 2, summary.ActiveUsers)
}

func TestBuildDashboardSummary_Empty(t *testing.T) {
	summary := BuildDashboardSummary(nil, nil, nil)

	assert.Zero(t, summary.TotalLeads)
	assert.Zero(t, summary.PipelineValue)
	assert.Empty(t, summary.LeadsByStatus)
	assert.Zero(t, summary.ActiveUsers)
}
