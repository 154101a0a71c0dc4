package usecase

import "github.com/xavierca1/lead-cms/internal/entity"

// DashboardSummary backs the console's landing screen: headline counts plus
// the value of everything still in play.
type DashboardSummary struct {
	TotalLeads        int                           `json:"total_leads"`
	LeadsByStatus     map[entity.LeadStatus]int     `json:"leads_by_status"`
	NegotiatingLeads  int                           `json:"negotiating_leads"`
	PipelineValue     float64                       `json:"pipeline_value"`
	TotalProposals    int                           `json:"total_proposals"`
	ProposalsByStatus map[entity.ProposalStatus]int `json:"proposals_by_status"`
	ProposalValue     float64                       `json:"proposal_value"`
	ActiveUsers       int                           `json:"active_users"`
}

// BuildDashboardSummary is a pure derivation over store listings; it never
// mutates anything.
func BuildDashboardSummary(leads []entity.Lead, proposals []entity.Proposal, users []entity.User) DashboardSummary {
	summary := DashboardSummary{
		TotalLeads:        len(leads),
		LeadsByStatus:     make(map[entity.LeadStatus]int),
		TotalProposals:    len(proposals),
		ProposalsByStatus: make(map[entity.ProposalStatus]int),
	}

	for _, lead := range leads {
		summary.LeadsByStatus[lead.Status]++
		if lead.Negotiation {
			summary.NegotiatingLeads++
		}
		// Won and lost leads are out of the pipeline.
		if lead.Status != entity.LeadStatusWon && lead.Status != entity.LeadStatusLost {
			summary.PipelineValue += lead.EstimatedValue
		}
	}

	for _, proposal := range proposals {
		summary.ProposalsByStatus[proposal.Status]++
		if proposal.Status == entity.ProposalDraft || proposal.Status == entity.ProposalSent {
			summary.ProposalValue += proposal.Value
		}
	}

	for _, user := range users {
		if user.Status == entity.UserActive {
			summary.ActiveUsers++
		}
	}

	return summary
}
