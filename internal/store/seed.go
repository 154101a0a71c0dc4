package store

import (
	"time"

	"github.com/xavierca1/lead-cms/internal/entity"
	"github.com/xavierca1/lead-cms/internal/session"
)

// Demo fixtures the console ships with. IDs here are short on purpose so the
// seed data is easy to reference from docs and tests; generated IDs are UUIDs.

func ts(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

func SeedLeads() []entity.Lead {
	return []entity.Lead{
		{
			ID:             "1",
			Company:        "Tech Solutions Inc",
			ContactName:    "John Smith",
			Email:          "john@techsolutions.com",
			Phone:          "+1-234-567-8901",
			Status:         entity.LeadStatusNew,
			Source:         entity.SourceWebsite,
			Application:    entity.AppMaterialHandling,
			EstimatedValue: 50000,
			Notes:          "Interested in our enterprise solution",
			Negotiation:    false,
			SparePartIDs:   []string{},
			Memos:          []entity.Memo{},
			FollowUps: []entity.FollowUp{
				{
					ID:        "1",
					Date:      ts("2024-01-16T09:00:00Z"),
					Action:    "Initial Contact",
					Notes:     "First call made to discuss requirements",
					CreatedBy: "Jane Engineer",
				},
			},
			CreatedAt: ts("2024-01-15T10:30:00Z"),
			UpdatedAt: ts("2024-01-15T10:30:00Z"),
		},
		{
			ID:             "2",
			Company:        "Global Manufacturing",
			ContactName:    "Sarah Johnson",
			Email:          "sarah@globalmfg.com",
			Phone:          "+1-234-567-8902",
			Status:         entity.LeadStatusContacted,
			Source:         entity.SourceReferral,
			Application:    entity.AppAGV,
			EstimatedValue: 75000,
			Notes:          "Follow up next week for proposal discussion",
			AssignedTo:     "2",
			Negotiation:    true,
			SparePartIDs:   []string{"1"},
			Memos:          []entity.Memo{},
			FollowUps: []entity.FollowUp{
				{
					ID:        "2",
					Date:      ts("2024-01-15T14:00:00Z"),
					Action:    "Follow-up Call",
					Notes:     "Discussed technical requirements",
					CreatedBy: "Jane Engineer",
				},
				{
					ID:        "3",
					Date:      ts("2024-01-16T10:00:00Z"),
					Action:    "Email Sent",
					Notes:     "Sent product catalog and pricing",
					CreatedBy: "Jane Engineer",
				},
			},
			CreatedAt: ts("2024-01-14T14:20:00Z"),
			UpdatedAt: ts("2024-01-16T09:15:00Z"),
		},
		{
			ID:             "3",
			Company:        "Innovation Labs",
			ContactName:    "Mike Chen",
			Email:          "mike@innovationlabs.com",
			Phone:          "+1-234-567-8903",
			Status:         entity.LeadStatusProposalSent,
			Source:         entity.SourceEmail,
			Application:    entity.AppVisionSystem,
			EstimatedValue: 120000,
			Notes:          "Proposal sent on Monday, awaiting response",
			AssignedTo:     "3",
			Negotiation:    false,
			SparePartIDs:   []string{},
			Memos:          []entity.Memo{},
			FollowUps: []entity.FollowUp{
				{
					ID:        "4",
					Date:      ts("2024-01-17T11:30:00Z"),
					Action:    "Proposal Sent",
					Notes:     "Comprehensive proposal with technical specifications",
					CreatedBy: "Mike Manager",
				},
			},
			CreatedAt: ts("2024-01-10T16:45:00Z"),
			UpdatedAt: ts("2024-01-17T11:30:00Z"),
		},
	}
}

func SeedProposals() []entity.Proposal {
	return []entity.Proposal{
		{
			ID:           "1",
			Title:        "Enterprise Software Solution",
			Client:       "Tech Solutions Inc",
			Status:       entity.ProposalDraft,
			Value:        50000,
			Description:  "Complete enterprise software solution for manufacturing",
			AssignedTo:   "2",
			SparePartIDs: []string{},
			FollowUps: []entity.FollowUp{
				{
					ID:        "1",
					Date:      ts("2024-01-15T10:00:00Z"),
					Action:    "Proposal Created",
					Notes:     "Initial proposal draft completed",
					CreatedBy: "Jane Engineer",
				},
			},
			CreatedAt: "2024-01-15",
		},
		{
			ID:           "2",
			Title:        "Manufacturing System Upgrade",
			Client:       "Global Manufacturing",
			Status:       entity.ProposalSent,
			Value:        75000,
			Description:  "Upgrade existing manufacturing systems with automation",
			AssignedTo:   "2",
			SparePartIDs: []string{"1"},
			FollowUps: []entity.FollowUp{
				{
					ID:        "2",
					Date:      ts("2024-01-16T11:00:00Z"),
					Action:    "Proposal Sent",
					Notes:     "Proposal sent to client for review",
					CreatedBy: "Jane Engineer",
				},
			},
			CreatedAt: "2024-01-14",
		},
		{
			ID:           "3",
			Title:        "Innovation Platform Development",
			Client:       "Innovation Labs",
			Status:       entity.ProposalApproved,
			Value:        120000,
			Description:  "Development of new innovation platform",
			AssignedTo:   "3",
			SparePartIDs: []string{},
			FollowUps: []entity.FollowUp{
				{
					ID:        "3",
					Date:      ts("2024-01-17T15:00:00Z"),
					Action:    "Proposal Approved",
					Notes:     "Client approved the proposal with minor modifications",
					CreatedBy: "Mike Manager",
				},
			},
			CreatedAt: "2024-01-10",
		},
	}
}

func SeedProducts() []entity.Product {
	return []entity.Product{
		{
			ID:         "1",
			Robot:      "R-2000iA/100P",
			Controller: "RJ3iB",
			ReachMM:    3500,
			PayloadKG:  100,
			Brand:      "Fanuc",
			CreatedAt:  ts("2024-01-15T10:30:00Z"),
			UpdatedAt:  ts("2024-01-15T10:30:00Z"),
		},
		{
			ID:         "2",
			Robot:      "IRB 6700",
			Controller: "IRC5",
			ReachMM:    3200,
			PayloadKG:  150,
			Brand:      "ABB",
			CreatedAt:  ts("2024-01-16T11:20:00Z"),
			UpdatedAt:  ts("2024-01-16T11:20:00Z"),
		},
	}
}

func SeedSpareParts() []entity.SparePart {
	return []entity.SparePart{
		{
			ID:          "1",
			Name:        "Servo Motor",
			PartNumber:  "A06B-0034-B075",
			Description: "AC Servo Motor for Fanuc Robot",
			Brand:       "Fanuc",
			Price:       2500,
			Stock:       15,
			Category:    "Motors",
			CreatedAt:   ts("2024-01-15T10:30:00Z"),
			UpdatedAt:   ts("2024-01-15T10:30:00Z"),
		},
		{
			ID:          "2",
			Name:        "Controller Board",
			PartNumber:  "A20B-8200-0540",
			Description: "Main Controller Board",
			Brand:       "Fanuc",
			Price:       3200,
			Stock:       8,
			Category:    "Electronics",
			CreatedAt:   ts("2024-01-16T11:20:00Z"),
			UpdatedAt:   ts("2024-01-16T11:20:00Z"),
		},
	}
}

func SeedUsers() []entity.User {
	return []entity.User{
		{
			ID:        "1",
			Name:      "John Admin",
			Email:     "admin@company.com",
			Role:      entity.RoleAdmin,
			Status:    entity.UserActive,
			LastLogin: "2024-01-18",
		},
		{
			ID:        "2",
			Name:      "Jane Engineer",
			Email:     "engineer@company.com",
			Role:      entity.RoleSalesEngineer,
			Status:    entity.UserActive,
			LastLogin: "2024-01-18",
		},
		{
			ID:        "3",
			Name:      "Mike Manager",
			Email:     "manager@company.com",
			Role:      entity.RoleManager,
			Status:    entity.UserActive,
			LastLogin: "2024-01-17",
		},
	}
}

// SeedCredentials pairs the demo users with their console passwords. Secrets
// live here, next to the rest of the fixtures, never on the user records.
func SeedCredentials() []session.Credential {
	return []session.Credential{
		{Email: "admin@company.com", Secret: "admin123"},
		{Email: "engineer@company.com", Secret: "engineer123"},
		{Email: "manager@company.com", Secret: "manager123"},
	}
}
