// Package report renders the admin report downloads. The output format is
// comma-delimited text matching the console's export byte for byte: field
// values containing the delimiter are NOT escaped. That is a known defect of
// the export (fine for the demo dataset, wrong in general) and is pinned by a
// test rather than silently fixed.
package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/xavierca1/lead-cms/internal/entity"
)

// UserNameResolver maps an assignee id to a display name. Unknown or empty
// ids resolve to "Unassigned".
type UserNameResolver func(userID string) string

var leadHeader = []string{
	"id", "company", "contact_name", "email", "phone", "status", "source",
	"application", "estimated_value", "notes", "assigned_to", "negotiation",
	"created_at", "updated_at",
}

func LeadsCSV(leads []entity.Lead, resolve UserNameResolver) string {
	lines := []string{strings.Join(leadHeader, ",")}
	for _, lead := range leads {
		fields := []string{
			lead.ID,
			lead.Company,
			lead.ContactName,
			lead.Email,
			lead.Phone,
			string(lead.Status),
			string(lead.Source),
			string(lead.Application),
			formatValue(lead.EstimatedValue),
			lead.Notes,
			resolve(lead.AssignedTo),
			strconv.FormatBool(lead.Negotiation),
			lead.CreatedAt.Format(time.RFC3339),
			lead.UpdatedAt.Format(time.RFC3339),
		}
		lines = append(lines, strings.Join(fields, ","))
	}
	return strings.Join(lines, "\n")
}

var proposalHeader = []string{
	"id", "title", "client", "status", "value", "description", "assigned_to",
	"created_at",
}

func ProposalsCSV(proposals []entity.Proposal, resolve UserNameResolver) string {
	lines := []string{strings.Join(proposalHeader, ",")}
	for _, proposal := range proposals {
		fields := []string{
			proposal.ID,
			proposal.Title,
			proposal.Client,
			string(proposal.Status),
			formatValue(proposal.Value),
			proposal.Description,
			resolve(proposal.AssignedTo),
			proposal.CreatedAt,
		}
		lines = append(lines, strings.Join(fields, ","))
	}
	return strings.Join(lines, "\n")
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
