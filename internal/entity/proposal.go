package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type ProposalStatus string

const (
	ProposalDraft    ProposalStatus = "draft"
	ProposalSent     ProposalStatus = "sent"
	ProposalApproved ProposalStatus = "approved"
	ProposalRejected ProposalStatus = "rejected"
)

func (s ProposalStatus) Valid() bool {
	switch s {
	case ProposalDraft, ProposalSent, ProposalApproved, ProposalRejected:
		return true
	}
	return false
}

// Proposal carries a date-only created timestamp and no updated_at, matching
// the console's behavior.
type Proposal struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Client       string         `json:"client"`
	Status       ProposalStatus `json:"status"`
	Value        float64        `json:"value"`
	Description  string         `json:"description"`
	AssignedTo   string         `json:"assigned_to,omitempty"`
	ProductID    string         `json:"productId,omitempty"`
	SparePartIDs []string       `json:"sparePartIds"`
	FollowUps    []FollowUp     `json:"followUpHistory"`
	Attachments  []Attachment   `json:"attachments,omitempty"`
	CreatedAt    string         `json:"created_at"` // YYYY-MM-DD
}

type ProposalInput struct {
	Title        string         `json:"title"`
	Client       string         `json:"client"`
	Status       ProposalStatus `json:"status"`
	Value        float64        `json:"value"`
	Description  string         `json:"description"`
	AssignedTo   string         `json:"assigned_to"`
	ProductID    string         `json:"productId"`
	SparePartIDs []string       `json:"sparePartIds"`
}

func NewProposal(in ProposalInput, now time.Time) (*Proposal, error) {
	proposal := &Proposal{
		ID:           uuid.New().String(),
		Title:        in.Title,
		Client:       in.Client,
		Status:       in.Status,
		Value:        in.Value,
		Description:  in.Description,
		AssignedTo:   in.AssignedTo,
		ProductID:    in.ProductID,
		SparePartIDs: append([]string{}, in.SparePartIDs...),
		FollowUps:    []FollowUp{},
		CreatedAt:    now.Format("2006-01-02"),
	}

	if err := proposal.Validate(); err != nil {
		return nil, err
	}

	return proposal, nil
}

func (p *Proposal) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return &ValidationError{"title", "is required"}
	}
	if strings.TrimSpace(p.Client) == "" {
		return &ValidationError{"client", "is required"}
	}
	if !p.Status.Valid() {
		return &ValidationError{"status", "is not a known status"}
	}
	if p.Value < 0 {
		return &ValidationError{"value", "must not be negative"}
	}
	return nil
}

type ProposalPatch struct {
	Title        *string         `json:"title,omitempty"`
	Client       *string         `json:"client,omitempty"`
	Status       *ProposalStatus `json:"status,omitempty"`
	Value        *float64        `json:"value,omitempty"`
	Description  *string         `json:"description,omitempty"`
	AssignedTo   *string         `json:"assigned_to,omitempty"`
	ProductID    *string         `json:"productId,omitempty"`
	SparePartIDs *[]string       `json:"sparePartIds,omitempty"`
}

func (p ProposalPatch) Apply(proposal *Proposal) {
	if p.Title != nil {
		proposal.Title = *p.Title
	}
	if p.Client != nil {
		proposal.Client = *p.Client
	}
	if p.Status != nil {
		proposal.Status = *p.Status
	}
	if p.Value != nil {
		proposal.Value = *p.Value
	}
	if p.Description != nil {
		proposal.Description = *p.Description
	}
	if p.AssignedTo != nil {
		proposal.AssignedTo = *p.AssignedTo
	}
	if p.ProductID != nil {
		proposal.ProductID = *p.ProductID
	}
	if p.SparePartIDs != nil {
		proposal.SparePartIDs = append([]string{}, (*p.SparePartIDs)...)
	}
}
