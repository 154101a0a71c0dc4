package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	// IMPORTANT: do not import usecase or infra packages here.
)

type LeadStatus string

const (
	LeadStatusNew          LeadStatus = "new"
	LeadStatusContacted    LeadStatus = "contacted"
	LeadStatusProposalSent LeadStatus = "proposal_sent"
	LeadStatusNegotiation  LeadStatus = "negotiation"
	LeadStatusWon          LeadStatus = "won"
	LeadStatusLost         LeadStatus = "lost"
	LeadStatusHold         LeadStatus = "hold"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusProposalSent,
		LeadStatusNegotiation, LeadStatusWon, LeadStatusLost, LeadStatusHold:
		return true
	}
	return false
}

type LeadSource string

const (
	SourceWebsite     LeadSource = "website"
	SourceEmail       LeadSource = "email"
	SourcePhone       LeadSource = "phone"
	SourceReferral    LeadSource = "referral"
	SourceSocialMedia LeadSource = "social_media"
	SourceTradeShow   LeadSource = "trade_show"
)

func (s LeadSource) Valid() bool {
	switch s {
	case SourceWebsite, SourceEmail, SourcePhone, SourceReferral,
		SourceSocialMedia, SourceTradeShow:
		return true
	}
	return false
}

// Application is the industrial use the customer wants the robot for.
type Application string

const (
	AppMaterialHandling Application = "Material & Warehouse Material Handling"
	AppAGV              Application = "Robotic AGV / AMR"
	AppVisionSystem     Application = "Vision System"
	AppArcWelding       Application = "Arc Welding"
	AppSpotWelding      Application = "Spot Welding"
	AppPalletizing      Application = "Palletizing"
	AppMachineTending   Application = "Machine Tending"
	AppAssembly         Application = "Assembly"
)

func Applications() []Application {
	return []Application{
		AppMaterialHandling, AppAGV, AppVisionSystem, AppArcWelding,
		AppSpotWelding, AppPalletizing, AppMachineTending, AppAssembly,
	}
}

func (a Application) Valid() bool {
	for _, known := range Applications() {
		if a == known {
			return true
		}
	}
	return false
}

type MemoCategory string

const (
	MemoSpare           MemoCategory = "spare"
	MemoProject         MemoCategory = "project"
	MemoServiceProvided MemoCategory = "service_provided"
	MemoKeyAccount      MemoCategory = "key_account"
)

func (c MemoCategory) Valid() bool {
	switch c {
	case MemoSpare, MemoProject, MemoServiceProvided, MemoKeyAccount:
		return true
	}
	return false
}

// Memo is a categorized annotation owned exclusively by its parent Lead.
type Memo struct {
	ID        string       `json:"id"`
	Category  MemoCategory `json:"category"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"created_at"`
	CreatedBy string       `json:"created_by"`
}

// FollowUp is a dated action-log entry owned by a Lead or a Proposal.
type FollowUp struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Action    string    `json:"action"`
	Notes     string    `json:"notes"`
	CreatedBy string    `json:"created_by"`
}

// Attachment is an opaque blob. The core never inspects content or type.
type Attachment struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

type Lead struct {
	ID             string       `json:"id"`
	Company        string       `json:"company"`
	ContactName    string       `json:"contact_name"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	Status         LeadStatus   `json:"status"`
	Source         LeadSource   `json:"source"`
	Application    Application  `json:"application"`
	EstimatedValue float64      `json:"estimated_value"`
	Notes          string       `json:"notes"`
	AssignedTo     string       `json:"assigned_to,omitempty"`
	Negotiation    bool         `json:"negotiation"`
	ProductID      string       `json:"productId,omitempty"`
	SparePartIDs   []string     `json:"sparePartIds"`
	Memos          []Memo       `json:"memos"`
	FollowUps      []FollowUp   `json:"followUpHistory"`
	Attachments    []Attachment `json:"attachments,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// LeadInput carries the caller-settable fields of a new lead. ID and
// timestamps are always generated by the store.
type LeadInput struct {
	Company        string      `json:"company"`
	ContactName    string      `json:"contact_name"`
	Email          string      `json:"email"`
	Phone          string      `json:"phone"`
	Status         LeadStatus  `json:"status"`
	Source         LeadSource  `json:"source"`
	Application    Application `json:"application"`
	EstimatedValue float64     `json:"estimated_value"`
	Notes          string      `json:"notes"`
	AssignedTo     string      `json:"assigned_to"`
	Negotiation    bool        `json:"negotiation"`
	ProductID      string      `json:"productId"`
	SparePartIDs   []string    `json:"sparePartIds"`
}

// Factory
func NewLead(in LeadInput, now time.Time) (*Lead, error) {
	lead := &Lead{
		ID:             uuid.New().String(),
		Company:        in.Company,
		ContactName:    in.ContactName,
		Email:          in.Email,
		Phone:          in.Phone,
		Status:         in.Status,
		Source:         in.Source,
		Application:    in.Application,
		EstimatedValue: in.EstimatedValue,
		Notes:          in.Notes,
		AssignedTo:     in.AssignedTo,
		Negotiation:    in.Negotiation,
		ProductID:      in.ProductID,
		SparePartIDs:   append([]string{}, in.SparePartIDs...),
		Memos:          []Memo{},
		FollowUps:      []FollowUp{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if strings.TrimSpace(l.Company) == "" {
		return &ValidationError{"company", "is required"}
	}
	if strings.TrimSpace(l.ContactName) == "" {
		return &ValidationError{"contact_name", "is required"}
	}
	if strings.TrimSpace(l.Email) == "" {
		return &ValidationError{"email", "is required"}
	}
	if !l.Status.Valid() {
		return &ValidationError{"status", "is not a known status"}
	}
	if !l.Source.Valid() {
		return &ValidationError{"source", "is not a known source"}
	}
	if l.EstimatedValue < 0 {
		return &ValidationError{"estimated_value", "must not be negative"}
	}
	return nil
}

// LeadPatch is a partial update. Nil fields keep their current value; ID and
// timestamps are deliberately not representable here.
type LeadPatch struct {
	Company        *string      `json:"company,omitempty"`
	ContactName    *string      `json:"contact_name,omitempty"`
	Email          *string      `json:"email,omitempty"`
	Phone          *string      `json:"phone,omitempty"`
	Status         *LeadStatus  `json:"status,omitempty"`
	Source         *LeadSource  `json:"source,omitempty"`
	Application    *Application `json:"application,omitempty"`
	EstimatedValue *float64     `json:"estimated_value,omitempty"`
	Notes          *string      `json:"notes,omitempty"`
	AssignedTo     *string      `json:"assigned_to,omitempty"`
	Negotiation    *bool        `json:"negotiation,omitempty"`
	ProductID      *string      `json:"productId,omitempty"`
	SparePartIDs   *[]string    `json:"sparePartIds,omitempty"`
}

// Apply merges the patch into the lead. Timestamp bookkeeping is the store's
// responsibility.
func (p LeadPatch) Apply(l *Lead) {
	if p.Company != nil {
		l.Company = *p.Company
	}
	if p.ContactName != nil {
		l.ContactName = *p.ContactName
	}
	if p.Email != nil {
		l.Email = *p.Email
	}
	if p.Phone != nil {
		l.Phone = *p.Phone
	}
	if p.Status != nil {
		l.Status = *p.Status
	}
	if p.Source != nil {
		l.Source = *p.Source
	}
	if p.Application != nil {
		l.Application = *p.Application
	}
	if p.EstimatedValue != nil {
		l.EstimatedValue = *p.EstimatedValue
	}
	if p.Notes != nil {
		l.Notes = *p.Notes
	}
	if p.AssignedTo != nil {
		l.AssignedTo = *p.AssignedTo
	}
	if p.Negotiation != nil {
		l.Negotiation = *p.Negotiation
	}
	if p.ProductID != nil {
		l.ProductID = *p.ProductID
	}
	if p.SparePartIDs != nil {
		l.SparePartIDs = append([]string{}, (*p.SparePartIDs)...)
	}
}

// MemoInput is the caller-settable part of a memo; id, created_at and
// created_by are stamped at append time.
type MemoInput struct {
	Category MemoCategory `json:"category"`
	Content  string       `json:"content"`
}

// FollowUpInput is the caller-settable part of a follow-up entry.
type FollowUpInput struct {
	Date   time.Time `json:"date"`
	Action string    `json:"action"`
	Notes  string    `json:"notes"`
}
