package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SparePart is referenced many-to-many from leads and proposals. Deleting one
// may leave dangling references behind; lookups fail soft.
type SparePart struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	PartNumber  string      `json:"partNumber"`
	Description string      `json:"description"`
	Brand       string      `json:"brand"`
	Price       float64     `json:"price"`
	Stock       int         `json:"stock"`
	Category    string      `json:"category"`
	Image       *Attachment `json:"image,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type SparePartInput struct {
	Name        string      `json:"name"`
	PartNumber  string      `json:"partNumber"`
	Description string      `json:"description"`
	Brand       string      `json:"brand"`
	Price       float64     `json:"price"`
	Stock       int         `json:"stock"`
	Category    string      `json:"category"`
	Image       *Attachment `json:"image,omitempty"`
}

func NewSparePart(in SparePartInput, now time.Time) (*SparePart, error) {
	part := &SparePart{
		ID:          uuid.New().String(),
		Name:        in.Name,
		PartNumber:  in.PartNumber,
		Description: in.Description,
		Brand:       in.Brand,
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    in.Category,
		Image:       in.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := part.Validate(); err != nil {
		return nil, err
	}

	return part, nil
}

func (s *SparePart) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return &ValidationError{"name", "is required"}
	}
	if strings.TrimSpace(s.PartNumber) == "" {
		return &ValidationError{"partNumber", "is required"}
	}
	if s.Price < 0 {
		return &ValidationError{"price", "must not be negative"}
	}
	if s.Stock < 0 {
		return &ValidationError{"stock", "must not be negative"}
	}
	return nil
}

type SparePartPatch struct {
	Name        *string     `json:"name,omitempty"`
	PartNumber  *string     `json:"partNumber,omitempty"`
	Description *string     `json:"description,omitempty"`
	Brand       *string     `json:"brand,omitempty"`
	Price       *float64    `json:"price,omitempty"`
	Stock       *int        `json:"stock,omitempty"`
	Category    *string     `json:"category,omitempty"`
	Image       *Attachment `json:"image,omitempty"`
}

func (p SparePartPatch) Apply(part *SparePart) {
	if p.Name != nil {
		part.Name = *p.Name
	}
	if p.PartNumber != nil {
		part.PartNumber = *p.PartNumber
	}
	if p.Description != nil {
		part.Description = *p.Description
	}
	if p.Brand != nil {
		part.Brand = *p.Brand
	}
	if p.Price != nil {
		part.Price = *p.Price
	}
	if p.Stock != nil {
		part.Stock = *p.Stock
	}
	if p.Category != nil {
		part.Category = *p.Category
	}
	if p.Image != nil {
		part.Image = p.Image
	}
}
