package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Product is a robot model from the master catalog. Leads and proposals
// reference it by ID; they never own it.
type Product struct {
	ID         string       `json:"id"`
	Robot      string       `json:"robot"`
	Controller string       `json:"controller"`
	ReachMM    float64      `json:"reach"`
	PayloadKG  float64      `json:"payload"`
	Brand      string       `json:"brand"`
	Image      *Attachment  `json:"image,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

type ProductInput struct {
	Robot      string      `json:"robot"`
	Controller string      `json:"controller"`
	ReachMM    float64     `json:"reach"`
	PayloadKG  float64     `json:"payload"`
	Brand      string      `json:"brand"`
	Image      *Attachment `json:"image,omitempty"`
}

func NewProduct(in ProductInput, now time.Time) (*Product, error) {
	product := &Product{
		ID:         uuid.New().String(),
		Robot:      in.Robot,
		Controller: in.Controller,
		ReachMM:    in.ReachMM,
		PayloadKG:  in.PayloadKG,
		Brand:      in.Brand,
		Image:      in.Image,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	return product, nil
}

func (p *Product) Validate() error {
	if strings.TrimSpace(p.Robot) == "" {
		return &ValidationError{"robot", "is required"}
	}
	if strings.TrimSpace(p.Brand) == "" {
		return &ValidationError{"brand", "is required"}
	}
	return nil
}

type ProductPatch struct {
	Robot      *string     `json:"robot,omitempty"`
	Controller *string     `json:"controller,omitempty"`
	ReachMM    *float64    `json:"reach,omitempty"`
	PayloadKG  *float64    `json:"payload,omitempty"`
	Brand      *string     `json:"brand,omitempty"`
	Image      *Attachment `json:"image,omitempty"`
}

func (p ProductPatch) Apply(product *Product) {
	if p.Robot != nil {
		product.Robot = *p.Robot
	}
	if p.Controller != nil {
		product.Controller = *p.Controller
	}
	if p.ReachMM != nil {
		product.ReachMM = *p.ReachMM
	}
	if p.PayloadKG != nil {
		product.PayloadKG = *p.PayloadKG
	}
	if p.Brand != nil {
		product.Brand = *p.Brand
	}
	if p.Image != nil {
		product.Image = p.Image
	}
}
