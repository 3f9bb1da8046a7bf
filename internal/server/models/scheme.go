package models

import "time"

type SchemeType string

const (
	SchemeTypeDeposit SchemeType = "deposit"
	SchemeTypeLoan    SchemeType = "loan"
)

type SchemeStatus string

const (
	SchemeStatusActive   SchemeStatus = "active"
	SchemeStatusInactive SchemeStatus = "inactive"
)

// Scheme is a deposit or loan product. InterestRate is a decimal string with
// two fractional digits; MinAmount and MaxAmount are free-form display text.
type Scheme struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Type         SchemeType   `json:"type"`
	Description  string       `json:"description"`
	InterestRate string       `json:"interestRate"`
	MinAmount    *string      `json:"minAmount"`
	MaxAmount    *string      `json:"maxAmount"`
	Tenure       string       `json:"tenure"`
	Status       SchemeStatus `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
}

type SchemeInput struct {
	Name         string
	Type         SchemeType
	Description  string
	InterestRate string
	MinAmount    *string
	MaxAmount    *string
	Tenure       string
	Status       SchemeStatus
}

// NewScheme builds a record from in, applying the defaults: status active and
// empty amounts stored as null.
func NewScheme(id string, in SchemeInput, createdAt time.Time) Scheme {
	s := Scheme{
		ID:           id,
		Name:         in.Name,
		Type:         in.Type,
		Description:  in.Description,
		InterestRate: in.InterestRate,
		MinAmount:    nullable(in.MinAmount),
		MaxAmount:    nullable(in.MaxAmount),
		Tenure:       in.Tenure,
		Status:       in.Status,
		CreatedAt:    createdAt,
	}
	if s.Status == "" {
		s.Status = SchemeStatusActive
	}
	return s
}

type SchemePatch struct {
	Name         *string
	Type         *SchemeType
	Description  *string
	InterestRate *string
	MinAmount    *string
	MaxAmount    *string
	Tenure       *string
	Status       *SchemeStatus
}

func (p SchemePatch) Apply(s *Scheme) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Type != nil {
		s.Type = *p.Type
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.InterestRate != nil {
		s.InterestRate = *p.InterestRate
	}
	if p.MinAmount != nil {
		s.MinAmount = nullable(p.MinAmount)
	}
	if p.MaxAmount != nil {
		s.MaxAmount = nullable(p.MaxAmount)
	}
	if p.Tenure != nil {
		s.Tenure = *p.Tenure
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
}

// Clone returns a copy that shares no pointers with s.
func (s Scheme) Clone() Scheme {
	s.MinAmount = cloneString(s.MinAmount)
	s.MaxAmount = cloneString(s.MaxAmount)
	return s
}
