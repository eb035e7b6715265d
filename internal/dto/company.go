package dto

import (
	"time"

	"github.com/gstnote/gstnote_backend/internal/core/domain"
)

// CreateCompanyRequest carries the fields of a new company (the signup flow).
type CreateCompanyRequest struct {
	CompanyName   string `json:"company_name" binding:"required"`
	Address       string `json:"address"`
	GSTIN         string `json:"gstin"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	ContactPerson string `json:"contact_person"`
}

// UpdateCompanyRequest carries a partial company update. Pointers distinguish
// omitted fields from explicit blanks.
type UpdateCompanyRequest struct {
	CompanyName   *string `json:"company_name"`
	Address       *string `json:"address"`
	GSTIN         *string `json:"gstin"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	ContactPerson *string `json:"contact_person"`
}

// CompanyResponse is the wire form of a company.
type CompanyResponse struct {
	CompanyID     int64     `json:"company_id"`
	CompanyName   string    `json:"company_name"`
	Address       string    `json:"address"`
	GSTIN         string    `json:"gstin"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	ContactPerson string    `json:"contact_person"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToCompanyResponse converts a domain.Company to its wire form.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:     c.CompanyID,
		CompanyName:   c.CompanyName,
		Address:       c.Address,
		GSTIN:         c.GSTIN,
		Email:         c.Email,
		Phone:         c.Phone,
		ContactPerson: c.ContactPerson,
		CreatedAt:     c.CreatedAt,
	}
}
