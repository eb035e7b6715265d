package dto

import (
	"github.com/gstnote/gstnote_backend/internal/core/domain"
)

// CreateVendorRequest carries the fields of a new vendor. The vendor code is
// allocated server-side and must not be supplied.
type CreateVendorRequest struct {
	VendorName    string `json:"vendor_name" binding:"required"`
	Address       string `json:"address" binding:"required"`
	GSTIN         string `json:"gstin"`
	Phone         string `json:"phone"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
}

// UpdateVendorRequest carries a partial vendor update. The stored vendor code
// is always preserved regardless of what the caller sends.
type UpdateVendorRequest struct {
	VendorName    *string `json:"vendor_name"`
	Address       *string `json:"address"`
	GSTIN         *string `json:"gstin"`
	Phone         *string `json:"phone"`
	ContactPerson *string `json:"contact_person"`
	Email         *string `json:"email"`
}

// CreateVendorResponse is the creation envelope.
type CreateVendorResponse struct {
	Ok         bool   `json:"ok"`
	VendorID   int64  `json:"vendor_id"`
	VendorCode string `json:"vendor_code"`
}

// VendorResponse is the wire form of a vendor with the profile document
// flattened to the top level alongside the row ids.
type VendorResponse struct {
	VendorID      int64  `json:"vendor_id"`
	CompanyID     int64  `json:"company_id"`
	VendorCode    string `json:"vendor_code"`
	VendorName    string `json:"vendor_name"`
	Address       string `json:"address"`
	GSTIN         string `json:"gstin"`
	Phone         string `json:"phone"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
}

// ToVendorResponse converts a domain.Vendor to its flattened wire form.
func ToVendorResponse(v *domain.Vendor) VendorResponse {
	return VendorResponse{
		VendorID:      v.VendorID,
		CompanyID:     v.CompanyID,
		VendorCode:    v.Profile.VendorCode,
		VendorName:    v.Profile.VendorName,
		Address:       v.Profile.Address,
		GSTIN:         v.Profile.GSTIN,
		Phone:         v.Profile.Phone,
		ContactPerson: v.Profile.ContactPerson,
		Email:         v.Profile.Email,
	}
}

// ToVendorResponses converts a slice of vendors.
func ToVendorResponses(vs []domain.Vendor) []VendorResponse {
	out := make([]VendorResponse, len(vs))
	for i := range vs {
		out[i] = ToVendorResponse(&vs[i])
	}
	return out
}
