package domain

import "time"

// Vendor belongs to exactly one company and is identified both by its numeric
// row id and by a generated display code (VDR001, VDR002, ...).
type Vendor struct {
	VendorID  int64
	CompanyID int64
	Profile   VendorProfile
	CreatedAt time.Time
}

// VendorProfile is the persisted JSON document attached to a vendor row.
// The vendor code is stored inside the document itself, not only derived:
// updates must re-attach the prior code even when the caller omits it.
type VendorProfile struct {
	VendorName    string `json:"vendor_name"`
	Address       string `json:"address"`
	GSTIN         string `json:"gstin"`
	Phone         string `json:"phone"`
	ContactPerson string `json:"contact_person"`
	VendorCode    string `json:"vendor_code"`
	Email         string `json:"email"`
}
