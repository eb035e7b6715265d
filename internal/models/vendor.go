package models

import "time"

// Vendor is the relational row backing a vendor: numeric id + tenant key,
// with all profile fields (including the VDR code) in the JSONB data document.
type Vendor struct {
	VendorID  int64     `db:"vendor_id"`
	CompanyID int64     `db:"company_id"`
	Data      []byte    `db:"data"` // JSONB profile document
	CreatedAt time.Time `db:"created_at"`
}
