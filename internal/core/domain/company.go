package domain

import "time"

// Company is the tenancy root. Every other entity belongs to exactly one
// company and is never visible across company boundaries.
type Company struct {
	CompanyID     int64
	CompanyName   string
	Address       string
	GSTIN         string
	Email         string
	Phone         string
	ContactPerson string
	CreatedBy     string
	CreatedAt     time.Time
}
