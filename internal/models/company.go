package models

import (
	"database/sql"
	"time"
)

// Company is the relational row backing a tenant. Unlike the other entities
// its descriptive fields are plain columns, not a JSON document.
type Company struct {
	CompanyID     int64          `db:"company_id"`
	CompanyName   string         `db:"company_name"`
	Address       sql.NullString `db:"address"`
	GSTIN         sql.NullString `db:"gstin"`
	Email         sql.NullString `db:"email"`
	Phone         sql.NullString `db:"phone"`
	ContactPerson sql.NullString `db:"contact_person"`
	CreatedBy     sql.NullString `db:"created_by"`
	CreatedAt     time.Time      `db:"created_at"`
}
