package models

import "time"

// User is the relational row backing a user: generated code + tenant key,
// with all profile fields in the JSONB data document.
type User struct {
	UserID    string    `db:"user_id"` // e.g. USR001, scoped per company
	CompanyID int64     `db:"company_id"`
	Data      []byte    `db:"data"` // JSONB profile document
	CreatedAt time.Time `db:"created_at"`
}
