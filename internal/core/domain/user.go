package domain

import "time"

// User belongs to exactly one company. The row itself is just the generated
// code plus the tenant key; descriptive fields live in the profile document.
type User struct {
	UserID    string // generated code, e.g. USR001, scoped per company
	CompanyID int64
	Profile   UserProfile
	CreatedAt time.Time
}

// UserProfile is the persisted JSON document attached to a user row. The
// field names are part of the storage contract and must not change.
type UserProfile struct {
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	Password  string    `json:"password"` // bcrypt hash, never plaintext
	CreatedAt time.Time `json:"created_at"`
}
