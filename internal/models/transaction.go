package models

import "time"

// Transaction is the relational row backing a debit/credit note. The note
// content lives in the JSONB details document.
type Transaction struct {
	TransactionID string    `db:"transaction_id"` // e.g. DBN001 / CRN002
	CompanyID     int64     `db:"company_id"`
	VendorID      int64     `db:"vendor_id"`
	Details       []byte    `db:"details"` // JSONB details document
	CreatedAt     time.Time `db:"created_at"`
}

// TransactionItemGroup is the separately stored snapshot of a note's line
// items, keyed by transaction id. It is a derived cache of details->items,
// rebuilt inside the same SQL transaction on every note write.
type TransactionItemGroup struct {
	ItemGroupID   int64  `db:"item_group_id"`
	TransactionID string `db:"transaction_id"`
	Items         []byte `db:"items"` // JSONB array of line items
}

// CodeSequence is one row of the per-scope counter used for code allocation.
// Scope keys are "vendor:<companyID>", "user:<companyID>" and the single
// global "transaction" scope shared by debit and credit notes.
type CodeSequence struct {
	ScopeKey  string `db:"scope_key"`
	NextValue int64  `db:"next_value"`
}
