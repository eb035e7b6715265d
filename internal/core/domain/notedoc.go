package domain

import "github.com/shopspring/decimal"

// NoteDocument is the assembled, rendering-ready form of a note: transaction
// details merged with the owning company and the vendor, plus derived fields.
type NoteDocument struct {
	NoteType  string // "Credit" or "Debit"
	NoteNo    string
	Date      string
	InvoiceNo string
	Status    string

	CompanyName    string
	CompanyAddress string
	CompanyPhone   string
	CompanyContact string
	CompanyGST     string

	CustomerName    string
	CustomerAddress string
	CustomerPhone   string
	CustomerContact string
	CustomerGST     string

	TotalAmount   decimal.Decimal
	AmountInWords string

	Rows []NoteRow
}

// NoteRow is one normalized table row of the rendered note. The renderer
// recomputes basic, tax and final amounts from Qty, Rate and TaxPercent;
// those recomputed values are authoritative over anything stored upstream.
// Invalid values render as blank cells.
type NoteRow struct {
	Particulars string
	Remarks     string
	Qty         decimal.NullDecimal
	Rate        decimal.NullDecimal
	TaxPercent  decimal.NullDecimal
}
