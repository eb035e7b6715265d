package domain

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// NoteType distinguishes debit notes from credit notes.
type NoteType string

const (
	Debit  NoteType = "Debit"
	Credit NoteType = "Credit"
)

// Prefix returns the note-number prefix for this type.
func (t NoteType) Prefix() string {
	if t == Credit {
		return "CRN"
	}
	return "DBN"
}

// Recognized note statuses. Status is free-form in storage; only the exact
// string "Canceled" (this spelling) has semantics: it is terminal and drives
// the PDF watermark.
const (
	StatusDraft    = "Draft"
	StatusCreated  = "Created"
	StatusCanceled = "Canceled"
)

// Transaction is a debit or credit note: a company-owned record referencing
// one vendor, with all note content held in the details document.
type Transaction struct {
	TransactionID string // generated note number, e.g. DBN001 / CRN002
	CompanyID     int64
	VendorID      int64
	Details       NoteDetails
	CreatedAt     time.Time
}

// NoteDetails is the persisted JSON document of a transaction. The canonical
// field names below are the storage contract; decoding also accepts the
// legacy aliases (totalAmount, invoiceNo) that older documents carry.
type NoteDetails struct {
	TransactionType string
	TransactionDate string
	InvoiceNo       string
	Status          string
	TotalAmount     decimal.Decimal
	Items           []NoteItem
}

// NoteItem is one line of a note. Item ids (ITM001...) are positional and
// assigned once, when the transaction is created; they are never regenerated
// on update. Tax is a percentage. The numeric fields are nullable: legacy
// documents hold null, empty or unparseable values, and those must stay
// distinguishable from an explicit zero so the PDF can leave the cell blank.
type NoteItem struct {
	ItemID      string
	Particulars string
	Remarks     string
	Qty         decimal.NullDecimal
	Rate        decimal.NullDecimal
	Tax         decimal.NullDecimal
}

// BasicAmount is the line amount before tax. Absent values count as zero.
func (it NoteItem) BasicAmount() decimal.Decimal {
	return it.Qty.Decimal.Mul(it.Rate.Decimal)
}

// TaxAmount applies the line's tax percentage to the basic amount.
func (it NoteItem) TaxAmount() decimal.Decimal {
	return it.BasicAmount().Mul(it.Tax.Decimal).Div(decimal.NewFromInt(100))
}

// LineAmount is the line amount including tax.
func (it NoteItem) LineAmount() decimal.Decimal {
	return it.BasicAmount().Add(it.TaxAmount())
}

// RecomputeTotal sets TotalAmount to the sum of the line amounts. Stored
// totals are never trusted; every write path recomputes from the items.
func (d *NoteDetails) RecomputeTotal() {
	total := decimal.Zero
	for _, it := range d.Items {
		total = total.Add(it.LineAmount())
	}
	d.TotalAmount = total
}

// decodeDecimal leniently parses a JSON value as a decimal: numbers and
// numeric strings parse normally, anything else counts as zero. Legacy
// documents carry quantities both quoted and unquoted.
func decodeDecimal(raw json.RawMessage) decimal.Decimal {
	return decodeNullDecimal(raw).Decimal
}

// decodeNullDecimal is decodeDecimal with presence: missing, null, empty and
// unparseable values come back invalid instead of zero.
func decodeNullDecimal(raw json.RawMessage) decimal.NullDecimal {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) || bytes.Equal(raw, []byte(`""`)) {
		return decimal.NullDecimal{}
	}
	var d decimal.Decimal
	if err := json.Unmarshal(raw, &d); err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// firstString returns the first non-nil alias value.
func firstString(vals ...*string) string {
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return ""
}

// firstRaw returns the first non-empty alias value.
func firstRaw(vals ...json.RawMessage) json.RawMessage {
	for _, v := range vals {
		if len(v) > 0 {
			return v
		}
	}
	return nil
}

// UnmarshalJSON decodes a line item, accepting the legacy field aliases
// qty|quantity, rate|price, tax|taxAmount, particulars|description and
// remarks|note.
func (it *NoteItem) UnmarshalJSON(b []byte) error {
	var raw struct {
		ItemID      string          `json:"item_id"`
		Particulars *string         `json:"particulars"`
		Description *string         `json:"description"`
		Remarks     *string         `json:"remarks"`
		Note        *string         `json:"note"`
		Qty         json.RawMessage `json:"qty"`
		Quantity    json.RawMessage `json:"quantity"`
		Rate        json.RawMessage `json:"rate"`
		Price       json.RawMessage `json:"price"`
		Tax         json.RawMessage `json:"tax"`
		TaxAmount   json.RawMessage `json:"taxAmount"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	it.ItemID = raw.ItemID
	it.Particulars = firstString(raw.Particulars, raw.Description)
	it.Remarks = firstString(raw.Remarks, raw.Note)
	it.Qty = decodeNullDecimal(firstRaw(raw.Qty, raw.Quantity))
	it.Rate = decodeNullDecimal(firstRaw(raw.Rate, raw.Price))
	it.Tax = decodeNullDecimal(firstRaw(raw.Tax, raw.TaxAmount))
	return nil
}

// rawNumber emits an unquoted number, or null when the value is absent.
func rawNumber(d decimal.NullDecimal) json.RawMessage {
	if !d.Valid {
		return json.RawMessage("null")
	}
	return json.RawMessage(d.Decimal.String())
}

// MarshalJSON always emits the canonical storage shape with unquoted numbers:
// {item_id, particulars, remarks, qty, rate, tax}. Absent values stay null.
func (it NoteItem) MarshalJSON() ([]byte, error) {
	type out struct {
		ItemID      string          `json:"item_id"`
		Particulars string          `json:"particulars"`
		Remarks     string          `json:"remarks"`
		Qty         json.RawMessage `json:"qty"`
		Rate        json.RawMessage `json:"rate"`
		Tax         json.RawMessage `json:"tax"`
	}
	return json.Marshal(out{
		ItemID:      it.ItemID,
		Particulars: it.Particulars,
		Remarks:     it.Remarks,
		Qty:         rawNumber(it.Qty),
		Rate:        rawNumber(it.Rate),
		Tax:         rawNumber(it.Tax),
	})
}

// UnmarshalJSON decodes a details document, accepting the legacy aliases
// total_amount|totalAmount and invoice_no|invoiceNo.
func (d *NoteDetails) UnmarshalJSON(b []byte) error {
	var raw struct {
		TransactionType string          `json:"transaction_type"`
		TransactionDate string          `json:"transaction_date"`
		InvoiceNo       *string         `json:"invoice_no"`
		InvoiceNoAlt    *string         `json:"invoiceNo"`
		Status          string          `json:"status"`
		TotalAmount     json.RawMessage `json:"total_amount"`
		TotalAmountAlt  json.RawMessage `json:"totalAmount"`
		Items           []NoteItem      `json:"items"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	d.TransactionType = raw.TransactionType
	d.TransactionDate = raw.TransactionDate
	d.InvoiceNo = firstString(raw.InvoiceNo, raw.InvoiceNoAlt)
	d.Status = raw.Status
	d.TotalAmount = decodeDecimal(firstRaw(raw.TotalAmount, raw.TotalAmountAlt))
	d.Items = raw.Items
	return nil
}

// MarshalJSON always emits the canonical storage shape.
func (d NoteDetails) MarshalJSON() ([]byte, error) {
	items := d.Items
	if items == nil {
		items = []NoteItem{}
	}
	type out struct {
		TransactionType string          `json:"transaction_type"`
		TransactionDate string          `json:"transaction_date"`
		InvoiceNo       string          `json:"invoice_no"`
		Status          string          `json:"status"`
		TotalAmount     json.RawMessage `json:"total_amount"`
		Items           []NoteItem      `json:"items"`
	}
	return json.Marshal(out{
		TransactionType: d.TransactionType,
		TransactionDate: d.TransactionDate,
		InvoiceNo:       d.InvoiceNo,
		Status:          d.Status,
		TotalAmount:     json.RawMessage(d.TotalAmount.String()),
		Items:           items,
	})
}

// ParseNoteDetails decodes a stored details document. Legacy rows hold the
// document as raw JSON, as a double-encoded JSON string, or not at all; all
// three are handled, and the document is parsed exactly once. The boolean
// reports whether the payload decoded cleanly; a corrupt payload yields an
// empty details object rather than an error so that reads degrade instead of
// failing the whole request.
func ParseNoteDetails(b []byte) (NoteDetails, bool) {
	var d NoteDetails
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return d, true
	}
	// Double-encoded legacy rows: the JSONB value is a string holding JSON.
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return NoteDetails{}, false
		}
		b = []byte(s)
	}
	if err := json.Unmarshal(b, &d); err != nil {
		return NoteDetails{}, false
	}
	return d, true
}
