package dto

import (
	"time"

	"github.com/gstnote/gstnote_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NoteItemPayload is one line item as supplied by the client. ItemID is
// ignored on creation (ids are assigned positionally) and preserved verbatim
// on update.
type NoteItemPayload struct {
	ItemID      string          `json:"item_id"`
	Particulars string          `json:"particulars"`
	Remarks     string          `json:"remarks"`
	Qty         decimal.Decimal `json:"qty"`
	Rate        decimal.Decimal `json:"rate"`
	Tax         decimal.Decimal `json:"tax"` // percentage
}

// NoteDetailsPayload is the details document as supplied by the client.
type NoteDetailsPayload struct {
	TransactionType string            `json:"transaction_type" binding:"required,oneof=Credit Debit"`
	TransactionDate string            `json:"transaction_date"`
	InvoiceNo       string            `json:"invoice_no"`
	Status          string            `json:"status"`
	Items           []NoteItemPayload `json:"items"`
}

// CreateTransactionRequest creates a note. CompanyID may be omitted; it then
// falls back to the authenticated caller's company.
type CreateTransactionRequest struct {
	CompanyID int64              `json:"company_id"`
	VendorID  int64              `json:"vendor_id" binding:"required"`
	Details   NoteDetailsPayload `json:"details" binding:"required"`
}

// UpdateTransactionRequest replaces a note's details document wholesale.
type UpdateTransactionRequest struct {
	Details NoteDetailsPayload `json:"details" binding:"required"`
}

// CreateTransactionResponse is the creation envelope.
type CreateTransactionResponse struct {
	Ok            bool   `json:"ok"`
	TransactionID string `json:"transaction_id"`
}

// OkResponse is the generic mutation success envelope.
type OkResponse struct {
	Ok      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// NoteItemResponse is the canonical wire form of a line item.
type NoteItemResponse struct {
	ItemID      string          `json:"item_id"`
	Particulars string          `json:"particulars"`
	Remarks     string          `json:"remarks"`
	Qty         decimal.Decimal `json:"qty"`
	Rate        decimal.Decimal `json:"rate"`
	Tax         decimal.Decimal `json:"tax"`
}

// NoteDetailsResponse is the canonical wire form of a details document.
type NoteDetailsResponse struct {
	TransactionType string             `json:"transaction_type"`
	TransactionDate string             `json:"transaction_date"`
	InvoiceNo       string             `json:"invoice_no"`
	Status          string             `json:"status"`
	TotalAmount     decimal.Decimal    `json:"total_amount"`
	Items           []NoteItemResponse `json:"items"`
}

// TransactionResponse is the wire form of a note.
type TransactionResponse struct {
	TransactionID string              `json:"transaction_id"`
	CompanyID     int64               `json:"company_id"`
	VendorID      int64               `json:"vendor_id"`
	VendorName    string              `json:"vendor_name,omitempty"`
	Details       NoteDetailsResponse `json:"details"`
	CreatedAt     time.Time           `json:"created_at"`
}

// ToNoteItemResponses converts domain line items.
func ToNoteItemResponses(items []domain.NoteItem) []NoteItemResponse {
	out := make([]NoteItemResponse, len(items))
	for i, it := range items {
		out[i] = NoteItemResponse{
			ItemID:      it.ItemID,
			Particulars: it.Particulars,
			Remarks:     it.Remarks,
			Qty:         it.Qty.Decimal,
			Rate:        it.Rate.Decimal,
			Tax:         it.Tax.Decimal,
		}
	}
	return out
}

// ToNoteDetailsResponse converts a domain details document.
func ToNoteDetailsResponse(d domain.NoteDetails) NoteDetailsResponse {
	return NoteDetailsResponse{
		TransactionType: d.TransactionType,
		TransactionDate: d.TransactionDate,
		InvoiceNo:       d.InvoiceNo,
		Status:          d.Status,
		TotalAmount:     d.TotalAmount,
		Items:           ToNoteItemResponses(d.Items),
	}
}

// ToTransactionResponse converts a domain transaction.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		CompanyID:     t.CompanyID,
		VendorID:      t.VendorID,
		Details:       ToNoteDetailsResponse(t.Details),
		CreatedAt:     t.CreatedAt,
	}
}

// ToTransactionListingResponses converts listing rows (with vendor names).
func ToTransactionListingResponses(ts []domain.TransactionListing) []TransactionResponse {
	out := make([]TransactionResponse, len(ts))
	for i := range ts {
		out[i] = ToTransactionResponse(&ts[i].Transaction)
		out[i].VendorName = ts[i].VendorName
	}
	return out
}

// ToDomainItems converts payload items to domain line items. Client-supplied
// values are always present; only legacy stored documents carry absent ones.
func ToDomainItems(items []NoteItemPayload) []domain.NoteItem {
	out := make([]domain.NoteItem, len(items))
	for i, it := range items {
		out[i] = domain.NoteItem{
			ItemID:      it.ItemID,
			Particulars: it.Particulars,
			Remarks:     it.Remarks,
			Qty:         decimal.NewNullDecimal(it.Qty),
			Rate:        decimal.NewNullDecimal(it.Rate),
			Tax:         decimal.NewNullDecimal(it.Tax),
		}
	}
	return out
}

// ToDomainDetails converts a payload details document. TotalAmount is not
// client-suppliable; it is always recomputed from the items.
func ToDomainDetails(p NoteDetailsPayload) domain.NoteDetails {
	return domain.NoteDetails{
		TransactionType: p.TransactionType,
		TransactionDate: p.TransactionDate,
		InvoiceNo:       p.InvoiceNo,
		Status:          p.Status,
		Items:           ToDomainItems(p.Items),
	}
}
