package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gstnote/gstnote_backend/internal/apperrors"
	"github.com/gstnote/gstnote_backend/internal/core/domain"
	"github.com/gstnote/gstnote_backend/internal/middleware"
	"github.com/gstnote/gstnote_backend/internal/utils/numwords"
)

// AssembleNoteDocument merges a note with its company and vendor into a
// rendering-ready document. The note itself must exist; a missing or corrupt
// company or vendor degrades to blank blocks instead of failing, so a note
// whose vendor was deleted can still be exported.
func (s *TransactionService) AssembleNoteDocument(ctx context.Context, companyID int64, transactionID string) (*domain.NoteDocument, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.transactionRepo.FindTransactionByID(ctx, companyID, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load note for export: %w", err)
	}

	doc := &domain.NoteDocument{
		NoteType:  txn.Details.TransactionType,
		NoteNo:    txn.TransactionID,
		Date:      txn.Details.TransactionDate,
		InvoiceNo: txn.Details.InvoiceNo,
		Status:    txn.Details.Status,
	}
	if doc.NoteType == "" {
		// Legacy documents may lack the type field; the number prefix still
		// records which slot this note took.
		if strings.HasPrefix(txn.TransactionID, "CRN") {
			doc.NoteType = string(domain.Credit)
		} else {
			doc.NoteType = string(domain.Debit)
		}
	}

	if company, err := s.companyRepo.FindCompanyByID(ctx, companyID); err == nil {
		doc.CompanyName = company.CompanyName
		doc.CompanyAddress = company.Address
		doc.CompanyPhone = company.Phone
		doc.CompanyContact = company.ContactPerson
		doc.CompanyGST = company.GSTIN
	} else {
		logger.Warn("Note export without company block", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
	}

	if vendor, err := s.vendorRepo.FindVendorByID(ctx, companyID, txn.VendorID); err == nil {
		doc.CustomerName = vendor.Profile.VendorName
		doc.CustomerAddress = vendor.Profile.Address
		doc.CustomerPhone = vendor.Profile.Phone
		doc.CustomerContact = vendor.Profile.ContactPerson
		doc.CustomerGST = vendor.Profile.GSTIN
	} else {
		logger.Warn("Note export without vendor block", slog.String("transaction_id", transactionID), slog.Int64("vendor_id", txn.VendorID), slog.String("error", err.Error()))
	}

	details := txn.Details
	details.RecomputeTotal()
	if len(details.Items) == 0 {
		// An itemless note keeps whatever total was stored.
		details.TotalAmount = txn.Details.TotalAmount
	}
	doc.TotalAmount = details.TotalAmount
	doc.AmountInWords = numwords.AmountToWords(details.TotalAmount)

	doc.Rows = make([]domain.NoteRow, len(details.Items))
	for i, it := range details.Items {
		doc.Rows[i] = domain.NoteRow{
			Particulars: it.Particulars,
			Remarks:     it.Remarks,
			Qty:         it.Qty,
			Rate:        it.Rate,
			TaxPercent:  it.Tax,
		}
	}
	return doc, nil
}
