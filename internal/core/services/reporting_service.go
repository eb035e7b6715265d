package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gstnote/gstnote_backend/internal/core/domain"
	portsrepo "github.com/gstnote/gstnote_backend/internal/core/ports/repositories"
	portssvc "github.com/gstnote/gstnote_backend/internal/core/ports/services"
	"github.com/gstnote/gstnote_backend/internal/dto"
)

// recentNoteLimit caps how many notes the dashboard lists.
const recentNoteLimit = 5

type ReportingService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
}

func NewReportingService(transactionRepo portsrepo.TransactionRepositoryFacade) *ReportingService {
	return &ReportingService{transactionRepo: transactionRepo}
}

// Ensure ReportingService implements the portssvc.ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

// DashboardSummary aggregates the company's notes. Canceled notes are
// excluded from the money totals but counted; drafts count toward both the
// totals and the draft counter. NetBalance is debit minus credit.
func (s *ReportingService) DashboardSummary(ctx context.Context, companyID int64) (*dto.DashboardSummary, error) {
	listings, err := s.transactionRepo.FindTransactionsByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load notes for summary: %w", err)
	}

	summary := &dto.DashboardSummary{
		CreditTotal: decimal.Zero,
		DebitTotal:  decimal.Zero,
		NetBalance:  decimal.Zero,
	}
	for _, l := range listings {
		switch l.Details.Status {
		case domain.StatusCanceled:
			summary.CanceledCount++
			continue
		case domain.StatusDraft:
			summary.DraftCount++
		}
		if l.Details.TransactionType == string(domain.Credit) {
			summary.CreditTotal = summary.CreditTotal.Add(l.Details.TotalAmount)
		} else {
			summary.DebitTotal = summary.DebitTotal.Add(l.Details.TotalAmount)
		}
	}
	summary.NetBalance = summary.DebitTotal.Sub(summary.CreditTotal)

	recent := listings
	if len(recent) > recentNoteLimit {
		recent = recent[:recentNoteLimit]
	}
	summary.RecentNotes = dto.ToTransactionListingResponses(recent)
	return summary, nil
}
