package services

import (
	"context"

	"github.com/gstnote/gstnote_backend/internal/dto"
)

// ReportingSvcFacade defines the dashboard aggregation.
type ReportingSvcFacade interface {
	// DashboardSummary aggregates the company's notes: credit/debit totals,
	// net balance, draft and canceled counts, and the most recent notes.
	DashboardSummary(ctx context.Context, companyID int64) (*dto.DashboardSummary, error)
}
