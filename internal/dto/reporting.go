package dto

import (
	"github.com/shopspring/decimal"
)

// DashboardSummary aggregates a company's notes for the dashboard: totals by
// note type, net balance, status counts and the most recent notes.
type DashboardSummary struct {
	CreditTotal   decimal.Decimal       `json:"credit_total"`
	DebitTotal    decimal.Decimal       `json:"debit_total"`
	NetBalance    decimal.Decimal       `json:"net_balance"`
	DraftCount    int                   `json:"draft_count"`
	CanceledCount int                   `json:"canceled_count"`
	RecentNotes   []TransactionResponse `json:"recent_notes"`
}
