package dto

import (
	"flipdar-api/internal/models"
)

// Analytics Request DTOs

// AnalyticsParams contains the optional date window for analytics reports
type AnalyticsParams struct {
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
}

// TopItemsParams controls the ranking size
type TopItemsParams struct {
	Limit int `query:"limit"`
}

// Analytics Response DTOs

// SummaryResponse wraps the ledger summary. Summary is null when the user
// has no transactions, which is distinct from a ledger netting to zero.
type SummaryResponse struct {
	Summary *models.LedgerSummary `json:"summary"`
}

// BestFlipResponse wraps the single best pairing. BestFlip is null when the
// user has no recorded sales.
type BestFlipResponse struct {
	BestFlip *models.BestFlip `json:"bestFlip"`
}

// TopItemsResponse lists items ranked by profit potential, best first
type TopItemsResponse struct {
	Items []models.ItemProfit `json:"items"`
}

// TrendResponse carries the cumulative cost/sold/profit series in
// chronological order, one point per active day
type TrendResponse struct {
	Points []models.TrendPoint `json:"points"`
}
