package dto

import (
	"flipdar-api/internal/models"
)

// Search History Request DTOs

// RecordSearchRequest captures the outcome of a completed price lookup
type RecordSearchRequest struct {
	Item            string  `json:"item" validate:"required,min=1,max=255"`
	AvgPrice        string  `json:"avgPrice" validate:"required,price_string"`
	MinPrice        string  `json:"minPrice" validate:"omitempty,price_string"`
	MaxPrice        string  `json:"maxPrice" validate:"omitempty,price_string"`
	AvgDurationDays float64 `json:"avgDurationDays" validate:"omitempty,gte=0"`
	ResultCount     int     `json:"resultCount" validate:"omitempty,gte=0"`
}

// RecentSearchesParams controls how much history to return
type RecentSearchesParams struct {
	Limit int `query:"limit"`
}

// SuggestionsParams carries the typeahead prefix
type SuggestionsParams struct {
	Prefix string `query:"q"`
}

// Search History Response DTOs

// SearchRecordResponse represents a single recorded lookup
type SearchRecordResponse struct {
	*models.SearchRecord
}

// SearchHistoryListResponse lists recent lookups, newest first
type SearchHistoryListResponse struct {
	Searches []models.SearchRecord `json:"searches"`
	Count    int                   `json:"count"`
}

// SearchAnalyticsResponse summarizes a user's lookup behavior
type SearchAnalyticsResponse struct {
	Analytics *models.SearchAnalytics `json:"analytics"`
}

// SuggestionsResponse carries grouped typeahead suggestions
type SuggestionsResponse struct {
	Suggestions *models.SuggestionSet `json:"suggestions"`
}
