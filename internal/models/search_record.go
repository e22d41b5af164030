package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrMissingSearchItem = errors.New("search item is required")

// SearchRecord represents one completed marketplace price lookup reported by
// the client. The lookup itself happens outside this service; we keep the
// result so history and search analytics survive across sessions.
type SearchRecord struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Item            string          `gorm:"type:varchar(255);not null" json:"item"`
	AvgPrice        decimal.Decimal `gorm:"type:decimal(15,2)" json:"avg_price"`
	MinPrice        decimal.Decimal `gorm:"type:decimal(15,2)" json:"min_price"`
	MaxPrice        decimal.Decimal `gorm:"type:decimal(15,2)" json:"max_price"`
	AvgDurationDays decimal.Decimal `gorm:"type:decimal(10,2)" json:"avg_duration_days"`
	ResultCount     int             `gorm:"default:0" json:"result_count"`
	SearchedAt      time.Time       `gorm:"not null;index" json:"searched_at"`
}

// BeforeCreate hook for SearchRecord
func (r *SearchRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	if r.SearchedAt.IsZero() {
		r.SearchedAt = time.Now()
	}

	return r.Validate()
}

// Validate validates the search record fields
func (r *SearchRecord) Validate() error {
	if r.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if r.Item == "" {
		return ErrMissingSearchItem
	}

	if r.AvgPrice.IsNegative() || r.MinPrice.IsNegative() || r.MaxPrice.IsNegative() {
		return errors.New("search prices must not be negative")
	}

	if r.ResultCount < 0 {
		return errors.New("result count must not be negative")
	}

	return nil
}

func (r *SearchRecord) TableName() string {
	return "search_history"
}

// SearchAnalytics represents aggregate metrics over a user's search history
type SearchAnalytics struct {
	UserID          uuid.UUID       `json:"user_id"`
	SearchCount     int64           `json:"search_count"`
	AvgLookupPrice  decimal.Decimal `json:"avg_lookup_price"`
	UniqueItemCount int64           `json:"unique_item_count"`
	GeneratedAt     time.Time       `json:"generated_at"`
}

// SuggestionSet represents autocomplete data for the search and entry forms
type SuggestionSet struct {
	Items      []string `json:"items"`
	Platforms  []string `json:"platforms"`
	Conditions []string `json:"conditions"`
	Trending   []string `json:"trending"`
}
