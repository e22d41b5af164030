package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sortable transaction fields accepted by list queries
const (
	SortFieldDate     = "date"
	SortFieldPrice    = "price"
	SortFieldItem     = "item"
	SortFieldType     = "type"
	SortFieldPlatform = "platform"
)

// TransactionFilters contains filtering options for transaction queries
type TransactionFilters struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Type      string
	Platform  string
	Item      string
	MinPrice  *decimal.Decimal
	MaxPrice  *decimal.Decimal
	SortBy    string
	SortDesc  bool
	Offset    int
	Limit     int
}

// IsValidSortField checks if the field is an accepted sort key
func IsValidSortField(field string) bool {
	switch field {
	case SortFieldDate, SortFieldPrice, SortFieldItem, SortFieldType, SortFieldPlatform:
		return true
	default:
		return false
	}
}
