package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypePurchase = "purchase"
	TransactionTypeSale     = "sale"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidPrice           = errors.New("transaction price must not be negative")
	ErrMissingItem            = errors.New("transaction item is required")
)

// KnownPlatforms lists the marketplaces offered by the client UI.
// Free-text platforms are still accepted; the list feeds suggestions.
var KnownPlatforms = []string{
	"eBay",
	"Facebook Marketplace",
	"Craigslist",
	"OfferUp",
	"Mercari",
	"Other",
}

// KnownConditions lists the standard item condition labels.
var KnownConditions = []string{
	"New",
	"Like New",
	"Used",
	"For Parts",
	"Other",
}

// Transaction represents a single buy or sell event in a user's resale ledger
type Transaction struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Type      string          `gorm:"type:varchar(20);not null" json:"type"`
	Item      string          `gorm:"type:varchar(255);not null;index" json:"item"`
	Price     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"price"`
	Date      time.Time       `gorm:"not null;index" json:"date"`
	Platform  string          `gorm:"type:varchar(100)" json:"platform,omitempty"`
	Condition string          `gorm:"type:varchar(50)" json:"condition,omitempty"`
	Notes     string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()

	if t.Date.IsZero() {
		t.Date = now
	}

	// Set timestamps if not already set (for tests)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if t.Item == "" {
		return ErrMissingItem
	}

	if t.Price.IsNegative() {
		return ErrInvalidPrice
	}

	if t.Platform != "" && len(t.Platform) > 100 {
		return errors.New("platform name too long")
	}

	return nil
}

// IsSale returns true if the transaction is a sale
func (t *Transaction) IsSale() bool {
	return t.Type == TransactionTypeSale
}

// IsPurchase returns true if the transaction is a purchase
func (t *Transaction) IsPurchase() bool {
	return t.Type == TransactionTypePurchase
}

// DateKey returns the canonical calendar-date key for trend bucketing.
// Dates are bucketed in UTC so the same instant always lands in the same bucket.
func (t *Transaction) DateKey() string {
	return t.Date.UTC().Format("2006-01-02")
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// Helper functions

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypePurchase, TransactionTypeSale:
		return true
	default:
		return false
	}
}

// IsKnownPlatform checks if the platform is one of the standard marketplaces
func IsKnownPlatform(platform string) bool {
	for _, p := range KnownPlatforms {
		if p == platform {
			return true
		}
	}
	return false
}

// Common flip items for sample data
var SampleItems = []string{
	"iPhone 13",
	"Nintendo Switch",
	"Air Jordan 1",
	"Dyson V8 Vacuum",
	"LEGO Star Wars Set",
	"Vintage Denim Jacket",
	"GoPro Hero 10",
	"KitchenAid Mixer",
	"Pokemon Card Lot",
	"Herman Miller Chair",
	"Bose Headphones",
	"Mid-Century Lamp",
	"Titleist Golf Clubs",
	"Canon EOS Rebel",
	"Patagonia Fleece",
}
