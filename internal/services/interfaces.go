package services

import (
	"time"

	"flipdar-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionServiceInterface defines transaction ledger operations
type TransactionServiceInterface interface {
	CreateTransaction(userID uuid.UUID, txn *models.Transaction) (*models.Transaction, error)
	GetTransaction(id, userID uuid.UUID) (*models.Transaction, error)
	ListTransactions(filters models.TransactionFilters) ([]models.Transaction, int64, error)
	UpdateTransaction(id, userID uuid.UUID, updates map[string]interface{}) (*models.Transaction, error)
	DeleteTransaction(id, userID uuid.UUID) error
	ImportTransactions(userID uuid.UUID, txns []*models.Transaction) (int, error)
}

// LedgerAnalyticsServiceInterface provides aggregate analytics over a user's ledger
type LedgerAnalyticsServiceInterface interface {
	// GetSummary calculates aggregate sales and purchase metrics over a date range.
	// Returns nil (with nil error) when the user has no transactions in range.
	GetSummary(userID uuid.UUID, startDate, endDate *time.Time) (*models.LedgerSummary, error)

	// GetBestFlip finds the single most profitable sale/purchase pairing.
	// Returns nil (with nil error) when the user has no sale transactions.
	GetBestFlip(userID uuid.UUID) (*models.BestFlip, error)

	// GetTopItems ranks items by estimated profit potential, best first.
	GetTopItems(userID uuid.UUID, limit int) ([]models.ItemProfit, error)

	// GetTrendSeries builds the cumulative cost/sold/profit time series.
	GetTrendSeries(userID uuid.UUID, startDate, endDate *time.Time) ([]models.TrendPoint, error)
}

// SearchHistoryServiceInterface manages recorded price lookups
type SearchHistoryServiceInterface interface {
	RecordSearch(userID uuid.UUID, record *models.SearchRecord) (*models.SearchRecord, error)
	GetRecentSearches(userID uuid.UUID, limit int) ([]models.SearchRecord, error)
	DeleteSearch(id, userID uuid.UUID) error
	GetSearchAnalytics(userID uuid.UUID) (*models.SearchAnalytics, error)
}

// SuggestionServiceInterface provides typeahead suggestions from a user's own ledger
type SuggestionServiceInterface interface {
	GetSuggestions(userID uuid.UUID, prefix string) (*models.SuggestionSet, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type TokenServiceInterface interface {
	GenerateAccessToken(userID uuid.UUID, email string) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GetTokenExpiry(tokenString string) (time.Time, error)
}

// TransactionGeneratorInterface generates realistic reselling ledger data for testing
type TransactionGeneratorInterface interface {
	GenerateHistoricalTransactions(userID uuid.UUID, startDate, endDate time.Time, count int) []*models.Transaction
	GenerateFlipPairs(userID uuid.UUID, startDate, endDate time.Time, pairCount int) []*models.Transaction
	SelectRandomItem() string
	GeneratePurchasePrice(item string) decimal.Decimal
	GenerateSalePrice(purchasePrice decimal.Decimal) decimal.Decimal
	GenerateTimestamp(startDate, endDate time.Time) time.Time
}
