package repositories

import (
	"time"

	"flipdar-api/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetByUserID(userID uuid.UUID) ([]models.Transaction, error)
	GetByDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Transaction, error)
	GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error)
	Update(transaction *models.Transaction) error
	Delete(id, userID uuid.UUID) error
	DeleteByUserID(userID uuid.UUID) (int64, error)
	CreateBatch(transactions []*models.Transaction) error
	GetDistinctItems(userID uuid.UUID) ([]string, error)
	GetDistinctPlatforms(userID uuid.UUID) ([]string, error)
	GetDistinctConditions(userID uuid.UUID) ([]string, error)
	CountByUserID(userID uuid.UUID) (int64, error)
}

// SearchHistoryRepositoryInterface defines the contract for search history repository operations
type SearchHistoryRepositoryInterface interface {
	Create(record *models.SearchRecord) error
	GetByID(id uuid.UUID) (*models.SearchRecord, error)
	GetRecentByUserID(userID uuid.UUID, limit int) ([]models.SearchRecord, error)
	Delete(id, userID uuid.UUID) error
	GetAnalytics(userID uuid.UUID) (count int64, avgPrice string, uniqueItems int64, err error)
}
