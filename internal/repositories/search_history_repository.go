package repositories

import (
	"errors"
	"fmt"

	"flipdar-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSearchRecordNotFound = errors.New("search record not found")
)

// searchHistoryRepository implements SearchHistoryRepositoryInterface
type searchHistoryRepository struct {
	db *gorm.DB
}

// NewSearchHistoryRepository creates a new search history repository
func NewSearchHistoryRepository(db *gorm.DB) SearchHistoryRepositoryInterface {
	return &searchHistoryRepository{
		db: db,
	}
}

// Create persists a completed lookup
func (r *searchHistoryRepository) Create(record *models.SearchRecord) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create search record: %w", err)
	}
	return nil
}

// GetByID retrieves a search record by ID
func (r *searchHistoryRepository) GetByID(id uuid.UUID) (*models.SearchRecord, error) {
	record := &models.SearchRecord{ID: id}
	if err := r.db.First(record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSearchRecordNotFound
		}
		return nil, fmt.Errorf("failed to get search record: %w", err)
	}
	return record, nil
}

// GetRecentByUserID retrieves the most recent lookups for a user
func (r *searchHistoryRepository) GetRecentByUserID(userID uuid.UUID, limit int) ([]models.SearchRecord, error) {
	var records []models.SearchRecord
	if err := r.db.Where("user_id = ?", userID).
		Order("searched_at DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get search history: %w", err)
	}
	return records, nil
}

// Delete removes a search record owned by the given user
func (r *searchHistoryRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.SearchRecord{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete search record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSearchRecordNotFound
	}
	return nil
}

// GetAnalytics aggregates a user's search history in the database.
// The average is returned as a string so decimal precision survives the scan.
func (r *searchHistoryRepository) GetAnalytics(userID uuid.UUID) (int64, string, int64, error) {
	var result struct {
		Count       int64
		AvgPrice    string
		UniqueItems int64
	}

	query := `
		SELECT
			COUNT(*) as count,
			COALESCE(AVG(avg_price), 0) as avg_price,
			COUNT(DISTINCT item) as unique_items
		FROM search_history
		WHERE user_id = ?
	`

	if err := r.db.Raw(query, userID).Scan(&result).Error; err != nil {
		return 0, "", 0, fmt.Errorf("failed to get search analytics: %w", err)
	}

	return result.Count, result.AvgPrice, result.UniqueItems, nil
}
