package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"flipdar-api/internal/models"
	"flipdar-api/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultRecentSearchLimit = 20
	MaxRecentSearchLimit     = 100
)

// searchHistoryService implements SearchHistoryServiceInterface
type searchHistoryService struct {
	searchRepo repositories.SearchHistoryRepositoryInterface
	metrics    MetricsRecorderInterface
	logger     *slog.Logger
}

func NewSearchHistoryService(
	searchRepo repositories.SearchHistoryRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) SearchHistoryServiceInterface {
	return &searchHistoryService{
		searchRepo: searchRepo,
		metrics:    metrics,
		logger:     logger,
	}
}

// RecordSearch persists a completed price lookup for later review
func (s *searchHistoryService) RecordSearch(userID uuid.UUID, record *models.SearchRecord) (*models.SearchRecord, error) {
	record.UserID = userID

	if err := record.Validate(); err != nil {
		return nil, err
	}

	if err := s.searchRepo.Create(record); err != nil {
		s.logger.Error("failed to record search",
			"user_id", userID,
			"item", record.Item,
			"error", err)
		return nil, fmt.Errorf("failed to record search: %w", err)
	}

	s.metrics.IncrementCounter("searches.recorded", nil)

	s.logger.Info("search recorded",
		"search_id", record.ID,
		"user_id", userID,
		"item", record.Item)

	return record, nil
}

// GetRecentSearches returns a user's latest lookups, newest first
func (s *searchHistoryService) GetRecentSearches(userID uuid.UUID, limit int) ([]models.SearchRecord, error) {
	if limit <= 0 {
		limit = DefaultRecentSearchLimit
	}
	if limit > MaxRecentSearchLimit {
		limit = MaxRecentSearchLimit
	}

	records, err := s.searchRepo.GetRecentByUserID(userID, limit)
	if err != nil {
		s.logger.Error("failed to fetch recent searches",
			"user_id", userID,
			"error", err)
		return nil, fmt.Errorf("failed to fetch recent searches: %w", err)
	}

	return records, nil
}

// DeleteSearch removes an owned search record
func (s *searchHistoryService) DeleteSearch(id, userID uuid.UUID) error {
	if err := s.searchRepo.Delete(id, userID); err != nil {
		if errors.Is(err, repositories.ErrSearchRecordNotFound) {
			return ErrNotFound
		}
		s.logger.Error("failed to delete search record",
			"search_id", id,
			"user_id", userID,
			"error", err)
		return fmt.Errorf("failed to delete search record: %w", err)
	}

	s.logger.Info("search record deleted",
		"search_id", id,
		"user_id", userID)

	return nil
}

// GetSearchAnalytics summarizes a user's lookup behavior
func (s *searchHistoryService) GetSearchAnalytics(userID uuid.UUID) (*models.SearchAnalytics, error) {
	count, avgPrice, uniqueItems, err := s.searchRepo.GetAnalytics(userID)
	if err != nil {
		s.logger.Error("failed to calculate search analytics",
			"user_id", userID,
			"error", err)
		return nil, fmt.Errorf("failed to calculate search analytics: %w", err)
	}

	avg, err := decimal.NewFromString(avgPrice)
	if err != nil {
		return nil, fmt.Errorf("invalid average price %q: %w", avgPrice, err)
	}

	analytics := &models.SearchAnalytics{
		UserID:          userID,
		SearchCount:     count,
		AvgLookupPrice:  avg,
		UniqueItemCount: uniqueItems,
		GeneratedAt:     time.Now(),
	}

	s.logger.Info("search analytics generated",
		"user_id", userID,
		"search_count", count,
		"unique_items", uniqueItems)

	return analytics, nil
}
