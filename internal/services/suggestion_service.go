package services

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"flipdar-api/internal/models"
	"flipdar-api/internal/repositories"

	"github.com/google/uuid"
)

const (
	maxSuggestionsPerGroup = 10
	trendingSampleSize     = 100
	trendingLimit          = 5
)

// suggestionService builds typeahead suggestions from a user's own ledger
// and recent lookups rather than a global catalog.
type suggestionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	searchRepo      repositories.SearchHistoryRepositoryInterface
	logger          *slog.Logger
}

func NewSuggestionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	searchRepo repositories.SearchHistoryRepositoryInterface,
	logger *slog.Logger,
) SuggestionServiceInterface {
	return &suggestionService{
		transactionRepo: transactionRepo,
		searchRepo:      searchRepo,
		logger:          logger,
	}
}

// GetSuggestions returns items, platforms and conditions matching the given
// prefix, plus the user's most frequently searched items. An empty prefix
// matches everything.
func (s *suggestionService) GetSuggestions(userID uuid.UUID, prefix string) (*models.SuggestionSet, error) {
	items, err := s.transactionRepo.GetDistinctItems(userID)
	if err != nil {
		s.logger.Error("failed to fetch distinct items for suggestions",
			"user_id", userID,
			"error", err)
		return nil, fmt.Errorf("failed to fetch items: %w", err)
	}

	platforms, err := s.transactionRepo.GetDistinctPlatforms(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch platforms: %w", err)
	}

	conditions, err := s.transactionRepo.GetDistinctConditions(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch conditions: %w", err)
	}

	recent, err := s.searchRepo.GetRecentByUserID(userID, trendingSampleSize)
	if err != nil {
		s.logger.Error("failed to fetch recent searches for trending items",
			"user_id", userID,
			"error", err)
		return nil, fmt.Errorf("failed to fetch recent searches: %w", err)
	}

	suggestions := &models.SuggestionSet{
		Items:      filterByPrefix(items, prefix, maxSuggestionsPerGroup),
		Platforms:  filterByPrefix(platforms, prefix, maxSuggestionsPerGroup),
		Conditions: filterByPrefix(conditions, prefix, maxSuggestionsPerGroup),
		Trending:   rankTrendingItems(recent, trendingLimit),
	}

	return suggestions, nil
}

// filterByPrefix keeps values whose case-insensitive beginning matches the
// prefix, sorted lexically and capped at limit.
func filterByPrefix(values []string, prefix string, limit int) []string {
	needle := strings.ToLower(strings.TrimSpace(prefix))

	matched := make([]string, 0, len(values))
	for _, v := range values {
		if needle == "" || strings.HasPrefix(strings.ToLower(v), needle) {
			matched = append(matched, v)
		}
	}

	sort.Strings(matched)

	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

// rankTrendingItems orders recently searched items by lookup frequency.
// Ties keep the order items first appeared in the recent list, which is
// newest-first.
func rankTrendingItems(records []models.SearchRecord, limit int) []string {
	counts := make(map[string]int)
	order := make([]string, 0)

	for i := range records {
		item := records[i].Item
		if _, seen := counts[item]; !seen {
			order = append(order, item)
		}
		counts[item]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > limit {
		order = order[:limit]
	}
	return order
}
