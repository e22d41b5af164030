package handlers

import (
	"errors"
	"net/http"
	"strings"

	"flipdar-api/internal/dto"
	apierrors "flipdar-api/internal/errors"
	"flipdar-api/internal/models"
	"flipdar-api/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// HistoryHandler handles price search history and typeahead suggestions
type HistoryHandler struct {
	historyService    services.SearchHistoryServiceInterface
	suggestionService services.SuggestionServiceInterface
}

// NewHistoryHandler creates a new search history handler
func NewHistoryHandler(
	historyService services.SearchHistoryServiceInterface,
	suggestionService services.SuggestionServiceInterface,
) *HistoryHandler {
	return &HistoryHandler{
		historyService:    historyService,
		suggestionService: suggestionService,
	}
}

// RecordSearch stores the result of a completed price lookup
//
// Method: POST /api/v1/history
// Authentication: Required (JWT)
//
// Request body:
//   - item: Item name (required)
//   - avgPrice: Decimal string (required)
//   - minPrice, maxPrice: Decimal strings (optional)
//   - avgDurationDays: Average days to sell (optional)
//   - resultCount: Number of listings found (optional)
//
// Success Response: 201 Created with the stored record
func (h *HistoryHandler) RecordSearch(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.RecordSearchRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.HistoryValidationFailed, apierrors.WithDetails(err.Error()))
	}

	record, err := buildSearchRecordFromRequest(&req)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	}

	stored, err := h.historyService.RecordSearch(userID, record)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.SearchRecordResponse{SearchRecord: stored})
}

// GetRecentSearches lists the user's recent price lookups, newest first
//
// Method: GET /api/v1/history
// Authentication: Required (JWT)
//
// Query parameters:
//   - limit: Number of records to return (optional, default 20, max 100)
func (h *HistoryHandler) GetRecentSearches(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	limit := getIntParam(c, "limit", services.DefaultRecentSearchLimit)

	searches, err := h.historyService.GetRecentSearches(userID, limit)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SearchHistoryListResponse{
		Searches: searches,
		Count:    len(searches),
	})
}

// DeleteSearch removes a single record from the user's search history
//
// Method: DELETE /api/v1/history/:id
// Authentication: Required (JWT)
func (h *HistoryHandler) DeleteSearch(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.HistoryInvalidID)
	}

	if err := h.historyService.DeleteSearch(id, userID); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "search record deleted"})
}

// GetSearchAnalytics summarizes the user's lookup behavior
//
// Method: GET /api/v1/history/analytics
// Authentication: Required (JWT)
//
// Success Response: 200 OK
//   - analytics: Total search count, average looked-up price and the
//     number of distinct items searched
func (h *HistoryHandler) GetSearchAnalytics(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	analytics, err := h.historyService.GetSearchAnalytics(userID)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SearchAnalyticsResponse{Analytics: analytics})
}

// GetSuggestions returns typeahead suggestions from the user's own data
//
// Method: GET /api/v1/suggestions
// Authentication: Required (JWT)
//
// Query parameters:
//   - q: Case-insensitive prefix to filter by (optional, empty matches all)
//
// Success Response: 200 OK
//   - suggestions: Items, platforms and conditions matching the prefix plus
//     the user's most frequently searched items
func (h *HistoryHandler) GetSuggestions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	prefix := strings.TrimSpace(c.QueryParam("q"))

	suggestions, err := h.suggestionService.GetSuggestions(userID, prefix)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SuggestionsResponse{Suggestions: suggestions})
}

// buildSearchRecordFromRequest converts a record payload to a model
func buildSearchRecordFromRequest(req *dto.RecordSearchRequest) (*models.SearchRecord, error) {
	avgPrice, err := decimal.NewFromString(req.AvgPrice)
	if err != nil {
		return nil, errors.New("avgPrice must be a decimal number")
	}

	record := &models.SearchRecord{
		Item:            strings.TrimSpace(req.Item),
		AvgPrice:        avgPrice,
		AvgDurationDays: decimal.NewFromFloat(req.AvgDurationDays),
		ResultCount:     req.ResultCount,
	}

	if req.MinPrice != "" {
		minPrice, err := decimal.NewFromString(req.MinPrice)
		if err != nil {
			return nil, errors.New("minPrice must be a decimal number")
		}
		record.MinPrice = minPrice
	}

	if req.MaxPrice != "" {
		maxPrice, err := decimal.NewFromString(req.MaxPrice)
		if err != nil {
			return nil, errors.New("maxPrice must be a decimal number")
		}
		record.MaxPrice = maxPrice
	}

	return record, nil
}

func (h *HistoryHandler) handleServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return SendError(c, apierrors.HistoryNotFound)
	case errors.Is(err, models.ErrMissingSearchItem):
		return SendError(c, apierrors.HistoryValidationFailed, apierrors.WithDetails("item is required"))
	default:
		return SendSystemError(c, err)
	}
}
