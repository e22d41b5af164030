package handlers

import (
	"errors"
	"net/http"
	"time"

	"flipdar-api/internal/dto"
	apierrors "flipdar-api/internal/errors"
	"flipdar-api/internal/services"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler exposes the ledger analytics reports
type AnalyticsHandler struct {
	analyticsService services.LedgerAnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService services.LedgerAnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetSummary returns aggregate sales and purchase metrics for the user
//
// Method: GET /api/v1/analytics/summary
// Authentication: Required (JWT)
//
// Query parameters:
//   - startDate, endDate: Date window, RFC 3339 or YYYY-MM-DD (optional,
//     defaults to the full ledger)
//
// Success Response: 200 OK
//   - summary: Totals, counts, profit margin, averages and top items.
//     Null when the user has no transactions in the window, which clients
//     must treat differently from a ledger of zeros.
//
// Error Responses:
//   - 400: Invalid date format or range
//   - 401: Unauthorized
//   - 500: Internal server error
func (h *AnalyticsHandler) GetSummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	startDate, endDate, err := parseAnalyticsWindow(c)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	}

	summary, err := h.analyticsService.GetSummary(userID, startDate, endDate)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SummaryResponse{Summary: summary})
}

// GetBestFlip returns the single most profitable sale/purchase pairing
//
// Method: GET /api/v1/analytics/best-flip
// Authentication: Required (JWT)
//
// Success Response: 200 OK
//   - bestFlip: Item, sale price, purchase price and profit of the best
//     pairing. Null when the user has no recorded sales.
func (h *AnalyticsHandler) GetBestFlip(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	bestFlip, err := h.analyticsService.GetBestFlip(userID)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.BestFlipResponse{BestFlip: bestFlip})
}

// GetTopItems returns items ranked by estimated profit potential
//
// Method: GET /api/v1/analytics/top-items
// Authentication: Required (JWT)
//
// Query parameters:
//   - limit: Ranking size (optional, default 5)
func (h *AnalyticsHandler) GetTopItems(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	limit := getIntParam(c, "limit", services.DefaultTopItemsLimit)

	items, err := h.analyticsService.GetTopItems(userID, limit)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TopItemsResponse{Items: items})
}

// GetTrend returns the cumulative cost/sold/profit series over time
//
// Method: GET /api/v1/analytics/trend
// Authentication: Required (JWT)
//
// Query parameters:
//   - startDate, endDate: Date window (optional, defaults to full ledger)
//
// Success Response: 200 OK
//   - points: One point per calendar day with activity, in chronological
//     order. Empty array when the window has no transactions.
func (h *AnalyticsHandler) GetTrend(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	startDate, endDate, err := parseAnalyticsWindow(c)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	}

	points, err := h.analyticsService.GetTrendSeries(userID, startDate, endDate)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TrendResponse{Points: points})
}

// parseAnalyticsWindow reads the optional startDate/endDate query parameters
func parseAnalyticsWindow(c echo.Context) (startDate, endDate *time.Time, err error) {
	startDate, err = parseOptionalDate(c.QueryParam("startDate"))
	if err != nil {
		return nil, nil, err
	}

	endDate, err = parseOptionalDate(c.QueryParam("endDate"))
	if err != nil {
		return nil, nil, err
	}

	return startDate, endDate, nil
}

func (h *AnalyticsHandler) handleServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidDateRange):
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails("startDate must be before endDate"))
	case errors.Is(err, services.ErrFutureDate):
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails("endDate must not be in the future"))
	default:
		return SendSystemError(c, err)
	}
}
