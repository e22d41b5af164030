package handlers

import (
	"net/http"
	"time"

	apierrors "flipdar-api/internal/errors"
	"flipdar-api/internal/repositories"
	"flipdar-api/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultSeedCount = 100
	maxSeedCount     = 1000
	defaultSeedDays  = 90
	maxSeedDays      = 365
)

// DevHandler handles development-only endpoints
// These endpoints must never be mounted in production environments
type DevHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	tokenService    services.TokenServiceInterface
	generator       services.TransactionGeneratorInterface
	metrics         services.MetricsRecorderInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	tokenService services.TokenServiceInterface,
	metrics services.MetricsRecorderInterface,
) *DevHandler {
	return &DevHandler{
		transactionRepo: transactionRepo,
		tokenService:    tokenService,
		generator:       services.NewTransactionGenerator(),
		metrics:         metrics,
	}
}

// GenerateTestData seeds the requesting user's ledger with realistic
// purchase/sale pairs
//
// Method: POST /api/v1/dev/generate-test-data
// Authentication: Required (JWT)
// Environment: Development only
//
// Query parameters:
//   - count: Number of transactions to generate (default: 100, max: 1000)
//   - days: Number of days of history to generate (default: 90, max: 365)
//
// Success Response: 201 Created
//   - transactions_created: Number of rows inserted
//   - date_range: Start and end of the generated window
func (h *DevHandler) GenerateTestData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	count := getIntParam(c, "count", defaultSeedCount)
	if count < 1 {
		count = 1
	}
	if count > maxSeedCount {
		count = maxSeedCount
	}

	days := getIntParam(c, "days", defaultSeedDays)
	if days < 1 {
		days = 1
	}
	if days > maxSeedDays {
		days = maxSeedDays
	}

	endDate := time.Now().UTC()
	startDate := endDate.AddDate(0, 0, -days)

	generated := h.generator.GenerateHistoricalTransactions(userID, startDate, endDate, count)

	if err := h.transactionRepo.CreateBatch(generated); err != nil {
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("dev.data_generated", map[string]string{"source": "seed_endpoint"})

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":              "test data generated",
		"transactions_created": len(generated),
		"date_range": map[string]string{
			"start": startDate.Format(time.RFC3339),
			"end":   endDate.Format(time.RFC3339),
		},
	})
}

// ClearTestData removes every ledger entry belonging to the requesting user
//
// Method: DELETE /api/v1/dev/test-data
// Authentication: Required (JWT)
// Environment: Development only
//
// Success Response: 200 OK
//   - transactions_deleted: Number of rows removed
func (h *DevHandler) ClearTestData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	deleted, err := h.transactionRepo.DeleteByUserID(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":              "test data cleared",
		"transactions_deleted": deleted,
	})
}

// MintToken issues a short-lived access token for local API exploration
//
// Method: POST /api/v1/dev/token
// Authentication: None
// Environment: Development only
//
// Query parameters:
//   - email: Email claim to embed (optional)
//
// The user ID is freshly generated per call, so each minted token owns an
// empty ledger until seeded.
func (h *DevHandler) MintToken(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		email = "dev@localhost"
	}

	userID := uuid.New()

	token, expiresAt, err := h.tokenService.GenerateAccessToken(userID, email)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"user_id":    userID,
		"token":      token,
		"expires_at": expiresAt.Format(time.RFC3339),
	})
}
