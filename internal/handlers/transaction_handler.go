package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"flipdar-api/internal/dto"
	apierrors "flipdar-api/internal/errors"
	"flipdar-api/internal/models"
	"flipdar-api/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// TransactionHandler handles ledger entry HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransaction records a single ledger entry
//
// Method: POST /api/v1/transactions
// Authentication: Required (JWT)
//
// Request body:
//   - type: "purchase" or "sale" (required)
//   - item: Item name (required)
//   - price: Decimal string (required, non-negative)
//   - date: RFC 3339 timestamp or YYYY-MM-DD (optional, defaults to now)
//   - platform, condition, notes: Optional metadata
//
// Success Response: 201 Created with the stored transaction
//
// Error Responses:
//   - 401: Unauthorized
//   - 422: Validation failed (type, price, item, date)
//   - 500: Internal server error
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.TransactionValidationFailed, apierrors.WithDetails(err.Error()))
	}

	txn, err := buildTransactionFromRequest(&req)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	}

	created, err := h.transactionService.CreateTransaction(userID, txn)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.TransactionResponse{Transaction: created})
}

// GetTransaction retrieves a single ledger entry by ID
//
// Method: GET /api/v1/transactions/:id
// Authentication: Required (JWT)
//
// Error Responses:
//   - 400: Invalid transaction ID format
//   - 401: Unauthorized
//   - 403: Transaction belongs to another user
//   - 404: Transaction not found
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.TransactionInvalidID)
	}

	txn, err := h.transactionService.GetTransaction(id, userID)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionResponse{Transaction: txn})
}

// ListTransactions retrieves the user's ledger with filtering and sorting
//
// Method: GET /api/v1/transactions
// Authentication: Required (JWT)
//
// Query parameters:
//   - startDate, endDate: Date window, RFC 3339 or YYYY-MM-DD (optional)
//   - type: "purchase" or "sale" (optional)
//   - platform, item: Substring filters (optional)
//   - sortBy: date|price|item|type|platform (optional, default date)
//   - order: asc|desc (optional, default desc)
//   - offset, limit: Paging (limit max 100, default 20)
//
// Success Response: 200 OK with transactions, total, offset, limit
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var params dto.ListTransactionsParams
	if err := c.Bind(&params); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid query parameters"))
	}

	if err := c.Validate(&params); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	filters, err := buildTransactionFilters(userID, &params)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	}

	transactions, total, err := h.transactionService.ListTransactions(filters)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: transactions,
		Total:        total,
		Offset:       filters.Offset,
		Limit:        filters.Limit,
	})
}

// UpdateTransaction applies a partial update to a ledger entry
//
// Method: PATCH /api/v1/transactions/:id
// Authentication: Required (JWT)
//
// Error Responses:
//   - 400: Invalid transaction ID or field format
//   - 403: Transaction belongs to another user
//   - 404: Transaction not found
//   - 422: Resulting transaction fails validation
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.TransactionInvalidID)
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.TransactionValidationFailed, apierrors.WithDetails(err.Error()))
	}

	updates, err := buildTransactionUpdates(&req)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	}

	if len(updates) == 0 {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("no fields to update"))
	}

	txn, err := h.transactionService.UpdateTransaction(id, userID, updates)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionResponse{Transaction: txn})
}

// DeleteTransaction removes a ledger entry
//
// Method: DELETE /api/v1/transactions/:id
// Authentication: Required (JWT)
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.TransactionInvalidID)
	}

	if err := h.transactionService.DeleteTransaction(id, userID); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DeleteTransactionResponse{
		Message:   "transaction deleted",
		DeletedAt: time.Now().UTC(),
	})
}

// ImportTransactions records a batch of ledger entries in one call
//
// Method: POST /api/v1/transactions/import
// Authentication: Required (JWT)
//
// Request body:
//   - transactions: Array of create payloads (1-500 rows)
//
// The batch is all-or-nothing: one invalid row rejects the whole import.
func (h *TransactionHandler) ImportTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.ImportTransactionsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.TransactionValidationFailed, apierrors.WithDetails(err.Error()))
	}

	transactions := make([]*models.Transaction, 0, len(req.Transactions))
	for _, row := range req.Transactions {
		txn, err := buildTransactionFromRequest(&row)
		if err != nil {
			return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
		}
		transactions = append(transactions, txn)
	}

	imported, err := h.transactionService.ImportTransactions(userID, transactions)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.ImportTransactionsResponse{
		Imported: imported,
		Message:  "transactions imported",
	})
}

// buildTransactionFromRequest converts a create payload to a model
func buildTransactionFromRequest(req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return nil, errors.New("price must be a decimal number")
	}

	txn := &models.Transaction{
		Type:      strings.ToLower(req.Type),
		Item:      strings.TrimSpace(req.Item),
		Price:     price,
		Platform:  req.Platform,
		Condition: req.Condition,
		Notes:     req.Notes,
	}

	if req.Date != "" {
		date, err := parseFlexibleDate(req.Date)
		if err != nil {
			return nil, err
		}
		txn.Date = date
	} else {
		txn.Date = time.Now().UTC()
	}

	return txn, nil
}

// buildTransactionUpdates converts a partial update payload to a field map
func buildTransactionUpdates(req *dto.UpdateTransactionRequest) (map[string]interface{}, error) {
	updates := make(map[string]interface{})

	if req.Type != nil {
		updates["type"] = strings.ToLower(*req.Type)
	}
	if req.Item != nil {
		updates["item"] = strings.TrimSpace(*req.Item)
	}
	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil {
			return nil, errors.New("price must be a decimal number")
		}
		updates["price"] = price
	}
	if req.Date != nil {
		date, err := parseFlexibleDate(*req.Date)
		if err != nil {
			return nil, err
		}
		updates["date"] = date
	}
	if req.Platform != nil {
		updates["platform"] = *req.Platform
	}
	if req.Condition != nil {
		updates["condition"] = *req.Condition
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	return updates, nil
}

// buildTransactionFilters validates list parameters into repository filters
func buildTransactionFilters(userID uuid.UUID, params *dto.ListTransactionsParams) (models.TransactionFilters, error) {
	filters := models.TransactionFilters{
		UserID:   userID,
		Type:     strings.ToLower(params.Type),
		Platform: params.Platform,
		Item:     params.Item,
		SortBy:   params.SortBy,
		SortDesc: !strings.EqualFold(params.Order, "asc"),
		Offset:   params.Offset,
		Limit:    params.Limit,
	}

	startDate, err := parseOptionalDate(params.StartDate)
	if err != nil {
		return filters, err
	}
	filters.StartDate = startDate

	endDate, err := parseOptionalDate(params.EndDate)
	if err != nil {
		return filters, err
	}
	filters.EndDate = endDate

	if filters.SortBy == "" {
		filters.SortBy = models.SortFieldDate
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}
	if filters.Limit <= 0 {
		filters.Limit = defaultPageLimit
	}
	if filters.Limit > maxPageLimit {
		filters.Limit = maxPageLimit
	}

	return filters, nil
}

func (h *TransactionHandler) handleServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return SendError(c, apierrors.TransactionNotFound)
	case errors.Is(err, services.ErrUnauthorized):
		return SendError(c, apierrors.TransactionNotOwned)
	case errors.Is(err, services.ErrInvalidSortField):
		return SendError(c, apierrors.ValidationOutOfRange, apierrors.WithDetails("unsupported sort field"))
	case errors.Is(err, services.ErrNothingToImport):
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("import batch is empty"))
	case errors.Is(err, models.ErrInvalidTransactionType):
		return SendError(c, apierrors.TransactionInvalidType)
	case errors.Is(err, models.ErrInvalidPrice):
		return SendError(c, apierrors.TransactionInvalidPrice)
	case errors.Is(err, models.ErrMissingItem):
		return SendError(c, apierrors.TransactionValidationFailed, apierrors.WithDetails("item is required"))
	default:
		return SendSystemError(c, err)
	}
}
