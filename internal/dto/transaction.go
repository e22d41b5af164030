package dto

import (
	"time"

	"flipdar-api/internal/models"
)

// Transaction Request DTOs

// CreateTransactionRequest represents the request payload for recording a
// ledger entry. Dates accept RFC 3339 timestamps or bare calendar dates.
type CreateTransactionRequest struct {
	Type      string `json:"type" validate:"required,transaction_type"`
	Item      string `json:"item" validate:"required,min=1,max=255"`
	Price     string `json:"price" validate:"required,price_string"`
	Date      string `json:"date" validate:"omitempty"`
	Platform  string `json:"platform" validate:"omitempty,max=100"`
	Condition string `json:"condition" validate:"omitempty,max=50"`
	Notes     string `json:"notes" validate:"omitempty,max=1000"`
}

// UpdateTransactionRequest represents a partial update; nil fields are left
// untouched
type UpdateTransactionRequest struct {
	Type      *string `json:"type" validate:"omitempty,transaction_type"`
	Item      *string `json:"item" validate:"omitempty,min=1,max=255"`
	Price     *string `json:"price" validate:"omitempty,price_string"`
	Date      *string `json:"date" validate:"omitempty"`
	Platform  *string `json:"platform" validate:"omitempty,max=100"`
	Condition *string `json:"condition" validate:"omitempty,max=50"`
	Notes     *string `json:"notes" validate:"omitempty,max=1000"`
}

// ImportTransactionsRequest represents a bulk ledger import
type ImportTransactionsRequest struct {
	Transactions []CreateTransactionRequest `json:"transactions" validate:"required,min=1,max=500,dive"`
}

// ListTransactionsParams contains filtering and paging options for listing
type ListTransactionsParams struct {
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	Type      string `query:"type"`
	Platform  string `query:"platform"`
	Item      string `query:"item"`
	SortBy    string `query:"sortBy" validate:"omitempty,sort_field"`
	Order     string `query:"order"`
	Offset    int    `query:"offset"`
	Limit     int    `query:"limit"`
}

// Transaction Response DTOs

// TransactionResponse represents a single ledger entry in API responses
type TransactionResponse struct {
	*models.Transaction
}

// TransactionListResponse represents a paginated slice of the ledger
type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int64                `json:"total"`
	Offset       int                  `json:"offset"`
	Limit        int                  `json:"limit"`
}

// ImportTransactionsResponse reports how many rows a bulk import inserted
type ImportTransactionsResponse struct {
	Imported int    `json:"imported"`
	Message  string `json:"message"`
}

// DeleteTransactionResponse confirms a deletion
type DeleteTransactionResponse struct {
	Message   string    `json:"message"`
	DeletedAt time.Time `json:"deletedAt"`
}
