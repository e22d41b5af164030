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

var (
	ErrNotFound         = errors.New("resource not found")
	ErrUnauthorized     = errors.New("unauthorized access to resource")
	ErrInvalidSortField = errors.New("invalid sort field")
	ErrNothingToImport  = errors.New("no transactions to import")
)

// transactionService implements TransactionServiceInterface
type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// CreateTransaction records a new ledger entry for a user
func (s *transactionService) CreateTransaction(userID uuid.UUID, txn *models.Transaction) (*models.Transaction, error) {
	txn.UserID = userID

	if err := txn.Validate(); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Create(txn); err != nil {
		s.logger.Error("failed to create transaction",
			"user_id", userID,
			"item", txn.Item,
			"error", err)
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.metrics.IncrementCounter("transactions.created", map[string]string{"type": txn.Type})

	s.logger.Info("transaction created",
		"transaction_id", txn.ID,
		"user_id", userID,
		"type", txn.Type,
		"item", txn.Item,
		"price", txn.Price.String())

	return txn, nil
}

// GetTransaction fetches a single transaction, enforcing ownership
func (s *transactionService) GetTransaction(id, userID uuid.UUID) (*models.Transaction, error) {
	txn, err := s.transactionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	if txn.UserID != userID {
		s.logger.Warn("blocked cross-user transaction access",
			"transaction_id", id,
			"owner_id", txn.UserID,
			"requestor_id", userID)
		return nil, ErrUnauthorized
	}

	return txn, nil
}

// ListTransactions fetches a filtered, sorted page of a user's ledger
func (s *transactionService) ListTransactions(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	if filters.SortBy != "" && !models.IsValidSortField(filters.SortBy) {
		return nil, 0, ErrInvalidSortField
	}
	if filters.Type != "" && !models.IsValidTransactionType(filters.Type) {
		return nil, 0, models.ErrInvalidTransactionType
	}

	transactions, total, err := s.transactionRepo.GetWithFilters(filters)
	if err != nil {
		s.logger.Error("failed to list transactions",
			"user_id", filters.UserID,
			"error", err)
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, total, nil
}

// UpdateTransaction applies a partial update to an owned transaction
func (s *transactionService) UpdateTransaction(id, userID uuid.UUID, updates map[string]interface{}) (*models.Transaction, error) {
	txn, err := s.GetTransaction(id, userID)
	if err != nil {
		return nil, err
	}

	applyTransactionUpdates(txn, updates)

	if err := txn.Validate(); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Update(txn); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Error("failed to update transaction",
			"transaction_id", id,
			"user_id", userID,
			"error", err)
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.logger.Info("transaction updated",
		"transaction_id", id,
		"user_id", userID,
		"updated_fields", len(updates))

	return txn, nil
}

// DeleteTransaction removes an owned transaction
func (s *transactionService) DeleteTransaction(id, userID uuid.UUID) error {
	if err := s.transactionRepo.Delete(id, userID); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return ErrNotFound
		}
		s.logger.Error("failed to delete transaction",
			"transaction_id", id,
			"user_id", userID,
			"error", err)
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.metrics.IncrementCounter("transactions.deleted", nil)

	s.logger.Info("transaction deleted",
		"transaction_id", id,
		"user_id", userID)

	return nil
}

// ImportTransactions bulk-inserts ledger entries, all owned by the same user
func (s *transactionService) ImportTransactions(userID uuid.UUID, txns []*models.Transaction) (int, error) {
	if len(txns) == 0 {
		return 0, ErrNothingToImport
	}

	for _, txn := range txns {
		txn.UserID = userID
		if err := txn.Validate(); err != nil {
			return 0, fmt.Errorf("invalid transaction for item %q: %w", txn.Item, err)
		}
	}

	if err := s.transactionRepo.CreateBatch(txns); err != nil {
		s.logger.Error("failed to import transactions",
			"user_id", userID,
			"count", len(txns),
			"error", err)
		return 0, fmt.Errorf("failed to import transactions: %w", err)
	}

	s.metrics.IncrementCounter("transactions.imported", nil)
	s.metrics.RecordGauge("transactions.import_batch_size", float64(len(txns)), nil)

	s.logger.Info("transactions imported",
		"user_id", userID,
		"count", len(txns))

	return len(txns), nil
}

func applyTransactionUpdates(txn *models.Transaction, updates map[string]interface{}) {
	for field, value := range updates {
		switch field {
		case "type":
			if v, ok := value.(string); ok {
				txn.Type = v
			}
		case "item":
			if v, ok := value.(string); ok {
				txn.Item = v
			}
		case "price":
			if v, ok := value.(decimal.Decimal); ok {
				txn.Price = v
			}
		case "date":
			if v, ok := value.(time.Time); ok {
				txn.Date = v
			}
		case "platform":
			if v, ok := value.(string); ok {
				txn.Platform = v
			}
		case "condition":
			if v, ok := value.(string); ok {
				txn.Condition = v
			}
		case "notes":
			if v, ok := value.(string); ok {
				txn.Notes = v
			}
		}
	}
}
