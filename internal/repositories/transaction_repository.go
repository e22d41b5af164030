package repositories

import (
	"errors"
	"fmt"
	"time"

	"flipdar-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	transaction := &models.Transaction{ID: id}
	if err := r.db.First(transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// GetByUserID retrieves the full ledger for a user, newest first
func (r *transactionRepository) GetByUserID(userID uuid.UUID) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("user_id = ?", userID).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}

// GetByDateRange retrieves a user's transactions within a date range
func (r *transactionRepository) GetByDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("user_id = ? AND date BETWEEN ? AND ?", userID, startDate, endDate).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by date range: %w", err)
	}
	return transactions, nil
}

// GetWithFilters retrieves transactions with multiple filters
func (r *transactionRepository) GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := r.db.Model(&models.Transaction{})

	if filters.UserID != uuid.Nil {
		query = query.Where("user_id = ?", filters.UserID)
	}
	if filters.StartDate != nil {
		query = query.Where("date >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("date <= ?", *filters.EndDate)
	}
	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.Platform != "" {
		query = query.Where("platform = ?", filters.Platform)
	}
	if filters.Item != "" {
		query = query.Where("item = ?", filters.Item)
	}
	if filters.MinPrice != nil {
		query = query.Where("price >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		query = query.Where("price <= ?", *filters.MaxPrice)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered transactions: %w", err)
	}

	order := "date DESC"
	if models.IsValidSortField(filters.SortBy) {
		direction := "ASC"
		if filters.SortDesc {
			direction = "DESC"
		}
		order = filters.SortBy + " " + direction
	}

	if filters.Limit > 0 {
		query = query.Offset(filters.Offset).Limit(filters.Limit)
	}

	if err := query.Order(order).Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered transactions: %w", err)
	}

	return transactions, total, nil
}

// Update persists changes to a transaction
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	// The full record is the model so update hooks validate real field
	// values, not an ID-only skeleton.
	result := r.db.Model(transaction).
		Where("user_id = ?", transaction.UserID).
		Updates(transaction)

	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction owned by the given user
func (r *transactionRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Transaction{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// DeleteByUserID removes all transactions for a user and reports how many went away
func (r *transactionRepository) DeleteByUserID(userID uuid.UUID) (int64, error) {
	result := r.db.Where("user_id = ?", userID).Delete(&models.Transaction{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete transactions for user: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(transactions []*models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// GetDistinctItems returns the unique item names in a user's ledger
func (r *transactionRepository) GetDistinctItems(userID uuid.UUID) ([]string, error) {
	return r.distinctColumn(userID, "item")
}

// GetDistinctPlatforms returns the unique non-empty platforms in a user's ledger
func (r *transactionRepository) GetDistinctPlatforms(userID uuid.UUID) ([]string, error) {
	return r.distinctColumn(userID, "platform")
}

// GetDistinctConditions returns the unique non-empty conditions in a user's ledger
func (r *transactionRepository) GetDistinctConditions(userID uuid.UUID) ([]string, error) {
	return r.distinctColumn(userID, "condition")
}

func (r *transactionRepository) distinctColumn(userID uuid.UUID, column string) ([]string, error) {
	var values []string
	if err := r.db.Model(&models.Transaction{}).
		Where("user_id = ? AND "+column+" <> ''", userID).
		Distinct(column).
		Order(column + " ASC").
		Pluck(column, &values).Error; err != nil {
		return nil, fmt.Errorf("failed to get distinct %s values: %w", column, err)
	}
	return values, nil
}

// CountByUserID returns how many transactions a user has recorded
func (r *transactionRepository) CountByUserID(userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}
