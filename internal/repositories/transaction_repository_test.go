package repositories

import (
	"testing"
	"time"

	"flipdar-api/internal/database"
	"flipdar-api/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// TransactionRepositoryTestSuite is the test suite for the transaction repository
type TransactionRepositoryTestSuite struct {
	suite.Suite
	db     *database.DB
	repo   TransactionRepositoryInterface
	userID uuid.UUID
}

// SetupTest runs before each test
func (s *TransactionRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.userID = uuid.New()
}

// TearDownTest runs after each test
func (s *TransactionRepositoryTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestTransactionRepositoryTestSuite runs the test suite
func TestTransactionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositoryTestSuite))
}

func (s *TransactionRepositoryTestSuite) newTransaction() *models.Transaction {
	return &models.Transaction{
		UserID:   s.userID,
		Type:     models.TransactionTypePurchase,
		Item:     gofakeit.ProductName(),
		Price:    decimal.NewFromFloat(gofakeit.Float64Range(5, 500)),
		Date:     time.Now().UTC(),
		Platform: "ebay",
	}
}

// TestCreate_ValidTransaction tests creating a valid transaction
func (s *TransactionRepositoryTestSuite) TestCreate_ValidTransaction() {
	txn := s.newTransaction()

	err := s.repo.Create(txn)
	require.NoError(s.T(), err)
	assert.NotEqual(s.T(), uuid.Nil, txn.ID)
	assert.False(s.T(), txn.CreatedAt.IsZero())
}

// TestGetByID_ExistingTransaction tests retrieving a transaction by ID
func (s *TransactionRepositoryTestSuite) TestGetByID_ExistingTransaction() {
	created := database.CreateTestTransaction(s.T(), s.db, s.userID, models.TransactionTypeSale, "Vintage Camera", 120.50, time.Now().UTC())

	retrieved, err := s.repo.GetByID(created.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), created.ID, retrieved.ID)
	assert.Equal(s.T(), "Vintage Camera", retrieved.Item)
	assert.Equal(s.T(), models.TransactionTypeSale, retrieved.Type)
	assert.True(s.T(), retrieved.Price.Equal(decimal.NewFromFloat(120.50)))
}

// TestGetByID_NonExistingTransaction tests retrieving a missing transaction
func (s *TransactionRepositoryTestSuite) TestGetByID_NonExistingTransaction() {
	retrieved, err := s.repo.GetByID(uuid.New())
	require.Error(s.T(), err)
	assert.Nil(s.T(), retrieved)
	assert.Equal(s.T(), ErrTransactionNotFound, err)
}

// TestGetByUserID_OrdersNewestFirst tests ledger retrieval ordering
func (s *TransactionRepositoryTestSuite) TestGetByUserID_OrdersNewestFirst() {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	database.CreateTestTransaction(s.T(), s.db, s.userID, models.TransactionTypePurchase, "Widget", 10, base)
	database.CreateTestTransaction(s.T(), s.db, s.userID, models.TransactionTypeSale, "Widget", 25, base.AddDate(0, 0, 2))
	database.CreateTestTransaction(s.T(), s.db, s.userID, models.TransactionTypePurchase, "Gadget", 40, base.AddDate(0, 0, 1))

	// Another user's ledger must not leak in
	database.CreateTestTransaction(s.T(), s.db, uuid.New(), models.TransactionTypeSale, "Widget", 99, base)

	transactions, err := s.repo.GetByUserID(s.userID)
	require.NoError(s.T(), err)
	require.Len(s.T(), transactions, 3)
	assert.Equal(s.T(), "Widget", transactions[0].Item)
	assert.Equal(s.T(), models.TransactionTypeSale, transactions[0].Type)
	assert.Equal(s.T(), "Gadget", transactions[1].Item)
	assert.Equal(s.T(), models.TransactionTypePurchase, transactions[2].Type)
}

// TestGetByDateRange_BoundsInclusive tests date range retrieval
func (s *TransactionRepositoryTestSuite) TestGetByDateRange_BoundsInclusive() {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	database.CreateTestTransaction(s.T(), s.db, s.userID, models.TransactionTypePurchase, "Widget", 10, start)
	database.CreateTestTransaction(s.T(), s.db, s.userID, models.TransactionTypeSale, "Widget", 25, end)
	database.CreateTestTransaction(s.T(), s.db, s.userID, models.TransactionTypePurchase, "Gadget", 40, end.AddDate(0, 0, 1))

	transactions, err := s.repo.GetByDateRange(s.userID, start, end)
	require.NoError(s.T(), err)
	assert.Len(s.T(), transactions, 2)
}

// TestGetWithFilters_TypeAndPlatform tests exact-match filtering
func (s *TransactionRepositoryTestSuite) TestGetWithFilters_TypeAndPlatform() {
	now := time.Now().UTC()

	purchase := s.newTransaction()
	purchase.Platform = "ebay"
	require.NoError(s.T(), s.repo.Create(purchase))

	sale := s.newTransaction()
	sale.Type = models.TransactionTypeSale
	sale.Platform = "mercari"
	sale.Date = now.Add(time.Hour)
	require.NoError(s.T(), s.repo.Create(sale))

	transactions, total, err := s.repo.GetWithFilters(models.TransactionFilters{
		UserID:   s.userID,
		Type:     models.TransactionTypeSale,
		Platform: "mercari",
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), total)
	require.Len(s.T(), transactions, 1)
	assert.Equal(s.T(), sale.ID, transactions[0].ID)
}

// TestGetWithFilters_PriceRange tests min/max price filtering
func (s *TransactionRepositoryTestSuite) TestGetWithFilters_PriceRange() {
	now := time.Now().UTC()
	database.CreateTestTransaction(s.T(), s.db, s.userID, models.TransactionTypePurchase, "Widget", 10, now)
	database.CreateTestTransaction(s.T(), s.db, s.userID, models.TransactionTypePurchase, "Gadget", 50, now)
	database.CreateTestTransaction(s.T(), s.db, s.userID, models.TransactionTypePurchase, "Gizmo", 200, now)

	minPrice := decimal.NewFromInt(20)
	maxPrice := decimal.NewFromInt(100)

	transactions, total, err := s.repo.GetWithFilters(models.TransactionFilters{
		UserID:   s.userID,
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), total)
	require.Len(s.T(), transactions, 1)
	assert.Equal(s.T(), "Gadget", transactions[0].Item)
}

// TestGetWithFilters_SortAndPaging tests sorting with pagination
func (s *TransactionRepositoryTestSuite) TestGetWithFilters_SortAndPaging() {
	now := time.Now().UTC()
	for i, price := range []float64{30, 10, 50, 20, 40} {
		database.CreateTestTransaction(s.T(), s.db, s.userID, models.TransactionTypePurchase, gofakeit.ProductName(), price, now.Add(time.Duration(i)*time.Minute))
	}

	transactions, total, err := s.repo.GetWithFilters(models.TransactionFilters{
		UserID: s.userID,
		SortBy: models.SortFieldPrice,
		Offset: 1,
		Limit:  2,
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(5), total)
	require.Len(s.T(), transactions, 2)
	assert.True(s.T(), transactions[0].Price.Equal(decimal.NewFromInt(20)))
	assert.True(s.T(), transactions[1].Price.Equal(decimal.NewFromInt(30)))
}

// TestGetWithFilters_InvalidSortFallsBackToDate tests the order fallback
func (s *TransactionRepositoryTestSuite) TestGetWithFilters_InvalidSortFallsBackToDate() {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	database.CreateTestTransaction(s.T(), s.db, s.userID, models.TransactionTypePurchase, "Older", 10, base)
	database.CreateTestTransaction(s.T(), s.db, s.userID, models.TransactionTypePurchase, "Newer", 10, base.AddDate(0, 0, 1))

	transactions, _, err := s.repo.GetWithFilters(models.TransactionFilters{
		UserID: s.userID,
		SortBy: "price; DROP TABLE transactions",
	})
	require.NoError(s.T(), err)
	require.Len(s.T(), transactions, 2)
	assert.Equal(s.T(), "Newer", transactions[0].Item)
}

// TestUpdate_OwnedTransaction tests updating an owned transaction
func (s *TransactionRepositoryTestSuite) TestUpdate_OwnedTransaction() {
	txn := database.CreateTestTransaction(s.T(), s.db, s.userID, models.TransactionTypePurchase, "Widget", 10, time.Now().UTC())

	txn.Price = decimal.NewFromFloat(12.75)
	txn.Notes = "negotiated down"
	err := s.repo.Update(txn)
	require.NoError(s.T(), err)

	retrieved, err := s.repo.GetByID(txn.ID)
	require.NoError(s.T(), err)
	assert.True(s.T(), retrieved.Price.Equal(decimal.NewFromFloat(12.75)))
	assert.Equal(s.T(), "negotiated down", retrieved.Notes)
}

// TestUpdate_OtherUsersTransaction tests that ownership is enforced on update
func (s *TransactionRepositoryTestSuite) TestUpdate_OtherUsersTransaction() {
	txn := database.CreateTestTransaction(s.T(), s.db, s.userID, models.TransactionTypePurchase, "Widget", 10, time.Now().UTC())

	txn.UserID = uuid.New()
	txn.Price = decimal.NewFromInt(999)
	err := s.repo.Update(txn)
	require.Error(s.T(), err)
	assert.Equal(s.T(), ErrTransactionNotFound, err)
}

// TestDelete_OwnedTransaction tests deleting an owned transaction
func (s *TransactionRepositoryTestSuite) TestDelete_OwnedTransaction() {
	txn := database.CreateTestTransaction(s.T(), s.db, s.userID, models.TransactionTypePurchase, "Widget", 10, time.Now().UTC())

	err := s.repo.Delete(txn.ID, s.userID)
	require.NoError(s.T(), err)

	retrieved, err := s.repo.GetByID(txn.ID)
	assert.Nil(s.T(), retrieved)
	assert.Equal(s.T(), ErrTransactionNotFound, err)
}

// TestDelete_OtherUsersTransaction tests that ownership is enforced on delete
func (s *TransactionRepositoryTestSuite) TestDelete_OtherUsersTransaction() {
	txn := database.CreateTestTransaction(s.T(), s.db, s.userID, models.TransactionTypePurchase, "Widget", 10, time.Now().UTC())

	err := s.repo.Delete(txn.ID, uuid.New())
	require.Error(s.T(), err)
	assert.Equal(s.T(), ErrTransactionNotFound, err)

	retrieved, err := s.repo.GetByID(txn.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), txn.ID, retrieved.ID)
}

// TestDeleteByUserID_ReportsCount tests bulk delete for a user
func (s *TransactionRepositoryTestSuite) TestDeleteByUserID_ReportsCount() {
	now := time.Now().UTC()
	for i := 0; i < 4; i++ {
		database.CreateTestTransaction(s.T(), s.db, s.userID, models.TransactionTypePurchase, gofakeit.ProductName(), 10, now)
	}
	other := database.CreateTestTransaction(s.T(), s.db, uuid.New(), models.TransactionTypeSale, "Kept", 10, now)

	deleted, err := s.repo.DeleteByUserID(s.userID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(4), deleted)

	retrieved, err := s.repo.GetByID(other.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Kept", retrieved.Item)
}

// TestCreateBatch_MultipleTransactions tests batch insertion
func (s *TransactionRepositoryTestSuite) TestCreateBatch_MultipleTransactions() {
	batch := []*models.Transaction{s.newTransaction(), s.newTransaction(), s.newTransaction()}

	err := s.repo.CreateBatch(batch)
	require.NoError(s.T(), err)

	for _, txn := range batch {
		assert.NotEqual(s.T(), uuid.Nil, txn.ID)
	}

	count, err := s.repo.CountByUserID(s.userID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(3), count)
}

// TestCreateBatch_EmptySlice tests that an empty batch is a no-op
func (s *TransactionRepositoryTestSuite) TestCreateBatch_EmptySlice() {
	err := s.repo.CreateBatch(nil)
	require.NoError(s.T(), err)
}

// TestGetDistinctValues tests distinct item, platform, and condition lookups
func (s *TransactionRepositoryTestSuite) TestGetDistinctValues() {
	now := time.Now().UTC()

	first := s.newTransaction()
	first.Item = "Widget"
	first.Platform = "ebay"
	first.Condition = "used"
	first.Date = now
	require.NoError(s.T(), s.repo.Create(first))

	second := s.newTransaction()
	second.Item = "Gadget"
	second.Platform = "mercari"
	second.Condition = ""
	second.Date = now
	require.NoError(s.T(), s.repo.Create(second))

	third := s.newTransaction()
	third.Item = "Widget"
	third.Platform = "ebay"
	third.Condition = "new"
	third.Date = now
	require.NoError(s.T(), s.repo.Create(third))

	items, err := s.repo.GetDistinctItems(s.userID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []string{"Gadget", "Widget"}, items)

	platforms, err := s.repo.GetDistinctPlatforms(s.userID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []string{"ebay", "mercari"}, platforms)

	// Empty strings are excluded from suggestions
	conditions, err := s.repo.GetDistinctConditions(s.userID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []string{"new", "used"}, conditions)
}

// TestCountByUserID_EmptyLedger tests counting with no rows
func (s *TransactionRepositoryTestSuite) TestCountByUserID_EmptyLedger() {
	count, err := s.repo.CountByUserID(s.userID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(0), count)
}
