package repositories

import (
	"testing"
	"time"

	"flipdar-api/internal/database"
	"flipdar-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// SearchHistoryRepositoryTestSuite is the test suite for the search history repository
type SearchHistoryRepositoryTestSuite struct {
	suite.Suite
	db     *database.DB
	repo   SearchHistoryRepositoryInterface
	userID uuid.UUID
}

// SetupTest runs before each test
func (s *SearchHistoryRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewSearchHistoryRepository(s.db.DB)
	s.userID = uuid.New()
}

// TearDownTest runs after each test
func (s *SearchHistoryRepositoryTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestSearchHistoryRepositoryTestSuite runs the test suite
func TestSearchHistoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SearchHistoryRepositoryTestSuite))
}

// TestCreate_ValidRecord tests persisting a completed lookup
func (s *SearchHistoryRepositoryTestSuite) TestCreate_ValidRecord() {
	record := &models.SearchRecord{
		UserID:      s.userID,
		Item:        "Nintendo Switch",
		AvgPrice:    decimal.NewFromFloat(185.50),
		MinPrice:    decimal.NewFromFloat(140),
		MaxPrice:    decimal.NewFromFloat(220),
		ResultCount: 37,
		SearchedAt:  time.Now().UTC(),
	}

	err := s.repo.Create(record)
	require.NoError(s.T(), err)
	assert.NotEqual(s.T(), uuid.Nil, record.ID)
}

// TestGetByID_ExistingRecord tests retrieving a record by ID
func (s *SearchHistoryRepositoryTestSuite) TestGetByID_ExistingRecord() {
	created := database.CreateTestSearchRecord(s.T(), s.db, s.userID, "Vintage Camera", 120, time.Now().UTC())

	retrieved, err := s.repo.GetByID(created.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), created.ID, retrieved.ID)
	assert.Equal(s.T(), "Vintage Camera", retrieved.Item)
	assert.True(s.T(), retrieved.AvgPrice.Equal(decimal.NewFromInt(120)))
}

// TestGetByID_NonExistingRecord tests retrieving a missing record
func (s *SearchHistoryRepositoryTestSuite) TestGetByID_NonExistingRecord() {
	retrieved, err := s.repo.GetByID(uuid.New())
	require.Error(s.T(), err)
	assert.Nil(s.T(), retrieved)
	assert.Equal(s.T(), ErrSearchRecordNotFound, err)
}

// TestGetRecentByUserID_OrdersAndLimits tests recency ordering with a limit
func (s *SearchHistoryRepositoryTestSuite) TestGetRecentByUserID_OrdersAndLimits() {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	database.CreateTestSearchRecord(s.T(), s.db, s.userID, "Oldest", 10, base)
	database.CreateTestSearchRecord(s.T(), s.db, s.userID, "Middle", 20, base.Add(time.Hour))
	database.CreateTestSearchRecord(s.T(), s.db, s.userID, "Newest", 30, base.Add(2*time.Hour))

	// Another user's lookups must not leak in
	database.CreateTestSearchRecord(s.T(), s.db, uuid.New(), "Other", 99, base.Add(3*time.Hour))

	records, err := s.repo.GetRecentByUserID(s.userID, 2)
	require.NoError(s.T(), err)
	require.Len(s.T(), records, 2)
	assert.Equal(s.T(), "Newest", records[0].Item)
	assert.Equal(s.T(), "Middle", records[1].Item)
}

// TestGetRecentByUserID_EmptyHistory tests an empty history
func (s *SearchHistoryRepositoryTestSuite) TestGetRecentByUserID_EmptyHistory() {
	records, err := s.repo.GetRecentByUserID(s.userID, 10)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), records)
}

// TestDelete_OwnedRecord tests deleting an owned record
func (s *SearchHistoryRepositoryTestSuite) TestDelete_OwnedRecord() {
	record := database.CreateTestSearchRecord(s.T(), s.db, s.userID, "Widget", 10, time.Now().UTC())

	err := s.repo.Delete(record.ID, s.userID)
	require.NoError(s.T(), err)

	retrieved, err := s.repo.GetByID(record.ID)
	assert.Nil(s.T(), retrieved)
	assert.Equal(s.T(), ErrSearchRecordNotFound, err)
}

// TestDelete_OtherUsersRecord tests that ownership is enforced on delete
func (s *SearchHistoryRepositoryTestSuite) TestDelete_OtherUsersRecord() {
	record := database.CreateTestSearchRecord(s.T(), s.db, s.userID, "Widget", 10, time.Now().UTC())

	err := s.repo.Delete(record.ID, uuid.New())
	require.Error(s.T(), err)
	assert.Equal(s.T(), ErrSearchRecordNotFound, err)

	retrieved, err := s.repo.GetByID(record.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), record.ID, retrieved.ID)
}

// TestGetAnalytics_AggregatesHistory tests the aggregate query
func (s *SearchHistoryRepositoryTestSuite) TestGetAnalytics_AggregatesHistory() {
	now := time.Now().UTC()
	database.CreateTestSearchRecord(s.T(), s.db, s.userID, "Widget", 100, now)
	database.CreateTestSearchRecord(s.T(), s.db, s.userID, "Widget", 110, now.Add(time.Minute))
	database.CreateTestSearchRecord(s.T(), s.db, s.userID, "Gadget", 60, now.Add(2*time.Minute))

	database.CreateTestSearchRecord(s.T(), s.db, uuid.New(), "Other", 500, now)

	count, avgPrice, uniqueItems, err := s.repo.GetAnalytics(s.userID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(3), count)
	assert.Equal(s.T(), int64(2), uniqueItems)

	avg, parseErr := decimal.NewFromString(avgPrice)
	require.NoError(s.T(), parseErr)
	assert.True(s.T(), avg.Equal(decimal.NewFromInt(90)))
}

// TestGetAnalytics_EmptyHistory tests the aggregate query with no rows
func (s *SearchHistoryRepositoryTestSuite) TestGetAnalytics_EmptyHistory() {
	count, avgPrice, uniqueItems, err := s.repo.GetAnalytics(s.userID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(0), count)
	assert.Equal(s.T(), int64(0), uniqueItems)

	avg, parseErr := decimal.NewFromString(avgPrice)
	require.NoError(s.T(), parseErr)
	assert.True(s.T(), avg.IsZero())
}