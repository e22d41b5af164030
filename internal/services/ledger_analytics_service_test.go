package services

import (
	"errors"
	"testing"
	"time"

	"flipdar-api/internal/models"
	"flipdar-api/internal/repositories/repository_mocks"
	"flipdar-api/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// LedgerAnalyticsServiceTestSuite defines the test suite for the analytics service
type LedgerAnalyticsServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockTransactionRepo *repository_mocks.MockTransactionRepositoryInterface
	mockMetrics         *service_mocks.MockMetricsRecorderInterface
	service             LedgerAnalyticsServiceInterface
}

// SetupTest runs before each test
func (s *LedgerAnalyticsServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockTransactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.mockMetrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.mockMetrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.mockMetrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	s.service = NewLedgerAnalyticsService(s.mockTransactionRepo, s.mockMetrics, DefaultTopItemsLimit)
}

// TearDownTest runs after each test
func (s *LedgerAnalyticsServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestLedgerAnalyticsServiceSuite runs the test suite
func TestLedgerAnalyticsServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerAnalyticsServiceTestSuite))
}

func purchase(userID uuid.UUID, item string, price float64, date time.Time) models.Transaction {
	return models.Transaction{
		ID:     uuid.New(),
		UserID: userID,
		Type:   models.TransactionTypePurchase,
		Item:   item,
		Price:  decimal.NewFromFloat(price),
		Date:   date,
	}
}

func sale(userID uuid.UUID, item string, price float64, date time.Time) models.Transaction {
	return models.Transaction{
		ID:     uuid.New(),
		UserID: userID,
		Type:   models.TransactionTypeSale,
		Item:   item,
		Price:  decimal.NewFromFloat(price),
		Date:   date,
	}
}

// Test summary with a single buy/sell round trip
func (s *LedgerAnalyticsServiceTestSuite) TestGetSummary_Success_SingleFlip() {
	userID := uuid.New()
	day1 := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC)

	transactions := []models.Transaction{
		purchase(userID, "Widget", 10.00, day1),
		sale(userID, "Widget", 25.00, day2),
	}

	s.mockTransactionRepo.EXPECT().GetByUserID(userID).Return(transactions, nil)

	summary, err := s.service.GetSummary(userID, nil, nil)

	s.NoError(err)
	s.NotNil(summary)
	s.Equal(userID, summary.UserID)
	s.Equal(int64(1), summary.SalesCount)
	s.Equal(int64(1), summary.PurchasesCount)
	s.True(summary.TotalSales.Equal(decimal.NewFromFloat(25.00)))
	s.True(summary.TotalPurchases.Equal(decimal.NewFromFloat(10.00)))
	s.True(summary.TotalProfit.Equal(decimal.NewFromFloat(15.00)))
	s.True(summary.ProfitMargin.Equal(decimal.NewFromInt(150)))
	s.True(summary.AvgSalePrice.Equal(decimal.NewFromFloat(25.00)))
	s.True(summary.AvgPurchasePrice.Equal(decimal.NewFromFloat(10.00)))
}

// Test summary returns nil rather than a zeroed struct for an empty ledger
func (s *LedgerAnalyticsServiceTestSuite) TestGetSummary_EmptyLedger_ReturnsNil() {
	userID := uuid.New()

	s.mockTransactionRepo.EXPECT().GetByUserID(userID).Return([]models.Transaction{}, nil)

	summary, err := s.service.GetSummary(userID, nil, nil)

	s.NoError(err)
	s.Nil(summary)
}

// Test profit margin stays zero when there are no purchases to divide by
func (s *LedgerAnalyticsServiceTestSuite) TestGetSummary_SalesOnly_ZeroMargin() {
	userID := uuid.New()
	now := time.Now()

	transactions := []models.Transaction{
		sale(userID, "Lamp", 40.00, now.AddDate(0, 0, -3)),
		sale(userID, "Lamp", 60.00, now.AddDate(0, 0, -1)),
	}

	s.mockTransactionRepo.EXPECT().GetByUserID(userID).Return(transactions, nil)

	summary, err := s.service.GetSummary(userID, nil, nil)

	s.NoError(err)
	s.NotNil(summary)
	s.Equal(int64(2), summary.SalesCount)
	s.Equal(int64(0), summary.PurchasesCount)
	s.True(summary.TotalProfit.Equal(decimal.NewFromFloat(100.00)))
	s.True(summary.ProfitMargin.Equal(decimal.Zero))
	s.True(summary.AvgPurchasePrice.Equal(decimal.Zero))
	s.True(summary.AvgSalePrice.Equal(decimal.NewFromFloat(50.00)))
}

// Test unrecognized transaction types are counted but excluded from totals
func (s *LedgerAnalyticsServiceTestSuite) TestGetSummary_UnknownType_Excluded() {
	userID := uuid.New()
	now := time.Now()

	transactions := []models.Transaction{
		purchase(userID, "Chair", 20.00, now.AddDate(0, 0, -2)),
		{
			ID:     uuid.New(),
			UserID: userID,
			Type:   "refund",
			Item:   "Chair",
			Price:  decimal.NewFromFloat(5.00),
			Date:   now.AddDate(0, 0, -1),
		},
	}

	s.mockTransactionRepo.EXPECT().GetByUserID(userID).Return(transactions, nil)

	summary, err := s.service.GetSummary(userID, nil, nil)

	s.NoError(err)
	s.NotNil(summary)
	s.Equal(int64(0), summary.SalesCount)
	s.Equal(int64(1), summary.PurchasesCount)
	s.Equal(int64(1), summary.ExcludedCount)
	s.True(summary.TotalPurchases.Equal(decimal.NewFromFloat(20.00)))
	s.True(summary.TotalSales.Equal(decimal.Zero))
}

// Test summary with a custom date range delegates to the range query
func (s *LedgerAnalyticsServiceTestSuite) TestGetSummary_Success_CustomDateRange() {
	userID := uuid.New()
	startDate := time.Now().AddDate(0, 0, -30)
	endDate := time.Now().AddDate(0, 0, -1)

	s.mockTransactionRepo.EXPECT().GetByDateRange(userID, startDate, endDate).Return([]models.Transaction{}, nil)

	summary, err := s.service.GetSummary(userID, &startDate, &endDate)

	s.NoError(err)
	s.Nil(summary)
}

// Test summary with invalid date range
func (s *LedgerAnalyticsServiceTestSuite) TestGetSummary_Error_InvalidDateRange() {
	userID := uuid.New()
	startDate := time.Now()
	endDate := time.Now().AddDate(0, 0, -7)

	summary, err := s.service.GetSummary(userID, &startDate, &endDate)

	s.Error(err)
	s.Nil(summary)
	s.ErrorIs(err, ErrInvalidDateRange)
}

// Test summary with future end date
func (s *LedgerAnalyticsServiceTestSuite) TestGetSummary_Error_FutureEndDate() {
	userID := uuid.New()
	startDate := time.Now().AddDate(0, 0, -7)
	endDate := time.Now().AddDate(0, 0, 7)

	summary, err := s.service.GetSummary(userID, &startDate, &endDate)

	s.Error(err)
	s.Nil(summary)
	s.ErrorIs(err, ErrFutureDate)
}

// Test summary propagates repository failures
func (s *LedgerAnalyticsServiceTestSuite) TestGetSummary_Error_RepositoryFailure() {
	userID := uuid.New()

	s.mockTransactionRepo.EXPECT().GetByUserID(userID).Return(nil, errors.New("connection reset"))

	summary, err := s.service.GetSummary(userID, nil, nil)

	s.Error(err)
	s.Nil(summary)
}

// Test the summary ranks items and truncates to the configured limit
func (s *LedgerAnalyticsServiceTestSuite) TestGetSummary_TopItems_TruncatedToLimit() {
	userID := uuid.New()
	now := time.Now()

	transactions := make([]models.Transaction, 0, 14)
	items := []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot", "Golf"}
	for i, item := range items {
		transactions = append(transactions,
			purchase(userID, item, 10.00, now.AddDate(0, 0, -10)),
			sale(userID, item, 10.00+float64(i+1)*5, now.AddDate(0, 0, -5)),
		)
	}

	s.mockTransactionRepo.EXPECT().GetByUserID(userID).Return(transactions, nil)

	summary, err := s.service.GetSummary(userID, nil, nil)

	s.NoError(err)
	s.NotNil(summary)
	s.Len(summary.TopItems, 5)
	s.Equal("Golf", summary.TopItems[0].Item)
	s.True(summary.TopItems[0].Profit.Equal(decimal.NewFromFloat(35.00)))
	s.Equal("Charlie", summary.TopItems[4].Item)
}

// Test top items counts the full sales total once per purchase of the item
func (s *LedgerAnalyticsServiceTestSuite) TestGetTopItems_RepeatPurchasesWeightRanking() {
	userID := uuid.New()
	now := time.Now()

	transactions := []models.Transaction{
		purchase(userID, "Console", 100.00, now.AddDate(0, 0, -20)),
		purchase(userID, "Console", 120.00, now.AddDate(0, 0, -15)),
		sale(userID, "Console", 200.00, now.AddDate(0, 0, -10)),
		purchase(userID, "Keyboard", 30.00, now.AddDate(0, 0, -8)),
		sale(userID, "Keyboard", 90.00, now.AddDate(0, 0, -2)),
	}

	s.mockTransactionRepo.EXPECT().GetByUserID(userID).Return(transactions, nil)

	ranked, err := s.service.GetTopItems(userID, 5)

	s.NoError(err)
	s.Len(ranked, 2)
	// Console scores (200-100)+(200-120)=180, Keyboard scores 90-30=60.
	s.Equal("Console", ranked[0].Item)
	s.True(ranked[0].Profit.Equal(decimal.NewFromFloat(180.00)))
	s.Equal("Keyboard", ranked[1].Item)
	s.True(ranked[1].Profit.Equal(decimal.NewFromFloat(60.00)))
}

// Test equal-profit items keep the order their purchases first appeared
func (s *LedgerAnalyticsServiceTestSuite) TestGetTopItems_Ties_PreserveEncounterOrder() {
	userID := uuid.New()
	now := time.Now()

	transactions := []models.Transaction{
		purchase(userID, "Zebra Print", 10.00, now.AddDate(0, 0, -9)),
		purchase(userID, "Antique Map", 10.00, now.AddDate(0, 0, -8)),
		sale(userID, "Zebra Print", 30.00, now.AddDate(0, 0, -4)),
		sale(userID, "Antique Map", 30.00, now.AddDate(0, 0, -3)),
	}

	s.mockTransactionRepo.EXPECT().GetByUserID(userID).Return(transactions, nil)

	ranked, err := s.service.GetTopItems(userID, 5)

	s.NoError(err)
	s.Len(ranked, 2)
	s.Equal("Zebra Print", ranked[0].Item)
	s.Equal("Antique Map", ranked[1].Item)
}

// Test best flip pairs highest sale with cheapest purchase per item
func (s *LedgerAnalyticsServiceTestSuite) TestGetBestFlip_Success_SingleItem() {
	userID := uuid.New()
	now := time.Now()

	transactions := []models.Transaction{
		purchase(userID, "Widget", 10.00, now.AddDate(0, 0, -10)),
		sale(userID, "Widget", 25.00, now.AddDate(0, 0, -5)),
	}

	s.mockTransactionRepo.EXPECT().GetByUserID(userID).Return(transactions, nil)

	best, err := s.service.GetBestFlip(userID)

	s.NoError(err)
	s.NotNil(best)
	s.Equal("Widget", best.Item)
	s.True(best.SalePrice.Equal(decimal.NewFromFloat(25.00)))
	s.True(best.PurchasePrice.Equal(decimal.NewFromFloat(10.00)))
	s.True(best.Profit.Equal(decimal.NewFromFloat(15.00)))
}

// Test best flip picks the strongest pairing across several items
func (s *LedgerAnalyticsServiceTestSuite) TestGetBestFlip_Success_MultipleItems() {
	userID := uuid.New()
	now := time.Now()

	transactions := []models.Transaction{
		purchase(userID, "Monitor", 50.00, now.AddDate(0, 0, -20)),
		purchase(userID, "Monitor", 80.00, now.AddDate(0, 0, -18)),
		sale(userID, "Monitor", 200.00, now.AddDate(0, 0, -10)),
		sale(userID, "Monitor", 90.00, now.AddDate(0, 0, -9)),
		purchase(userID, "Desk", 40.00, now.AddDate(0, 0, -15)),
		sale(userID, "Desk", 100.00, now.AddDate(0, 0, -5)),
	}

	s.mockTransactionRepo.EXPECT().GetByUserID(userID).Return(transactions, nil)

	best, err := s.service.GetBestFlip(userID)

	s.NoError(err)
	s.NotNil(best)
	// Monitor's best pairing is 200 against the 50 purchase.
	s.Equal("Monitor", best.Item)
	s.True(best.SalePrice.Equal(decimal.NewFromFloat(200.00)))
	s.True(best.PurchasePrice.Equal(decimal.NewFromFloat(50.00)))
	s.True(best.Profit.Equal(decimal.NewFromFloat(150.00)))
}

// Test best flip ties resolve to the lexically smallest item
func (s *LedgerAnalyticsServiceTestSuite) TestGetBestFlip_Ties_LexicalItemOrder() {
	userID := uuid.New()
	now := time.Now()

	transactions := []models.Transaction{
		purchase(userID, "Bookshelf", 20.00, now.AddDate(0, 0, -10)),
		sale(userID, "Bookshelf", 70.00, now.AddDate(0, 0, -5)),
		purchase(userID, "Armchair", 30.00, now.AddDate(0, 0, -8)),
		sale(userID, "Armchair", 80.00, now.AddDate(0, 0, -3)),
	}

	s.mockTransactionRepo.EXPECT().GetByUserID(userID).Return(transactions, nil)

	best, err := s.service.GetBestFlip(userID)

	s.NoError(err)
	s.NotNil(best)
	s.Equal("Armchair", best.Item)
	s.True(best.Profit.Equal(decimal.NewFromFloat(50.00)))
}

// Test best flip is nil when the ledger holds no sales
func (s *LedgerAnalyticsServiceTestSuite) TestGetBestFlip_NoSales_ReturnsNil() {
	userID := uuid.New()
	now := time.Now()

	transactions := []models.Transaction{
		purchase(userID, "Widget", 10.00, now.AddDate(0, 0, -4)),
		purchase(userID, "Gadget", 20.00, now.AddDate(0, 0, -2)),
	}

	s.mockTransactionRepo.EXPECT().GetByUserID(userID).Return(transactions, nil)

	best, err := s.service.GetBestFlip(userID)

	s.NoError(err)
	s.Nil(best)
}

// Test a sale with no purchase on record still yields a flip at zero cost
func (s *LedgerAnalyticsServiceTestSuite) TestGetBestFlip_UnmatchedSale_ZeroCostBasis() {
	userID := uuid.New()
	now := time.Now()

	transactions := []models.Transaction{
		sale(userID, "Found Bicycle", 120.00, now.AddDate(0, 0, -1)),
	}

	s.mockTransactionRepo.EXPECT().GetByUserID(userID).Return(transactions, nil)

	best, err := s.service.GetBestFlip(userID)

	s.NoError(err)
	s.NotNil(best)
	s.Equal("Found Bicycle", best.Item)
	s.True(best.SalePrice.Equal(decimal.NewFromFloat(120.00)))
	s.True(best.PurchasePrice.Equal(decimal.Zero))
	s.True(best.Profit.Equal(decimal.NewFromFloat(120.00)))
}

// Test trend matching consumes the oldest purchase first
func (s *LedgerAnalyticsServiceTestSuite) TestGetTrendSeries_FIFOMatching() {
	userID := uuid.New()
	day1 := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)
	day3 := time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)
	day4 := time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC)

	transactions := []models.Transaction{
		purchase(userID, "Camera", 10.00, day1),
		purchase(userID, "Camera", 20.00, day2),
		sale(userID, "Camera", 15.00, day3),
		sale(userID, "Camera", 30.00, day4),
	}

	s.mockTransactionRepo.EXPECT().GetByUserID(userID).Return(transactions, nil)

	series, err := s.service.GetTrendSeries(userID, nil, nil)

	s.NoError(err)
	s.Len(series, 4)

	s.Equal("2025-03-01", series[0].Date)
	s.True(series[0].Cost.Equal(decimal.NewFromFloat(10.00)))
	s.True(series[0].Profit.Equal(decimal.Zero))

	s.Equal("2025-03-02", series[1].Date)
	s.True(series[1].Cost.Equal(decimal.NewFromFloat(30.00)))

	// First sale consumes the $10 purchase, not the $20 one.
	s.Equal("2025-03-03", series[2].Date)
	s.True(series[2].Sold.Equal(decimal.NewFromFloat(15.00)))
	s.True(series[2].Profit.Equal(decimal.NewFromFloat(5.00)))

	s.Equal("2025-03-04", series[3].Date)
	s.True(series[3].Sold.Equal(decimal.NewFromFloat(45.00)))
	s.True(series[3].Profit.Equal(decimal.NewFromFloat(15.00)))
}

// Test a sale with an empty queue books its full price as profit
func (s *LedgerAnalyticsServiceTestSuite) TestGetTrendSeries_UnmatchedSale() {
	userID := uuid.New()
	day1 := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	transactions := []models.Transaction{
		sale(userID, "Vintage Radio", 55.00, day1),
	}

	s.mockTransactionRepo.EXPECT().GetByUserID(userID).Return(transactions, nil)

	series, err := s.service.GetTrendSeries(userID, nil, nil)

	s.NoError(err)
	s.Len(series, 1)
	s.True(series[0].Cost.Equal(decimal.Zero))
	s.True(series[0].Sold.Equal(decimal.NewFromFloat(55.00)))
	s.True(series[0].Profit.Equal(decimal.NewFromFloat(55.00)))
}

// Test same-day transactions collapse to one point with the final state
func (s *LedgerAnalyticsServiceTestSuite) TestGetTrendSeries_SameDayCollapses() {
	userID := uuid.New()
	morning := time.Date(2025, 5, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 5, 10, 19, 0, 0, 0, time.UTC)

	transactions := []models.Transaction{
		purchase(userID, "Speaker", 25.00, morning),
		sale(userID, "Speaker", 70.00, evening),
	}

	s.mockTransactionRepo.EXPECT().GetByUserID(userID).Return(transactions, nil)

	series, err := s.service.GetTrendSeries(userID, nil, nil)

	s.NoError(err)
	s.Len(series, 1)
	s.Equal("2025-05-10", series[0].Date)
	s.True(series[0].Cost.Equal(decimal.NewFromFloat(25.00)))
	s.True(series[0].Sold.Equal(decimal.NewFromFloat(70.00)))
	s.True(series[0].Profit.Equal(decimal.NewFromFloat(45.00)))
}

// Test out-of-order input is sorted before matching
func (s *LedgerAnalyticsServiceTestSuite) TestGetTrendSeries_UnsortedInput() {
	userID := uuid.New()
	day1 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	transactions := []models.Transaction{
		sale(userID, "Guitar", 150.00, day2),
		purchase(userID, "Guitar", 60.00, day1),
	}

	s.mockTransactionRepo.EXPECT().GetByUserID(userID).Return(transactions, nil)

	series, err := s.service.GetTrendSeries(userID, nil, nil)

	s.NoError(err)
	s.Len(series, 2)
	s.Equal("2025-06-01", series[0].Date)
	s.Equal("2025-06-02", series[1].Date)
	s.True(series[1].Profit.Equal(decimal.NewFromFloat(90.00)))
}

// Test empty ledger yields an empty series
func (s *LedgerAnalyticsServiceTestSuite) TestGetTrendSeries_EmptyLedger() {
	userID := uuid.New()

	s.mockTransactionRepo.EXPECT().GetByUserID(userID).Return([]models.Transaction{}, nil)

	series, err := s.service.GetTrendSeries(userID, nil, nil)

	s.NoError(err)
	s.Empty(series)
}

// Test analytics calls do not mutate their input
func (s *LedgerAnalyticsServiceTestSuite) TestCalculations_DoNotMutateInput() {
	userID := uuid.New()
	day1 := time.Date(2025, 7, 2, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)

	transactions := []models.Transaction{
		sale(userID, "Drone", 300.00, day1),
		purchase(userID, "Drone", 100.00, day2),
	}

	first := calculateTrendSeries(transactions)
	s.Equal(models.TransactionTypeSale, transactions[0].Type)
	s.Equal(day1, transactions[0].Date)

	second := calculateTrendSeries(transactions)
	s.Equal(first, second)

	flipOnce := findBestFlip(transactions)
	flipTwice := findBestFlip(transactions)
	s.Equal(flipOnce, flipTwice)
}
