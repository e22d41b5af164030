package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"flipdar-api/internal/models"
	"flipdar-api/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Performance Optimization Notes:
// The LedgerAnalyticsServiceInterface relies on efficient database queries with proper indexing.
// Required indexes on transactions table (created in database.CreateIndexes):
//   - user_id: Enables fast filtering by user
//   - (user_id, date): Enables efficient date range queries
//   - (user_id, item): Supports per-item grouping workloads
//
// Query optimization strategy:
//   - Single fetch per analytics request minimizes database round trips
//   - All grouping, pairing and series building happens in memory after fetch
//   - A reselling ledger is small per user (hundreds to low thousands of rows),
//     so in-memory aggregation stays cheap

const (
	DefaultTopItemsLimit = 5
)

var (
	ErrInvalidDateRange = errors.New("start date must be before end date")
	ErrFutureDate       = errors.New("end date cannot be in the future")
)

type ledgerAnalyticsService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
	topItemsLimit   int
}

func NewLedgerAnalyticsService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
	topItemsLimit int,
) LedgerAnalyticsServiceInterface {
	if topItemsLimit <= 0 {
		topItemsLimit = DefaultTopItemsLimit
	}
	return &ledgerAnalyticsService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
		topItemsLimit:   topItemsLimit,
	}
}

func (s *ledgerAnalyticsService) GetSummary(userID uuid.UUID, startDate, endDate *time.Time) (*models.LedgerSummary, error) {
	started := time.Now()

	if err := s.validateDateRange(startDate, endDate); err != nil {
		return nil, err
	}

	transactions, err := s.fetchTransactions(userID, startDate, endDate)
	if err != nil {
		slog.Error("failed to fetch transactions for ledger summary",
			"user_id", userID,
			"error", err)
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	summary := calculateLedgerSummary(userID, transactions, s.topItemsLimit)

	s.metrics.IncrementCounter("analytics.requests", map[string]string{"report": "summary"})
	s.metrics.RecordProcessingTime("analytics.summary", time.Since(started))

	if summary == nil {
		slog.Info("ledger summary requested for empty ledger", "user_id", userID)
		return nil, nil
	}

	slog.Info("ledger summary generated",
		"user_id", userID,
		"sales_count", summary.SalesCount,
		"purchases_count", summary.PurchasesCount,
		"excluded_count", summary.ExcludedCount)

	return summary, nil
}

func (s *ledgerAnalyticsService) GetBestFlip(userID uuid.UUID) (*models.BestFlip, error) {
	started := time.Now()

	transactions, err := s.transactionRepo.GetByUserID(userID)
	if err != nil {
		slog.Error("failed to fetch transactions for best flip",
			"user_id", userID,
			"error", err)
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	best := findBestFlip(transactions)

	s.metrics.IncrementCounter("analytics.requests", map[string]string{"report": "best_flip"})
	s.metrics.RecordProcessingTime("analytics.best_flip", time.Since(started))

	if best == nil {
		slog.Info("best flip requested with no sales recorded", "user_id", userID)
		return nil, nil
	}

	slog.Info("best flip calculated",
		"user_id", userID,
		"item", best.Item,
		"profit", best.Profit.String())

	return best, nil
}

func (s *ledgerAnalyticsService) GetTopItems(userID uuid.UUID, limit int) ([]models.ItemProfit, error) {
	started := time.Now()

	if limit <= 0 {
		limit = s.topItemsLimit
	}

	transactions, err := s.transactionRepo.GetByUserID(userID)
	if err != nil {
		slog.Error("failed to fetch transactions for top items",
			"user_id", userID,
			"error", err)
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	items := calculateTopItems(transactions, limit)

	s.metrics.IncrementCounter("analytics.requests", map[string]string{"report": "top_items"})
	s.metrics.RecordProcessingTime("analytics.top_items", time.Since(started))

	return items, nil
}

func (s *ledgerAnalyticsService) GetTrendSeries(userID uuid.UUID, startDate, endDate *time.Time) ([]models.TrendPoint, error) {
	started := time.Now()

	if err := s.validateDateRange(startDate, endDate); err != nil {
		return nil, err
	}

	transactions, err := s.fetchTransactions(userID, startDate, endDate)
	if err != nil {
		slog.Error("failed to fetch transactions for trend series",
			"user_id", userID,
			"error", err)
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	series := calculateTrendSeries(transactions)

	s.metrics.IncrementCounter("analytics.requests", map[string]string{"report": "trend"})
	s.metrics.RecordProcessingTime("analytics.trend", time.Since(started))

	slog.Info("trend series generated",
		"user_id", userID,
		"point_count", len(series))

	return series, nil
}

func (s *ledgerAnalyticsService) validateDateRange(startDate, endDate *time.Time) error {
	if endDate != nil && endDate.After(time.Now()) {
		return ErrFutureDate
	}
	if startDate != nil && endDate != nil && !startDate.Before(*endDate) {
		return ErrInvalidDateRange
	}
	return nil
}

func (s *ledgerAnalyticsService) fetchTransactions(userID uuid.UUID, startDate, endDate *time.Time) ([]models.Transaction, error) {
	if startDate == nil && endDate == nil {
		return s.transactionRepo.GetByUserID(userID)
	}

	effectiveStart := time.Time{}
	if startDate != nil {
		effectiveStart = *startDate
	}
	effectiveEnd := time.Now()
	if endDate != nil {
		effectiveEnd = *endDate
	}

	return s.transactionRepo.GetByDateRange(userID, effectiveStart, effectiveEnd)
}

// calculateLedgerSummary aggregates the ledger into totals, averages and item
// rankings. An empty ledger yields nil so callers can distinguish "no data"
// from a ledger that genuinely nets to zero.
func calculateLedgerSummary(userID uuid.UUID, transactions []models.Transaction, topItemsLimit int) *models.LedgerSummary {
	if len(transactions) == 0 {
		return nil
	}

	summary := &models.LedgerSummary{
		UserID:           userID,
		TotalSales:       decimal.Zero,
		TotalPurchases:   decimal.Zero,
		TotalProfit:      decimal.Zero,
		ProfitMargin:     decimal.Zero,
		AvgSalePrice:     decimal.Zero,
		AvgPurchasePrice: decimal.Zero,
		GeneratedAt:      time.Now(),
	}

	for i := range transactions {
		txn := &transactions[i]

		switch txn.Type {
		case models.TransactionTypeSale:
			summary.SalesCount++
			summary.TotalSales = summary.TotalSales.Add(txn.Price)
		case models.TransactionTypePurchase:
			summary.PurchasesCount++
			summary.TotalPurchases = summary.TotalPurchases.Add(txn.Price)
		default:
			summary.ExcludedCount++
		}
	}

	summary.TotalProfit = summary.TotalSales.Sub(summary.TotalPurchases)

	if !summary.TotalPurchases.IsZero() {
		summary.ProfitMargin = summary.TotalProfit.Div(summary.TotalPurchases).Mul(decimal.NewFromInt(100))
	}

	if summary.SalesCount > 0 {
		summary.AvgSalePrice = summary.TotalSales.Div(decimal.NewFromInt(summary.SalesCount))
	}
	if summary.PurchasesCount > 0 {
		summary.AvgPurchasePrice = summary.TotalPurchases.Div(decimal.NewFromInt(summary.PurchasesCount))
	}

	summary.TopItems = calculateTopItems(transactions, topItemsLimit)

	return summary
}

// calculateTopItems estimates per-item profit potential: every purchase of an
// item scores the item's entire sales total minus that purchase's price. An
// item bought several times therefore counts its sales total once per
// purchase. This deliberately over-weights frequently re-bought items; it is
// a ranking heuristic, not a realized-profit figure (findBestFlip and
// calculateTrendSeries compute those). Ties keep first-encounter order.
func calculateTopItems(transactions []models.Transaction, limit int) []models.ItemProfit {
	salesByItem := make(map[string]decimal.Decimal)
	for i := range transactions {
		txn := &transactions[i]
		if txn.Type == models.TransactionTypeSale {
			salesByItem[txn.Item] = salesByItem[txn.Item].Add(txn.Price)
		}
	}

	profitByItem := make(map[string]decimal.Decimal)
	itemOrder := make([]string, 0)

	for i := range transactions {
		txn := &transactions[i]
		if txn.Type != models.TransactionTypePurchase {
			continue
		}

		if _, seen := profitByItem[txn.Item]; !seen {
			itemOrder = append(itemOrder, txn.Item)
		}
		profitByItem[txn.Item] = profitByItem[txn.Item].Add(salesByItem[txn.Item].Sub(txn.Price))
	}

	ranked := make([]models.ItemProfit, 0, len(itemOrder))
	for _, item := range itemOrder {
		ranked = append(ranked, models.ItemProfit{Item: item, Profit: profitByItem[item]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Profit.GreaterThan(ranked[j].Profit)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

// findBestFlip pairs each item's sales (highest first) against its purchases
// (cheapest first) and returns the single pairing with the largest margin.
// Items are visited in lexical order and only a strictly greater profit
// replaces the current best, so equal-profit flips resolve to the lexically
// smallest item. Returns nil when the ledger holds no sales at all. A sale of
// an item with no recorded purchase falls back to a zero cost basis, the same
// convention calculateTrendSeries uses for unmatched sales.
func findBestFlip(transactions []models.Transaction) *models.BestFlip {
	salesByItem := make(map[string][]decimal.Decimal)
	purchasesByItem := make(map[string][]decimal.Decimal)
	saleCount := 0

	for i := range transactions {
		txn := &transactions[i]
		switch txn.Type {
		case models.TransactionTypeSale:
			salesByItem[txn.Item] = append(salesByItem[txn.Item], txn.Price)
			saleCount++
		case models.TransactionTypePurchase:
			purchasesByItem[txn.Item] = append(purchasesByItem[txn.Item], txn.Price)
		}
	}

	if saleCount == 0 {
		return nil
	}

	items := make([]string, 0, len(salesByItem))
	for item := range salesByItem {
		items = append(items, item)
	}
	sort.Strings(items)

	var best *models.BestFlip

	for _, item := range items {
		sales := salesByItem[item]
		purchases := purchasesByItem[item]

		sort.SliceStable(sales, func(i, j int) bool { return sales[i].GreaterThan(sales[j]) })
		sort.SliceStable(purchases, func(i, j int) bool { return purchases[i].LessThan(purchases[j]) })

		pairs := len(sales)
		if len(purchases) < pairs {
			pairs = len(purchases)
		}

		for i := 0; i < pairs; i++ {
			profit := sales[i].Sub(purchases[i])
			if best == nil || profit.GreaterThan(best.Profit) {
				best = &models.BestFlip{
					Item:          item,
					SalePrice:     sales[i],
					PurchasePrice: purchases[i],
					Profit:        profit,
				}
			}
		}
	}

	if best == nil {
		// Sales exist but none of the sold items has a purchase to pair with.
		for _, item := range items {
			for _, sale := range salesByItem[item] {
				if best == nil || sale.GreaterThan(best.Profit) {
					best = &models.BestFlip{
						Item:          item,
						SalePrice:     sale,
						PurchasePrice: decimal.Zero,
						Profit:        sale,
					}
				}
			}
		}
	}

	return best
}

// calculateTrendSeries walks the ledger in chronological order and keeps a
// FIFO queue of unmatched purchase costs per item. A sale consumes the oldest
// unmatched purchase of its item; a sale with nothing queued counts a zero
// cost basis. One point is emitted per calendar day (UTC); multiple
// transactions on the same day collapse to that day's final cumulative state.
func calculateTrendSeries(transactions []models.Transaction) []models.TrendPoint {
	ordered := make([]models.Transaction, len(transactions))
	copy(ordered, transactions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	queues := make(map[string][]decimal.Decimal)
	cumulativeCost := decimal.Zero
	cumulativeSold := decimal.Zero
	cumulativeProfit := decimal.Zero

	pointsByDate := make(map[string]models.TrendPoint)

	for i := range ordered {
		txn := &ordered[i]

		switch txn.Type {
		case models.TransactionTypePurchase:
			cumulativeCost = cumulativeCost.Add(txn.Price)
			queues[txn.Item] = append(queues[txn.Item], txn.Price)
		case models.TransactionTypeSale:
			cumulativeSold = cumulativeSold.Add(txn.Price)

			matched := decimal.Zero
			if queue := queues[txn.Item]; len(queue) > 0 {
				matched = queue[0]
				queues[txn.Item] = queue[1:]
			}
			cumulativeProfit = cumulativeProfit.Add(txn.Price.Sub(matched))
		default:
			continue
		}

		pointsByDate[txn.DateKey()] = models.TrendPoint{
			Date:   txn.DateKey(),
			Cost:   cumulativeCost,
			Sold:   cumulativeSold,
			Profit: cumulativeProfit,
		}
	}

	dates := make([]string, 0, len(pointsByDate))
	for date := range pointsByDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	series := make([]models.TrendPoint, 0, len(dates))
	for _, date := range dates {
		series = append(series, pointsByDate[date])
	}

	return series
}
