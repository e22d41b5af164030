package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemProfit represents one entry in the ranked item profitability list
type ItemProfit struct {
	Item   string          `json:"item"`
	Profit decimal.Decimal `json:"profit"`
}

// LedgerSummary represents whole-ledger aggregate metrics for a user.
// A nil summary means the user has no transactions yet, which is distinct
// from a summary whose totals are all zero.
type LedgerSummary struct {
	UserID           uuid.UUID       `json:"user_id"`
	SalesCount       int64           `json:"sales_count"`
	PurchasesCount   int64           `json:"purchases_count"`
	TotalSales       decimal.Decimal `json:"total_sales"`
	TotalPurchases   decimal.Decimal `json:"total_purchases"`
	TotalProfit      decimal.Decimal `json:"total_profit"`
	ProfitMargin     decimal.Decimal `json:"profit_margin"`
	AvgSalePrice     decimal.Decimal `json:"avg_sale_price"`
	AvgPurchasePrice decimal.Decimal `json:"avg_purchase_price"`
	TopItems         []ItemProfit    `json:"top_items"`
	ExcludedCount    int64           `json:"excluded_count"`
	GeneratedAt      time.Time       `json:"generated_at"`
}

// BestFlip represents the single most profitable matched sale/purchase pair
// across a user's ledger. Nil when the user has recorded no sales.
type BestFlip struct {
	Item          string          `json:"item"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Profit        decimal.Decimal `json:"profit"`
}

// TrendPoint is one calendar-day sample of the cumulative performance series
type TrendPoint struct {
	Date   string          `json:"date"`
	Cost   decimal.Decimal `json:"cost"`
	Sold   decimal.Decimal `json:"sold"`
	Profit decimal.Decimal `json:"profit"`
}
