package services

import (
	"math/rand"
	"sort"
	"time"

	"flipdar-api/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type transactionGenerator struct {
	rng *rand.Rand
}

const (
	listingHourStart = 7
	listingHourEnd   = 23
	hoursInDay       = 24
	minMarkup        = 1.1
	maxMarkup        = 2.8
	lossChance       = 0.15
)

// NewTransactionGenerator creates a generator for realistic resale ledger data
func NewTransactionGenerator() TransactionGeneratorInterface {
	source := rand.NewSource(time.Now().UnixNano())
	return &transactionGenerator{
		rng: rand.New(source),
	}
}

// SelectRandomItem picks from the common flip item pool, occasionally mixing
// in a faked product name so ledgers do not all look identical
func (g *transactionGenerator) SelectRandomItem() string {
	if g.rng.Float64() < 0.2 {
		return gofakeit.ProductName()
	}
	return models.SampleItems[g.rng.Intn(len(models.SampleItems))]
}

// GeneratePurchasePrice generates a plausible sourcing price for an item
func (g *transactionGenerator) GeneratePurchasePrice(item string) decimal.Decimal {
	// Longer item names skew pricier in the sample pool; a loose heuristic
	// beats a hand-maintained price table here.
	base := 15.00 + float64(len(item))*4.5
	price := base * (0.5 + g.rng.Float64())
	return decimal.NewFromFloat(price).Round(2)
}

// GenerateSalePrice generates a resale price, usually marked up, sometimes
// below cost the way real flips occasionally go
func (g *transactionGenerator) GenerateSalePrice(purchasePrice decimal.Decimal) decimal.Decimal {
	cost, _ := purchasePrice.Float64()

	if g.rng.Float64() < lossChance {
		return decimal.NewFromFloat(cost * (0.5 + g.rng.Float64()*0.4)).Round(2)
	}

	markup := minMarkup + g.rng.Float64()*(maxMarkup-minMarkup)
	return decimal.NewFromFloat(cost * markup).Round(2)
}

// GenerateTimestamp generates a random timestamp within the date range,
// clamped to the hours resellers actually list and ship
func (g *transactionGenerator) GenerateTimestamp(startDate, endDate time.Time) time.Time {
	diff := endDate.Sub(startDate)
	if diff <= 0 {
		diff = time.Hour
	}
	randomDuration := time.Duration(g.rng.Int63n(int64(diff)))
	timestamp := startDate.Add(randomDuration)

	hour := listingHourStart + g.rng.Intn(listingHourEnd-listingHourStart)
	minute := g.rng.Intn(60)
	second := g.rng.Intn(60)

	return time.Date(
		timestamp.Year(),
		timestamp.Month(),
		timestamp.Day(),
		hour,
		minute,
		second,
		0,
		time.UTC,
	)
}

// GenerateFlipPairs generates matched purchase/sale pairs: each item is
// bought first and sold between three days and six weeks later
func (g *transactionGenerator) GenerateFlipPairs(userID uuid.UUID, startDate, endDate time.Time, pairCount int) []*models.Transaction {
	transactions := make([]*models.Transaction, 0, pairCount*2)

	for i := 0; i < pairCount; i++ {
		item := g.SelectRandomItem()
		purchasePrice := g.GeneratePurchasePrice(item)

		purchaseDate := g.GenerateTimestamp(startDate, endDate)
		holdDays := 3 + g.rng.Intn(40)
		saleDate := purchaseDate.Add(time.Duration(holdDays) * hoursInDay * time.Hour)
		if saleDate.After(endDate) {
			saleDate = endDate
		}

		transactions = append(transactions,
			g.buildTransaction(userID, models.TransactionTypePurchase, item, purchasePrice, purchaseDate),
			g.buildTransaction(userID, models.TransactionTypeSale, item, g.GenerateSalePrice(purchasePrice), saleDate),
		)
	}

	sortTransactionsByDate(transactions)
	return transactions
}

// GenerateHistoricalTransactions generates a mixed ledger: mostly completed
// flips plus a tail of unsold inventory
func (g *transactionGenerator) GenerateHistoricalTransactions(userID uuid.UUID, startDate, endDate time.Time, count int) []*models.Transaction {
	if count <= 0 {
		return []*models.Transaction{}
	}

	pairCount := count / 3
	transactions := g.GenerateFlipPairs(userID, startDate, endDate, pairCount)

	for len(transactions) < count {
		item := g.SelectRandomItem()
		price := g.GeneratePurchasePrice(item)
		date := g.GenerateTimestamp(startDate, endDate)
		transactions = append(transactions, g.buildTransaction(userID, models.TransactionTypePurchase, item, price, date))
	}

	sortTransactionsByDate(transactions)
	return transactions[:count]
}

func (g *transactionGenerator) buildTransaction(userID uuid.UUID, txnType, item string, price decimal.Decimal, date time.Time) *models.Transaction {
	return &models.Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      txnType,
		Item:      item,
		Price:     price,
		Date:      date,
		Platform:  models.KnownPlatforms[g.rng.Intn(len(models.KnownPlatforms))],
		Condition: models.KnownConditions[g.rng.Intn(len(models.KnownConditions))],
		Notes:     gofakeit.Sentence(6),
		CreatedAt: date,
		UpdatedAt: date,
	}
}

// sortTransactionsByDate sorts transactions chronologically
func sortTransactionsByDate(transactions []*models.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.Before(transactions[j].Date)
	})
}
