package database

import (
	"fmt"
	"testing"
	"time"

	"flipdar-api/internal/config"
	"flipdar-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

// CreateTestTransaction inserts a ledger entry for the given user
func CreateTestTransaction(t *testing.T, db *DB, userID uuid.UUID, txnType, item string, price float64, date time.Time) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		UserID: userID,
		Type:   txnType,
		Item:   item,
		Price:  decimal.NewFromFloat(price),
		Date:   date,
	}

	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return txn
}

// CreateTestSearchRecord inserts a search history row for the given user
func CreateTestSearchRecord(t *testing.T, db *DB, userID uuid.UUID, item string, avgPrice float64, searchedAt time.Time) *models.SearchRecord {
	t.Helper()

	record := &models.SearchRecord{
		UserID:     userID,
		Item:       item,
		AvgPrice:   decimal.NewFromFloat(avgPrice),
		MinPrice:   decimal.NewFromFloat(avgPrice * 0.8),
		MaxPrice:   decimal.NewFromFloat(avgPrice * 1.2),
		SearchedAt: searchedAt,
	}

	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test search record: %v", err)
	}

	return record
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"transactions",
		"search_history",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
