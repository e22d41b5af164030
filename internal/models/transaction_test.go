package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	validUserID := uuid.New()

	tests := []struct {
		name        string
		transaction Transaction
		wantErr     bool
		errMsg      string
	}{
		{
			name: "valid purchase",
			transaction: Transaction{
				UserID: validUserID,
				Type:   TransactionTypePurchase,
				Item:   "Nintendo Switch",
				Price:  decimal.NewFromFloat(150.00),
			},
			wantErr: false,
		},
		{
			name: "valid sale",
			transaction: Transaction{
				UserID:   validUserID,
				Type:     TransactionTypeSale,
				Item:     "Nintendo Switch",
				Price:    decimal.NewFromFloat(220.00),
				Platform: "eBay",
			},
			wantErr: false,
		},
		{
			name: "free item is allowed",
			transaction: Transaction{
				UserID: validUserID,
				Type:   TransactionTypePurchase,
				Item:   "Curb Find Dresser",
				Price:  decimal.Zero,
			},
			wantErr: false,
		},
		{
			name: "missing user ID",
			transaction: Transaction{
				Type:  TransactionTypePurchase,
				Item:  "Nintendo Switch",
				Price: decimal.NewFromFloat(150.00),
			},
			wantErr: true,
			errMsg:  "user ID is required",
		},
		{
			name: "invalid transaction type",
			transaction: Transaction{
				UserID: validUserID,
				Type:   "trade",
				Item:   "Nintendo Switch",
				Price:  decimal.NewFromFloat(150.00),
			},
			wantErr: true,
			errMsg:  "invalid transaction type",
		},
		{
			name: "missing item",
			transaction: Transaction{
				UserID: validUserID,
				Type:   TransactionTypeSale,
				Price:  decimal.NewFromFloat(150.00),
			},
			wantErr: true,
			errMsg:  "transaction item is required",
		},
		{
			name: "negative price",
			transaction: Transaction{
				UserID: validUserID,
				Type:   TransactionTypeSale,
				Item:   "Nintendo Switch",
				Price:  decimal.NewFromFloat(-10.00),
			},
			wantErr: true,
			errMsg:  "transaction price must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_BeforeCreate(t *testing.T) {
	txn := &Transaction{
		UserID: uuid.New(),
		Type:   TransactionTypePurchase,
		Item:   "GoPro Hero 10",
		Price:  decimal.NewFromFloat(180.00),
	}

	err := txn.BeforeCreate(nil)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, txn.ID)
	assert.False(t, txn.Date.IsZero(), "date should default to now")
	assert.False(t, txn.CreatedAt.IsZero())
	assert.False(t, txn.UpdatedAt.IsZero())
}

func TestTransaction_BeforeCreate_PreservesExplicitDate(t *testing.T) {
	explicit := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	txn := &Transaction{
		UserID: uuid.New(),
		Type:   TransactionTypeSale,
		Item:   "GoPro Hero 10",
		Price:  decimal.NewFromFloat(240.00),
		Date:   explicit,
	}

	err := txn.BeforeCreate(nil)
	require.NoError(t, err)
	assert.Equal(t, explicit, txn.Date)
}

func TestTransaction_BeforeCreate_RejectsInvalid(t *testing.T) {
	txn := &Transaction{
		UserID: uuid.New(),
		Type:   "trade",
		Item:   "GoPro Hero 10",
		Price:  decimal.NewFromFloat(180.00),
	}

	err := txn.BeforeCreate(nil)
	assert.ErrorIs(t, err, ErrInvalidTransactionType)
}

func TestTransaction_TypeHelpers(t *testing.T) {
	sale := Transaction{Type: TransactionTypeSale}
	purchase := Transaction{Type: TransactionTypePurchase}

	assert.True(t, sale.IsSale())
	assert.False(t, sale.IsPurchase())
	assert.True(t, purchase.IsPurchase())
	assert.False(t, purchase.IsSale())
}

func TestTransaction_DateKey(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			name:     "UTC date",
			date:     time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC),
			expected: "2024-03-15",
		},
		{
			name:     "late evening west of UTC rolls forward",
			date:     time.Date(2024, 3, 15, 23, 30, 0, 0, time.FixedZone("PST", -8*3600)),
			expected: "2024-03-16",
		},
		{
			name:     "early morning east of UTC rolls back",
			date:     time.Date(2024, 3, 15, 1, 30, 0, 0, time.FixedZone("JST", 9*3600)),
			expected: "2024-03-14",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := Transaction{Date: tt.date}
			assert.Equal(t, tt.expected, txn.DateKey())
		})
	}
}

func TestIsValidTransactionType(t *testing.T) {
	assert.True(t, IsValidTransactionType(TransactionTypePurchase))
	assert.True(t, IsValidTransactionType(TransactionTypeSale))
	assert.False(t, IsValidTransactionType("credit"))
	assert.False(t, IsValidTransactionType(""))
	assert.False(t, IsValidTransactionType("Sale"))
}

func TestIsKnownPlatform(t *testing.T) {
	assert.True(t, IsKnownPlatform("eBay"))
	assert.True(t, IsKnownPlatform("Facebook Marketplace"))
	assert.False(t, IsKnownPlatform("ebay"))
	assert.False(t, IsKnownPlatform("Etsy"))
}

func TestIsValidSortField(t *testing.T) {
	for _, field := range []string{SortFieldDate, SortFieldPrice, SortFieldItem, SortFieldType, SortFieldPlatform} {
		assert.True(t, IsValidSortField(field), field)
	}
	assert.False(t, IsValidSortField("created_at"))
	assert.False(t, IsValidSortField(""))
}
