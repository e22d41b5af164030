package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchRecord_Validate(t *testing.T) {
	validUserID := uuid.New()

	tests := []struct {
		name    string
		record  SearchRecord
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid record",
			record: SearchRecord{
				UserID:      validUserID,
				Item:        "iPhone 13",
				AvgPrice:    decimal.NewFromFloat(420.50),
				MinPrice:    decimal.NewFromFloat(300.00),
				MaxPrice:    decimal.NewFromFloat(550.00),
				ResultCount: 42,
			},
			wantErr: false,
		},
		{
			name: "lookup with no results",
			record: SearchRecord{
				UserID: validUserID,
				Item:   "Obscure Collectible",
			},
			wantErr: false,
		},
		{
			name: "missing user ID",
			record: SearchRecord{
				Item: "iPhone 13",
			},
			wantErr: true,
			errMsg:  "user ID is required",
		},
		{
			name: "missing item",
			record: SearchRecord{
				UserID: validUserID,
			},
			wantErr: true,
			errMsg:  "search item is required",
		},
		{
			name: "negative price",
			record: SearchRecord{
				UserID:   validUserID,
				Item:     "iPhone 13",
				AvgPrice: decimal.NewFromFloat(-1),
			},
			wantErr: true,
			errMsg:  "search prices must not be negative",
		},
		{
			name: "negative result count",
			record: SearchRecord{
				UserID:      validUserID,
				Item:        "iPhone 13",
				ResultCount: -1,
			},
			wantErr: true,
			errMsg:  "result count must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSearchRecord_BeforeCreate(t *testing.T) {
	record := &SearchRecord{
		UserID: uuid.New(),
		Item:   "Herman Miller Chair",
	}

	err := record.BeforeCreate(nil)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, record.ID)
	assert.False(t, record.SearchedAt.IsZero(), "searched_at should default to now")
}
