package domain_test

import (
	"testing"

	"github.com/latadairy/dairy_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestItemsTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []domain.SaleItem
		want  string
	}{
		{
			name:  "no items",
			items: nil,
			want:  "0",
		},
		{
			name: "single item",
			items: []domain.SaleItem{
				{Total: decimal.NewFromFloat(100)},
			},
			want: "100",
		},
		{
			name: "multiple items with fractional totals",
			items: []domain.SaleItem{
				{Total: decimal.NewFromFloat(52.5)},
				{Total: decimal.NewFromFloat(47.5)},
				{Total: decimal.NewFromFloat(0.25)},
			},
			want: "100.25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ItemsTotal(tt.items)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got.String(), tt.want)
		})
	}
}

func TestDailySale_Outstanding(t *testing.T) {
	sale := domain.DailySale{
		TotalAmount: decimal.NewFromInt(100),
		PaidAmount:  decimal.NewFromInt(60),
	}
	assert.True(t, sale.Outstanding().Equal(decimal.NewFromInt(40)))

	overpaid := domain.DailySale{
		TotalAmount: decimal.NewFromInt(100),
		PaidAmount:  decimal.NewFromInt(120),
	}
	assert.True(t, overpaid.Outstanding().Equal(decimal.NewFromInt(-20)))
}
