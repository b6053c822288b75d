package pgsql

import (
	"testing"

	"github.com/latadairy/dairy_backend/internal/core/domain"
	"github.com/latadairy/dairy_backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToModelSaleItems(t *testing.T) {
	items := []domain.SaleItem{
		{
			ProductID:   "p-1",
			ProductName: "Full Cream Milk",
			Unit:        "litre",
			Quantity:    decimal.NewFromFloat(1.5),
			Price:       decimal.NewFromInt(60),
			Total:       decimal.NewFromInt(90),
		},
		{
			ProductID:   "p-2",
			ProductName: "Paneer",
			Unit:        "kg",
			Quantity:    decimal.NewFromFloat(0.25),
			Price:       decimal.NewFromInt(400),
			Total:       decimal.NewFromInt(100),
		},
	}

	rows := toModelSaleItems("sale-1", models.DailyKind, items)
	require.Len(t, rows, 2)

	for i, row := range rows {
		assert.NotEmpty(t, row.ItemID)
		assert.Equal(t, "sale-1", row.SaleID)
		assert.Equal(t, models.DailyKind, row.SaleKind)
		assert.Equal(t, i, row.Position)
		assert.Equal(t, items[i].ProductID, row.ProductID)
		assert.Equal(t, items[i].ProductName, row.ProductName)
		assert.Equal(t, items[i].Unit, row.Unit)
		assert.True(t, row.Quantity.Equal(items[i].Quantity))
		assert.True(t, row.UnitPrice.Equal(items[i].Price))
		assert.True(t, row.LineTotal.Equal(items[i].Total))
	}
	assert.NotEqual(t, rows[0].ItemID, rows[1].ItemID)
}

func TestToModelSaleItems_Empty(t *testing.T) {
	assert.Empty(t, toModelSaleItems("sale-1", models.GuestKind, nil))
}

func TestToDomainSaleItem(t *testing.T) {
	row := models.SaleItem{
		ItemID:      "item-1",
		SaleID:      "sale-1",
		SaleKind:    models.GuestKind,
		Position:    3,
		ProductID:   "p-9",
		ProductName: "Curd",
		Unit:        "kg",
		Quantity:    decimal.NewFromInt(2),
		UnitPrice:   decimal.NewFromInt(80),
		LineTotal:   decimal.NewFromInt(160),
	}

	item := toDomainSaleItem(row)

	assert.Equal(t, "p-9", item.ProductID)
	assert.Equal(t, "Curd", item.ProductName)
	assert.Equal(t, "kg", item.Unit)
	assert.True(t, item.Quantity.Equal(row.Quantity))
	assert.True(t, item.Price.Equal(row.UnitPrice))
	assert.True(t, item.Total.Equal(row.LineTotal))
}
