package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/jhoicas/Inventario-web/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Clasificación de stock: total y excluyente sobre todo entero no negativo.
// ──────────────────────────────────────────────────────────────────────────────

func TestStockStatus_TresClasesExcluyentes(t *testing.T) {
	cases := []struct {
		quantity int
		want     entity.StockStatus
	}{
		{0, entity.StockStatusOut},
		{1, entity.StockStatusLow},
		{5, entity.StockStatusLow},
		{10, entity.StockStatusLow}, // el umbral pertenece a stock bajo
		{11, entity.StockStatusIn},
		{1000, entity.StockStatusIn},
	}
	for _, tc := range cases {
		p := &entity.Product{Quantity: tc.quantity}
		assert.Equal(t, tc.want, p.StockStatus(entity.DefaultLowStockThreshold),
			"cantidad %d debe clasificar como %s", tc.quantity, tc.want)
	}
}

func TestStockStatus_UmbralConfigurable(t *testing.T) {
	p := &entity.Product{Quantity: 15}
	assert.Equal(t, entity.StockStatusIn, p.StockStatus(10))
	assert.Equal(t, entity.StockStatusLow, p.StockStatus(20),
		"con umbral 20, cantidad 15 es stock bajo")
	// Umbral inválido cae al de referencia (10).
	assert.Equal(t, entity.StockStatusIn, p.StockStatus(0))
}

func TestStockStatus_Valid(t *testing.T) {
	assert.True(t, entity.StockStatusLow.Valid())
	assert.False(t, entity.StockStatus("backorder").Valid())
	assert.False(t, entity.StockStatus("").Valid())
}

func TestValue_PrecisionDecimal(t *testing.T) {
	p := &entity.Product{
		Quantity: 3,
		Price:    decimal.RequireFromString("9.99"),
	}
	assert.True(t, p.Value().Equal(decimal.RequireFromString("29.97")),
		"3 x 9.99 debe ser exactamente 29.97, sin deriva de flotantes")
}
