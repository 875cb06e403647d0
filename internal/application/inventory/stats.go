// Package inventory contiene el motor de estado de vista del inventario:
// estadísticas agregadas, filtrado del listado y el ciclo de edición
// optimista de cantidades. Todo lo autoritativo (persistencia, aritmética de
// stock definitiva) vive en el backend colaborador.
package inventory

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Inventario-web/internal/domain/entity"
)

// AggregateStats resumen agregado de un snapshot de productos.
// Invariante: InStock + LowStock + OutOfStock == TotalCount.
type AggregateStats struct {
	TotalCount      int
	TotalValue      decimal.Decimal // suma exacta de price * quantity
	AverageValue    decimal.Decimal // TotalValue / TotalCount; cero con snapshot vacío
	InStockCount    int
	LowStockCount   int
	OutOfStockCount int
}

// ComputeStats deriva las estadísticas agregadas de un snapshot.
// Función pura y total: no muta la entrada y no tiene condiciones de error;
// un registro con cantidad o precio negativos es una violación de precondición
// que el backend debe impedir.
//
// La suma usa decimales de precisión arbitraria, así que no hay deriva de
// redondeo acumulada; el redondeo a dos cifras ocurre solo en la proyección.
func ComputeStats(snapshot []*entity.Product, lowThreshold int) AggregateStats {
	stats := AggregateStats{
		TotalCount:   len(snapshot),
		TotalValue:   decimal.Zero,
		AverageValue: decimal.Zero,
	}
	for _, p := range snapshot {
		stats.TotalValue = stats.TotalValue.Add(p.Value())
		switch p.StockStatus(lowThreshold) {
		case entity.StockStatusOut:
			stats.OutOfStockCount++
		case entity.StockStatusLow:
			stats.LowStockCount++
		default:
			stats.InStockCount++
		}
	}
	if stats.TotalCount > 0 {
		stats.AverageValue = stats.TotalValue.Div(decimal.NewFromInt(int64(stats.TotalCount)))
	}
	return stats
}
