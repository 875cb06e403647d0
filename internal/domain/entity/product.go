package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultLowStockThreshold umbral de stock bajo de referencia (configurable vía UI_LOW_STOCK_THRESHOLD).
const DefaultLowStockThreshold = 10

// StockStatus clasificación de un producto según su cantidad disponible.
// Las tres clases son mutuamente excluyentes y cubren todo entero no negativo.
type StockStatus string

const (
	StockStatusIn  StockStatus = "in-stock"     // quantity > umbral
	StockStatusLow StockStatus = "low-stock"    // 0 < quantity <= umbral
	StockStatusOut StockStatus = "out-of-stock" // quantity == 0
)

// Valid indica si s es una de las tres clases conocidas.
func (s StockStatus) Valid() bool {
	return s == StockStatusIn || s == StockStatusLow || s == StockStatusOut
}

// Product representa un producto del inventario tal como lo entrega el backend.
// Para esta capa es un snapshot de solo lectura: después de creado, el único
// campo mutable a través de la aplicación es Quantity; el backend es la
// autoridad sobre todos los demás.
type Product struct {
	ID          string
	Name        string
	Type        string // categoría; dimensión de filtrado por igualdad exacta
	SKU         string // código único de inventario
	ImageURL    string
	Description string
	Quantity    int             // invariante: >= 0
	Price       decimal.Decimal // precio unitario, >= 0
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StockStatus clasifica el producto en in/low/out según el umbral dado.
// Un umbral <= 0 cae al valor de referencia.
func (p *Product) StockStatus(lowThreshold int) StockStatus {
	if lowThreshold <= 0 {
		lowThreshold = DefaultLowStockThreshold
	}
	switch {
	case p.Quantity == 0:
		return StockStatusOut
	case p.Quantity <= lowThreshold:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

// Value devuelve price * quantity con precisión decimal completa.
func (p *Product) Value() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
