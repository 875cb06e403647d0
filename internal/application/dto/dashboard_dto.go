package dto

import "github.com/shopspring/decimal"

// DashboardView respuesta de GET /api/views/dashboard.
// Las métricas se recalculan sobre el snapshot completo en cada petición; el
// promedio es cero decimal cuando el snapshot está vacío (nunca división por cero).
type DashboardView struct {
	TotalProducts int             `json:"totalProducts"`
	TotalValue    decimal.Decimal `json:"totalValue"` // suma de price * quantity, redondeada a 2
	AverageValue  decimal.Decimal `json:"averageValue"`
	InStock       int             `json:"inStock"`
	LowStock      int             `json:"lowStock"`
	OutOfStock    int             `json:"outOfStock"`

	// Los productos más recientes (cabeza del snapshot, que el backend ordena
	// del más nuevo al más viejo).
	RecentProducts []ProductView `json:"recentProducts"`

	Notifications []Notification `json:"notifications"`
}
