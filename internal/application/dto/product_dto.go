package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Inventario-web/internal/domain/entity"
)

// CreateProductRequest entrada del formulario de alta de producto.
// Es la única operación que acepta el juego completo de campos: para un
// producto existente solo la cantidad es editable.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1"`
	Type        string          `json:"type" validate:"required,min=1"`
	SKU         string          `json:"sku" validate:"required,min=1"`
	ImageURL    string          `json:"imageUrl"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity" validate:"min=0"`
	Price       decimal.Decimal `json:"price"`
}

// UpdateQuantityRequest entrada del editor inline de cantidad.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// ProductView un producto listo para pintar: incluye la clase de stock y el
// valor (price * quantity) ya calculados.
type ProductView struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	SKU         string          `json:"sku"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	Description string          `json:"description,omitempty"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Value       decimal.Decimal `json:"value"`
	StockStatus string          `json:"stockStatus"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ProductListView respuesta del listado de productos ya filtrado.
type ProductListView struct {
	Items         []ProductView  `json:"items"`
	Types         []string       `json:"types"` // valores únicos de type en el snapshot completo
	TotalInStore  int            `json:"totalInStore"`
	Notifications []Notification `json:"notifications"`
}

// ToProductView proyecta una entidad a su vista con el umbral de stock dado.
func ToProductView(p *entity.Product, lowThreshold int) ProductView {
	return ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Type:        p.Type,
		SKU:         p.SKU,
		ImageURL:    p.ImageURL,
		Description: p.Description,
		Quantity:    p.Quantity,
		Price:       p.Price,
		Value:       p.Value().Round(2),
		StockStatus: string(p.StockStatus(lowThreshold)),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
