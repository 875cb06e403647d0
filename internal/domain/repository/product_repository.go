package repository

import (
	"context"

	"github.com/jhoicas/Inventario-web/internal/domain/entity"
)

// CreateProductInput campos completos para crear un producto nuevo.
// Es la única operación que envía el juego completo de campos: una vez creado
// el producto, solo Quantity es mutable a través de UpdateQuantity.
type CreateProductInput struct {
	Name        string
	Type        string
	SKU         string
	ImageURL    string
	Description string
	Quantity    int
	Price       string // decimal serializado; el backend lo valida como autoridad
}

// ProductRepository puerto hacia el colaborador backend para productos (DIP).
// El backend es dueño del ciclo de vida de los registros; esta aplicación solo
// mantiene snapshots transitorios y refrescables.
type ProductRepository interface {
	// FetchProducts devuelve hasta limit productos en el orden del backend.
	FetchProducts(ctx context.Context, limit int) ([]*entity.Product, error)
	// Create registra un producto nuevo y devuelve la versión del backend.
	Create(ctx context.Context, in CreateProductInput) (*entity.Product, error)
	// UpdateQuantity es la única vía de mutación para un producto existente.
	UpdateQuantity(ctx context.Context, id string, quantity int) (*entity.Product, error)
}
