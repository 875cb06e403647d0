package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Inventario-web/internal/domain"
	"github.com/jhoicas/Inventario-web/internal/domain/entity"
	"github.com/jhoicas/Inventario-web/internal/domain/repository"
)

// ProductGateway implementa repository.ProductRepository contra la API del backend.
type ProductGateway struct {
	client *Client
}

// NewProductGateway construye el gateway de productos.
func NewProductGateway(client *Client) *ProductGateway {
	return &ProductGateway{client: client}
}

var _ repository.ProductRepository = (*ProductGateway)(nil)

// productPayload forma de cable de un producto (camelCase, ids numéricos).
type productPayload struct {
	ID          json.Number     `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	SKU         string          `json:"sku"`
	ImageURL    string          `json:"imageUrl"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (p productPayload) toEntity() *entity.Product {
	return &entity.Product{
		ID:          p.ID.String(),
		Name:        p.Name,
		Type:        p.Type,
		SKU:         p.SKU,
		ImageURL:    p.ImageURL,
		Description: p.Description,
		Quantity:    p.Quantity,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// FetchProducts consulta hasta limit productos, preservando el orden del backend.
// Cualquier fallo (transporte o rechazo) se reporta como ErrFetchFailure.
func (g *ProductGateway) FetchProducts(ctx context.Context, limit int) ([]*entity.Product, error) {
	var data struct {
		Products []productPayload `json:"products"`
	}
	path := fmt.Sprintf("/api/products?page=1&limit=%d", limit)
	if err := g.client.do(ctx, "GET", path, nil, &data); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, err
		}
		return nil, errors.Join(domain.ErrFetchFailure, err)
	}
	products := make([]*entity.Product, 0, len(data.Products))
	for _, p := range data.Products {
		products = append(products, p.toEntity())
	}
	return products, nil
}

// createPayload cuerpo de cable para el alta de producto.
type createPayload struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	SKU         string      `json:"sku"`
	ImageURL    string      `json:"imageUrl,omitempty"`
	Description string      `json:"description,omitempty"`
	Quantity    int         `json:"quantity"`
	Price       json.Number `json:"price"`
}

// Create da de alta un producto con el juego completo de campos.
func (g *ProductGateway) Create(ctx context.Context, in repository.CreateProductInput) (*entity.Product, error) {
	var data productPayload
	body := createPayload{
		Name:        in.Name,
		Type:        in.Type,
		SKU:         in.SKU,
		ImageURL:    in.ImageURL,
		Description: in.Description,
		Quantity:    in.Quantity,
		Price:       json.Number(in.Price),
	}
	if err := g.client.do(ctx, "POST", "/api/products", body, &data); err != nil {
		return nil, err
	}
	return data.toEntity(), nil
}

// UpdateQuantity la única vía de mutación para un producto existente.
func (g *ProductGateway) UpdateQuantity(ctx context.Context, id string, quantity int) (*entity.Product, error) {
	var data productPayload
	body := map[string]int{"quantity": quantity}
	path := "/api/products/" + url.PathEscape(id) + "/quantity"
	if err := g.client.do(ctx, "PUT", path, body, &data); err != nil {
		return nil, err
	}
	return data.toEntity(), nil
}
