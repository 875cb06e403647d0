package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Inventario-web/internal/application/dto"
	"github.com/jhoicas/Inventario-web/internal/application/inventory"
	"github.com/jhoicas/Inventario-web/internal/domain/entity"
)

// ProductHandler sirve el listado filtrado y las dos mutaciones permitidas:
// alta completa y edición de cantidad.
type ProductHandler struct {
	uc *inventory.UseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *inventory.UseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listado de productos filtrado
// @Tags         views
// @Security     Cookie
// @Produce      json
// @Param        search  query  string  false  "Texto a buscar en nombre o SKU"
// @Param        type    query  string  false  "Tipo exacto"
// @Param        stock   query  string  false  "in-stock | low-stock | out-of-stock"
// @Success      200     {object}  dto.ProductListView
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      502     {object}  dto.ErrorResponse
// @Router       /api/views/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	criteria := inventory.Criteria{
		SearchText: c.Query("search"),
		TypeFilter: c.Query("type"),
	}
	if stock := c.Query("stock"); stock != "" {
		status := entity.StockStatus(stock)
		if !status.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "stock debe ser in-stock, low-stock u out-of-stock", Field: "stock"})
		}
		criteria.StockFilter = status
	}
	view, err := h.uc.ProductsView(c.UserContext(), criteria)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(view)
}

// Refresh godoc
// @Summary      Re-consultar el snapshot al backend
// @Tags         views
// @Security     Cookie
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/views/products/refresh [post]
func (h *ProductHandler) Refresh(c *fiber.Ctx) error {
	if err := h.uc.Refresh(c.UserContext()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Cookie
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductView
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	view, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// UpdateQuantity godoc
// @Summary      Actualizar la cantidad de un producto
// @Description  Única mutación permitida sobre un producto existente.
// @Tags         products
// @Security     Cookie
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateQuantityRequest  true  "Nueva cantidad"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/quantity [put]
func (h *ProductHandler) UpdateQuantity(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateQuantity(c.UserContext(), id, in.Quantity); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
