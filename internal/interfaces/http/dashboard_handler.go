package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Inventario-web/internal/application/inventory"
)

// DashboardHandler sirve la vista agregada del inventario.
type DashboardHandler struct {
	uc *inventory.UseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *inventory.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Métricas del dashboard
// @Tags         views
// @Security     Cookie
// @Produce      json
// @Success      200  {object}  dto.DashboardView
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/views/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	view, err := h.uc.DashboardView(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(view)
}
