package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Inventario-web/internal/application/auth"
	"github.com/jhoicas/Inventario-web/internal/application/inventory"
	"github.com/jhoicas/Inventario-web/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SessionUC   *auth.SessionUseCase
	InventoryUC *inventory.UseCase
	Session     config.SessionConfig
}

// Router registra las páginas y la API de vistas.
func Router(app *fiber.App, deps RouterDeps) {
	RegisterPages(app)

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.SessionUC, deps.Session)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Rutas protegidas (requieren cookie de sesión vigente)
	protected := api.Group("/", SessionMiddleware(deps.Session.CookieName))

	// Vistas (protegido)
	views := protected.Group("/views")
	dashboardHandler := NewDashboardHandler(deps.InventoryUC)
	productHandler := NewProductHandler(deps.InventoryUC)
	views.Get("/dashboard", dashboardHandler.Summary)
	views.Get("/products", productHandler.List)
	views.Post("/products/refresh", productHandler.Refresh)

	// Mutaciones de producto (protegido)
	products := protected.Group("/products")
	products.Post("/", productHandler.Create)
	products.Put("/:id/quantity", productHandler.UpdateQuantity)
}
