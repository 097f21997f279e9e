package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jose-aranguiz/inventario-pyme/internal/application/dto"
	"github.com/jose-aranguiz/inventario-pyme/internal/application/inventory"
	"github.com/jose-aranguiz/inventario-pyme/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	Ledger           *inventory.LedgerUseCase
	ServiceName      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Raíz: mensaje de estado (para probar que vive)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(dto.StatusResponse{Status: "ok", Service: deps.ServiceName})
	})

	productHandler := NewProductHandler(deps.ProductUC)
	movementHandler := NewMovementHandler(deps.RegisterMovement, deps.Ledger)

	// Productos. bajo-stock va antes de :id para que Fiber no lo capture como parámetro.
	productos := app.Group("/productos")
	productos.Post("/", productHandler.Create)
	productos.Get("/", productHandler.List)
	productos.Get("/bajo-stock", productHandler.ListLowStock)
	productos.Get("/:id", productHandler.GetByID)
	productos.Put("/:id", productHandler.Update)
	productos.Delete("/:id", productHandler.Delete)
	productos.Get("/:id/movimientos", movementHandler.ListByProduct)

	// Movimientos (ledger append-only)
	movimientos := app.Group("/movimientos")
	movimientos.Post("/", movementHandler.Register)
	movimientos.Get("/", movementHandler.List)
	movimientos.Get("/:id", movementHandler.GetByID)
}
