package http

import (
	"github.com/gofiber/fiber/v2"

	appkardex "github.com/jhoicas/kardex-textil/internal/application/kardex"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MovementUC *appkardex.MovementUseCase
	ExportUC   *appkardex.ExportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	movementHandler := NewMovementHandler(deps.MovementUC)
	api.Get("/catalog", movementHandler.Catalog)

	movements := api.Group("/movements")
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Create)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Put("/:id", movementHandler.Update)
	movements.Delete("/:id", movementHandler.Delete)

	summaryHandler := NewSummaryHandler(deps.MovementUC)
	api.Get("/summary", summaryHandler.Get)

	if deps.ExportUC != nil {
		exports := api.Group("/exports")
		exportHandler := NewExportHandler(deps.ExportUC)
		exports.Get("/summary.pdf", exportHandler.SummaryPDF)
		exports.Get("/movements.xlsx", exportHandler.MovementsSheet)
	}
}
