package http

import (
	"github.com/gofiber/fiber/v2"

	appkardex "github.com/jhoicas/kardex-textil/internal/application/kardex"
)

// SummaryHandler expone la vista sintética (resumen por producto y talla).
type SummaryHandler struct {
	uc *appkardex.MovementUseCase
}

// NewSummaryHandler construye el handler.
func NewSummaryHandler(uc *appkardex.MovementUseCase) *SummaryHandler {
	return &SummaryHandler{uc: uc}
}

// Get godoc
// @Summary      Resumen por talla
// @Description  Filas por (producto, talla) con actividad, subtotales por producto y totales generales.
// @Tags         summary
// @Produce      json
// @Success      200  {object}  dto.SummaryResponse
// @Router       /api/summary [get]
func (h *SummaryHandler) Get(c *fiber.Ctx) error {
	return c.JSON(appkardex.ToSummaryResponse(h.uc.Summary()))
}
