package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kardex-textil/internal/application/dto"
	appkardex "github.com/jhoicas/kardex-textil/internal/application/kardex"
)

// ExportHandler descargas de PDF y XLSX.
type ExportHandler struct {
	uc *appkardex.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *appkardex.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// SummaryPDF godoc
// @Summary      Resumen por talla en PDF
// @Tags         exports
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/exports/summary.pdf [get]
func (h *ExportHandler) SummaryPDF(c *fiber.Ctx) error {
	b, name, err := h.uc.SummaryPDF(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_ERROR", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(b)
}

// MovementsSheet godoc
// @Summary      Historial de movimientos en XLSX
// @Tags         exports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        q    query  string  false  "Mismo filtro que GET /api/movements"
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/exports/movements.xlsx [get]
func (h *ExportHandler) MovementsSheet(c *fiber.Ctx) error {
	b, name, err := h.uc.MovementsSheet(c.UserContext(), c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "XLSX_ERROR", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(b)
}
