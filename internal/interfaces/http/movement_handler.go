package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kardex-textil/internal/application/dto"
	appkardex "github.com/jhoicas/kardex-textil/internal/application/kardex"
)

// MovementHandler maneja el registro y la vista analítica de movimientos.
type MovementHandler struct {
	uc *appkardex.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *appkardex.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Catalog godoc
// @Summary      Enumeraciones del formulario
// @Tags         movements
// @Produce      json
// @Success      200  {object}  dto.CatalogResponse
// @Router       /api/catalog [get]
func (h *MovementHandler) Catalog(c *fiber.Ctx) error {
	return c.JSON(appkardex.Catalog())
}

// List godoc
// @Summary      Historial de movimientos (más reciente primero)
// @Tags         movements
// @Produce      json
// @Param        q    query  string  false  "Búsqueda por producto, talla, tipo u observación"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	q := c.Query("q")
	items := h.uc.Search(q)
	out := dto.MovementListResponse{
		Total: len(items),
		Query: q,
		Items: make([]dto.MovementResponse, 0, len(items)),
	}
	for _, m := range items {
		out.Items = append(out.Items, appkardex.ToMovementResponse(m))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener movimiento por ID
// @Tags         movements
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	m, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(appkardex.ToMovementResponse(m))
}

// Create godoc
// @Summary      Registrar movimiento
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "productType, size, type, quantity, notes"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	f, err := appkardex.FieldsFromRequest(in)
	if err != nil {
		return writeError(c, err)
	}
	m, err := h.uc.Add(c.UserContext(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(appkardex.ToMovementResponse(m))
}

// Update godoc
// @Summary      Editar movimiento
// @Description  Reemplaza los campos editables. El id y la fecha de creación no cambian.
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID del movimiento"
// @Param        body  body  dto.MovementRequest  true  "Campos editables"
// @Success      200   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [put]
func (h *MovementHandler) Update(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	f, err := appkardex.FieldsFromRequest(in)
	if err != nil {
		return writeError(c, err)
	}
	m, err := h.uc.Update(c.UserContext(), c.Params("id"), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(appkardex.ToMovementResponse(m))
}

// Delete godoc
// @Summary      Eliminar movimiento
// @Description  Eliminación inmediata e irreversible; la confirmación queda del lado del cliente.
// @Tags         movements
// @Param        id   path  string  true  "ID del movimiento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
