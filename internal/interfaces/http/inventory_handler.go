package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/cargohub-api/internal/application/dto"
	"github.com/jhoicas/cargohub-api/internal/application/usecase"
)

// InventoryHandler maneja las peticiones HTTP para las filas del libro de
// inventario.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear fila de inventario
// @Tags         inventories
// @Security     ApiKey
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryRequest  true  "Datos de la fila (los derivados se recalculan)"
// @Success      201   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Referencia archivada"
// @Router       /api/v1/inventories [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener fila de inventario por ID
// @Tags         inventories
// @Security     ApiKey
// @Produce      json
// @Param        id   path  int  true  "ID de la fila"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/inventories/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "fila de inventario no encontrada")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar filas de inventario
// @Tags         inventories
// @Security     ApiKey
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.InventoryListResponse
// @Router       /api/v1/inventories [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar fila de inventario (los derivados se recalculan)
// @Tags         inventories
// @Security     ApiKey
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la fila"
// @Param        body  body  dto.CreateInventoryRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.InventoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Referencia archivada"
// @Router       /api/v1/inventories/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Archive godoc
// @Summary      Archivar fila de inventario (borrado lógico)
// @Tags         inventories
// @Security     ApiKey
// @Param        id  path  int  true  "ID de la fila"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/inventories/{id} [delete]
func (h *InventoryHandler) Archive(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Archive(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Unarchive godoc
// @Summary      Desarchivar fila de inventario (revalida sus referencias)
// @Tags         inventories
// @Security     ApiKey
// @Param        id  path  int  true  "ID de la fila"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse  "Referencia archivada"
// @Router       /api/v1/inventories/{id}/unarchive [post]
func (h *InventoryHandler) Unarchive(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Unarchive(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
