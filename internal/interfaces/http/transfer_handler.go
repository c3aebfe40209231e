package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/cargohub-api/internal/application/dto"
	"github.com/jhoicas/cargohub-api/internal/application/usecase"
)

// TransferHandler maneja las peticiones HTTP para traslados entre ubicaciones.
type TransferHandler struct {
	uc *usecase.TransferUseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(uc *usecase.TransferUseCase) *TransferHandler {
	return &TransferHandler{uc: uc}
}

// Create godoc
// @Summary      Crear traslado
// @Tags         transfers
// @Security     ApiKey
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransferRequest  true  "Datos del traslado"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/transfers [post]
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransferRequest
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
// @Summary      Obtener traslado por ID
// @Tags         transfers
// @Security     ApiKey
// @Produce      json
// @Param        id   path  int  true  "ID del traslado"
// @Success      200  {object}  dto.TransferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/transfers/{id} [get]
func (h *TransferHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "traslado no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar traslados
// @Tags         transfers
// @Security     ApiKey
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.TransferListResponse
// @Router       /api/v1/transfers [get]
func (h *TransferHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListItems godoc
// @Summary      Listar líneas de un traslado
// @Tags         transfers
// @Security     ApiKey
// @Produce      json
// @Param        id   path  int  true  "ID del traslado"
// @Success      200  {array}   dto.ItemQuantityDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/transfers/{id}/items [get]
func (h *TransferHandler) ListItems(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListItems(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar traslado
// @Description  Solo se permite mientras el traslado está en Scheduled. Las
// @Description  líneas son inmutables tras la creación.
// @Tags         transfers
// @Security     ApiKey
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del traslado"
// @Param        body  body  dto.CreateTransferRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.TransferResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Transición inválida"
// @Router       /api/v1/transfers/{id} [put]
func (h *TransferHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CreateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Commit godoc
// @Summary      Ejecutar traslado
// @Description  Mueve el stock disponible de la ubicación origen a la destino
// @Description  en una sola transacción y marca el traslado como Processed.
// @Tags         transfers
// @Security     ApiKey
// @Produce      json
// @Param        id   path  int  true  "ID del traslado"
// @Success      200  {object}  dto.TransferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "Transición inválida"
// @Router       /api/v1/transfers/{id}/commit [put]
func (h *TransferHandler) Commit(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Commit(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Archive godoc
// @Summary      Archivar traslado (borrado lógico)
// @Tags         transfers
// @Security     ApiKey
// @Param        id  path  int  true  "ID del traslado"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/transfers/{id} [delete]
func (h *TransferHandler) Archive(c *fiber.Ctx) error {
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
// @Summary      Desarchivar traslado (revalida sus referencias)
// @Tags         transfers
// @Security     ApiKey
// @Param        id  path  int  true  "ID del traslado"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse  "Referencia archivada"
// @Router       /api/v1/transfers/{id}/unarchive [post]
func (h *TransferHandler) Unarchive(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Unarchive(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
