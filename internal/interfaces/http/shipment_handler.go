package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/cargohub-api/internal/application/dto"
	"github.com/jhoicas/cargohub-api/internal/application/usecase"
)

// ShipmentHandler maneja las peticiones HTTP para envíos.
type ShipmentHandler struct {
	uc *usecase.ShipmentUseCase
}

// NewShipmentHandler construye el handler.
func NewShipmentHandler(uc *usecase.ShipmentUseCase) *ShipmentHandler {
	return &ShipmentHandler{uc: uc}
}

// Create godoc
// @Summary      Crear envío
// @Tags         shipments
// @Security     ApiKey
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateShipmentRequest  true  "Datos del envío"
// @Success      201   {object}  dto.ShipmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Referencia archivada"
// @Router       /api/v1/shipments [post]
func (h *ShipmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateShipmentRequest
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
// @Summary      Obtener envío por ID
// @Tags         shipments
// @Security     ApiKey
// @Produce      json
// @Param        id   path  int  true  "ID del envío"
// @Success      200  {object}  dto.ShipmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/shipments/{id} [get]
func (h *ShipmentHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "envío no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar envíos
// @Tags         shipments
// @Security     ApiKey
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ShipmentListResponse
// @Router       /api/v1/shipments [get]
func (h *ShipmentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListItems godoc
// @Summary      Listar líneas de un envío
// @Tags         shipments
// @Security     ApiKey
// @Produce      json
// @Param        id   path  int  true  "ID del envío"
// @Success      200  {array}   dto.ItemQuantityDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/shipments/{id}/items [get]
func (h *ShipmentHandler) ListItems(c *fiber.Ctx) error {
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

// ListOrders godoc
// @Summary      Listar pedidos asignados a un envío
// @Tags         shipments
// @Security     ApiKey
// @Produce      json
// @Param        id   path  int  true  "ID del envío"
// @Success      200  {array}   dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/shipments/{id}/orders [get]
func (h *ShipmentHandler) ListOrders(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListOrders(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar envío
// @Description  Reemplaza el envío completo. Si la lista de líneas cambia,
// @Description  el libro de inventario se ajusta en la misma transacción.
// @Tags         shipments
// @Security     ApiKey
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del envío"
// @Param        body  body  dto.CreateShipmentRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ShipmentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/shipments/{id} [put]
func (h *ShipmentHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CreateShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ReplaceItems godoc
// @Summary      Reemplazar las líneas de un envío
// @Description  Sustituye la lista de líneas y ajusta el inventario pedido
// @Description  según la diferencia entre lista anterior y nueva.
// @Tags         shipments
// @Security     ApiKey
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del envío"
// @Param        body  body  dto.ReplaceItemsRequest  true  "Nueva lista de líneas"
// @Success      200   {object}  dto.ShipmentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/shipments/{id}/items [put]
func (h *ShipmentHandler) ReplaceItems(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.ReplaceItemsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.ReplaceItems(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AssignOrders godoc
// @Summary      Asignar pedidos a un envío
// @Description  La lista enviada sustituye la asignación actual. Los pedidos
// @Description  que salen del envío vuelven a estado Scheduled y los pedidos
// @Description  archivados se ignoran.
// @Tags         shipments
// @Security     ApiKey
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del envío"
// @Param        body  body  dto.AssignOrdersRequest  true  "IDs de pedidos"
// @Success      200   {array}   dto.OrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/shipments/{id}/orders [put]
func (h *ShipmentHandler) AssignOrders(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.AssignOrdersRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AssignOrders(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Commit godoc
// @Summary      Avanzar el estado del envío
// @Description  Pending pasa a Transit y Transit a Delivered. El avance se
// @Description  propaga a los pedidos asignados cuando todos coinciden.
// @Tags         shipments
// @Security     ApiKey
// @Produce      json
// @Param        id   path  int  true  "ID del envío"
// @Success      200  {object}  dto.ShipmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "Transición inválida"
// @Router       /api/v1/shipments/{id}/commit [put]
func (h *ShipmentHandler) Commit(c *fiber.Ctx) error {
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
// @Summary      Archivar envío (borrado lógico)
// @Tags         shipments
// @Security     ApiKey
// @Param        id  path  int  true  "ID del envío"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/shipments/{id} [delete]
func (h *ShipmentHandler) Archive(c *fiber.Ctx) error {
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
// @Summary      Desarchivar envío (revalida sus referencias)
// @Tags         shipments
// @Security     ApiKey
// @Param        id  path  int  true  "ID del envío"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse  "Referencia archivada"
// @Router       /api/v1/shipments/{id}/unarchive [post]
func (h *ShipmentHandler) Unarchive(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Unarchive(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
