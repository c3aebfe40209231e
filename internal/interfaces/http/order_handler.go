package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/cargohub-api/internal/application/dto"
	"github.com/jhoicas/cargohub-api/internal/application/usecase"
)

// OrderHandler maneja las peticiones HTTP para pedidos.
type OrderHandler struct {
	uc      *usecase.OrderUseCase
	packing *usecase.PackingSlipUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase, packing *usecase.PackingSlipUseCase) *OrderHandler {
	return &OrderHandler{uc: uc, packing: packing}
}

// Create godoc
// @Summary      Crear pedido
// @Tags         orders
// @Security     ApiKey
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Datos del pedido"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Referencia archivada"
// @Router       /api/v1/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
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
// @Summary      Obtener pedido por ID
// @Tags         orders
// @Security     ApiKey
// @Produce      json
// @Param        id   path  int  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "pedido no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar pedidos
// @Tags         orders
// @Security     ApiKey
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.OrderListResponse
// @Router       /api/v1/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListItems godoc
// @Summary      Listar líneas de un pedido
// @Tags         orders
// @Security     ApiKey
// @Produce      json
// @Param        id   path  int  true  "ID del pedido"
// @Success      200  {array}   dto.ItemQuantityDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/orders/{id}/items [get]
func (h *OrderHandler) ListItems(c *fiber.Ctx) error {
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
// @Summary      Actualizar pedido
// @Description  Reemplaza el pedido completo. Si la lista de líneas cambia,
// @Description  el libro de inventario se ajusta en la misma transacción.
// @Tags         orders
// @Security     ApiKey
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del pedido"
// @Param        body  body  dto.CreateOrderRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.OrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/orders/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CreateOrderRequest
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
// @Summary      Reemplazar las líneas de un pedido
// @Description  Sustituye la lista de líneas y ajusta el inventario asignado
// @Description  según la diferencia entre lista anterior y nueva.
// @Tags         orders
// @Security     ApiKey
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del pedido"
// @Param        body  body  dto.ReplaceItemsRequest  true  "Nueva lista de líneas"
// @Success      200   {object}  dto.OrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/orders/{id}/items [put]
func (h *OrderHandler) ReplaceItems(c *fiber.Ctx) error {
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

// PackingSlip godoc
// @Summary      Generar albarán de empaque en PDF
// @Tags         orders
// @Security     ApiKey
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del pedido"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/orders/{id}/packing-slip [get]
func (h *OrderHandler) PackingSlip(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	pdf, err := h.packing.Generate(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="albaran_pedido_%d.pdf"`, id))
	return c.Send(pdf)
}

// Archive godoc
// @Summary      Archivar pedido (borrado lógico)
// @Tags         orders
// @Security     ApiKey
// @Param        id  path  int  true  "ID del pedido"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/orders/{id} [delete]
func (h *OrderHandler) Archive(c *fiber.Ctx) error {
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
// @Summary      Desarchivar pedido (revalida sus referencias)
// @Tags         orders
// @Security     ApiKey
// @Param        id  path  int  true  "ID del pedido"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse  "Referencia archivada"
// @Router       /api/v1/orders/{id}/unarchive [post]
func (h *OrderHandler) Unarchive(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Unarchive(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
