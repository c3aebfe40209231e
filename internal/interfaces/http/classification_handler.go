package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/cargohub-api/internal/application/dto"
	"github.com/jhoicas/cargohub-api/internal/application/usecase"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
)

// ClassificationHandler maneja las peticiones HTTP de un catálogo de
// clasificación. El mismo handler sirve /item_groups, /item_lines e
// /item_types, instanciado con su kind.
type ClassificationHandler struct {
	uc   *usecase.ClassificationUseCase
	kind entity.Kind
}

// NewClassificationHandler construye el handler para el kind dado.
func NewClassificationHandler(uc *usecase.ClassificationUseCase, kind entity.Kind) *ClassificationHandler {
	return &ClassificationHandler{uc: uc, kind: kind}
}

// Create godoc
// @Summary      Crear catálogo de clasificación
// @Tags         classifications
// @Security     ApiKey
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClassificationRequest  true  "Datos del catálogo"
// @Success      201   {object}  dto.ClassificationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/item_groups [post]
func (h *ClassificationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClassificationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(h.kind, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener catálogo por ID
// @Tags         classifications
// @Security     ApiKey
// @Produce      json
// @Param        id   path  int  true  "ID del catálogo"
// @Success      200  {object}  dto.ClassificationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/item_groups/{id} [get]
func (h *ClassificationHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(h.kind, id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "catálogo no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar catálogos
// @Tags         classifications
// @Security     ApiKey
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ClassificationListResponse
// @Router       /api/v1/item_groups [get]
func (h *ClassificationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(h.kind, parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar catálogo
// @Tags         classifications
// @Security     ApiKey
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del catálogo"
// @Param        body  body  dto.CreateClassificationRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ClassificationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/item_groups/{id} [put]
func (h *ClassificationHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CreateClassificationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(h.kind, id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Archive godoc
// @Summary      Archivar catálogo (borrado lógico)
// @Tags         classifications
// @Security     ApiKey
// @Param        id  path  int  true  "ID del catálogo"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse  "Tiene artículos activos"
// @Router       /api/v1/item_groups/{id} [delete]
func (h *ClassificationHandler) Archive(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Archive(h.kind, id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Unarchive godoc
// @Summary      Desarchivar catálogo
// @Tags         classifications
// @Security     ApiKey
// @Param        id  path  int  true  "ID del catálogo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/item_groups/{id}/unarchive [post]
func (h *ClassificationHandler) Unarchive(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Unarchive(h.kind, id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
