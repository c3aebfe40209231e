package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// Pinger comprueba la conectividad con el almacenamiento. *pgxpool.Pool lo
// satisface directamente.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler expone el estado del servicio.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler construye el handler. db puede ser nil cuando el servicio
// corre sin base de datos (tests).
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	if h.db != nil {
		if err := h.db.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status":   "degraded",
				"database": "unreachable",
			})
		}
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
