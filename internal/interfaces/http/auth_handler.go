package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/cargohub-api/internal/application/auth"
	"github.com/jhoicas/cargohub-api/internal/application/dto"
)

// AuthHandler maneja la emisión de tokens para la administración de la API.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Autenticar aplicación admin
// @Description  Valida el nombre de aplicación y la clave de API y devuelve
// @Description  un JWT para las rutas de administración.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
