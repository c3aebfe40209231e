package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/cargohub-api/internal/application/auth"
	"github.com/jhoicas/cargohub-api/internal/application/dto"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
)

// Cabeceras y locals de la autenticación por clave de API.
const (
	HeaderAPIApp = "X-Api-App"
	HeaderAPIKey = "X-Api-Key"
	LocalUser    = "api_user"
)

// APIKeyMiddleware autentica la aplicación por nombre y clave (cabeceras
// X-Api-App y X-Api-Key) y deja el *entity.User en c.Locals.
func APIKeyMiddleware(authUC *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := authUC.Authenticate(c.Get(HeaderAPIApp), c.Get(HeaderAPIKey))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "credenciales de API inválidas",
			})
		}
		c.Locals(LocalUser, u)
		return c.Next()
	}
}

// RequireAccess autoriza el acceso al recurso según los permisos de la
// aplicación. Los métodos distintos de GET cuentan como escritura. Debe usarse
// DESPUÉS de APIKeyMiddleware.
func RequireAccess(kind entity.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := GetUser(c)
		if u == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "aplicación no autenticada",
			})
		}
		write := c.Method() != fiber.MethodGet
		if !u.CanAccess(kind, write) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "la aplicación no tiene permiso sobre " + string(kind),
			})
		}
		return c.Next()
	}
}

// GetUser devuelve la aplicación autenticada del contexto, o nil.
func GetUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalUser).(*entity.User)
	return u
}
