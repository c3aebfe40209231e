// Package auth autentica las aplicaciones cliente de la API: por clave
// (cabeceras X-Api-App / X-Api-Key) para el tráfico normal, y por JWT para la
// administración de aplicaciones.
package auth

import (
	"time"

	"github.com/jhoicas/cargohub-api/internal/application/dto"
	"github.com/jhoicas/cargohub-api/internal/domain"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
	"github.com/jhoicas/cargohub-api/internal/domain/repository"
	"github.com/jhoicas/cargohub-api/pkg/apikey"
	"github.com/jhoicas/cargohub-api/pkg/config"
	"github.com/jhoicas/cargohub-api/pkg/jwt"
)

// AuthUseCase resuelve y verifica credenciales contra el repositorio de
// aplicaciones.
type AuthUseCase struct {
	users repository.UserRepository
	jwt   config.JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(users repository.UserRepository, jwtCfg config.JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwt: jwtCfg}
}

// Authenticate resuelve la aplicación por nombre y verifica su clave. Las
// aplicaciones archivadas no autentican. El error es siempre ErrUnauthorized
// para no distinguir nombre inexistente de clave incorrecta.
func (uc *AuthUseCase) Authenticate(appName, key string) (*entity.User, error) {
	if appName == "" || key == "" {
		return nil, domain.ErrUnauthorized
	}
	u, err := uc.users.GetByAppName(appName)
	if err != nil {
		return nil, err
	}
	if u == nil || u.IsArchived || !apikey.Verify(u.KeyHash, key) {
		return nil, domain.ErrUnauthorized
	}
	return u, nil
}

// Login autentica una aplicación admin y emite un JWT para las rutas de
// administración. Las aplicaciones sin rol admin se rechazan.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.Authenticate(in.AppName, in.APIKey)
	if err != nil {
		return nil, err
	}
	if u.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwt.Secret, u.ID, u.AppName, u.Role, uc.jwt.Issuer, uc.jwt.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(time.Duration(uc.jwt.Expiration) * time.Minute),
	}, nil
}

// ParseToken valida un JWT emitido por Login y devuelve sus claims.
func (uc *AuthUseCase) ParseToken(token string) (*jwt.Claims, error) {
	claims, err := jwt.Parse(uc.jwt.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}
