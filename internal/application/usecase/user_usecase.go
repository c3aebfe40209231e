package usecase

import (
	"strings"
	"time"

	"github.com/jhoicas/cargohub-api/internal/application/dto"
	"github.com/jhoicas/cargohub-api/internal/domain"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
	"github.com/jhoicas/cargohub-api/internal/domain/repository"
	"github.com/jhoicas/cargohub-api/pkg/apikey"
)

// UserUseCase administra las aplicaciones cliente de la API. La clave se
// genera al crear, se guarda hasheada y se devuelve en claro una única vez.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create registra una aplicación nueva y devuelve su clave recién generada.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.CreateUserResponse, error) {
	appName := strings.TrimSpace(in.AppName)
	if appName == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, err := uc.repo.GetByAppName(appName); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}

	role := in.Role
	if role == "" {
		role = entity.RoleClient
	}
	if role != entity.RoleAdmin && role != entity.RoleClient {
		return nil, domain.ErrInvalidInput
	}
	for _, p := range in.Permissions {
		if p != entity.PermissionAll && !entity.IsValidKind(entity.Kind(p)) {
			return nil, domain.ErrInvalidInput
		}
	}

	key := apikey.Generate()
	hash, err := apikey.Hash(key)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u := &entity.User{
		AppName:     appName,
		KeyHash:     hash,
		Role:        role,
		Permissions: in.Permissions,
		ReadOnly:    in.ReadOnly,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(u); err != nil {
		return nil, err
	}
	return &dto.CreateUserResponse{UserResponse: *userToResponse(u), APIKey: key}, nil
}

// GetByID devuelve la aplicación o nil si no existe.
func (uc *UserUseCase) GetByID(id int64) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil || u == nil {
		return nil, err
	}
	return userToResponse(u), nil
}

// List devuelve una página de aplicaciones.
func (uc *UserUseCase) List(p dto.PageRequest) (*dto.UserListResponse, error) {
	list, err := uc.repo.List(p.Limit, p.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.UserListResponse{Items: []dto.UserResponse{}, Page: pageMeta(p)}
	for _, u := range list {
		out.Items = append(out.Items, *userToResponse(u))
	}
	return out, nil
}

// Update reemplaza rol, permisos y modo de la aplicación. La clave no cambia;
// para rotarla se crea una aplicación nueva y se archiva la anterior.
func (uc *UserUseCase) Update(id int64, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	if in.Role != "" {
		if in.Role != entity.RoleAdmin && in.Role != entity.RoleClient {
			return nil, domain.ErrInvalidInput
		}
		u.Role = in.Role
	}
	u.Permissions = in.Permissions
	u.ReadOnly = in.ReadOnly
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(u); err != nil {
		return nil, err
	}
	return userToResponse(u), nil
}

// Archive revoca la aplicación: una aplicación archivada no autentica.
func (uc *UserUseCase) Archive(id int64) error {
	return uc.setArchived(id, true)
}

// Unarchive reactiva la aplicación.
func (uc *UserUseCase) Unarchive(id int64) error {
	return uc.setArchived(id, false)
}

func (uc *UserUseCase) setArchived(id int64, archived bool) error {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrNotFound
	}
	u.IsArchived = archived
	u.UpdatedAt = time.Now()
	return uc.repo.Update(u)
}

func userToResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:          u.ID,
		AppName:     u.AppName,
		Role:        u.Role,
		Permissions: u.Permissions,
		ReadOnly:    u.ReadOnly,
		IsArchived:  u.IsArchived,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
