package usecase

import (
	"time"

	"github.com/jhoicas/cargohub-api/internal/application/dto"
	"github.com/jhoicas/cargohub-api/internal/domain"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
	"github.com/jhoicas/cargohub-api/internal/domain/repository"
)

// SupplierUseCase administra proveedores. Un proveedor archivado no puede
// recibir referencias nuevas desde artículos; eso lo valida el guard en el
// caso de uso de artículos.
type SupplierUseCase struct {
	repo  repository.SupplierRepository
	items repository.ItemRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, items repository.ItemRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, items: items}
}

// Create registra un proveedor.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	s := &entity.Supplier{
		Code:        in.Code,
		Name:        in.Name,
		Address:     in.Address,
		City:        in.City,
		Country:     in.Country,
		ContactName: in.ContactName,
		Phone:       in.Phone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return supplierToResponse(s), nil
}

// GetByID devuelve el proveedor o nil si no existe.
func (uc *SupplierUseCase) GetByID(id int64) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil || s == nil {
		return nil, err
	}
	return supplierToResponse(s), nil
}

// List devuelve una página de proveedores.
func (uc *SupplierUseCase) List(p dto.PageRequest) (*dto.SupplierListResponse, error) {
	list, err := uc.repo.List(p.Limit, p.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.SupplierListResponse{Items: []dto.SupplierResponse{}, Page: pageMeta(p)}
	for _, s := range list {
		out.Items = append(out.Items, *supplierToResponse(s))
	}
	return out, nil
}

// ListItems devuelve los artículos del proveedor.
func (uc *SupplierUseCase) ListItems(id int64) ([]dto.ItemResponse, error) {
	items, err := uc.items.ListBySupplier(id)
	if err != nil {
		return nil, err
	}
	out := []dto.ItemResponse{}
	for _, it := range items {
		out = append(out, *itemToResponse(it))
	}
	return out, nil
}

// Update reemplaza los campos del proveedor.
func (uc *SupplierUseCase) Update(id int64, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	s.Code = in.Code
	s.Name = in.Name
	s.Address = in.Address
	s.City = in.City
	s.Country = in.Country
	s.ContactName = in.ContactName
	s.Phone = in.Phone
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return supplierToResponse(s), nil
}

// Archive marca el proveedor como archivado.
func (uc *SupplierUseCase) Archive(id int64) error {
	return uc.setArchived(id, true)
}

// Unarchive revierte el archivado.
func (uc *SupplierUseCase) Unarchive(id int64) error {
	return uc.setArchived(id, false)
}

func (uc *SupplierUseCase) setArchived(id int64, archived bool) error {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	s.IsArchived = archived
	s.UpdatedAt = time.Now()
	return uc.repo.Update(s)
}

func supplierToResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:          s.ID,
		Code:        s.Code,
		Name:        s.Name,
		Address:     s.Address,
		City:        s.City,
		Country:     s.Country,
		ContactName: s.ContactName,
		Phone:       s.Phone,
		IsArchived:  s.IsArchived,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
