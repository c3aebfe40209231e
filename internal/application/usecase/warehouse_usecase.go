package usecase

import (
	"time"

	"github.com/jhoicas/cargohub-api/internal/application/dto"
	"github.com/jhoicas/cargohub-api/internal/domain"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
	"github.com/jhoicas/cargohub-api/internal/domain/repository"
)

// WarehouseUseCase administra bodegas.
type WarehouseUseCase struct {
	repo      repository.WarehouseRepository
	locations repository.LocationRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository, locations repository.LocationRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, locations: locations}
}

// Create registra una bodega.
func (uc *WarehouseUseCase) Create(in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	w := &entity.Warehouse{
		Code:         in.Code,
		Name:         in.Name,
		Address:      in.Address,
		City:         in.City,
		Country:      in.Country,
		ContactName:  in.ContactName,
		ContactPhone: in.ContactPhone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(w); err != nil {
		return nil, err
	}
	return warehouseToResponse(w), nil
}

// GetByID devuelve la bodega o nil si no existe.
func (uc *WarehouseUseCase) GetByID(id int64) (*dto.WarehouseResponse, error) {
	w, err := uc.repo.GetByID(id)
	if err != nil || w == nil {
		return nil, err
	}
	return warehouseToResponse(w), nil
}

// List devuelve una página de bodegas.
func (uc *WarehouseUseCase) List(p dto.PageRequest) (*dto.WarehouseListResponse, error) {
	list, err := uc.repo.List(p.Limit, p.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.WarehouseListResponse{Items: []dto.WarehouseResponse{}, Page: pageMeta(p)}
	for _, w := range list {
		out.Items = append(out.Items, *warehouseToResponse(w))
	}
	return out, nil
}

// ListLocations devuelve las ubicaciones de la bodega.
func (uc *WarehouseUseCase) ListLocations(id int64) ([]dto.LocationResponse, error) {
	locations, err := uc.locations.ListByWarehouse(id)
	if err != nil {
		return nil, err
	}
	out := []dto.LocationResponse{}
	for _, l := range locations {
		out = append(out, *locationToResponse(l))
	}
	return out, nil
}

// Update reemplaza los campos de la bodega.
func (uc *WarehouseUseCase) Update(id int64, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	w, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	w.Code = in.Code
	w.Name = in.Name
	w.Address = in.Address
	w.City = in.City
	w.Country = in.Country
	w.ContactName = in.ContactName
	w.ContactPhone = in.ContactPhone
	w.UpdatedAt = time.Now()
	if err := uc.repo.Update(w); err != nil {
		return nil, err
	}
	return warehouseToResponse(w), nil
}

// Archive marca la bodega como archivada.
func (uc *WarehouseUseCase) Archive(id int64) error {
	return uc.setArchived(id, true)
}

// Unarchive revierte el archivado.
func (uc *WarehouseUseCase) Unarchive(id int64) error {
	return uc.setArchived(id, false)
}

func (uc *WarehouseUseCase) setArchived(id int64, archived bool) error {
	w, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if w == nil {
		return domain.ErrNotFound
	}
	w.IsArchived = archived
	w.UpdatedAt = time.Now()
	return uc.repo.Update(w)
}

func warehouseToResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{
		ID:           w.ID,
		Code:         w.Code,
		Name:         w.Name,
		Address:      w.Address,
		City:         w.City,
		Country:      w.Country,
		ContactName:  w.ContactName,
		ContactPhone: w.ContactPhone,
		IsArchived:   w.IsArchived,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
}
