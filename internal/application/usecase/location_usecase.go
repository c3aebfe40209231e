package usecase

import (
	"time"

	"github.com/jhoicas/cargohub-api/internal/application/dto"
	"github.com/jhoicas/cargohub-api/internal/application/engine"
	"github.com/jhoicas/cargohub-api/internal/domain"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
	"github.com/jhoicas/cargohub-api/internal/domain/repository"
)

// LocationUseCase administra ubicaciones. La referencia a la bodega pasa por
// el guard: no se puede crear una ubicación en una bodega archivada.
type LocationUseCase struct {
	repo repository.LocationRepository
	eng  *engine.Engine
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository, eng *engine.Engine) *LocationUseCase {
	return &LocationUseCase{repo: repo, eng: eng}
}

// Create registra una ubicación, validando su referencia a la bodega.
func (uc *LocationUseCase) Create(in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if in.WarehouseID <= 0 || in.Code == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	l := &entity.Location{
		WarehouseID: in.WarehouseID,
		Code:        in.Code,
		Name:        in.Name,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.eng.CheckReferences(l, nil); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(l); err != nil {
		return nil, err
	}
	return locationToResponse(l), nil
}

// GetByID devuelve la ubicación o nil si no existe.
func (uc *LocationUseCase) GetByID(id int64) (*dto.LocationResponse, error) {
	l, err := uc.repo.GetByID(id)
	if err != nil || l == nil {
		return nil, err
	}
	return locationToResponse(l), nil
}

// List devuelve una página de ubicaciones.
func (uc *LocationUseCase) List(p dto.PageRequest) (*dto.LocationListResponse, error) {
	list, err := uc.repo.List(p.Limit, p.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.LocationListResponse{Items: []dto.LocationResponse{}, Page: pageMeta(p)}
	for _, l := range list {
		out.Items = append(out.Items, *locationToResponse(l))
	}
	return out, nil
}

// Update reemplaza los campos de la ubicación; solo las referencias que
// cambian se validan contra el guard.
func (uc *LocationUseCase) Update(id int64, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	prev, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if prev == nil {
		return nil, domain.ErrNotFound
	}
	next := *prev
	next.WarehouseID = in.WarehouseID
	next.Code = in.Code
	next.Name = in.Name
	next.UpdatedAt = time.Now()
	if err := uc.eng.CheckReferences(&next, prev); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(&next); err != nil {
		return nil, err
	}
	return locationToResponse(&next), nil
}

// Archive marca la ubicación como archivada.
func (uc *LocationUseCase) Archive(id int64) error {
	return uc.setArchived(id, true)
}

// Unarchive revierte el archivado, revalidando las referencias: al restaurar,
// todas vuelven a considerarse recién introducidas.
func (uc *LocationUseCase) Unarchive(id int64) error {
	l, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if l == nil {
		return domain.ErrNotFound
	}
	if err := uc.eng.CheckReferences(l, nil); err != nil {
		return err
	}
	l.IsArchived = false
	l.UpdatedAt = time.Now()
	return uc.repo.Update(l)
}

func (uc *LocationUseCase) setArchived(id int64, archived bool) error {
	l, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if l == nil {
		return domain.ErrNotFound
	}
	l.IsArchived = archived
	l.UpdatedAt = time.Now()
	return uc.repo.Update(l)
}

func locationToResponse(l *entity.Location) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:          l.ID,
		WarehouseID: l.WarehouseID,
		Code:        l.Code,
		Name:        l.Name,
		IsArchived:  l.IsArchived,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}
