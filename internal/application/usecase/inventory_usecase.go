package usecase

import (
	"time"

	"github.com/jhoicas/cargohub-api/internal/application/dto"
	"github.com/jhoicas/cargohub-api/internal/application/engine"
	"github.com/jhoicas/cargohub-api/internal/domain"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
	"github.com/jhoicas/cargohub-api/internal/domain/repository"
)

// InventoryUseCase administra las filas del libro de inventario. Los campos
// derivados nunca se reciben del exterior: se recalculan en cada escritura.
type InventoryUseCase struct {
	repo repository.InventoryRepository
	eng  *engine.Engine
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository, eng *engine.Engine) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, eng: eng}
}

// Create registra una fila del libro, validando artículo y ubicaciones.
func (uc *InventoryUseCase) Create(in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	if in.ItemID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	inv := &entity.Inventory{
		ItemID:         in.ItemID,
		Description:    in.Description,
		ItemReference:  in.ItemReference,
		LocationIDs:    in.LocationIDs,
		TotalOnHand:    in.TotalOnHand,
		TotalOrdered:   in.TotalOrdered,
		TotalAllocated: in.TotalAllocated,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	inv.Recalculate()
	if err := uc.eng.CheckReferences(inv, nil); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(inv); err != nil {
		return nil, err
	}
	return inventoryToResponse(inv), nil
}

// GetByID devuelve la fila o nil si no existe.
func (uc *InventoryUseCase) GetByID(id int64) (*dto.InventoryResponse, error) {
	inv, err := uc.repo.GetByID(id)
	if err != nil || inv == nil {
		return nil, err
	}
	return inventoryToResponse(inv), nil
}

// List devuelve una página de filas del libro.
func (uc *InventoryUseCase) List(p dto.PageRequest) (*dto.InventoryListResponse, error) {
	list, err := uc.repo.List(p.Limit, p.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.InventoryListResponse{Items: []dto.InventoryResponse{}, Page: pageMeta(p)}
	for _, inv := range list {
		out.Items = append(out.Items, *inventoryToResponse(inv))
	}
	return out, nil
}

// Update reemplaza la fila recalculando los derivados; solo las referencias
// nuevas pasan por el guard.
func (uc *InventoryUseCase) Update(id int64, in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	prev, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if prev == nil {
		return nil, domain.ErrNotFound
	}
	next := *prev
	next.ItemID = in.ItemID
	next.Description = in.Description
	next.ItemReference = in.ItemReference
	next.LocationIDs = in.LocationIDs
	next.TotalOnHand = in.TotalOnHand
	next.TotalOrdered = in.TotalOrdered
	next.TotalAllocated = in.TotalAllocated
	next.UpdatedAt = time.Now()
	next.Recalculate()
	if err := uc.eng.CheckReferences(&next, prev); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(&next); err != nil {
		return nil, err
	}
	return inventoryToResponse(&next), nil
}

// Archive marca la fila como archivada.
func (uc *InventoryUseCase) Archive(id int64) error {
	return uc.setArchived(id, true)
}

// Unarchive revierte el archivado revalidando las referencias.
func (uc *InventoryUseCase) Unarchive(id int64) error {
	inv, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	if err := uc.eng.CheckReferences(inv, nil); err != nil {
		return err
	}
	inv.IsArchived = false
	inv.UpdatedAt = time.Now()
	return uc.repo.Update(inv)
}

func (uc *InventoryUseCase) setArchived(id int64, archived bool) error {
	inv, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	inv.IsArchived = archived
	inv.UpdatedAt = time.Now()
	return uc.repo.Update(inv)
}

func inventoryToResponse(inv *entity.Inventory) *dto.InventoryResponse {
	return &dto.InventoryResponse{
		ID:             inv.ID,
		ItemID:         inv.ItemID,
		Description:    inv.Description,
		ItemReference:  inv.ItemReference,
		LocationIDs:    inv.LocationIDs,
		TotalOnHand:    inv.TotalOnHand,
		TotalExpected:  inv.TotalExpected,
		TotalOrdered:   inv.TotalOrdered,
		TotalAllocated: inv.TotalAllocated,
		TotalAvailable: inv.TotalAvailable,
		IsArchived:     inv.IsArchived,
		CreatedAt:      inv.CreatedAt,
		UpdatedAt:      inv.UpdatedAt,
	}
}
