package usecase

import (
	"time"

	"github.com/jhoicas/cargohub-api/internal/application/dto"
	"github.com/jhoicas/cargohub-api/internal/application/engine"
	"github.com/jhoicas/cargohub-api/internal/domain"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
	"github.com/jhoicas/cargohub-api/internal/domain/repository"
)

// ItemUseCase administra el catálogo de artículos y expone las vistas del
// libro de inventario por artículo (filas y totales).
type ItemUseCase struct {
	repo        repository.ItemRepository
	inventories repository.InventoryRepository
	eng         *engine.Engine
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, inventories repository.InventoryRepository, eng *engine.Engine) *ItemUseCase {
	return &ItemUseCase{repo: repo, inventories: inventories, eng: eng}
}

// Create registra un artículo validando sus referencias (clasificación y
// proveedor no archivados).
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Code == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	it := &entity.Item{
		Code:         in.Code,
		Description:  in.Description,
		UnitPrice:    in.UnitPrice,
		UnitWeightKg: in.UnitWeightKg,
		ItemGroupID:  in.ItemGroupID,
		ItemLineID:   in.ItemLineID,
		ItemTypeID:   in.ItemTypeID,
		SupplierID:   in.SupplierID,
		SupplierCode: in.SupplierCode,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.eng.CheckReferences(it, nil); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(it); err != nil {
		return nil, err
	}
	return itemToResponse(it), nil
}

// GetByID devuelve el artículo o nil si no existe.
func (uc *ItemUseCase) GetByID(id int64) (*dto.ItemResponse, error) {
	it, err := uc.repo.GetByID(id)
	if err != nil || it == nil {
		return nil, err
	}
	return itemToResponse(it), nil
}

// List devuelve una página de artículos.
func (uc *ItemUseCase) List(p dto.PageRequest) (*dto.ItemListResponse, error) {
	list, err := uc.repo.List(p.Limit, p.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ItemListResponse{Items: []dto.ItemResponse{}, Page: pageMeta(p)}
	for _, it := range list {
		out.Items = append(out.Items, *itemToResponse(it))
	}
	return out, nil
}

// ListInventory devuelve las filas del libro de inventario del artículo.
func (uc *ItemUseCase) ListInventory(id int64) ([]dto.InventoryResponse, error) {
	rows, err := uc.inventories.ListByItem(id)
	if err != nil {
		return nil, err
	}
	out := []dto.InventoryResponse{}
	for _, inv := range rows {
		out = append(out, *inventoryToResponse(inv))
	}
	return out, nil
}

// InventoryTotals suma los contadores de todas las filas del artículo.
func (uc *ItemUseCase) InventoryTotals(id int64) (*dto.ItemTotalsResponse, error) {
	totals, err := uc.eng.TotalsForItem(id)
	if err != nil {
		return nil, err
	}
	return &dto.ItemTotalsResponse{
		ItemID:         id,
		TotalExpected:  totals.TotalExpected,
		TotalOrdered:   totals.TotalOrdered,
		TotalAllocated: totals.TotalAllocated,
		TotalAvailable: totals.TotalAvailable,
	}, nil
}

// Update reemplaza los campos del artículo; solo las referencias que cambian
// se validan contra el guard.
func (uc *ItemUseCase) Update(id int64, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	prev, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if prev == nil {
		return nil, domain.ErrNotFound
	}
	next := *prev
	next.Code = in.Code
	next.Description = in.Description
	next.UnitPrice = in.UnitPrice
	next.UnitWeightKg = in.UnitWeightKg
	next.ItemGroupID = in.ItemGroupID
	next.ItemLineID = in.ItemLineID
	next.ItemTypeID = in.ItemTypeID
	next.SupplierID = in.SupplierID
	next.SupplierCode = in.SupplierCode
	next.UpdatedAt = time.Now()
	if err := uc.eng.CheckReferences(&next, prev); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(&next); err != nil {
		return nil, err
	}
	return itemToResponse(&next), nil
}

// Archive marca el artículo como archivado.
func (uc *ItemUseCase) Archive(id int64) error {
	return uc.setArchived(id, true)
}

// Unarchive revierte el archivado revalidando las referencias del artículo.
func (uc *ItemUseCase) Unarchive(id int64) error {
	it, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if it == nil {
		return domain.ErrNotFound
	}
	if err := uc.eng.CheckReferences(it, nil); err != nil {
		return err
	}
	it.IsArchived = false
	it.UpdatedAt = time.Now()
	return uc.repo.Update(it)
}

func (uc *ItemUseCase) setArchived(id int64, archived bool) error {
	it, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if it == nil {
		return domain.ErrNotFound
	}
	it.IsArchived = archived
	it.UpdatedAt = time.Now()
	return uc.repo.Update(it)
}

func itemToResponse(it *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:           it.ID,
		Code:         it.Code,
		Description:  it.Description,
		UnitPrice:    it.UnitPrice,
		UnitWeightKg: it.UnitWeightKg,
		ItemGroupID:  it.ItemGroupID,
		ItemLineID:   it.ItemLineID,
		ItemTypeID:   it.ItemTypeID,
		SupplierID:   it.SupplierID,
		SupplierCode: it.SupplierCode,
		IsArchived:   it.IsArchived,
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
}
