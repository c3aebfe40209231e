package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/cargohub-api/internal/application/dto"
	"github.com/jhoicas/cargohub-api/internal/application/engine"
	"github.com/jhoicas/cargohub-api/internal/domain"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
	"github.com/jhoicas/cargohub-api/internal/domain/repository"
)

// OrderUseCase administra pedidos. Las lecturas usan el repositorio atado al
// pool; toda mutación que toque el libro de inventario corre dentro de una
// transacción vía TxRunner.
type OrderUseCase struct {
	repo repository.OrderRepository
	eng  *engine.Engine
	tx   engine.TxRunner
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository, eng *engine.Engine, tx engine.TxRunner) *OrderUseCase {
	return &OrderUseCase{repo: repo, eng: eng, tx: tx}
}

// Create registra un pedido nuevo en estado Scheduled y sin envío asignado.
// La lista de artículos se guarda tal cual: el libro solo se ajusta cuando la
// lista se reemplaza sobre un pedido existente.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	now := time.Now()
	o := &entity.Order{
		WarehouseID: in.WarehouseID,
		ShipTo:      in.ShipTo,
		BillTo:      in.BillTo,
		ShipmentID:  entity.NoShipment,
		OrderStatus: entity.OrderStatusScheduled,
		OrderDate:   in.OrderDate,
		RequestDate: in.RequestDate,
		Reference:   in.Reference,
		Notes:       in.Notes,
		TotalAmount: in.TotalAmount,
		Items:       toItemQuantities(in.Items),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.eng.CheckReferences(o, nil); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(o); err != nil {
		return nil, err
	}
	return orderToResponse(o), nil
}

// GetByID devuelve el pedido o nil si no existe.
func (uc *OrderUseCase) GetByID(id int64) (*dto.OrderResponse, error) {
	o, err := uc.repo.GetByID(id)
	if err != nil || o == nil {
		return nil, err
	}
	return orderToResponse(o), nil
}

// List devuelve una página de pedidos.
func (uc *OrderUseCase) List(p dto.PageRequest) (*dto.OrderListResponse, error) {
	list, err := uc.repo.List(p.Limit, p.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.OrderListResponse{Items: []dto.OrderResponse{}, Page: pageMeta(p)}
	for _, o := range list {
		out.Items = append(out.Items, *orderToResponse(o))
	}
	return out, nil
}

// ListItems devuelve la lista de artículos del pedido.
func (uc *OrderUseCase) ListItems(id int64) ([]dto.ItemQuantityDTO, error) {
	o, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return toItemQuantityDTOs(o.Items), nil
}

// Update reemplaza el pedido completo dentro de una transacción: valida las
// referencias nuevas y reconcilia el libro contra la lista de artículos
// entrante antes de persistir.
func (uc *OrderUseCase) Update(ctx context.Context, id int64, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	var out *dto.OrderResponse
	err := uc.tx.Run(ctx, func(s engine.Stores) error {
		eng := engine.New(s)
		prev, err := s.Orders.GetByID(id)
		if err != nil {
			return err
		}
		if prev == nil {
			return domain.ErrNotFound
		}
		next := *prev
		next.WarehouseID = in.WarehouseID
		next.ShipTo = in.ShipTo
		next.BillTo = in.BillTo
		next.OrderDate = in.OrderDate
		next.RequestDate = in.RequestDate
		next.Reference = in.Reference
		next.Notes = in.Notes
		next.TotalAmount = in.TotalAmount
		next.Items = toItemQuantities(in.Items)
		next.UpdatedAt = time.Now()
		if err := eng.CheckReferences(&next, prev); err != nil {
			return err
		}
		if err := eng.AdjustForItemListChange(entity.KindOrder, prev.Items, next.Items); err != nil {
			return err
		}
		if err := s.Orders.Update(&next); err != nil {
			return err
		}
		out = orderToResponse(&next)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReplaceItems reemplaza solo la lista de artículos, reconciliando el libro
// con los deltas resultantes. Todo ocurre en una única transacción.
func (uc *OrderUseCase) ReplaceItems(ctx context.Context, id int64, in dto.ReplaceItemsRequest) (*dto.OrderResponse, error) {
	var out *dto.OrderResponse
	err := uc.tx.Run(ctx, func(s engine.Stores) error {
		eng := engine.New(s)
		prev, err := s.Orders.GetByID(id)
		if err != nil {
			return err
		}
		if prev == nil {
			return domain.ErrNotFound
		}
		next := *prev
		next.Items = toItemQuantities(in.Items)
		next.UpdatedAt = time.Now()
		if err := eng.CheckReferences(&next, prev); err != nil {
			return err
		}
		if err := eng.AdjustForItemListChange(entity.KindOrder, prev.Items, next.Items); err != nil {
			return err
		}
		if err := s.Orders.Update(&next); err != nil {
			return err
		}
		out = orderToResponse(&next)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Archive marca el pedido como archivado. Los pedidos son hojas del grafo de
// dependencias: archivarlos siempre está permitido.
func (uc *OrderUseCase) Archive(id int64) error {
	return uc.setArchived(id, true)
}

// Unarchive revierte el archivado revalidando las referencias del pedido.
func (uc *OrderUseCase) Unarchive(id int64) error {
	o, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if o == nil {
		return domain.ErrNotFound
	}
	if err := uc.eng.CheckReferences(o, nil); err != nil {
		return err
	}
	o.IsArchived = false
	o.UpdatedAt = time.Now()
	return uc.repo.Update(o)
}

func (uc *OrderUseCase) setArchived(id int64, archived bool) error {
	o, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if o == nil {
		return domain.ErrNotFound
	}
	o.IsArchived = archived
	o.UpdatedAt = time.Now()
	return uc.repo.Update(o)
}

func orderToResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:          o.ID,
		WarehouseID: o.WarehouseID,
		ShipTo:      o.ShipTo,
		BillTo:      o.BillTo,
		ShipmentID:  o.ShipmentID,
		OrderStatus: o.OrderStatus,
		OrderDate:   o.OrderDate,
		RequestDate: o.RequestDate,
		Reference:   o.Reference,
		Notes:       o.Notes,
		TotalAmount: o.TotalAmount,
		Items:       toItemQuantityDTOs(o.Items),
		IsArchived:  o.IsArchived,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
