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

// ShipmentUseCase administra envíos: CRUD, reemplazo de artículos con
// reconciliación del libro, reempaquetado de pedidos y avance del ciclo de
// vida con propagación al pedido.
type ShipmentUseCase struct {
	repo   repository.ShipmentRepository
	orders repository.OrderRepository
	eng    *engine.Engine
	tx     engine.TxRunner
}

// NewShipmentUseCase construye el caso de uso.
func NewShipmentUseCase(repo repository.ShipmentRepository, orders repository.OrderRepository, eng *engine.Engine, tx engine.TxRunner) *ShipmentUseCase {
	return &ShipmentUseCase{repo: repo, orders: orders, eng: eng, tx: tx}
}

// Create registra un envío nuevo en estado Pending.
func (uc *ShipmentUseCase) Create(in dto.CreateShipmentRequest) (*dto.ShipmentResponse, error) {
	now := time.Now()
	sh := &entity.Shipment{
		OrderID:            in.OrderID,
		ShipmentStatus:     entity.ShipmentStatusPending,
		ShipmentDate:       in.ShipmentDate,
		CarrierCode:        in.CarrierCode,
		ServiceCode:        in.ServiceCode,
		TotalPackageCount:  in.TotalPackageCount,
		TotalPackageWeight: in.TotalPackageWeight,
		Items:              toItemQuantities(in.Items),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.eng.CheckReferences(sh, nil); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(sh); err != nil {
		return nil, err
	}
	return shipmentToResponse(sh), nil
}

// GetByID devuelve el envío o nil si no existe.
func (uc *ShipmentUseCase) GetByID(id int64) (*dto.ShipmentResponse, error) {
	sh, err := uc.repo.GetByID(id)
	if err != nil || sh == nil {
		return nil, err
	}
	return shipmentToResponse(sh), nil
}

// List devuelve una página de envíos.
func (uc *ShipmentUseCase) List(p dto.PageRequest) (*dto.ShipmentListResponse, error) {
	list, err := uc.repo.List(p.Limit, p.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ShipmentListResponse{Items: []dto.ShipmentResponse{}, Page: pageMeta(p)}
	for _, sh := range list {
		out.Items = append(out.Items, *shipmentToResponse(sh))
	}
	return out, nil
}

// ListItems devuelve la lista de artículos del envío.
func (uc *ShipmentUseCase) ListItems(id int64) ([]dto.ItemQuantityDTO, error) {
	sh, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sh == nil {
		return nil, domain.ErrNotFound
	}
	return toItemQuantityDTOs(sh.Items), nil
}

// ListOrders devuelve los pedidos empaquetados en el envío.
func (uc *ShipmentUseCase) ListOrders(id int64) ([]dto.OrderResponse, error) {
	sh, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sh == nil {
		return nil, domain.ErrNotFound
	}
	orders, err := uc.orders.ListByShipment(id)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, *orderToResponse(o))
	}
	return out, nil
}

// Update reemplaza el envío completo dentro de una transacción, reconciliando
// el libro contra la lista de artículos entrante.
func (uc *ShipmentUseCase) Update(ctx context.Context, id int64, in dto.CreateShipmentRequest) (*dto.ShipmentResponse, error) {
	var out *dto.ShipmentResponse
	err := uc.tx.Run(ctx, func(s engine.Stores) error {
		eng := engine.New(s)
		prev, err := s.Shipments.GetByID(id)
		if err != nil {
			return err
		}
		if prev == nil {
			return domain.ErrNotFound
		}
		next := *prev
		next.OrderID = in.OrderID
		next.ShipmentDate = in.ShipmentDate
		next.CarrierCode = in.CarrierCode
		next.ServiceCode = in.ServiceCode
		next.TotalPackageCount = in.TotalPackageCount
		next.TotalPackageWeight = in.TotalPackageWeight
		next.Items = toItemQuantities(in.Items)
		next.UpdatedAt = time.Now()
		if err := eng.CheckReferences(&next, prev); err != nil {
			return err
		}
		if err := eng.AdjustForItemListChange(entity.KindShipment, prev.Items, next.Items); err != nil {
			return err
		}
		if err := s.Shipments.Update(&next); err != nil {
			return err
		}
		out = shipmentToResponse(&next)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReplaceItems reemplaza solo la lista de artículos del envío, ajustando
// total_ordered en el libro con los deltas resultantes.
func (uc *ShipmentUseCase) ReplaceItems(ctx context.Context, id int64, in dto.ReplaceItemsRequest) (*dto.ShipmentResponse, error) {
	var out *dto.ShipmentResponse
	err := uc.tx.Run(ctx, func(s engine.Stores) error {
		eng := engine.New(s)
		prev, err := s.Shipments.GetByID(id)
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
		if err := eng.AdjustForItemListChange(entity.KindShipment, prev.Items, next.Items); err != nil {
			return err
		}
		if err := s.Shipments.Update(&next); err != nil {
			return err
		}
		out = shipmentToResponse(&next)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AssignOrders reemplaza el conjunto de pedidos empaquetados en el envío.
// Un envío archivado no admite pedidos nuevos. Devuelve los pedidos que
// quedaron empaquetados.
func (uc *ShipmentUseCase) AssignOrders(ctx context.Context, id int64, in dto.AssignOrdersRequest) ([]dto.OrderResponse, error) {
	var out []dto.OrderResponse
	err := uc.tx.Run(ctx, func(s engine.Stores) error {
		eng := engine.New(s)
		packed, err := eng.AssignOrders(id, in.OrderIDs)
		if err != nil {
			return err
		}
		out = make([]dto.OrderResponse, 0, len(packed))
		for _, o := range packed {
			out = append(out, *orderToResponse(o))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Commit avanza el envío un paso en su ciclo de vida (Pending → Transit →
// Delivered) y propaga el avance al pedido cuando todos sus envíos coinciden.
func (uc *ShipmentUseCase) Commit(ctx context.Context, id int64) (*dto.ShipmentResponse, error) {
	var out *dto.ShipmentResponse
	err := uc.tx.Run(ctx, func(s engine.Stores) error {
		eng := engine.New(s)
		sh, err := s.Shipments.GetByID(id)
		if err != nil {
			return err
		}
		if sh == nil {
			return domain.ErrNotFound
		}
		advanced, err := eng.AdvanceShipmentStatus(sh)
		if err != nil {
			return err
		}
		out = shipmentToResponse(advanced)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Archive marca el envío como archivado. Los envíos son hojas del grafo de
// dependencias: archivarlos siempre está permitido.
func (uc *ShipmentUseCase) Archive(id int64) error {
	return uc.setArchived(id, true)
}

// Unarchive revierte el archivado revalidando las referencias del envío.
func (uc *ShipmentUseCase) Unarchive(id int64) error {
	sh, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if sh == nil {
		return domain.ErrNotFound
	}
	if err := uc.eng.CheckReferences(sh, nil); err != nil {
		return err
	}
	sh.IsArchived = false
	sh.UpdatedAt = time.Now()
	return uc.repo.Update(sh)
}

func (uc *ShipmentUseCase) setArchived(id int64, archived bool) error {
	sh, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if sh == nil {
		return domain.ErrNotFound
	}
	sh.IsArchived = archived
	sh.UpdatedAt = time.Now()
	return uc.repo.Update(sh)
}

func shipmentToResponse(sh *entity.Shipment) *dto.ShipmentResponse {
	return &dto.ShipmentResponse{
		ID:                 sh.ID,
		OrderID:            sh.OrderID,
		ShipmentStatus:     sh.ShipmentStatus,
		ShipmentDate:       sh.ShipmentDate,
		CarrierCode:        sh.CarrierCode,
		ServiceCode:        sh.ServiceCode,
		TotalPackageCount:  sh.TotalPackageCount,
		TotalPackageWeight: sh.TotalPackageWeight,
		Items:              toItemQuantityDTOs(sh.Items),
		IsArchived:         sh.IsArchived,
		CreatedAt:          sh.CreatedAt,
		UpdatedAt:          sh.UpdatedAt,
	}
}
