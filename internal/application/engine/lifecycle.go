package engine

import (
	"fmt"

	"github.com/jhoicas/cargohub-api/internal/domain"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
)

// AdvanceShipmentStatus avanza el envío un paso: Pending → Transit →
// Delivered. Delivered es terminal y un commit sobre él se rechaza dejando el
// estado previo intacto. Cada avance exitoso propaga al pedido asociado.
func (e *Engine) AdvanceShipmentStatus(sh *entity.Shipment) (*entity.Shipment, error) {
	if sh.IsArchived {
		return nil, fmt.Errorf("%w: envío %d archivado", domain.ErrInvalidTransition, sh.ID)
	}

	var next string
	switch sh.ShipmentStatus {
	case entity.ShipmentStatusPending:
		next = entity.ShipmentStatusTransit
	case entity.ShipmentStatusTransit:
		next = entity.ShipmentStatusDelivered
	default:
		return nil, fmt.Errorf("%w: envío %d en estado %q",
			domain.ErrInvalidTransition, sh.ID, sh.ShipmentStatus)
	}

	sh.ShipmentStatus = next
	if err := e.s.Shipments.Update(sh); err != nil {
		return nil, err
	}
	if sh.OrderID > 0 {
		if err := e.propagateToOrder(sh.OrderID, next); err != nil {
			return nil, err
		}
	}
	return sh, nil
}

// propagateToOrder aplica la regla todos-deben-coincidir: el pedido pasa a
// Shipped solo cuando todos sus envíos están en Transit, y a Delivered solo
// cuando todos están en Delivered. Si la regla no se cumple el pedido queda
// intacto; es un estado intermedio esperado, no un error.
func (e *Engine) propagateToOrder(orderID int64, shipmentStatus string) error {
	var orderStatus string
	switch shipmentStatus {
	case entity.ShipmentStatusTransit:
		orderStatus = entity.OrderStatusShipped
	case entity.ShipmentStatusDelivered:
		orderStatus = entity.OrderStatusDelivered
	default:
		return nil
	}

	shipments, err := e.s.Shipments.ListByOrder(orderID)
	if err != nil {
		return err
	}
	for _, s := range shipments {
		if s.ShipmentStatus != shipmentStatus {
			return nil
		}
	}

	order, err := e.s.Orders.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return nil
	}
	order.OrderStatus = orderStatus
	return e.s.Orders.Update(order)
}

// AssignOrders reemplaza el conjunto de pedidos empaquetados en un envío:
// todo pedido previamente empaquetado y ausente del nuevo conjunto se
// desempaqueta (→ Scheduled, shipment_id = -1); todo pedido del nuevo
// conjunto se empaqueta (→ Packed, shipment_id = este envío). Empaquetar
// introduce una referencia nueva al envío, así que un envío archivado se
// rechaza sin tocar ningún pedido. Los pedidos archivados se omiten en
// ambas mitades. Devuelve los pedidos empaquetados.
func (e *Engine) AssignOrders(shipmentID int64, orderIDs []int64) ([]*entity.Order, error) {
	sh, err := e.s.Shipments.GetByID(shipmentID)
	if err != nil {
		return nil, err
	}
	if sh == nil {
		return nil, fmt.Errorf("envío %d: %w", shipmentID, domain.ErrNotFound)
	}
	if sh.IsArchived {
		return nil, fmt.Errorf("%w: envío %d archivado", domain.ErrArchivedReference, shipmentID)
	}

	wanted := make(map[int64]struct{}, len(orderIDs))
	for _, id := range orderIDs {
		wanted[id] = struct{}{}
	}

	current, err := e.s.Orders.ListByShipment(shipmentID)
	if err != nil {
		return nil, err
	}
	for _, o := range current {
		if o.IsArchived {
			continue
		}
		if _, keep := wanted[o.ID]; keep {
			continue
		}
		o.ShipmentID = entity.NoShipment
		o.OrderStatus = entity.OrderStatusScheduled
		if err := e.s.Orders.Update(o); err != nil {
			return nil, err
		}
	}

	packed := make([]*entity.Order, 0, len(orderIDs))
	for _, id := range orderIDs {
		o, err := e.s.Orders.GetByID(id)
		if err != nil {
			return nil, err
		}
		if o == nil {
			return nil, fmt.Errorf("pedido %d: %w", id, domain.ErrNotFound)
		}
		if o.IsArchived {
			continue
		}
		o.ShipmentID = shipmentID
		o.OrderStatus = entity.OrderStatusPacked
		if err := e.s.Orders.Update(o); err != nil {
			return nil, err
		}
		packed = append(packed, o)
	}
	return packed, nil
}
