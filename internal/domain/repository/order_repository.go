package repository

import "github.com/jhoicas/cargohub-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order.
type OrderRepository interface {
	Create(o *entity.Order) error
	GetByID(id int64) (*entity.Order, error)
	Update(o *entity.Order) error
	List(limit, offset int) ([]*entity.Order, error)
	ListByShipment(shipmentID int64) ([]*entity.Order, error)
	ListByClient(clientID int64) ([]*entity.Order, error)
}

// ShipmentRepository define el puerto de persistencia para Shipment.
type ShipmentRepository interface {
	Create(s *entity.Shipment) error
	GetByID(id int64) (*entity.Shipment, error)
	Update(s *entity.Shipment) error
	List(limit, offset int) ([]*entity.Shipment, error)
	// ListByOrder devuelve todos los envíos de un pedido (un pedido puede
	// repartirse en varios envíos).
	ListByOrder(orderID int64) ([]*entity.Shipment, error)
}

// TransferRepository define el puerto de persistencia para Transfer.
type TransferRepository interface {
	Create(t *entity.Transfer) error
	GetByID(id int64) (*entity.Transfer, error)
	Update(t *entity.Transfer) error
	List(limit, offset int) ([]*entity.Transfer, error)
}
