package repository

import "github.com/jhoicas/cargohub-api/internal/domain/entity"

// Puertos de persistencia para los datos maestros (DIP).

// SupplierRepository persiste proveedores.
type SupplierRepository interface {
	Create(s *entity.Supplier) error
	GetByID(id int64) (*entity.Supplier, error)
	Update(s *entity.Supplier) error
	List(limit, offset int) ([]*entity.Supplier, error)
}

// ClientRepository persiste clientes.
type ClientRepository interface {
	Create(c *entity.Client) error
	GetByID(id int64) (*entity.Client, error)
	Update(c *entity.Client) error
	List(limit, offset int) ([]*entity.Client, error)
}

// WarehouseRepository persiste bodegas.
type WarehouseRepository interface {
	Create(w *entity.Warehouse) error
	GetByID(id int64) (*entity.Warehouse, error)
	Update(w *entity.Warehouse) error
	List(limit, offset int) ([]*entity.Warehouse, error)
}

// LocationRepository persiste ubicaciones.
type LocationRepository interface {
	Create(l *entity.Location) error
	GetByID(id int64) (*entity.Location, error)
	Update(l *entity.Location) error
	List(limit, offset int) ([]*entity.Location, error)
	ListByWarehouse(warehouseID int64) ([]*entity.Location, error)
}
