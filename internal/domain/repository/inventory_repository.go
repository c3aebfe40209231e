package repository

import "github.com/jhoicas/cargohub-api/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para las filas del
// libro de inventario. El almacén debe serializar actualizaciones
// concurrentes sobre la misma fila (bloqueo de fila o reintento optimista)
// para que los invariantes derivados nunca se observen rotos.
type InventoryRepository interface {
	Create(inv *entity.Inventory) error
	GetByID(id int64) (*entity.Inventory, error)
	Update(inv *entity.Inventory) error
	List(limit, offset int) ([]*entity.Inventory, error)
	// ListByItem devuelve todas las filas de un artículo, sin importar ubicación.
	ListByItem(itemID int64) ([]*entity.Inventory, error)
	// ListByItemForUpdate igual que ListByItem pero bloqueando las filas
	// dentro de la transacción en curso (SELECT FOR UPDATE).
	ListByItemForUpdate(itemID int64) ([]*entity.Inventory, error)
}
