package entity

import "time"

// Location representa una ubicación de almacenamiento dentro de una bodega
// (pasillo, estante, posición).
type Location struct {
	ID          int64
	WarehouseID int64
	Code        string
	Name        string
	IsArchived  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// References devuelve la referencia a la bodega contenedora.
func (l *Location) References() []Ref {
	if l.WarehouseID <= 0 {
		return nil
	}
	return []Ref{{Kind: KindWarehouse, ID: l.WarehouseID}}
}
