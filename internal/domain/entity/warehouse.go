package entity

import "time"

// Warehouse representa una bodega física con ubicaciones de almacenamiento.
type Warehouse struct {
	ID           int64
	Code         string
	Name         string
	Address      string
	City         string
	Country      string
	ContactName  string
	ContactPhone string
	IsArchived   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
