package entity

import "time"

// Supplier representa un proveedor de artículos.
type Supplier struct {
	ID          int64
	Code        string
	Name        string
	Address     string
	City        string
	Country     string
	ContactName string
	Phone       string
	IsArchived  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
