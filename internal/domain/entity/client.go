package entity

import "time"

// Client representa un cliente destinatario o pagador de pedidos.
type Client struct {
	ID           int64
	Name         string
	Address      string
	City         string
	Country      string
	ContactName  string
	ContactEmail string
	IsArchived   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
