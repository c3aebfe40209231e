package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pedido gobernados por la máquina de estados. Se toleran valores
// libres adicionales en OrderStatus, pero la máquina solo escribe estos.
const (
	OrderStatusScheduled = "Scheduled"
	OrderStatusPacked    = "Packed"
	OrderStatusShipped   = "Shipped"
	OrderStatusDelivered = "Delivered"
)

// NoShipment es el valor de ShipmentID para un pedido sin envío asignado.
const NoShipment int64 = -1

// Order representa un pedido de cliente. Las cantidades de sus líneas son
// stock prometido al cliente (total_allocated en el libro de inventario).
type Order struct {
	ID          int64
	WarehouseID int64
	ShipTo      int64 // client id destinatario
	BillTo      int64 // client id pagador
	ShipmentID  int64 // NoShipment si no está empaquetado
	OrderStatus string
	OrderDate   time.Time
	RequestDate time.Time
	Reference   string
	Notes       string
	TotalAmount decimal.Decimal
	Items       []ItemQuantity
	IsArchived  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// References devuelve bodega, clientes, envío y artículos referenciados.
func (o *Order) References() []Ref {
	var refs []Ref
	if o.WarehouseID > 0 {
		refs = append(refs, Ref{Kind: KindWarehouse, ID: o.WarehouseID})
	}
	if o.ShipTo > 0 {
		refs = append(refs, Ref{Kind: KindClient, ID: o.ShipTo})
	}
	if o.BillTo > 0 {
		refs = append(refs, Ref{Kind: KindClient, ID: o.BillTo})
	}
	if o.ShipmentID > 0 {
		refs = append(refs, Ref{Kind: KindShipment, ID: o.ShipmentID})
	}
	return append(refs, itemRefs(o.Items)...)
}
