package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de envío: Pending → Transit → Delivered. Delivered es terminal.
const (
	ShipmentStatusPending   = "Pending"
	ShipmentStatusTransit   = "Transit"
	ShipmentStatusDelivered = "Delivered"
)

// Shipment representa un envío. Las cantidades de sus líneas son stock
// entrante/saliente esperado (total_ordered en el libro de inventario).
type Shipment struct {
	ID                 int64
	OrderID            int64
	ShipmentStatus     string
	ShipmentDate       time.Time
	CarrierCode        string
	ServiceCode        string
	TotalPackageCount  int64
	TotalPackageWeight decimal.Decimal
	Items              []ItemQuantity
	IsArchived         bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// References devuelve el pedido y los artículos referenciados.
func (s *Shipment) References() []Ref {
	var refs []Ref
	if s.OrderID > 0 {
		refs = append(refs, Ref{Kind: KindOrder, ID: s.OrderID})
	}
	return append(refs, itemRefs(s.Items)...)
}
