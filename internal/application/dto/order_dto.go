package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest entrada para crear/reemplazar un pedido.
type CreateOrderRequest struct {
	WarehouseID int64             `json:"warehouse_id"`
	ShipTo      int64             `json:"ship_to"`
	BillTo      int64             `json:"bill_to"`
	OrderDate   time.Time         `json:"order_date"`
	RequestDate time.Time         `json:"request_date"`
	Reference   string            `json:"reference"`
	Notes       string            `json:"notes"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	Items       []ItemQuantityDTO `json:"items"`
}

// ReplaceItemsRequest entrada para reemplazar la lista de artículos de un
// pedido o envío (dispara la reconciliación del libro).
type ReplaceItemsRequest struct {
	Items []ItemQuantityDTO `json:"items"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID          int64             `json:"id"`
	WarehouseID int64             `json:"warehouse_id"`
	ShipTo      int64             `json:"ship_to"`
	BillTo      int64             `json:"bill_to"`
	ShipmentID  int64             `json:"shipment_id"`
	OrderStatus string            `json:"order_status"`
	OrderDate   time.Time         `json:"order_date"`
	RequestDate time.Time         `json:"request_date"`
	Reference   string            `json:"reference"`
	Notes       string            `json:"notes"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	Items       []ItemQuantityDTO `json:"items"`
	IsArchived  bool              `json:"is_archived"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// OrderListResponse lista paginada de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
