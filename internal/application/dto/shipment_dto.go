package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateShipmentRequest entrada para crear/reemplazar un envío.
type CreateShipmentRequest struct {
	OrderID            int64             `json:"order_id"`
	ShipmentDate       time.Time         `json:"shipment_date"`
	CarrierCode        string            `json:"carrier_code"`
	ServiceCode        string            `json:"service_code"`
	TotalPackageCount  int64             `json:"total_package_count"`
	TotalPackageWeight decimal.Decimal   `json:"total_package_weight"`
	Items              []ItemQuantityDTO `json:"items"`
}

// AssignOrdersRequest entrada para reemplazar el conjunto de pedidos
// empaquetados en el envío.
type AssignOrdersRequest struct {
	OrderIDs []int64 `json:"order_ids"`
}

// ShipmentResponse salida de un envío.
type ShipmentResponse struct {
	ID                 int64             `json:"id"`
	OrderID            int64             `json:"order_id"`
	ShipmentStatus     string            `json:"shipment_status"`
	ShipmentDate       time.Time         `json:"shipment_date"`
	CarrierCode        string            `json:"carrier_code"`
	ServiceCode        string            `json:"service_code"`
	TotalPackageCount  int64             `json:"total_package_count"`
	TotalPackageWeight decimal.Decimal   `json:"total_package_weight"`
	Items              []ItemQuantityDTO `json:"items"`
	IsArchived         bool              `json:"is_archived"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// ShipmentListResponse lista paginada de envíos.
type ShipmentListResponse struct {
	Items []ShipmentResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
