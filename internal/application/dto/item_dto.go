package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para crear/reemplazar un artículo.
type CreateItemRequest struct {
	Code         string          `json:"code"`
	Description  string          `json:"description"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	UnitWeightKg decimal.Decimal `json:"unit_weight_kg"`
	ItemGroupID  int64           `json:"item_group_id"`
	ItemLineID   int64           `json:"item_line_id"`
	ItemTypeID   int64           `json:"item_type_id"`
	SupplierID   int64           `json:"supplier_id"`
	SupplierCode string          `json:"supplier_code"`
}

// ItemResponse salida de un artículo.
type ItemResponse struct {
	ID           int64           `json:"id"`
	Code         string          `json:"code"`
	Description  string          `json:"description"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	UnitWeightKg decimal.Decimal `json:"unit_weight_kg"`
	ItemGroupID  int64           `json:"item_group_id"`
	ItemLineID   int64           `json:"item_line_id"`
	ItemTypeID   int64           `json:"item_type_id"`
	SupplierID   int64           `json:"supplier_id"`
	SupplierCode string          `json:"supplier_code"`
	IsArchived   bool            `json:"is_archived"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ItemListResponse lista paginada de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// ItemTotalsResponse contadores agregados del artículo sobre todas sus filas
// de inventario.
type ItemTotalsResponse struct {
	ItemID         int64 `json:"item_id"`
	TotalExpected  int64 `json:"total_expected"`
	TotalOrdered   int64 `json:"total_ordered"`
	TotalAllocated int64 `json:"total_allocated"`
	TotalAvailable int64 `json:"total_available"`
}
