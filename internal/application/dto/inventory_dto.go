package dto

import "time"

// CreateInventoryRequest entrada para crear/reemplazar una fila del libro de
// inventario. Los campos derivados no se reciben: se recalculan siempre.
type CreateInventoryRequest struct {
	ItemID         int64   `json:"item_id"`
	Description    string  `json:"description"`
	ItemReference  string  `json:"item_reference"`
	LocationIDs    []int64 `json:"locations"`
	TotalOnHand    int64   `json:"total_on_hand"`
	TotalOrdered   int64   `json:"total_ordered"`
	TotalAllocated int64   `json:"total_allocated"`
}

// InventoryResponse salida de una fila del libro.
type InventoryResponse struct {
	ID             int64     `json:"id"`
	ItemID         int64     `json:"item_id"`
	Description    string    `json:"description"`
	ItemReference  string    `json:"item_reference"`
	LocationIDs    []int64   `json:"locations"`
	TotalOnHand    int64     `json:"total_on_hand"`
	TotalExpected  int64     `json:"total_expected"`
	TotalOrdered   int64     `json:"total_ordered"`
	TotalAllocated int64     `json:"total_allocated"`
	TotalAvailable int64     `json:"total_available"`
	IsArchived     bool      `json:"is_archived"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// InventoryListResponse lista paginada de filas del libro.
type InventoryListResponse struct {
	Items []InventoryResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
