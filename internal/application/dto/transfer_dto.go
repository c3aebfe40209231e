package dto

import "time"

// CreateTransferRequest entrada para crear una transferencia. La lista de
// artículos queda fija al crearla.
type CreateTransferRequest struct {
	Reference    string            `json:"reference"`
	TransferFrom int64             `json:"transfer_from"`
	TransferTo   int64             `json:"transfer_to"`
	Items        []ItemQuantityDTO `json:"items"`
}

// TransferResponse salida de una transferencia.
type TransferResponse struct {
	ID             int64             `json:"id"`
	Reference      string            `json:"reference"`
	TransferFrom   int64             `json:"transfer_from"`
	TransferTo     int64             `json:"transfer_to"`
	TransferStatus string            `json:"transfer_status"`
	Items          []ItemQuantityDTO `json:"items"`
	IsArchived     bool              `json:"is_archived"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// TransferListResponse lista paginada de transferencias.
type TransferListResponse struct {
	Items []TransferResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
