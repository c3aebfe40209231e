package dto

import "time"

// CreateClassificationRequest entrada para crear un grupo/línea/tipo de artículo.
type CreateClassificationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ClassificationResponse salida de un grupo/línea/tipo.
type ClassificationResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsArchived  bool      `json:"is_archived"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ClassificationListResponse lista paginada.
type ClassificationListResponse struct {
	Items []ClassificationResponse `json:"items"`
	Page  PageResponse             `json:"page"`
}

// CreateSupplierRequest entrada para crear/reemplazar un proveedor.
type CreateSupplierRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID          int64     `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	ContactName string    `json:"contact_name"`
	Phone       string    `json:"phone"`
	IsArchived  bool      `json:"is_archived"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SupplierListResponse lista paginada de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CreateClientRequest entrada para crear/reemplazar un cliente.
type CreateClientRequest struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Country      string `json:"country"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	Country      string    `json:"country"`
	ContactName  string    `json:"contact_name"`
	ContactEmail string    `json:"contact_email"`
	IsArchived   bool      `json:"is_archived"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ClientListResponse lista paginada de clientes.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// CreateWarehouseRequest entrada para crear/reemplazar una bodega.
type CreateWarehouseRequest struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Country      string `json:"country"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID           int64     `json:"id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	Country      string    `json:"country"`
	ContactName  string    `json:"contact_name"`
	ContactPhone string    `json:"contact_phone"`
	IsArchived   bool      `json:"is_archived"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// WarehouseListResponse lista paginada de bodegas.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// CreateLocationRequest entrada para crear/reemplazar una ubicación.
type CreateLocationRequest struct {
	WarehouseID int64  `json:"warehouse_id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	ID          int64     `json:"id"`
	WarehouseID int64     `json:"warehouse_id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	IsArchived  bool      `json:"is_archived"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LocationListResponse lista paginada de ubicaciones.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
