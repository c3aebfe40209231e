package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo del catálogo. Referencia su clasificación
// (grupo, línea, tipo) y su proveedor; nunca se borra físicamente, solo se
// archiva.
type Item struct {
	ID           int64
	Code         string
	Description  string
	UnitPrice    decimal.Decimal
	UnitWeightKg decimal.Decimal
	ItemGroupID  int64
	ItemLineID   int64
	ItemTypeID   int64
	SupplierID   int64
	SupplierCode string
	IsArchived   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// References devuelve las referencias salientes del artículo (solo las
// presentes; los ids en cero se consideran "sin referencia").
func (i *Item) References() []Ref {
	var refs []Ref
	if i.ItemGroupID > 0 {
		refs = append(refs, Ref{Kind: KindItemGroup, ID: i.ItemGroupID})
	}
	if i.ItemLineID > 0 {
		refs = append(refs, Ref{Kind: KindItemLine, ID: i.ItemLineID})
	}
	if i.ItemTypeID > 0 {
		refs = append(refs, Ref{Kind: KindItemType, ID: i.ItemTypeID})
	}
	if i.SupplierID > 0 {
		refs = append(refs, Ref{Kind: KindSupplier, ID: i.SupplierID})
	}
	return refs
}
