package entity

import "time"

// Inventory es una fila del libro de inventario: los contadores de stock de un
// artículo en un conjunto de ubicaciones. Pueden existir varias filas por
// artículo (una por ubicación o grupo de ubicaciones); no se impone unicidad.
//
// Invariantes, siempre:
//
//	TotalExpected  = TotalOnHand + TotalOrdered
//	TotalAvailable = TotalOnHand - TotalAllocated
//
// Toda escritura de contadores debe llamar a Recalculate en la misma operación.
type Inventory struct {
	ID             int64
	ItemID         int64
	Description    string
	ItemReference  string
	LocationIDs    []int64
	TotalOnHand    int64
	TotalExpected  int64
	TotalOrdered   int64
	TotalAllocated int64
	TotalAvailable int64
	IsArchived     bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Recalculate restablece los dos campos derivados a partir de los contadores
// base. Ningún otro campo participa en el invariante.
func (inv *Inventory) Recalculate() {
	inv.TotalExpected = inv.TotalOnHand + inv.TotalOrdered
	inv.TotalAvailable = inv.TotalOnHand - inv.TotalAllocated
}

// HasLocation indica si la fila cubre la ubicación dada.
func (inv *Inventory) HasLocation(locationID int64) bool {
	for _, id := range inv.LocationIDs {
		if id == locationID {
			return true
		}
	}
	return false
}

// References devuelve el artículo y las ubicaciones que la fila referencia.
func (inv *Inventory) References() []Ref {
	var refs []Ref
	if inv.ItemID > 0 {
		refs = append(refs, Ref{Kind: KindItem, ID: inv.ItemID})
	}
	for _, loc := range inv.LocationIDs {
		if loc > 0 {
			refs = append(refs, Ref{Kind: KindLocation, ID: loc})
		}
	}
	return refs
}
