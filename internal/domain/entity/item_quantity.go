package entity

// ItemQuantity es una línea {artículo, cantidad} dentro de un pedido, envío o
// transferencia. La lista es un valor propiedad de su entidad, no una
// referencia compartida.
type ItemQuantity struct {
	ItemID int64 `json:"item_id"`
	Amount int64 `json:"amount"`
}

// itemRefs convierte una lista de líneas en referencias hacia KindItem.
func itemRefs(items []ItemQuantity) []Ref {
	refs := make([]Ref, 0, len(items))
	for _, it := range items {
		if it.ItemID > 0 {
			refs = append(refs, Ref{Kind: KindItem, ID: it.ItemID})
		}
	}
	return refs
}
