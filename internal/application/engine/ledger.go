package engine

// Totals agrega los contadores de todas las filas de inventario de un
// artículo, para reporte a nivel de artículo.
type Totals struct {
	TotalExpected  int64 `json:"total_expected"`
	TotalOrdered   int64 `json:"total_ordered"`
	TotalAllocated int64 `json:"total_allocated"`
	TotalAvailable int64 `json:"total_available"`
}

// TotalsForItem suma los contadores de todas las filas del artículo,
// sin importar ubicación.
func (e *Engine) TotalsForItem(itemID int64) (Totals, error) {
	rows, err := e.s.Inventories.ListByItem(itemID)
	if err != nil {
		return Totals{}, err
	}
	var t Totals
	for _, row := range rows {
		t.TotalExpected += row.TotalExpected
		t.TotalOrdered += row.TotalOrdered
		t.TotalAllocated += row.TotalAllocated
		t.TotalAvailable += row.TotalAvailable
	}
	return t, nil
}
