package engine

import (
	"fmt"
	"sort"

	"github.com/jhoicas/cargohub-api/internal/domain"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
)

// delta es el ajuste neto de un artículo tras reconciliar dos listas.
type delta struct {
	itemID int64
	amount int64
}

// AdjustForItemListChange reconcilia el libro de inventario cuando se
// reemplaza la lista de artículos de un pedido o envío. El emisor determina
// el contador ajustado: los pedidos reservan stock para el cliente
// (total_allocated); los envíos comprometen stock entrante/saliente
// (total_ordered). Una lista idéntica produce cero deltas.
func (e *Engine) AdjustForItemListChange(kind entity.Kind, current, next []entity.ItemQuantity) error {
	if kind != entity.KindOrder && kind != entity.KindShipment {
		return fmt.Errorf("%w: kind %q no emite ajustes de inventario", domain.ErrInvalidInput, kind)
	}
	for _, d := range diffItemLists(current, next) {
		if err := e.applyDelta(kind, d); err != nil {
			return err
		}
	}
	return nil
}

// diffItemLists calcula los deltas por artículo entre la lista actual y la
// nueva: eliminados → delta negativo por su cantidad completa; nuevos →
// delta positivo por la suya; comunes → next - current (cero se omite).
// El resultado se ordena por artículo para que la aplicación sea determinista.
func diffItemLists(current, next []entity.ItemQuantity) []delta {
	cur := make(map[int64]int64, len(current))
	for _, it := range current {
		cur[it.ItemID] += it.Amount
	}
	nxt := make(map[int64]int64, len(next))
	for _, it := range next {
		nxt[it.ItemID] += it.Amount
	}

	var out []delta
	for id, amount := range cur {
		if n, ok := nxt[id]; ok {
			if n != amount {
				out = append(out, delta{itemID: id, amount: n - amount})
			}
		} else {
			out = append(out, delta{itemID: id, amount: -amount})
		}
	}
	for id, amount := range nxt {
		if _, ok := cur[id]; !ok {
			out = append(out, delta{itemID: id, amount: amount})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].itemID < out[j].itemID })
	return out
}

// applyDelta aplica el delta sobre exactamente una fila del artículo: la de
// mayor valor del contador ajustado; a igual contador gana el menor id, para
// que la elección sea determinista. Las filas archivadas no participan en la
// selección. Sin filas activas para el artículo el delta se descarta en
// silencio (no se crea fila, no es un error).
func (e *Engine) applyDelta(kind entity.Kind, d delta) error {
	all, err := e.s.Inventories.ListByItemForUpdate(d.itemID)
	if err != nil {
		return err
	}
	rows := make([]*entity.Inventory, 0, len(all))
	for _, row := range all {
		if !row.IsArchived {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return nil
	}

	target := rows[0]
	for _, row := range rows[1:] {
		rc, tc := counterFor(kind, row), counterFor(kind, target)
		if rc > tc || (rc == tc && row.ID < target.ID) {
			target = row
		}
	}

	switch kind {
	case entity.KindOrder:
		target.TotalAllocated += d.amount
	case entity.KindShipment:
		target.TotalOrdered += d.amount
	}
	target.Recalculate()
	return e.s.Inventories.Update(target)
}

// counterFor devuelve el contador que ajusta cada emisor.
func counterFor(kind entity.Kind, inv *entity.Inventory) int64 {
	if kind == entity.KindOrder {
		return inv.TotalAllocated
	}
	return inv.TotalOrdered
}
