package engine

import (
	"fmt"

	"github.com/jhoicas/cargohub-api/internal/domain"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
)

// CommitTransfer procesa una transferencia programada: por cada línea, resta
// la cantidad de total_on_hand en toda fila que contenga la ubicación origen
// y la suma en toda fila que contenga la ubicación destino, recalculando los
// campos derivados de cada fila tocada. Al final marca la transferencia como
// Processed.
//
// Una fila que contiene ambos extremos se ajusta dos veces (una por sentido)
// y queda neta en cero: es el resultado esperado de un traslado dentro de la
// misma fila. Las filas archivadas quedan fuera del libro activo y no se
// tocan. Un commit sobre una transferencia archivada o ya procesada se
// rechaza sin tocar el libro.
func (e *Engine) CommitTransfer(tr *entity.Transfer) (*entity.Transfer, error) {
	if !tr.Committable() {
		return nil, fmt.Errorf("%w: transferencia %d en estado %q",
			domain.ErrInvalidTransition, tr.ID, tr.TransferStatus)
	}

	for _, line := range tr.Items {
		rows, err := e.s.Inventories.ListByItemForUpdate(line.ItemID)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			if row.IsArchived {
				continue
			}
			touched := false
			if row.HasLocation(tr.TransferFrom) {
				row.TotalOnHand -= line.Amount
				touched = true
			}
			if row.HasLocation(tr.TransferTo) {
				row.TotalOnHand += line.Amount
				touched = true
			}
			if !touched {
				continue
			}
			row.Recalculate()
			if err := e.s.Inventories.Update(row); err != nil {
				return nil, err
			}
		}
	}

	tr.TransferStatus = entity.TransferStatusProcessed
	if err := e.s.Transfers.Update(tr); err != nil {
		return nil, err
	}
	return tr, nil
}
