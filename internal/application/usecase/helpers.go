// Package usecase implementa los casos de uso CRUD de la API sobre los
// puertos de persistencia y el motor de consistencia. Las mutaciones que
// tocan el libro de inventario o varias entidades a la vez corren dentro de
// una transacción (engine.TxRunner); las lecturas y el CRUD simple van
// directo a los repositorios del pool.
package usecase

import (
	"github.com/jhoicas/cargohub-api/internal/application/dto"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
)

func toItemQuantities(in []dto.ItemQuantityDTO) []entity.ItemQuantity {
	out := make([]entity.ItemQuantity, 0, len(in))
	for _, it := range in {
		out = append(out, entity.ItemQuantity{ItemID: it.ItemID, Amount: it.Amount})
	}
	return out
}

func toItemQuantityDTOs(in []entity.ItemQuantity) []dto.ItemQuantityDTO {
	out := make([]dto.ItemQuantityDTO, 0, len(in))
	for _, it := range in {
		out = append(out, dto.ItemQuantityDTO{ItemID: it.ItemID, Amount: it.Amount})
	}
	return out
}

func pageMeta(p dto.PageRequest) dto.PageResponse {
	return dto.PageResponse{Limit: p.Limit, Offset: p.Offset}
}
