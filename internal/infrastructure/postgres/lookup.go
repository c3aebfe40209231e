package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/cargohub-api/internal/domain"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
	"github.com/jhoicas/cargohub-api/internal/domain/repository"
)

var _ repository.ArchiveLookup = (*Lookup)(nil)

// Lookup resuelve el estado de archivado de cualquier registro por (kind, id)
// y cuenta dependientes activos de los catálogos de clasificación.
type Lookup struct {
	q Querier
}

// NewLookup construye el lookup. Pasar pool o tx (Querier).
func NewLookup(q Querier) *Lookup {
	return &Lookup{q: q}
}

// tableFor mapea cada kind a su tabla. Los tres catálogos comparten la tabla
// classifications, discriminados por la columna kind.
func tableFor(kind entity.Kind) (table string, byKind bool, err error) {
	switch kind {
	case entity.KindItemGroup, entity.KindItemLine, entity.KindItemType:
		return "classifications", true, nil
	case entity.KindItem, entity.KindSupplier, entity.KindClient, entity.KindWarehouse,
		entity.KindLocation, entity.KindInventory, entity.KindOrder,
		entity.KindShipment, entity.KindTransfer, entity.KindUser:
		return string(kind), false, nil
	default:
		return "", false, fmt.Errorf("lookup: kind desconocido %q", kind)
	}
}

// IsArchived devuelve el flag de archivado del registro referenciado, o
// domain.ErrNotFound si el registro no existe.
func (l *Lookup) IsArchived(ref entity.Ref) (bool, error) {
	table, byKind, err := tableFor(ref.Kind)
	if err != nil {
		return false, err
	}
	query := `SELECT is_archived FROM ` + table + ` WHERE id = $1`
	args := []any{ref.ID}
	if byKind {
		query += ` AND kind = $2`
		args = append(args, ref.Kind)
	}
	var archived bool
	if err := l.q.QueryRow(context.Background(), query, args...).Scan(&archived); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, fmt.Errorf("%s %d: %w", ref.Kind, ref.ID, domain.ErrNotFound)
		}
		return false, fmt.Errorf("lookup is_archived: %w", err)
	}
	return archived, nil
}

// ActiveDependents cuenta registros no archivados que referencian ref. Solo
// los catálogos de clasificación tienen dependientes declarados (artículos);
// el resto de kinds devuelve cero.
func (l *Lookup) ActiveDependents(ref entity.Ref) (int, error) {
	if !entity.IsClassificationKind(ref.Kind) {
		return 0, nil
	}
	return NewItemRepository(l.q).CountActiveByClassification(ref.Kind, ref.ID)
}
