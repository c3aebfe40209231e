package engine

import (
	"fmt"

	"github.com/jhoicas/cargohub-api/internal/domain"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
)

// CheckReferences valida que ninguna referencia recién introducida apunte a
// un registro archivado. previous == nil para registros nuevos (se validan
// todas las referencias); en actualizaciones solo se validan las referencias
// que cambiaron, de modo que una referencia existente hacia algo archivado
// después no se rechaza retroactivamente.
func (e *Engine) CheckReferences(current, previous entity.Referenced) error {
	for _, ref := range entity.NewRefs(current, previous) {
		archived, err := e.s.Lookup.IsArchived(ref)
		if err != nil {
			return fmt.Errorf("resolver referencia %s/%d: %w", ref.Kind, ref.ID, err)
		}
		if archived {
			return fmt.Errorf("%w: %s/%d", domain.ErrArchivedReference, ref.Kind, ref.ID)
		}
	}
	return nil
}

// CheckArchiveAllowed valida que archivar el registro no deje dependientes
// activos huérfanos. Solo los catálogos de clasificación tienen este guard;
// pedidos, envíos y transferencias son hojas del grafo de dependencias y
// siempre se pueden archivar.
func (e *Engine) CheckArchiveAllowed(ref entity.Ref) error {
	if !entity.IsClassificationKind(ref.Kind) {
		return nil
	}
	n, err := e.s.Lookup.ActiveDependents(ref)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: %s/%d tiene %d dependiente(s) activo(s)",
			domain.ErrDependentsStillActive, ref.Kind, ref.ID, n)
	}
	return nil
}
