package repository

import "github.com/jhoicas/cargohub-api/internal/domain/entity"

// ArchiveLookup resuelve el estado de archivado de cualquier registro por
// (kind, id) y el número de dependientes activos de los registros maestros.
// Es el único puerto transversal que necesita el guard de archivado.
type ArchiveLookup interface {
	// IsArchived devuelve domain.ErrNotFound si el registro no existe.
	IsArchived(ref entity.Ref) (bool, error)
	// ActiveDependents cuenta registros no archivados que referencian ref.
	ActiveDependents(ref entity.Ref) (int, error)
}
