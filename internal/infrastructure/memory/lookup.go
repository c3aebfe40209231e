package memory

import (
	"github.com/jhoicas/cargohub-api/internal/domain"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
	"github.com/jhoicas/cargohub-api/internal/domain/repository"
)

var _ repository.ArchiveLookup = (*Lookup)(nil)

// Lookup implementa ArchiveLookup sobre el almacén en memoria.
type Lookup struct{ st *Store }

// IsArchived resuelve el flag de archivado de cualquier registro.
func (l *Lookup) IsArchived(ref entity.Ref) (bool, error) {
	l.st.mu.RLock()
	defer l.st.mu.RUnlock()

	if entity.IsClassificationKind(ref.Kind) {
		if v, ok := l.st.classifications[ref.Kind][ref.ID]; ok {
			return v.IsArchived, nil
		}
		return false, domain.ErrNotFound
	}

	switch ref.Kind {
	case entity.KindItem:
		if v, ok := l.st.items[ref.ID]; ok {
			return v.IsArchived, nil
		}
	case entity.KindSupplier:
		if v, ok := l.st.suppliers[ref.ID]; ok {
			return v.IsArchived, nil
		}
	case entity.KindClient:
		if v, ok := l.st.clients[ref.ID]; ok {
			return v.IsArchived, nil
		}
	case entity.KindWarehouse:
		if v, ok := l.st.warehouses[ref.ID]; ok {
			return v.IsArchived, nil
		}
	case entity.KindLocation:
		if v, ok := l.st.locations[ref.ID]; ok {
			return v.IsArchived, nil
		}
	case entity.KindInventory:
		if v, ok := l.st.inventories[ref.ID]; ok {
			return v.IsArchived, nil
		}
	case entity.KindOrder:
		if v, ok := l.st.orders[ref.ID]; ok {
			return v.IsArchived, nil
		}
	case entity.KindShipment:
		if v, ok := l.st.shipments[ref.ID]; ok {
			return v.IsArchived, nil
		}
	case entity.KindTransfer:
		if v, ok := l.st.transfers[ref.ID]; ok {
			return v.IsArchived, nil
		}
	case entity.KindUser:
		if v, ok := l.st.users[ref.ID]; ok {
			return v.IsArchived, nil
		}
	}
	return false, domain.ErrNotFound
}

// ActiveDependents cuenta dependientes no archivados. Solo los catálogos de
// clasificación tienen dependientes relevantes para el guard (artículos).
func (l *Lookup) ActiveDependents(ref entity.Ref) (int, error) {
	if !entity.IsClassificationKind(ref.Kind) {
		return 0, nil
	}
	return (&ItemRepo{st: l.st}).CountActiveByClassification(ref.Kind, ref.ID)
}
