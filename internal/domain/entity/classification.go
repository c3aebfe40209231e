package entity

import "time"

// Classification agrupa los tres catálogos de clasificación de artículos
// (grupo, línea y tipo) bajo una sola representación etiquetada por Kind:
// comparten forma, reglas de archivado y persistencia.
type Classification struct {
	ID          int64
	Kind        Kind // KindItemGroup, KindItemLine o KindItemType
	Name        string
	Description string
	IsArchived  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ClassificationKinds son los kinds válidos para Classification.
var ClassificationKinds = []Kind{KindItemGroup, KindItemLine, KindItemType}

// IsClassificationKind indica si kind corresponde a un catálogo de clasificación.
func IsClassificationKind(kind Kind) bool {
	for _, k := range ClassificationKinds {
		if k == kind {
			return true
		}
	}
	return false
}
