package entity

import "time"

// Estados de transferencia: Scheduled → Processed. Processed es terminal;
// la lista de artículos queda fija al crearla.
const (
	TransferStatusScheduled = "Scheduled"
	TransferStatusProcessed = "Processed"
)

// Transfer representa un traslado de stock entre dos ubicaciones.
type Transfer struct {
	ID             int64
	Reference      string
	TransferFrom   int64 // location id origen
	TransferTo     int64 // location id destino
	TransferStatus string
	Items          []ItemQuantity
	IsArchived     bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Committable indica si la transferencia admite el commit: no archivada y
// todavía programada.
func (t *Transfer) Committable() bool {
	return !t.IsArchived && t.TransferStatus == TransferStatusScheduled
}

// References devuelve las dos ubicaciones y los artículos referenciados.
func (t *Transfer) References() []Ref {
	var refs []Ref
	if t.TransferFrom > 0 {
		refs = append(refs, Ref{Kind: KindLocation, ID: t.TransferFrom})
	}
	if t.TransferTo > 0 {
		refs = append(refs, Ref{Kind: KindLocation, ID: t.TransferTo})
	}
	return append(refs, itemRefs(t.Items)...)
}
