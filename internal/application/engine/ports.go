// Package engine implementa el motor de consistencia del almacén: el libro de
// inventario, el protocolo de ajuste de contadores, el guard de dependencias
// de archivado y las máquinas de estado de pedido/envío/transferencia.
//
// El motor no conoce transporte, autenticación ni serialización: solo depende
// de los puertos de persistencia que recibe en su construcción. Cada petición
// de mutación construye un motor sobre stores atados a una transacción
// (TxRunner), nunca sobre singletons de proceso.
package engine

import (
	"context"

	"github.com/jhoicas/cargohub-api/internal/domain/repository"
)

// Stores agrupa los puertos que el motor usa dentro de una operación.
type Stores struct {
	Inventories repository.InventoryRepository
	Orders      repository.OrderRepository
	Shipments   repository.ShipmentRepository
	Transfers   repository.TransferRepository
	Lookup      repository.ArchiveLookup
}

// Engine ejecuta las reglas de consistencia sobre un conjunto de stores.
type Engine struct {
	s Stores
}

// New construye el motor con los stores inyectados.
func New(s Stores) *Engine {
	return &Engine{s: s}
}

// TxRunner ejecuta fn dentro de una transacción de BD, entregando stores
// atados a esa transacción. Garantiza atomicidad lectura-modificación-
// escritura por fila para el motor.
type TxRunner interface {
	Run(ctx context.Context, fn func(s Stores) error) error
}
