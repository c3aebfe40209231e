// Package memory implementa los puertos de persistencia en memoria, con
// semántica de copia por valor para imitar un almacén real. Se usa en los
// tests del motor y de los casos de uso, y como origen al importar los
// archivos de datos heredados.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/cargohub-api/internal/application/engine"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
)

// Store contiene todos los registros, indexados por kind e id.
type Store struct {
	mu  sync.RWMutex
	seq map[entity.Kind]int64

	items           map[int64]entity.Item
	classifications map[entity.Kind]map[int64]entity.Classification
	suppliers       map[int64]entity.Supplier
	clients         map[int64]entity.Client
	warehouses      map[int64]entity.Warehouse
	locations       map[int64]entity.Location
	inventories     map[int64]entity.Inventory
	orders          map[int64]entity.Order
	shipments       map[int64]entity.Shipment
	transfers       map[int64]entity.Transfer
	users           map[int64]entity.User
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	cls := make(map[entity.Kind]map[int64]entity.Classification)
	for _, k := range entity.ClassificationKinds {
		cls[k] = make(map[int64]entity.Classification)
	}
	return &Store{
		seq:             make(map[entity.Kind]int64),
		items:           make(map[int64]entity.Item),
		classifications: cls,
		suppliers:       make(map[int64]entity.Supplier),
		clients:         make(map[int64]entity.Client),
		warehouses:      make(map[int64]entity.Warehouse),
		locations:       make(map[int64]entity.Location),
		inventories:     make(map[int64]entity.Inventory),
		orders:          make(map[int64]entity.Order),
		shipments:       make(map[int64]entity.Shipment),
		transfers:       make(map[int64]entity.Transfer),
		users:           make(map[int64]entity.User),
	}
}

// nextID asigna el siguiente id secuencial del kind. Llamar con mu tomado.
func (s *Store) nextID(kind entity.Kind) int64 {
	s.seq[kind]++
	return s.seq[kind]
}

// bumpSeq mantiene la secuencia por delante de ids asignados externamente
// (importación de datos heredados). Llamar con mu tomado.
func (s *Store) bumpSeq(kind entity.Kind, id int64) {
	if id > s.seq[kind] {
		s.seq[kind] = id
	}
}

// Stores devuelve los puertos del motor respaldados por este almacén.
func (s *Store) Stores() engine.Stores {
	return engine.Stores{
		Inventories: s.Inventories(),
		Orders:      s.Orders(),
		Shipments:   s.Shipments(),
		Transfers:   s.Transfers(),
		Lookup:      s.Lookup(),
	}
}

// Accesores de repositorios.
func (s *Store) Items() *ItemRepo                     { return &ItemRepo{st: s} }
func (s *Store) Classifications() *ClassificationRepo { return &ClassificationRepo{st: s} }
func (s *Store) Suppliers() *SupplierRepo             { return &SupplierRepo{st: s} }
func (s *Store) Clients() *ClientRepo                 { return &ClientRepo{st: s} }
func (s *Store) Warehouses() *WarehouseRepo           { return &WarehouseRepo{st: s} }
func (s *Store) Locations() *LocationRepo             { return &LocationRepo{st: s} }
func (s *Store) Inventories() *InventoryRepo          { return &InventoryRepo{st: s} }
func (s *Store) Orders() *OrderRepo                   { return &OrderRepo{st: s} }
func (s *Store) Shipments() *ShipmentRepo             { return &ShipmentRepo{st: s} }
func (s *Store) Transfers() *TransferRepo             { return &TransferRepo{st: s} }
func (s *Store) Users() *UserRepo                     { return &UserRepo{st: s} }
func (s *Store) Lookup() *Lookup                      { return &Lookup{st: s} }

// TxRunner adapta el almacén en memoria al puerto engine.TxRunner. No hay
// transacciones reales: fn se ejecuta directamente sobre el almacén.
type TxRunner struct {
	st *Store
}

// NewTxRunner construye el runner.
func NewTxRunner(st *Store) *TxRunner {
	return &TxRunner{st: st}
}

var _ engine.TxRunner = (*TxRunner)(nil)

// Run ejecuta fn con los stores del almacén.
func (r *TxRunner) Run(_ context.Context, fn func(s engine.Stores) error) error {
	return fn(r.st.Stores())
}
