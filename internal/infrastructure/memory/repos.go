package memory

import (
	"sort"
	"strings"

	"github.com/jhoicas/cargohub-api/internal/domain"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
	"github.com/jhoicas/cargohub-api/internal/domain/repository"
)

// Verificación de cumplimiento de interfaces.
var (
	_ repository.ItemRepository           = (*ItemRepo)(nil)
	_ repository.ClassificationRepository = (*ClassificationRepo)(nil)
	_ repository.SupplierRepository       = (*SupplierRepo)(nil)
	_ repository.ClientRepository         = (*ClientRepo)(nil)
	_ repository.WarehouseRepository      = (*WarehouseRepo)(nil)
	_ repository.LocationRepository       = (*LocationRepo)(nil)
	_ repository.InventoryRepository      = (*InventoryRepo)(nil)
	_ repository.OrderRepository          = (*OrderRepo)(nil)
	_ repository.ShipmentRepository       = (*ShipmentRepo)(nil)
	_ repository.TransferRepository       = (*TransferRepo)(nil)
	_ repository.UserRepository           = (*UserRepo)(nil)
)

// sortedIDs devuelve los ids del mapa en orden ascendente.
func sortedIDs[T any](m map[int64]T) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// page aplica limit/offset sobre una lista de ids ya ordenada.
func page(ids []int64, limit, offset int) []int64 {
	if offset >= len(ids) {
		return nil
	}
	ids = ids[offset:]
	if limit > 0 && limit < len(ids) {
		ids = ids[:limit]
	}
	return ids
}

// Copias por valor: los slices internos se duplican para que el caller no
// comparta memoria con el almacén.

func copyInventory(v entity.Inventory) *entity.Inventory {
	v.LocationIDs = append([]int64(nil), v.LocationIDs...)
	return &v
}

func copyOrder(v entity.Order) *entity.Order {
	v.Items = append([]entity.ItemQuantity(nil), v.Items...)
	return &v
}

func copyShipment(v entity.Shipment) *entity.Shipment {
	v.Items = append([]entity.ItemQuantity(nil), v.Items...)
	return &v
}

func copyTransfer(v entity.Transfer) *entity.Transfer {
	v.Items = append([]entity.ItemQuantity(nil), v.Items...)
	return &v
}

func copyUser(v entity.User) *entity.User {
	v.Permissions = append([]string(nil), v.Permissions...)
	return &v
}

// ── Items ─────────────────────────────────────────────────────────────────────

// ItemRepo implementa ItemRepository en memoria.
type ItemRepo struct{ st *Store }

func (r *ItemRepo) Create(item *entity.Item) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if item.ID == 0 {
		item.ID = r.st.nextID(entity.KindItem)
	}
	r.st.bumpSeq(entity.KindItem, item.ID)
	r.st.items[item.ID] = *item
	return nil
}

func (r *ItemRepo) GetByID(id int64) (*entity.Item, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	v, ok := r.st.items[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *ItemRepo) Update(item *entity.Item) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if _, ok := r.st.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	r.st.items[item.ID] = *item
	return nil
}

func (r *ItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	var out []*entity.Item
	for _, id := range page(sortedIDs(r.st.items), limit, offset) {
		v := r.st.items[id]
		out = append(out, &v)
	}
	return out, nil
}

func (r *ItemRepo) ListBySupplier(supplierID int64) ([]*entity.Item, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	var out []*entity.Item
	for _, id := range sortedIDs(r.st.items) {
		v := r.st.items[id]
		if v.SupplierID == supplierID {
			out = append(out, &v)
		}
	}
	return out, nil
}

func (r *ItemRepo) CountActiveByClassification(kind entity.Kind, id int64) (int, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	n := 0
	for _, v := range r.st.items {
		if v.IsArchived {
			continue
		}
		switch kind {
		case entity.KindItemGroup:
			if v.ItemGroupID == id {
				n++
			}
		case entity.KindItemLine:
			if v.ItemLineID == id {
				n++
			}
		case entity.KindItemType:
			if v.ItemTypeID == id {
				n++
			}
		}
	}
	return n, nil
}

// ── Clasificaciones ──────────────────────────────────────────────────────────

// ClassificationRepo implementa ClassificationRepository en memoria.
type ClassificationRepo struct{ st *Store }

func (r *ClassificationRepo) Create(c *entity.Classification) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	m, ok := r.st.classifications[c.Kind]
	if !ok {
		return domain.ErrInvalidInput
	}
	if c.ID == 0 {
		c.ID = r.st.nextID(c.Kind)
	}
	r.st.bumpSeq(c.Kind, c.ID)
	m[c.ID] = *c
	return nil
}

func (r *ClassificationRepo) GetByID(kind entity.Kind, id int64) (*entity.Classification, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	v, ok := r.st.classifications[kind][id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *ClassificationRepo) Update(c *entity.Classification) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	m := r.st.classifications[c.Kind]
	if _, ok := m[c.ID]; !ok {
		return domain.ErrNotFound
	}
	m[c.ID] = *c
	return nil
}

func (r *ClassificationRepo) List(kind entity.Kind, limit, offset int) ([]*entity.Classification, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	m := r.st.classifications[kind]
	var out []*entity.Classification
	for _, id := range page(sortedIDs(m), limit, offset) {
		v := m[id]
		out = append(out, &v)
	}
	return out, nil
}

// ── Datos maestros ───────────────────────────────────────────────────────────

// SupplierRepo implementa SupplierRepository en memoria.
type SupplierRepo struct{ st *Store }

func (r *SupplierRepo) Create(s *entity.Supplier) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if s.ID == 0 {
		s.ID = r.st.nextID(entity.KindSupplier)
	}
	r.st.bumpSeq(entity.KindSupplier, s.ID)
	r.st.suppliers[s.ID] = *s
	return nil
}

func (r *SupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	v, ok := r.st.suppliers[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *SupplierRepo) Update(s *entity.Supplier) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if _, ok := r.st.suppliers[s.ID]; !ok {
		return domain.ErrNotFound
	}
	r.st.suppliers[s.ID] = *s
	return nil
}

func (r *SupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	var out []*entity.Supplier
	for _, id := range page(sortedIDs(r.st.suppliers), limit, offset) {
		v := r.st.suppliers[id]
		out = append(out, &v)
	}
	return out, nil
}

// ClientRepo implementa ClientRepository en memoria.
type ClientRepo struct{ st *Store }

func (r *ClientRepo) Create(c *entity.Client) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if c.ID == 0 {
		c.ID = r.st.nextID(entity.KindClient)
	}
	r.st.bumpSeq(entity.KindClient, c.ID)
	r.st.clients[c.ID] = *c
	return nil
}

func (r *ClientRepo) GetByID(id int64) (*entity.Client, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	v, ok := r.st.clients[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *ClientRepo) Update(c *entity.Client) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if _, ok := r.st.clients[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.st.clients[c.ID] = *c
	return nil
}

func (r *ClientRepo) List(limit, offset int) ([]*entity.Client, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	var out []*entity.Client
	for _, id := range page(sortedIDs(r.st.clients), limit, offset) {
		v := r.st.clients[id]
		out = append(out, &v)
	}
	return out, nil
}

// WarehouseRepo implementa WarehouseRepository en memoria.
type WarehouseRepo struct{ st *Store }

func (r *WarehouseRepo) Create(w *entity.Warehouse) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if w.ID == 0 {
		w.ID = r.st.nextID(entity.KindWarehouse)
	}
	r.st.bumpSeq(entity.KindWarehouse, w.ID)
	r.st.warehouses[w.ID] = *w
	return nil
}

func (r *WarehouseRepo) GetByID(id int64) (*entity.Warehouse, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	v, ok := r.st.warehouses[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *WarehouseRepo) Update(w *entity.Warehouse) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if _, ok := r.st.warehouses[w.ID]; !ok {
		return domain.ErrNotFound
	}
	r.st.warehouses[w.ID] = *w
	return nil
}

func (r *WarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	var out []*entity.Warehouse
	for _, id := range page(sortedIDs(r.st.warehouses), limit, offset) {
		v := r.st.warehouses[id]
		out = append(out, &v)
	}
	return out, nil
}

// LocationRepo implementa LocationRepository en memoria.
type LocationRepo struct{ st *Store }

func (r *LocationRepo) Create(l *entity.Location) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if l.ID == 0 {
		l.ID = r.st.nextID(entity.KindLocation)
	}
	r.st.bumpSeq(entity.KindLocation, l.ID)
	r.st.locations[l.ID] = *l
	return nil
}

func (r *LocationRepo) GetByID(id int64) (*entity.Location, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	v, ok := r.st.locations[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *LocationRepo) Update(l *entity.Location) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if _, ok := r.st.locations[l.ID]; !ok {
		return domain.ErrNotFound
	}
	r.st.locations[l.ID] = *l
	return nil
}

func (r *LocationRepo) List(limit, offset int) ([]*entity.Location, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	var out []*entity.Location
	for _, id := range page(sortedIDs(r.st.locations), limit, offset) {
		v := r.st.locations[id]
		out = append(out, &v)
	}
	return out, nil
}

func (r *LocationRepo) ListByWarehouse(warehouseID int64) ([]*entity.Location, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	var out []*entity.Location
	for _, id := range sortedIDs(r.st.locations) {
		v := r.st.locations[id]
		if v.WarehouseID == warehouseID {
			out = append(out, &v)
		}
	}
	return out, nil
}

// ── Inventario ───────────────────────────────────────────────────────────────

// InventoryRepo implementa InventoryRepository en memoria.
type InventoryRepo struct{ st *Store }

func (r *InventoryRepo) Create(inv *entity.Inventory) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if inv.ID == 0 {
		inv.ID = r.st.nextID(entity.KindInventory)
	}
	r.st.bumpSeq(entity.KindInventory, inv.ID)
	r.st.inventories[inv.ID] = *copyInventory(*inv)
	return nil
}

func (r *InventoryRepo) GetByID(id int64) (*entity.Inventory, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	v, ok := r.st.inventories[id]
	if !ok {
		return nil, nil
	}
	return copyInventory(v), nil
}

func (r *InventoryRepo) Update(inv *entity.Inventory) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if _, ok := r.st.inventories[inv.ID]; !ok {
		return domain.ErrNotFound
	}
	r.st.inventories[inv.ID] = *copyInventory(*inv)
	return nil
}

func (r *InventoryRepo) List(limit, offset int) ([]*entity.Inventory, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	var out []*entity.Inventory
	for _, id := range page(sortedIDs(r.st.inventories), limit, offset) {
		out = append(out, copyInventory(r.st.inventories[id]))
	}
	return out, nil
}

func (r *InventoryRepo) ListByItem(itemID int64) ([]*entity.Inventory, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	var out []*entity.Inventory
	for _, id := range sortedIDs(r.st.inventories) {
		v := r.st.inventories[id]
		if v.ItemID == itemID {
			out = append(out, copyInventory(v))
		}
	}
	return out, nil
}

// ListByItemForUpdate no bloquea nada en memoria; existe para satisfacer el
// puerto con la misma semántica de lectura.
func (r *InventoryRepo) ListByItemForUpdate(itemID int64) ([]*entity.Inventory, error) {
	return r.ListByItem(itemID)
}

// ── Pedidos, envíos y transferencias ─────────────────────────────────────────

// OrderRepo implementa OrderRepository en memoria.
type OrderRepo struct{ st *Store }

func (r *OrderRepo) Create(o *entity.Order) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if o.ID == 0 {
		o.ID = r.st.nextID(entity.KindOrder)
	}
	r.st.bumpSeq(entity.KindOrder, o.ID)
	r.st.orders[o.ID] = *copyOrder(*o)
	return nil
}

func (r *OrderRepo) GetByID(id int64) (*entity.Order, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	v, ok := r.st.orders[id]
	if !ok {
		return nil, nil
	}
	return copyOrder(v), nil
}

func (r *OrderRepo) Update(o *entity.Order) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if _, ok := r.st.orders[o.ID]; !ok {
		return domain.ErrNotFound
	}
	r.st.orders[o.ID] = *copyOrder(*o)
	return nil
}

func (r *OrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	var out []*entity.Order
	for _, id := range page(sortedIDs(r.st.orders), limit, offset) {
		out = append(out, copyOrder(r.st.orders[id]))
	}
	return out, nil
}

func (r *OrderRepo) ListByShipment(shipmentID int64) ([]*entity.Order, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	var out []*entity.Order
	for _, id := range sortedIDs(r.st.orders) {
		v := r.st.orders[id]
		if v.ShipmentID == shipmentID {
			out = append(out, copyOrder(v))
		}
	}
	return out, nil
}

func (r *OrderRepo) ListByClient(clientID int64) ([]*entity.Order, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	var out []*entity.Order
	for _, id := range sortedIDs(r.st.orders) {
		v := r.st.orders[id]
		if v.ShipTo == clientID || v.BillTo == clientID {
			out = append(out, copyOrder(v))
		}
	}
	return out, nil
}

// ShipmentRepo implementa ShipmentRepository en memoria.
type ShipmentRepo struct{ st *Store }

func (r *ShipmentRepo) Create(s *entity.Shipment) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if s.ID == 0 {
		s.ID = r.st.nextID(entity.KindShipment)
	}
	r.st.bumpSeq(entity.KindShipment, s.ID)
	r.st.shipments[s.ID] = *copyShipment(*s)
	return nil
}

func (r *ShipmentRepo) GetByID(id int64) (*entity.Shipment, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	v, ok := r.st.shipments[id]
	if !ok {
		return nil, nil
	}
	return copyShipment(v), nil
}

func (r *ShipmentRepo) Update(s *entity.Shipment) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if _, ok := r.st.shipments[s.ID]; !ok {
		return domain.ErrNotFound
	}
	r.st.shipments[s.ID] = *copyShipment(*s)
	return nil
}

func (r *ShipmentRepo) List(limit, offset int) ([]*entity.Shipment, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	var out []*entity.Shipment
	for _, id := range page(sortedIDs(r.st.shipments), limit, offset) {
		out = append(out, copyShipment(r.st.shipments[id]))
	}
	return out, nil
}

func (r *ShipmentRepo) ListByOrder(orderID int64) ([]*entity.Shipment, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	var out []*entity.Shipment
	for _, id := range sortedIDs(r.st.shipments) {
		v := r.st.shipments[id]
		if v.OrderID == orderID {
			out = append(out, copyShipment(v))
		}
	}
	return out, nil
}

// TransferRepo implementa TransferRepository en memoria.
type TransferRepo struct{ st *Store }

func (r *TransferRepo) Create(t *entity.Transfer) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if t.ID == 0 {
		t.ID = r.st.nextID(entity.KindTransfer)
	}
	r.st.bumpSeq(entity.KindTransfer, t.ID)
	r.st.transfers[t.ID] = *copyTransfer(*t)
	return nil
}

func (r *TransferRepo) GetByID(id int64) (*entity.Transfer, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	v, ok := r.st.transfers[id]
	if !ok {
		return nil, nil
	}
	return copyTransfer(v), nil
}

func (r *TransferRepo) Update(t *entity.Transfer) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if _, ok := r.st.transfers[t.ID]; !ok {
		return domain.ErrNotFound
	}
	r.st.transfers[t.ID] = *copyTransfer(*t)
	return nil
}

func (r *TransferRepo) List(limit, offset int) ([]*entity.Transfer, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	var out []*entity.Transfer
	for _, id := range page(sortedIDs(r.st.transfers), limit, offset) {
		out = append(out, copyTransfer(r.st.transfers[id]))
	}
	return out, nil
}

// ── Usuarios (aplicaciones API) ──────────────────────────────────────────────

// UserRepo implementa UserRepository en memoria.
type UserRepo struct{ st *Store }

func (r *UserRepo) Create(u *entity.User) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if u.ID == 0 {
		u.ID = r.st.nextID(entity.KindUser)
	}
	r.st.bumpSeq(entity.KindUser, u.ID)
	r.st.users[u.ID] = *copyUser(*u)
	return nil
}

func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	v, ok := r.st.users[id]
	if !ok {
		return nil, nil
	}
	return copyUser(v), nil
}

func (r *UserRepo) GetByAppName(appName string) (*entity.User, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	for _, id := range sortedIDs(r.st.users) {
		v := r.st.users[id]
		if strings.EqualFold(v.AppName, appName) {
			return copyUser(v), nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Update(u *entity.User) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if _, ok := r.st.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	r.st.users[u.ID] = *copyUser(*u)
	return nil
}

func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	var out []*entity.User
	for _, id := range page(sortedIDs(r.st.users), limit, offset) {
		out = append(out, copyUser(r.st.users[id]))
	}
	return out, nil
}
