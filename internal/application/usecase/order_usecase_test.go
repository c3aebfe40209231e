package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cargohub-api/internal/application/dto"
	"github.com/jhoicas/cargohub-api/internal/application/engine"
	"github.com/jhoicas/cargohub-api/internal/application/usecase"
	"github.com/jhoicas/cargohub-api/internal/domain"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
	"github.com/jhoicas/cargohub-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fixture arma el almacén en memoria con el grafo mínimo: bodega, cliente,
// artículo y una fila de inventario con stock.
type fixture struct {
	st        *memory.Store
	orders    *usecase.OrderUseCase
	shipments *usecase.ShipmentUseCase
	transfers *usecase.TransferUseCase

	warehouseID int64
	clientID    int64
	itemID      int64
	inventoryID int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := memory.NewStore()
	eng := engine.New(st.Stores())
	tx := memory.NewTxRunner(st)

	now := time.Now()
	wh := &entity.Warehouse{Code: "BOD-01", Name: "Bodega Central", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, st.Warehouses().Create(wh))
	cl := &entity.Client{Name: "Cliente Uno", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, st.Clients().Create(cl))
	it := &entity.Item{Code: "ART-001", Description: "Caja estándar", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, st.Items().Create(it))
	// Ubicaciones 1, 2 y 3: las dos primeras en la fila de inventario base,
	// la tercera como destino de transferencias.
	for _, code := range []string{"A-01", "A-02", "B-03"} {
		loc := &entity.Location{WarehouseID: wh.ID, Code: code, CreatedAt: now, UpdatedAt: now}
		require.NoError(t, st.Locations().Create(loc))
	}
	inv := &entity.Inventory{
		ItemID:         it.ID,
		LocationIDs:    []int64{1, 2},
		TotalOnHand:    100,
		TotalOrdered:   20,
		TotalAllocated: 10,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	inv.Recalculate()
	require.NoError(t, st.Inventories().Create(inv))

	return &fixture{
		st:          st,
		orders:      usecase.NewOrderUseCase(st.Orders(), eng, tx),
		shipments:   usecase.NewShipmentUseCase(st.Shipments(), st.Orders(), eng, tx),
		transfers:   usecase.NewTransferUseCase(st.Transfers(), eng, tx),
		warehouseID: wh.ID,
		clientID:    cl.ID,
		itemID:      it.ID,
		inventoryID: inv.ID,
	}
}

func (f *fixture) orderRequest(items ...dto.ItemQuantityDTO) dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		WarehouseID: f.warehouseID,
		ShipTo:      f.clientID,
		BillTo:      f.clientID,
		OrderDate:   time.Now(),
		RequestDate: time.Now(),
		Reference:   "PED-001",
		Items:       items,
	}
}

func (f *fixture) inventoryRow(t *testing.T) *entity.Inventory {
	t.Helper()
	row, err := f.st.Inventories().GetByID(f.inventoryID)
	require.NoError(t, err)
	require.NotNil(t, row)
	return row
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedidos
// ──────────────────────────────────────────────────────────────────────────────

// Crear un pedido almacena sus líneas tal cual, sin tocar el libro: solo el
// reemplazo de la lista dispara la reconciliación.
func TestOrderCreate_NoTocaElLibro(t *testing.T) {
	f := newFixture(t)

	out, err := f.orders.Create(f.orderRequest(dto.ItemQuantityDTO{ItemID: f.itemID, Amount: 5}))
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusScheduled, out.OrderStatus)
	assert.Equal(t, entity.NoShipment, out.ShipmentID)

	row := f.inventoryRow(t)
	assert.EqualValues(t, 10, row.TotalAllocated, "crear no debe ajustar el libro")
}

// El reemplazo de líneas aplica la diferencia sobre total_allocated y
// mantiene los derivados consistentes.
func TestOrderReplaceItems_AjustaAllocated(t *testing.T) {
	f := newFixture(t)
	out, err := f.orders.Create(f.orderRequest(dto.ItemQuantityDTO{ItemID: f.itemID, Amount: 5}))
	require.NoError(t, err)

	_, err = f.orders.ReplaceItems(context.Background(), out.ID, dto.ReplaceItemsRequest{
		Items: []dto.ItemQuantityDTO{{ItemID: f.itemID, Amount: 12}},
	})
	require.NoError(t, err)

	row := f.inventoryRow(t)
	assert.EqualValues(t, 17, row.TotalAllocated, "10 previos + diff(12-5)")
	assert.Equal(t, row.TotalOnHand-row.TotalAllocated, row.TotalAvailable)
	assert.Equal(t, row.TotalOnHand+row.TotalOrdered, row.TotalExpected)
}

// Vaciar la lista revierte el delta aplicado al agregarla.
func TestOrderReplaceItems_VaciarRevierte(t *testing.T) {
	f := newFixture(t)
	out, err := f.orders.Create(f.orderRequest())
	require.NoError(t, err)

	_, err = f.orders.ReplaceItems(context.Background(), out.ID, dto.ReplaceItemsRequest{
		Items: []dto.ItemQuantityDTO{{ItemID: f.itemID, Amount: 8}},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 18, f.inventoryRow(t).TotalAllocated)

	_, err = f.orders.ReplaceItems(context.Background(), out.ID, dto.ReplaceItemsRequest{})
	require.NoError(t, err)
	assert.EqualValues(t, 10, f.inventoryRow(t).TotalAllocated)
}

// Una referencia nueva hacia un registro archivado rechaza la operación
// completa sin escrituras parciales.
func TestOrderCreate_ReferenciaArchivadaRechazada(t *testing.T) {
	f := newFixture(t)
	wh, err := f.st.Warehouses().GetByID(f.warehouseID)
	require.NoError(t, err)
	wh.IsArchived = true
	require.NoError(t, f.st.Warehouses().Update(wh))

	_, err = f.orders.Create(f.orderRequest())
	assert.ErrorIs(t, err, domain.ErrArchivedReference)

	list, err := f.st.Orders().List(0, 0)
	require.NoError(t, err)
	assert.Empty(t, list, "no debe quedar ningún pedido escrito")
}

// Con la única fila del artículo archivada no hay fila activa que ajustar:
// el delta se descarta y el libro queda intacto.
func TestOrderReplaceItems_FilaArchivadaNoSeAjusta(t *testing.T) {
	f := newFixture(t)
	ord, err := f.orders.Create(f.orderRequest())
	require.NoError(t, err)

	row := f.inventoryRow(t)
	row.IsArchived = true
	require.NoError(t, f.st.Inventories().Update(row))

	_, err = f.orders.ReplaceItems(context.Background(), ord.ID, dto.ReplaceItemsRequest{
		Items: []dto.ItemQuantityDTO{{ItemID: f.itemID, Amount: 5}},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 10, f.inventoryRow(t).TotalAllocated)
}

func TestOrderReplaceItems_PedidoInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.orders.ReplaceItems(context.Background(), 999, dto.ReplaceItemsRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Envíos: asignación y avance de estado
// ──────────────────────────────────────────────────────────────────────────────

// Asignar un pedido lo marca Packed; el doble commit del envío lo lleva por
// Shipped hasta Delivered.
func TestShipmentCommit_PropagaAlPedido(t *testing.T) {
	f := newFixture(t)
	ord, err := f.orders.Create(f.orderRequest())
	require.NoError(t, err)
	shp, err := f.shipments.Create(dto.CreateShipmentRequest{
		OrderID:      ord.ID,
		ShipmentDate: time.Now(),
		CarrierCode:  "DHL",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ShipmentStatusPending, shp.ShipmentStatus)

	_, err = f.shipments.AssignOrders(context.Background(), shp.ID, dto.AssignOrdersRequest{
		OrderIDs: []int64{ord.ID},
	})
	require.NoError(t, err)
	got, err := f.orders.GetByID(ord.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPacked, got.OrderStatus)
	assert.Equal(t, shp.ID, got.ShipmentID)

	out, err := f.shipments.Commit(context.Background(), shp.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ShipmentStatusTransit, out.ShipmentStatus)
	got, err = f.orders.GetByID(ord.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, got.OrderStatus)

	out, err = f.shipments.Commit(context.Background(), shp.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ShipmentStatusDelivered, out.ShipmentStatus)
	got, err = f.orders.GetByID(ord.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, got.OrderStatus)

	// Delivered es terminal.
	_, err = f.shipments.Commit(context.Background(), shp.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// Quitar un pedido del envío lo devuelve a Scheduled y sin envío asignado.
func TestShipmentAssignOrders_DesempaquetaAlQuitar(t *testing.T) {
	f := newFixture(t)
	ord, err := f.orders.Create(f.orderRequest())
	require.NoError(t, err)
	shp, err := f.shipments.Create(dto.CreateShipmentRequest{OrderID: ord.ID, ShipmentDate: time.Now()})
	require.NoError(t, err)

	_, err = f.shipments.AssignOrders(context.Background(), shp.ID, dto.AssignOrdersRequest{OrderIDs: []int64{ord.ID}})
	require.NoError(t, err)
	_, err = f.shipments.AssignOrders(context.Background(), shp.ID, dto.AssignOrdersRequest{OrderIDs: nil})
	require.NoError(t, err)

	got, err := f.orders.GetByID(ord.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusScheduled, got.OrderStatus)
	assert.Equal(t, entity.NoShipment, got.ShipmentID)
}

// Empaquetar en un envío archivado introduciría una referencia nueva hacia
// un registro archivado: se rechaza y el pedido queda intacto.
func TestShipmentAssignOrders_EnvioArchivadoRechazado(t *testing.T) {
	f := newFixture(t)
	ord, err := f.orders.Create(f.orderRequest())
	require.NoError(t, err)
	shp, err := f.shipments.Create(dto.CreateShipmentRequest{OrderID: ord.ID, ShipmentDate: time.Now()})
	require.NoError(t, err)
	require.NoError(t, f.shipments.Archive(shp.ID))

	_, err = f.shipments.AssignOrders(context.Background(), shp.ID, dto.AssignOrdersRequest{OrderIDs: []int64{ord.ID}})
	assert.ErrorIs(t, err, domain.ErrArchivedReference)

	got, err := f.orders.GetByID(ord.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusScheduled, got.OrderStatus)
	assert.Equal(t, entity.NoShipment, got.ShipmentID)
}

// El reemplazo de líneas de un envío ajusta total_ordered, no total_allocated.
func TestShipmentReplaceItems_AjustaOrdered(t *testing.T) {
	f := newFixture(t)
	ord, err := f.orders.Create(f.orderRequest())
	require.NoError(t, err)
	shp, err := f.shipments.Create(dto.CreateShipmentRequest{OrderID: ord.ID, ShipmentDate: time.Now()})
	require.NoError(t, err)

	_, err = f.shipments.ReplaceItems(context.Background(), shp.ID, dto.ReplaceItemsRequest{
		Items: []dto.ItemQuantityDTO{{ItemID: f.itemID, Amount: 7}},
	})
	require.NoError(t, err)

	row := f.inventoryRow(t)
	assert.EqualValues(t, 27, row.TotalOrdered)
	assert.EqualValues(t, 10, row.TotalAllocated)
	assert.Equal(t, row.TotalOnHand+row.TotalOrdered, row.TotalExpected)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transferencias
// ──────────────────────────────────────────────────────────────────────────────

// El commit mueve el stock disponible de la ubicación origen a la destino y
// marca la transferencia Processed.
func TestTransferCommit_MueveStock(t *testing.T) {
	f := newFixture(t)
	// Fila destino separada: solo contiene la ubicación 3.
	dst := &entity.Inventory{ItemID: f.itemID, LocationIDs: []int64{3}, TotalOnHand: 5}
	dst.Recalculate()
	require.NoError(t, f.st.Inventories().Create(dst))

	tr, err := f.transfers.Create(dto.CreateTransferRequest{
		Reference:    "TRS-001",
		TransferFrom: 1,
		TransferTo:   3,
		Items:        []dto.ItemQuantityDTO{{ItemID: f.itemID, Amount: 4}},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TransferStatusScheduled, tr.TransferStatus)

	out, err := f.transfers.Commit(context.Background(), tr.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TransferStatusProcessed, out.TransferStatus)

	src := f.inventoryRow(t)
	assert.EqualValues(t, 96, src.TotalOnHand)
	dstRow, err := f.st.Inventories().GetByID(dst.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 9, dstRow.TotalOnHand)

	// El segundo commit no es admisible y deja el libro intacto.
	_, err = f.transfers.Commit(context.Background(), tr.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.EqualValues(t, 96, f.inventoryRow(t).TotalOnHand)
}

// Una transferencia procesada ya no admite cambios.
func TestTransferUpdate_SoloMientrasScheduled(t *testing.T) {
	f := newFixture(t)
	tr, err := f.transfers.Create(dto.CreateTransferRequest{
		Reference: "TRS-002", TransferFrom: 1, TransferTo: 2,
	})
	require.NoError(t, err)
	_, err = f.transfers.Commit(context.Background(), tr.ID)
	require.NoError(t, err)

	_, err = f.transfers.Update(tr.ID, dto.CreateTransferRequest{
		Reference: "TRS-002b", TransferFrom: 1, TransferTo: 2,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// Una transferencia archivada tampoco admite cambios, aunque siga Scheduled.
func TestTransferUpdate_ArchivadaRechazada(t *testing.T) {
	f := newFixture(t)
	tr, err := f.transfers.Create(dto.CreateTransferRequest{
		Reference: "TRS-004", TransferFrom: 1, TransferTo: 2,
	})
	require.NoError(t, err)
	require.NoError(t, f.transfers.Archive(tr.ID))

	_, err = f.transfers.Update(tr.ID, dto.CreateTransferRequest{
		Reference: "TRS-004b", TransferFrom: 1, TransferTo: 2,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// Las filas de inventario archivadas quedan fuera del libro activo: el commit
// no las toca aunque contengan un extremo de la transferencia.
func TestTransferCommit_FilaArchivadaIntacta(t *testing.T) {
	f := newFixture(t)
	dst := &entity.Inventory{ItemID: f.itemID, LocationIDs: []int64{3}, TotalOnHand: 5, IsArchived: true}
	dst.Recalculate()
	require.NoError(t, f.st.Inventories().Create(dst))

	tr, err := f.transfers.Create(dto.CreateTransferRequest{
		Reference:    "TRS-005",
		TransferFrom: 1,
		TransferTo:   3,
		Items:        []dto.ItemQuantityDTO{{ItemID: f.itemID, Amount: 4}},
	})
	require.NoError(t, err)
	_, err = f.transfers.Commit(context.Background(), tr.ID)
	require.NoError(t, err)

	assert.EqualValues(t, 96, f.inventoryRow(t).TotalOnHand)
	dstRow, err := f.st.Inventories().GetByID(dst.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 5, dstRow.TotalOnHand, "la fila archivada no recibe stock")
}

func TestTransferCreate_EndpointsObligatorios(t *testing.T) {
	f := newFixture(t)
	_, err := f.transfers.Create(dto.CreateTransferRequest{Reference: "TRS-003", TransferFrom: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
