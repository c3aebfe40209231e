package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cargohub-api/internal/application/engine"
	"github.com/jhoicas/cargohub-api/internal/domain"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
	"github.com/jhoicas/cargohub-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newEngine(t *testing.T) (*engine.Engine, *memory.Store) {
	t.Helper()
	st := memory.NewStore()
	return engine.New(st.Stores()), st
}

// seedInventory crea una fila del libro con los contadores base dados y los
// derivados ya consistentes.
func seedInventory(t *testing.T, st *memory.Store, itemID int64, locations []int64, onHand, ordered, allocated int64) *entity.Inventory {
	t.Helper()
	inv := &entity.Inventory{
		ItemID:         itemID,
		LocationIDs:    locations,
		TotalOnHand:    onHand,
		TotalOrdered:   ordered,
		TotalAllocated: allocated,
	}
	inv.Recalculate()
	require.NoError(t, st.Inventories().Create(inv))
	return inv
}

// requireInvariants verifica los dos invariantes derivados sobre todas las
// filas del libro.
func requireInvariants(t *testing.T, st *memory.Store) {
	t.Helper()
	rows, err := st.Inventories().List(0, 0)
	require.NoError(t, err)
	for _, row := range rows {
		assert.Equal(t, row.TotalOnHand+row.TotalOrdered, row.TotalExpected,
			"fila %d: total_expected debe ser on_hand+ordered", row.ID)
		assert.Equal(t, row.TotalOnHand-row.TotalAllocated, row.TotalAvailable,
			"fila %d: total_available debe ser on_hand-allocated", row.ID)
	}
}

func items(pairs ...int64) []entity.ItemQuantity {
	var out []entity.ItemQuantity
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, entity.ItemQuantity{ItemID: pairs[i], Amount: pairs[i+1]})
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Protocolo de ajuste: reconciliación por diff
// ──────────────────────────────────────────────────────────────────────────────

// Una lista idéntica no debe producir ningún delta sobre el libro.
func TestAdjust_ListaIdenticaEsNoOp(t *testing.T) {
	eng, st := newEngine(t)
	seedInventory(t, st, 1, []int64{10}, 100, 30, 5)

	err := eng.AdjustForItemListChange(entity.KindShipment, items(1, 7), items(1, 7))
	require.NoError(t, err)

	row, err := st.Inventories().GetByID(1)
	require.NoError(t, err)
	assert.EqualValues(t, 30, row.TotalOrdered)
	requireInvariants(t, st)
}

// Agregar un artículo y quitarlo en la siguiente reconciliación debe devolver
// el contador ajustado a su valor original.
func TestAdjust_AltaYBajaSeCancelan(t *testing.T) {
	eng, st := newEngine(t)
	seedInventory(t, st, 1, []int64{10}, 100, 30, 5)

	require.NoError(t, eng.AdjustForItemListChange(entity.KindShipment, nil, items(1, 8)))
	row, err := st.Inventories().GetByID(1)
	require.NoError(t, err)
	assert.EqualValues(t, 38, row.TotalOrdered)

	require.NoError(t, eng.AdjustForItemListChange(entity.KindShipment, items(1, 8), nil))
	row, err = st.Inventories().GetByID(1)
	require.NoError(t, err)
	assert.EqualValues(t, 30, row.TotalOrdered)
	requireInvariants(t, st)
}

// Un artículo común con cantidad distinta aplica exactamente la diferencia.
func TestAdjust_ComunAplicaDiferencia(t *testing.T) {
	eng, st := newEngine(t)
	seedInventory(t, st, 1, []int64{10}, 100, 30, 5)

	err := eng.AdjustForItemListChange(entity.KindShipment, items(1, 10), items(1, 4))
	require.NoError(t, err)

	row, err := st.Inventories().GetByID(1)
	require.NoError(t, err)
	assert.EqualValues(t, 24, row.TotalOrdered)
	assert.EqualValues(t, 124, row.TotalExpected)
	requireInvariants(t, st)
}

// Un artículo sin fila de inventario descarta el delta en silencio.
func TestAdjust_SinFilaDeInventarioEsNoOpSilencioso(t *testing.T) {
	eng, st := newEngine(t)

	err := eng.AdjustForItemListChange(entity.KindShipment, nil, items(99, 50))
	require.NoError(t, err)

	rows, err := st.Inventories().List(0, 0)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

// El delta se aplica sobre exactamente una fila: la de mayor valor del
// contador ajustado; a igual contador gana el menor id.
func TestAdjust_SeleccionaFilaConMayorContador(t *testing.T) {
	eng, st := newEngine(t)
	low := seedInventory(t, st, 1, []int64{10}, 100, 5, 0)
	high := seedInventory(t, st, 1, []int64{20}, 100, 40, 0)

	err := eng.AdjustForItemListChange(entity.KindShipment, nil, items(1, 3))
	require.NoError(t, err)

	gotLow, err := st.Inventories().GetByID(low.ID)
	require.NoError(t, err)
	gotHigh, err := st.Inventories().GetByID(high.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 5, gotLow.TotalOrdered, "la fila de menor contador no debe tocarse")
	assert.EqualValues(t, 43, gotHigh.TotalOrdered)
	requireInvariants(t, st)
}

func TestAdjust_EmpateGanaMenorID(t *testing.T) {
	eng, st := newEngine(t)
	first := seedInventory(t, st, 1, []int64{10}, 100, 40, 0)
	second := seedInventory(t, st, 1, []int64{20}, 100, 40, 0)

	err := eng.AdjustForItemListChange(entity.KindShipment, nil, items(1, 3))
	require.NoError(t, err)

	gotFirst, err := st.Inventories().GetByID(first.ID)
	require.NoError(t, err)
	gotSecond, err := st.Inventories().GetByID(second.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 43, gotFirst.TotalOrdered)
	assert.EqualValues(t, 40, gotSecond.TotalOrdered)
}

// El lado pedido ajusta total_allocated y recalcula total_available.
func TestAdjust_PedidoAjustaTotalAllocated(t *testing.T) {
	eng, st := newEngine(t)
	seedInventory(t, st, 1, []int64{10}, 100, 0, 5)

	err := eng.AdjustForItemListChange(entity.KindOrder, nil, items(1, 15))
	require.NoError(t, err)

	row, err := st.Inventories().GetByID(1)
	require.NoError(t, err)
	assert.EqualValues(t, 20, row.TotalAllocated)
	assert.EqualValues(t, 80, row.TotalAvailable)
	requireInvariants(t, st)
}

func TestAdjust_KindInvalidoRechazado(t *testing.T) {
	eng, _ := newEngine(t)
	err := eng.AdjustForItemListChange(entity.KindTransfer, nil, items(1, 1))
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Guard de dependencias de archivado
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckReferences_RechazaReferenciaNuevaArchivada(t *testing.T) {
	eng, st := newEngine(t)
	require.NoError(t, st.Clients().Create(&entity.Client{ID: 1, Name: "activo"}))
	require.NoError(t, st.Clients().Create(&entity.Client{ID: 2, Name: "archivado", IsArchived: true}))

	bad := &entity.Order{ShipTo: 2, BillTo: 1}
	err := eng.CheckReferences(bad, nil)
	require.ErrorIs(t, err, domain.ErrArchivedReference)

	good := &entity.Order{ShipTo: 1, BillTo: 1}
	require.NoError(t, eng.CheckReferences(good, nil))
}

// Una referencia que ya existía en la versión previa se tolera aunque el
// destino se haya archivado después.
func TestCheckReferences_ToleraReferenciaPreexistente(t *testing.T) {
	eng, st := newEngine(t)
	require.NoError(t, st.Clients().Create(&entity.Client{ID: 1, IsArchived: true}))

	previous := &entity.Order{ID: 7, ShipTo: 1, BillTo: 1}
	current := &entity.Order{ID: 7, ShipTo: 1, BillTo: 1, Notes: "editado"}
	require.NoError(t, eng.CheckReferences(current, previous))
}

func TestCheckReferences_ReferenciaInexistenteFalla(t *testing.T) {
	eng, _ := newEngine(t)
	err := eng.CheckReferences(&entity.Order{ShipTo: 404}, nil)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCheckArchiveAllowed_BloqueaGrupoConArticulosActivos(t *testing.T) {
	eng, st := newEngine(t)
	require.NoError(t, st.Classifications().Create(&entity.Classification{ID: 1, Kind: entity.KindItemGroup, Name: "electrónica"}))
	item := &entity.Item{ID: 1, Code: "IT-1", ItemGroupID: 1}
	require.NoError(t, st.Items().Create(item))

	err := eng.CheckArchiveAllowed(entity.Ref{Kind: entity.KindItemGroup, ID: 1})
	require.ErrorIs(t, err, domain.ErrDependentsStillActive)

	// Archivado el artículo, el grupo queda libre.
	item.IsArchived = true
	require.NoError(t, st.Items().Update(item))
	require.NoError(t, eng.CheckArchiveAllowed(entity.Ref{Kind: entity.KindItemGroup, ID: 1}))
}

// Pedidos, envíos y transferencias son hojas: archivarlos siempre se permite.
func TestCheckArchiveAllowed_HojasSiemprePermitidas(t *testing.T) {
	eng, _ := newEngine(t)
	require.NoError(t, eng.CheckArchiveAllowed(entity.Ref{Kind: entity.KindOrder, ID: 1}))
	require.NoError(t, eng.CheckArchiveAllowed(entity.Ref{Kind: entity.KindShipment, ID: 1}))
	require.NoError(t, eng.CheckArchiveAllowed(entity.Ref{Kind: entity.KindTransfer, ID: 1}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Commit de transferencia
// ──────────────────────────────────────────────────────────────────────────────

func TestCommitTransfer_EscenarioCompleto(t *testing.T) {
	eng, st := newEngine(t)
	const locA, locB = 1, 2
	seedInventory(t, st, 1, []int64{locA}, 100, 10, 5)

	tr := &entity.Transfer{
		TransferFrom:   locA,
		TransferTo:     locB,
		TransferStatus: entity.TransferStatusScheduled,
		Items:          items(1, 20),
	}
	require.NoError(t, st.Transfers().Create(tr))

	got, err := eng.CommitTransfer(tr)
	require.NoError(t, err)
	assert.Equal(t, entity.TransferStatusProcessed, got.TransferStatus)

	row, err := st.Inventories().GetByID(1)
	require.NoError(t, err)
	assert.EqualValues(t, 80, row.TotalOnHand)
	assert.EqualValues(t, 90, row.TotalExpected)
	assert.EqualValues(t, 75, row.TotalAvailable)

	// Segundo commit sobre la transferencia ya procesada: rechazado y el
	// libro queda intacto.
	reloaded, err := st.Transfers().GetByID(tr.ID)
	require.NoError(t, err)
	_, err = eng.CommitTransfer(reloaded)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	row, err = st.Inventories().GetByID(1)
	require.NoError(t, err)
	assert.EqualValues(t, 80, row.TotalOnHand)
	requireInvariants(t, st)
}

// Una fila cuyo conjunto de ubicaciones contiene ambos extremos se ajusta en
// los dos sentidos y queda neta en cero.
func TestCommitTransfer_FilaConAmbosExtremosQuedaNeta(t *testing.T) {
	eng, st := newEngine(t)
	seedInventory(t, st, 1, []int64{1, 2}, 50, 0, 0)

	tr := &entity.Transfer{TransferFrom: 1, TransferTo: 2, TransferStatus: entity.TransferStatusScheduled, Items: items(1, 30)}
	require.NoError(t, st.Transfers().Create(tr))

	_, err := eng.CommitTransfer(tr)
	require.NoError(t, err)

	row, err := st.Inventories().GetByID(1)
	require.NoError(t, err)
	assert.EqualValues(t, 50, row.TotalOnHand)
	requireInvariants(t, st)
}

func TestCommitTransfer_ArchivadaRechazada(t *testing.T) {
	eng, st := newEngine(t)
	seedInventory(t, st, 1, []int64{1}, 50, 0, 0)
	tr := &entity.Transfer{TransferFrom: 1, TransferTo: 2, TransferStatus: entity.TransferStatusScheduled, IsArchived: true, Items: items(1, 5)}
	require.NoError(t, st.Transfers().Create(tr))

	_, err := eng.CommitTransfer(tr)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	row, err := st.Inventories().GetByID(1)
	require.NoError(t, err)
	assert.EqualValues(t, 50, row.TotalOnHand)
}

// ──────────────────────────────────────────────────────────────────────────────
// Máquinas de estado: envío → pedido
// ──────────────────────────────────────────────────────────────────────────────

func TestAdvanceShipment_PropagacionTodosDebenCoincidir(t *testing.T) {
	eng, st := newEngine(t)
	order := &entity.Order{ID: 1, OrderStatus: entity.OrderStatusPacked, ShipmentID: 1}
	require.NoError(t, st.Orders().Create(order))
	shA := &entity.Shipment{ID: 1, OrderID: 1, ShipmentStatus: entity.ShipmentStatusPending}
	shB := &entity.Shipment{ID: 2, OrderID: 1, ShipmentStatus: entity.ShipmentStatusPending}
	require.NoError(t, st.Shipments().Create(shA))
	require.NoError(t, st.Shipments().Create(shB))

	// Solo un envío en Transit: el pedido no cambia (estado intermedio, sin error).
	_, err := eng.AdvanceShipmentStatus(shA)
	require.NoError(t, err)
	got, err := st.Orders().GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPacked, got.OrderStatus)

	// Ambos en Transit: el pedido pasa a Shipped.
	_, err = eng.AdvanceShipmentStatus(shB)
	require.NoError(t, err)
	got, err = st.Orders().GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, got.OrderStatus)

	// Ambos entregados: el pedido pasa a Delivered.
	_, err = eng.AdvanceShipmentStatus(shA)
	require.NoError(t, err)
	_, err = eng.AdvanceShipmentStatus(shB)
	require.NoError(t, err)
	got, err = st.Orders().GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, got.OrderStatus)
}

func TestAdvanceShipment_DeliveredEsTerminal(t *testing.T) {
	eng, st := newEngine(t)
	sh := &entity.Shipment{ID: 1, ShipmentStatus: entity.ShipmentStatusDelivered}
	require.NoError(t, st.Shipments().Create(sh))

	_, err := eng.AdvanceShipmentStatus(sh)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	got, err := st.Shipments().GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, entity.ShipmentStatusDelivered, got.ShipmentStatus)
}

func TestAdvanceShipment_ArchivadoRechazado(t *testing.T) {
	eng, st := newEngine(t)
	sh := &entity.Shipment{ID: 1, ShipmentStatus: entity.ShipmentStatusPending, IsArchived: true}
	require.NoError(t, st.Shipments().Create(sh))

	_, err := eng.AdvanceShipmentStatus(sh)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reempaquetado de pedidos en un envío
// ──────────────────────────────────────────────────────────────────────────────

func TestAssignOrders_ReempaquetaYDesempaqueta(t *testing.T) {
	eng, st := newEngine(t)
	require.NoError(t, st.Shipments().Create(&entity.Shipment{ID: 9, ShipmentStatus: entity.ShipmentStatusPending}))
	require.NoError(t, st.Orders().Create(&entity.Order{ID: 1, ShipmentID: 9, OrderStatus: entity.OrderStatusPacked}))
	require.NoError(t, st.Orders().Create(&entity.Order{ID: 2, ShipmentID: 9, OrderStatus: entity.OrderStatusPacked}))
	require.NoError(t, st.Orders().Create(&entity.Order{ID: 3, ShipmentID: entity.NoShipment, OrderStatus: entity.OrderStatusScheduled}))

	packed, err := eng.AssignOrders(9, []int64{2, 3})
	require.NoError(t, err)
	require.Len(t, packed, 2)

	// El pedido 1 salió del conjunto: desempaquetado.
	got, err := st.Orders().GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusScheduled, got.OrderStatus)
	assert.Equal(t, entity.NoShipment, got.ShipmentID)

	// Los pedidos 2 y 3 quedaron empaquetados en el envío 9.
	for _, id := range []int64{2, 3} {
		got, err = st.Orders().GetByID(id)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusPacked, got.OrderStatus)
		assert.EqualValues(t, 9, got.ShipmentID)
	}
}

// Los pedidos archivados se omiten en ambas mitades del reempaquetado.
func TestAssignOrders_OmiteArchivados(t *testing.T) {
	eng, st := newEngine(t)
	require.NoError(t, st.Shipments().Create(&entity.Shipment{ID: 9, ShipmentStatus: entity.ShipmentStatusPending}))
	require.NoError(t, st.Orders().Create(&entity.Order{ID: 1, ShipmentID: 9, OrderStatus: entity.OrderStatusPacked, IsArchived: true}))
	require.NoError(t, st.Orders().Create(&entity.Order{ID: 2, IsArchived: true}))

	packed, err := eng.AssignOrders(9, []int64{2})
	require.NoError(t, err)
	assert.Empty(t, packed)

	// El archivado empaquetado no se desempaqueta.
	got, err := st.Orders().GetByID(1)
	require.NoError(t, err)
	assert.EqualValues(t, 9, got.ShipmentID)
	assert.Equal(t, entity.OrderStatusPacked, got.OrderStatus)
}

func TestAssignOrders_PedidoInexistenteFalla(t *testing.T) {
	eng, st := newEngine(t)
	require.NoError(t, st.Shipments().Create(&entity.Shipment{ID: 9, ShipmentStatus: entity.ShipmentStatusPending}))
	_, err := eng.AssignOrders(9, []int64{404})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// Empaquetar introduce una referencia nueva al envío: un envío archivado se
// rechaza y ningún pedido cambia de estado.
func TestAssignOrders_EnvioArchivadoRechazado(t *testing.T) {
	eng, st := newEngine(t)
	require.NoError(t, st.Shipments().Create(&entity.Shipment{ID: 9, ShipmentStatus: entity.ShipmentStatusPending, IsArchived: true}))
	require.NoError(t, st.Orders().Create(&entity.Order{ID: 1, ShipmentID: entity.NoShipment, OrderStatus: entity.OrderStatusScheduled}))

	_, err := eng.AssignOrders(9, []int64{1})
	require.ErrorIs(t, err, domain.ErrArchivedReference)

	got, err := st.Orders().GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusScheduled, got.OrderStatus)
	assert.Equal(t, entity.NoShipment, got.ShipmentID)
}

func TestAssignOrders_EnvioInexistenteFalla(t *testing.T) {
	eng, _ := newEngine(t)
	_, err := eng.AssignOrders(9, []int64{1})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Libro de inventario: totales por artículo
// ──────────────────────────────────────────────────────────────────────────────

func TestTotalsForItem_SumaTodasLasFilas(t *testing.T) {
	eng, st := newEngine(t)
	seedInventory(t, st, 1, []int64{1}, 100, 10, 5)
	seedInventory(t, st, 1, []int64{2}, 50, 20, 10)
	seedInventory(t, st, 2, []int64{1}, 999, 0, 0) // otro artículo, fuera de la suma

	totals, err := eng.TotalsForItem(1)
	require.NoError(t, err)
	assert.EqualValues(t, 180, totals.TotalExpected)
	assert.EqualValues(t, 30, totals.TotalOrdered)
	assert.EqualValues(t, 15, totals.TotalAllocated)
	assert.EqualValues(t, 135, totals.TotalAvailable)
}
