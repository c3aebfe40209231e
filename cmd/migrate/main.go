// Importador único del formato heredado v1: un archivo JSON por kind
// (data/item_groups.json, data/items.json, ...) con un array de registros.
// Los ids heredados se conservan tal cual para no romper las referencias
// cruzadas; al final se realinean las secuencias de cada tabla.
//
// Uso:
//
//	migrate -data ./data
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
	"github.com/jhoicas/cargohub-api/internal/infrastructure/postgres"
	"github.com/jhoicas/cargohub-api/pkg/config"
	"github.com/jhoicas/cargohub-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// legacyTime tolera los formatos de fecha que conviven en los archivos v1.
type legacyTime struct {
	time.Time
}

var legacyTimeFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (t *legacyTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, f := range legacyTimeFormats {
		if parsed, err := time.Parse(f, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("fecha heredada no reconocida: %q", s)
}

// orNow devuelve la fecha o now si el archivo heredado no la traía.
func (t legacyTime) orNow(now time.Time) time.Time {
	if t.IsZero() {
		return now
	}
	return t.Time
}

// ─────────────────────────────────────────────────────────────────────────────
// Registros heredados (snake_case, ids explícitos)
// ─────────────────────────────────────────────────────────────────────────────

type legacyClassification struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	IsArchived  bool       `json:"is_archived"`
	CreatedAt   legacyTime `json:"created_at"`
	UpdatedAt   legacyTime `json:"updated_at"`
}

type legacySupplier struct {
	ID          int64      `json:"id"`
	Code        string     `json:"code"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	Country     string     `json:"country"`
	ContactName string     `json:"contact_name"`
	Phone       string     `json:"phonenumber"`
	IsArchived  bool       `json:"is_archived"`
	CreatedAt   legacyTime `json:"created_at"`
	UpdatedAt   legacyTime `json:"updated_at"`
}

type legacyClient struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Address      string     `json:"address"`
	City         string     `json:"city"`
	Country      string     `json:"country"`
	ContactName  string     `json:"contact_name"`
	ContactEmail string     `json:"contact_email"`
	IsArchived   bool       `json:"is_archived"`
	CreatedAt    legacyTime `json:"created_at"`
	UpdatedAt    legacyTime `json:"updated_at"`
}

type legacyWarehouse struct {
	ID           int64      `json:"id"`
	Code         string     `json:"code"`
	Name         string     `json:"name"`
	Address      string     `json:"address"`
	City         string     `json:"city"`
	Country      string     `json:"country"`
	ContactName  string     `json:"contact_name"`
	ContactPhone string     `json:"contact_phone"`
	IsArchived   bool       `json:"is_archived"`
	CreatedAt    legacyTime `json:"created_at"`
	UpdatedAt    legacyTime `json:"updated_at"`
}

type legacyLocation struct {
	ID          int64      `json:"id"`
	WarehouseID int64      `json:"warehouse_id"`
	Code        string     `json:"code"`
	Name        string     `json:"name"`
	IsArchived  bool       `json:"is_archived"`
	CreatedAt   legacyTime `json:"created_at"`
	UpdatedAt   legacyTime `json:"updated_at"`
}

type legacyItem struct {
	ID           int64           `json:"id"`
	Code         string          `json:"code"`
	Description  string          `json:"description"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	UnitWeightKg decimal.Decimal `json:"unit_weight_kg"`
	ItemGroupID  int64           `json:"item_group"`
	ItemLineID   int64           `json:"item_line"`
	ItemTypeID   int64           `json:"item_type"`
	SupplierID   int64           `json:"supplier_id"`
	SupplierCode string          `json:"supplier_code"`
	IsArchived   bool            `json:"is_archived"`
	CreatedAt    legacyTime      `json:"created_at"`
	UpdatedAt    legacyTime      `json:"updated_at"`
}

type legacyInventory struct {
	ID             int64      `json:"id"`
	ItemID         int64      `json:"item_id"`
	Description    string     `json:"description"`
	ItemReference  string     `json:"item_reference"`
	LocationIDs    []int64    `json:"locations"`
	TotalOnHand    int64      `json:"total_on_hand"`
	TotalOrdered   int64      `json:"total_ordered"`
	TotalAllocated int64      `json:"total_allocated"`
	IsArchived     bool       `json:"is_archived"`
	CreatedAt      legacyTime `json:"created_at"`
	UpdatedAt      legacyTime `json:"updated_at"`
}

type legacyOrder struct {
	ID          int64                 `json:"id"`
	WarehouseID int64                 `json:"warehouse_id"`
	ShipTo      int64                 `json:"ship_to"`
	BillTo      int64                 `json:"bill_to"`
	ShipmentID  int64                 `json:"shipment_id"`
	OrderStatus string                `json:"order_status"`
	OrderDate   legacyTime            `json:"order_date"`
	RequestDate legacyTime            `json:"request_date"`
	Reference   string                `json:"reference"`
	Notes       string                `json:"notes"`
	TotalAmount decimal.Decimal       `json:"total_amount"`
	Items       []entity.ItemQuantity `json:"items"`
	IsArchived  bool                  `json:"is_archived"`
	CreatedAt   legacyTime            `json:"created_at"`
	UpdatedAt   legacyTime            `json:"updated_at"`
}

type legacyShipment struct {
	ID                 int64                 `json:"id"`
	OrderID            int64                 `json:"order_id"`
	ShipmentStatus     string                `json:"shipment_status"`
	ShipmentDate       legacyTime            `json:"shipment_date"`
	CarrierCode        string                `json:"carrier_code"`
	ServiceCode        string                `json:"service_code"`
	TotalPackageCount  int64                 `json:"total_package_count"`
	TotalPackageWeight decimal.Decimal       `json:"total_package_weight"`
	Items              []entity.ItemQuantity `json:"items"`
	IsArchived         bool                  `json:"is_archived"`
	CreatedAt          legacyTime            `json:"created_at"`
	UpdatedAt          legacyTime            `json:"updated_at"`
}

type legacyTransfer struct {
	ID             int64                 `json:"id"`
	Reference      string                `json:"reference"`
	TransferFrom   int64                 `json:"transfer_from"`
	TransferTo     int64                 `json:"transfer_to"`
	TransferStatus string                `json:"transfer_status"`
	Items          []entity.ItemQuantity `json:"items"`
	IsArchived     bool                  `json:"is_archived"`
	CreatedAt      legacyTime            `json:"created_at"`
	UpdatedAt      legacyTime            `json:"updated_at"`
}

// ─────────────────────────────────────────────────────────────────────────────

func main() {
	dataDir := flag.String("data", "./data", "directorio con los archivos JSON heredados")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	log.Info().Str("dir", *dataDir).Msg("iniciando importación del formato v1")
	start := time.Now()

	// Toda la importación corre en una transacción: o entra completa o no
	// entra nada. El orden respeta el grafo de dependencias.
	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir transacción")
	}
	defer tx.Rollback(ctx)

	imp := &importer{ctx: ctx, tx: tx, dir: *dataDir, log: log}

	imp.classifications("item_groups.json", entity.KindItemGroup)
	imp.classifications("item_lines.json", entity.KindItemLine)
	imp.classifications("item_types.json", entity.KindItemType)
	imp.suppliers()
	imp.items()
	imp.warehouses()
	imp.locations()
	imp.inventories()
	imp.clients()
	imp.orders()
	imp.shipments()
	imp.transfers()
	imp.resetSequences()

	if imp.err != nil {
		log.Fatal().Err(imp.err).Msg("importación abortada, ningún registro quedó escrito")
	}
	if err := tx.Commit(ctx); err != nil {
		log.Fatal().Err(err).Msg("commit de la importación")
	}

	log.Info().
		Int("total", imp.total).
		Dur("elapsed", time.Since(start)).
		Msg("importación completada")
}

// importer acumula el primer error y lo propaga: tras un fallo los pasos
// siguientes no hacen nada.
type importer struct {
	ctx   context.Context
	tx    pgx.Tx
	dir   string
	log   *logger.Logger
	err   error
	total int
}

// load decodifica el array del archivo. Un archivo ausente se trata como
// array vacío: los volcados v1 parciales son habituales.
func load[T any](imp *importer, name string) []T {
	if imp.err != nil {
		return nil
	}
	b, err := os.ReadFile(filepath.Join(imp.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			imp.log.Warn().Str("file", name).Msg("archivo ausente, se omite")
			return nil
		}
		imp.err = fmt.Errorf("leer %s: %w", name, err)
		return nil
	}
	var out []T
	if err := json.Unmarshal(b, &out); err != nil {
		imp.err = fmt.Errorf("decodificar %s: %w", name, err)
		return nil
	}
	return out
}

func (imp *importer) done(kind string, n int) {
	if imp.err != nil {
		return
	}
	imp.total += n
	imp.log.Info().Str("kind", kind).Int("count", n).Msg("importado")
}

func (imp *importer) exec(sql string, args ...any) {
	if imp.err != nil {
		return
	}
	if _, err := imp.tx.Exec(imp.ctx, sql, args...); err != nil {
		imp.err = err
	}
}

func (imp *importer) classifications(file string, kind entity.Kind) {
	rows := load[legacyClassification](imp, file)
	now := time.Now()
	for _, r := range rows {
		imp.exec(`
			INSERT INTO classifications (id, kind, name, description, is_archived, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			r.ID, kind, r.Name, r.Description, r.IsArchived,
			r.CreatedAt.orNow(now), r.UpdatedAt.orNow(now))
	}
	imp.done(string(kind), len(rows))
}

func (imp *importer) suppliers() {
	rows := load[legacySupplier](imp, "suppliers.json")
	now := time.Now()
	for _, r := range rows {
		imp.exec(`
			INSERT INTO suppliers (id, code, name, address, city, country, contact_name, phone, is_archived, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			r.ID, r.Code, r.Name, r.Address, r.City, r.Country, r.ContactName, r.Phone,
			r.IsArchived, r.CreatedAt.orNow(now), r.UpdatedAt.orNow(now))
	}
	imp.done("suppliers", len(rows))
}

func (imp *importer) items() {
	rows := load[legacyItem](imp, "items.json")
	now := time.Now()
	for _, r := range rows {
		imp.exec(`
			INSERT INTO items (id, code, description, unit_price, unit_weight_kg,
				item_group_id, item_line_id, item_type_id, supplier_id, supplier_code,
				is_archived, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			r.ID, r.Code, r.Description, r.UnitPrice, r.UnitWeightKg,
			nullable(r.ItemGroupID), nullable(r.ItemLineID), nullable(r.ItemTypeID),
			nullable(r.SupplierID), r.SupplierCode,
			r.IsArchived, r.CreatedAt.orNow(now), r.UpdatedAt.orNow(now))
	}
	imp.done("items", len(rows))
}

func (imp *importer) warehouses() {
	rows := load[legacyWarehouse](imp, "warehouses.json")
	now := time.Now()
	for _, r := range rows {
		imp.exec(`
			INSERT INTO warehouses (id, code, name, address, city, country, contact_name, contact_phone, is_archived, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			r.ID, r.Code, r.Name, r.Address, r.City, r.Country, r.ContactName, r.ContactPhone,
			r.IsArchived, r.CreatedAt.orNow(now), r.UpdatedAt.orNow(now))
	}
	imp.done("warehouses", len(rows))
}

func (imp *importer) locations() {
	rows := load[legacyLocation](imp, "locations.json")
	now := time.Now()
	for _, r := range rows {
		imp.exec(`
			INSERT INTO locations (id, warehouse_id, code, name, is_archived, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			r.ID, r.WarehouseID, r.Code, r.Name,
			r.IsArchived, r.CreatedAt.orNow(now), r.UpdatedAt.orNow(now))
	}
	imp.done("locations", len(rows))
}

func (imp *importer) inventories() {
	rows := load[legacyInventory](imp, "inventories.json")
	now := time.Now()
	for _, r := range rows {
		// Los derivados se recalculan aquí: algunos volcados v1 los traen
		// desincronizados.
		inv := entity.Inventory{
			TotalOnHand:    r.TotalOnHand,
			TotalOrdered:   r.TotalOrdered,
			TotalAllocated: r.TotalAllocated,
		}
		inv.Recalculate()
		locs := r.LocationIDs
		if locs == nil {
			locs = []int64{}
		}
		imp.exec(`
			INSERT INTO inventories (id, item_id, description, item_reference, locations,
				total_on_hand, total_expected, total_ordered, total_allocated, total_available,
				is_archived, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			r.ID, r.ItemID, r.Description, r.ItemReference, locs,
			inv.TotalOnHand, inv.TotalExpected, inv.TotalOrdered, inv.TotalAllocated, inv.TotalAvailable,
			r.IsArchived, r.CreatedAt.orNow(now), r.UpdatedAt.orNow(now))
	}
	imp.done("inventories", len(rows))
}

func (imp *importer) clients() {
	rows := load[legacyClient](imp, "clients.json")
	now := time.Now()
	for _, r := range rows {
		imp.exec(`
			INSERT INTO clients (id, name, address, city, country, contact_name, contact_email, is_archived, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			r.ID, r.Name, r.Address, r.City, r.Country, r.ContactName, r.ContactEmail,
			r.IsArchived, r.CreatedAt.orNow(now), r.UpdatedAt.orNow(now))
	}
	imp.done("clients", len(rows))
}

func (imp *importer) orders() {
	rows := load[legacyOrder](imp, "orders.json")
	now := time.Now()
	for _, r := range rows {
		shipmentID := r.ShipmentID
		if shipmentID == 0 {
			shipmentID = entity.NoShipment
		}
		items := r.Items
		if items == nil {
			items = []entity.ItemQuantity{}
		}
		imp.exec(`
			INSERT INTO orders (id, warehouse_id, ship_to, bill_to, shipment_id, order_status,
				order_date, request_date, reference, notes, total_amount, items,
				is_archived, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
			r.ID, r.WarehouseID, r.ShipTo, r.BillTo, shipmentID, r.OrderStatus,
			r.OrderDate.orNow(now), r.RequestDate.orNow(now), r.Reference, r.Notes, r.TotalAmount, items,
			r.IsArchived, r.CreatedAt.orNow(now), r.UpdatedAt.orNow(now))
	}
	imp.done("orders", len(rows))
}

func (imp *importer) shipments() {
	rows := load[legacyShipment](imp, "shipments.json")
	now := time.Now()
	for _, r := range rows {
		items := r.Items
		if items == nil {
			items = []entity.ItemQuantity{}
		}
		imp.exec(`
			INSERT INTO shipments (id, order_id, shipment_status, shipment_date,
				carrier_code, service_code, total_package_count, total_package_weight, items,
				is_archived, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			r.ID, r.OrderID, r.ShipmentStatus, r.ShipmentDate.orNow(now),
			r.CarrierCode, r.ServiceCode, r.TotalPackageCount, r.TotalPackageWeight, items,
			r.IsArchived, r.CreatedAt.orNow(now), r.UpdatedAt.orNow(now))
	}
	imp.done("shipments", len(rows))
}

func (imp *importer) transfers() {
	rows := load[legacyTransfer](imp, "transfers.json")
	now := time.Now()
	for _, r := range rows {
		items := r.Items
		if items == nil {
			items = []entity.ItemQuantity{}
		}
		imp.exec(`
			INSERT INTO transfers (id, reference, transfer_from, transfer_to, transfer_status,
				items, is_archived, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			r.ID, r.Reference, r.TransferFrom, r.TransferTo, r.TransferStatus,
			items, r.IsArchived, r.CreatedAt.orNow(now), r.UpdatedAt.orNow(now))
	}
	imp.done("transfers", len(rows))
}

// resetSequences realinea las secuencias BIGSERIAL tras insertar con ids
// explícitos.
func (imp *importer) resetSequences() {
	for _, table := range []string{
		"classifications", "suppliers", "items", "warehouses", "locations",
		"inventories", "clients", "orders", "shipments", "transfers",
	} {
		imp.exec(fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%s', 'id'), GREATEST((SELECT COALESCE(MAX(id), 0) FROM %s), 1))`,
			table, table))
	}
}

// nullable convierte un id heredado en cero a NULL.
func nullable(id int64) any {
	if id <= 0 {
		return nil
	}
	return id
}
