package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
	"github.com/jhoicas/cargohub-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL. Las
// ubicaciones de cada fila se guardan como BIGINT[].
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventoryColumns = `id, item_id, description, item_reference, locations,
	total_on_hand, total_expected, total_ordered, total_allocated, total_available,
	is_archived, created_at, updated_at`

// Create persiste una fila del libro de inventario.
func (r *InventoryRepo) Create(inv *entity.Inventory) error {
	query := `
		INSERT INTO inventories (item_id, description, item_reference, locations,
			total_on_hand, total_expected, total_ordered, total_allocated, total_available,
			is_archived, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		inv.ItemID, inv.Description, inv.ItemReference, inv.LocationIDs,
		inv.TotalOnHand, inv.TotalExpected, inv.TotalOrdered, inv.TotalAllocated, inv.TotalAvailable,
		inv.IsArchived, inv.CreatedAt, inv.UpdatedAt,
	).Scan(&inv.ID)
	if err != nil {
		return fmt.Errorf("create inventory: %w", translateErr(err))
	}
	return nil
}

// GetByID obtiene una fila por id; nil si no existe.
func (r *InventoryRepo) GetByID(id int64) (*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventories WHERE id = $1`
	inv, err := scanInventory(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return inv, nil
}

// Update reemplaza la fila completa, contadores derivados incluidos.
func (r *InventoryRepo) Update(inv *entity.Inventory) error {
	query := `
		UPDATE inventories
		SET item_id = $2, description = $3, item_reference = $4, locations = $5,
		    total_on_hand = $6, total_expected = $7, total_ordered = $8,
		    total_allocated = $9, total_available = $10, is_archived = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.ItemID, inv.Description, inv.ItemReference, inv.LocationIDs,
		inv.TotalOnHand, inv.TotalExpected, inv.TotalOrdered,
		inv.TotalAllocated, inv.TotalAvailable, inv.IsArchived, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory: %w", translateErr(err))
	}
	return nil
}

// List devuelve una página de filas ordenada por id.
func (r *InventoryRepo) List(limit, offset int) ([]*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventories ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventories: %w", err)
	}
	defer rows.Close()
	return scanInventories(rows)
}

// ListByItem devuelve todas las filas de un artículo.
func (r *InventoryRepo) ListByItem(itemID int64) ([]*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventories WHERE item_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list inventories by item: %w", err)
	}
	defer rows.Close()
	return scanInventories(rows)
}

// ListByItemForUpdate igual que ListByItem pero bloqueando las filas en la
// transacción en curso (SELECT FOR UPDATE). Serializa ajustes concurrentes
// sobre el mismo artículo.
func (r *InventoryRepo) ListByItemForUpdate(itemID int64) ([]*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventories WHERE item_id = $1 ORDER BY id FOR UPDATE`
	rows, err := r.q.Query(context.Background(), query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list inventories for update: %w", err)
	}
	defer rows.Close()
	return scanInventories(rows)
}

func scanInventory(row pgx.Row) (*entity.Inventory, error) {
	var inv entity.Inventory
	err := row.Scan(
		&inv.ID, &inv.ItemID, &inv.Description, &inv.ItemReference, &inv.LocationIDs,
		&inv.TotalOnHand, &inv.TotalExpected, &inv.TotalOrdered, &inv.TotalAllocated, &inv.TotalAvailable,
		&inv.IsArchived, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func scanInventories(rows pgx.Rows) ([]*entity.Inventory, error) {
	var out []*entity.Inventory
	for rows.Next() {
		inv, err := scanInventory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}
