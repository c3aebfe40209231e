package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
	"github.com/jhoicas/cargohub-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre PostgreSQL.
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, code, description, unit_price, unit_weight_kg,
	item_group_id, item_line_id, item_type_id, supplier_id, supplier_code,
	is_archived, created_at, updated_at`

// Create persiste un artículo.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (code, description, unit_price, unit_weight_kg,
			item_group_id, item_line_id, item_type_id, supplier_id, supplier_code,
			is_archived, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		item.Code, item.Description, item.UnitPrice, item.UnitWeightKg,
		nullableID(item.ItemGroupID), nullableID(item.ItemLineID), nullableID(item.ItemTypeID),
		nullableID(item.SupplierID), item.SupplierCode,
		item.IsArchived, item.CreatedAt, item.UpdatedAt,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("create item: %w", translateErr(err))
	}
	return nil
}

// GetByID obtiene un artículo por id; nil si no existe.
func (r *ItemRepo) GetByID(id int64) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	item, err := scanItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// Update reemplaza el artículo completo.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items
		SET code = $2, description = $3, unit_price = $4, unit_weight_kg = $5,
		    item_group_id = $6, item_line_id = $7, item_type_id = $8,
		    supplier_id = $9, supplier_code = $10, is_archived = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Code, item.Description, item.UnitPrice, item.UnitWeightKg,
		nullableID(item.ItemGroupID), nullableID(item.ItemLineID), nullableID(item.ItemTypeID),
		nullableID(item.SupplierID), item.SupplierCode, item.IsArchived, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", translateErr(err))
	}
	return nil
}

// List devuelve una página de artículos ordenada por id.
func (r *ItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// ListBySupplier devuelve todos los artículos de un proveedor.
func (r *ItemRepo) ListBySupplier(supplierID int64) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE supplier_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list items by supplier: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// CountActiveByClassification cuenta artículos no archivados que referencian
// el catálogo dado.
func (r *ItemRepo) CountActiveByClassification(kind entity.Kind, id int64) (int, error) {
	var column string
	switch kind {
	case entity.KindItemGroup:
		column = "item_group_id"
	case entity.KindItemLine:
		column = "item_line_id"
	case entity.KindItemType:
		column = "item_type_id"
	default:
		return 0, fmt.Errorf("count items: kind %q no es un catálogo de clasificación", kind)
	}
	query := `SELECT count(*) FROM items WHERE ` + column + ` = $1 AND NOT is_archived`
	var n int
	if err := r.q.QueryRow(context.Background(), query, id).Scan(&n); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

// nullableID traduce el cero de Go (sin referencia) a NULL en la DB, para que
// las FK opcionales no fallen.
func nullableID(id int64) *int64 {
	if id <= 0 {
		return nil
	}
	return &id
}

func scanItem(row pgx.Row) (*entity.Item, error) {
	var item entity.Item
	var groupID, lineID, typeID, supplierID *int64
	err := row.Scan(
		&item.ID, &item.Code, &item.Description, &item.UnitPrice, &item.UnitWeightKg,
		&groupID, &lineID, &typeID, &supplierID, &item.SupplierCode,
		&item.IsArchived, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.ItemGroupID = derefID(groupID)
	item.ItemLineID = derefID(lineID)
	item.ItemTypeID = derefID(typeID)
	item.SupplierID = derefID(supplierID)
	return &item, nil
}

func scanItems(rows pgx.Rows) ([]*entity.Item, error) {
	var out []*entity.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func derefID(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}
