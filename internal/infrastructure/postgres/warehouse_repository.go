package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
	"github.com/jhoicas/cargohub-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación de WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Create persiste una bodega.
func (r *WarehouseRepo) Create(w *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (code, name, address, city, country, contact_name, contact_phone, is_archived, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		w.Code, w.Name, w.Address, w.City, w.Country, w.ContactName, w.ContactPhone,
		w.IsArchived, w.CreatedAt, w.UpdatedAt,
	).Scan(&w.ID)
	if err != nil {
		return fmt.Errorf("create warehouse: %w", translateErr(err))
	}
	return nil
}

// GetByID obtiene una bodega por id; nil si no existe.
func (r *WarehouseRepo) GetByID(id int64) (*entity.Warehouse, error) {
	query := `
		SELECT id, code, name, address, city, country, contact_name, contact_phone, is_archived, created_at, updated_at
		FROM warehouses WHERE id = $1`
	var w entity.Warehouse
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&w.ID, &w.Code, &w.Name, &w.Address, &w.City, &w.Country,
		&w.ContactName, &w.ContactPhone, &w.IsArchived, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

// Update reemplaza la bodega completa.
func (r *WarehouseRepo) Update(w *entity.Warehouse) error {
	query := `
		UPDATE warehouses
		SET code = $2, name = $3, address = $4, city = $5, country = $6,
		    contact_name = $7, contact_phone = $8, is_archived = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		w.ID, w.Code, w.Name, w.Address, w.City, w.Country,
		w.ContactName, w.ContactPhone, w.IsArchived, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update warehouse: %w", translateErr(err))
	}
	return nil
}

// List devuelve una página de bodegas ordenada por id.
func (r *WarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	query := `
		SELECT id, code, name, address, city, country, contact_name, contact_phone, is_archived, created_at, updated_at
		FROM warehouses ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()

	var out []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.Code, &w.Name, &w.Address, &w.City, &w.Country,
			&w.ContactName, &w.ContactPhone, &w.IsArchived, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		out = append(out, &w)
	}
	return out, rows.Err()
}
