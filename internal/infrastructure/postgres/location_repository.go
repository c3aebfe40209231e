package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
	"github.com/jhoicas/cargohub-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación de LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persiste una ubicación.
func (r *LocationRepo) Create(l *entity.Location) error {
	query := `
		INSERT INTO locations (warehouse_id, code, name, is_archived, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		l.WarehouseID, l.Code, l.Name, l.IsArchived, l.CreatedAt, l.UpdatedAt,
	).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("create location: %w", translateErr(err))
	}
	return nil
}

// GetByID obtiene una ubicación por id; nil si no existe.
func (r *LocationRepo) GetByID(id int64) (*entity.Location, error) {
	query := `
		SELECT id, warehouse_id, code, name, is_archived, created_at, updated_at
		FROM locations WHERE id = $1`
	var l entity.Location
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.WarehouseID, &l.Code, &l.Name, &l.IsArchived, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

// Update reemplaza la ubicación completa.
func (r *LocationRepo) Update(l *entity.Location) error {
	query := `
		UPDATE locations
		SET warehouse_id = $2, code = $3, name = $4, is_archived = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.WarehouseID, l.Code, l.Name, l.IsArchived, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update location: %w", translateErr(err))
	}
	return nil
}

// List devuelve una página de ubicaciones ordenada por id.
func (r *LocationRepo) List(limit, offset int) ([]*entity.Location, error) {
	query := `
		SELECT id, warehouse_id, code, name, is_archived, created_at, updated_at
		FROM locations ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	return scanLocations(rows)
}

// ListByWarehouse devuelve todas las ubicaciones de una bodega.
func (r *LocationRepo) ListByWarehouse(warehouseID int64) ([]*entity.Location, error) {
	query := `
		SELECT id, warehouse_id, code, name, is_archived, created_at, updated_at
		FROM locations WHERE warehouse_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list locations by warehouse: %w", err)
	}
	defer rows.Close()
	return scanLocations(rows)
}

func scanLocations(rows pgx.Rows) ([]*entity.Location, error) {
	var out []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.WarehouseID, &l.Code, &l.Name, &l.IsArchived, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}
