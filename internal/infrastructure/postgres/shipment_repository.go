package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
	"github.com/jhoicas/cargohub-api/internal/domain/repository"
)

var _ repository.ShipmentRepository = (*ShipmentRepo)(nil)

// ShipmentRepo implementación de ShipmentRepository sobre PostgreSQL. La lista
// de artículos es propiedad del envío y se guarda como JSONB.
type ShipmentRepo struct {
	q Querier
}

// NewShipmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewShipmentRepository(q Querier) *ShipmentRepo {
	return &ShipmentRepo{q: q}
}

const shipmentColumns = `id, order_id, shipment_status, shipment_date,
	carrier_code, service_code, total_package_count, total_package_weight, items,
	is_archived, created_at, updated_at`

// Create persiste un envío.
func (r *ShipmentRepo) Create(s *entity.Shipment) error {
	query := `
		INSERT INTO shipments (order_id, shipment_status, shipment_date,
			carrier_code, service_code, total_package_count, total_package_weight, items,
			is_archived, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		s.OrderID, s.ShipmentStatus, s.ShipmentDate,
		s.CarrierCode, s.ServiceCode, s.TotalPackageCount, s.TotalPackageWeight, s.Items,
		s.IsArchived, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("create shipment: %w", translateErr(err))
	}
	return nil
}

// GetByID obtiene un envío por id; nil si no existe.
func (r *ShipmentRepo) GetByID(id int64) (*entity.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE id = $1`
	s, err := scanShipment(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return s, nil
}

// Update reemplaza el envío completo.
func (r *ShipmentRepo) Update(s *entity.Shipment) error {
	query := `
		UPDATE shipments
		SET order_id = $2, shipment_status = $3, shipment_date = $4,
		    carrier_code = $5, service_code = $6, total_package_count = $7,
		    total_package_weight = $8, items = $9, is_archived = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.OrderID, s.ShipmentStatus, s.ShipmentDate,
		s.CarrierCode, s.ServiceCode, s.TotalPackageCount,
		s.TotalPackageWeight, s.Items, s.IsArchived, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update shipment: %w", translateErr(err))
	}
	return nil
}

// List devuelve una página de envíos ordenada por id.
func (r *ShipmentRepo) List(limit, offset int) ([]*entity.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	defer rows.Close()
	return scanShipments(rows)
}

// ListByOrder devuelve todos los envíos de un pedido.
func (r *ShipmentRepo) ListByOrder(orderID int64) ([]*entity.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE order_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list shipments by order: %w", err)
	}
	defer rows.Close()
	return scanShipments(rows)
}

func scanShipment(row pgx.Row) (*entity.Shipment, error) {
	var s entity.Shipment
	err := row.Scan(
		&s.ID, &s.OrderID, &s.ShipmentStatus, &s.ShipmentDate,
		&s.CarrierCode, &s.ServiceCode, &s.TotalPackageCount, &s.TotalPackageWeight, &s.Items,
		&s.IsArchived, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func scanShipments(rows pgx.Rows) ([]*entity.Shipment, error) {
	var out []*entity.Shipment
	for rows.Next() {
		s, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shipment: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
