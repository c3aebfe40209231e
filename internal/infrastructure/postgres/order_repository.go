package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
	"github.com/jhoicas/cargohub-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL. La lista de
// artículos es propiedad del pedido y se guarda como JSONB.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, warehouse_id, ship_to, bill_to, shipment_id, order_status,
	order_date, request_date, reference, notes, total_amount, items,
	is_archived, created_at, updated_at`

// Create persiste un pedido.
func (r *OrderRepo) Create(o *entity.Order) error {
	query := `
		INSERT INTO orders (warehouse_id, ship_to, bill_to, shipment_id, order_status,
			order_date, request_date, reference, notes, total_amount, items,
			is_archived, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		o.WarehouseID, o.ShipTo, o.BillTo, o.ShipmentID, o.OrderStatus,
		o.OrderDate, o.RequestDate, o.Reference, o.Notes, o.TotalAmount, o.Items,
		o.IsArchived, o.CreatedAt, o.UpdatedAt,
	).Scan(&o.ID)
	if err != nil {
		return fmt.Errorf("create order: %w", translateErr(err))
	}
	return nil
}

// GetByID obtiene un pedido por id; nil si no existe.
func (r *OrderRepo) GetByID(id int64) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// Update reemplaza el pedido completo.
func (r *OrderRepo) Update(o *entity.Order) error {
	query := `
		UPDATE orders
		SET warehouse_id = $2, ship_to = $3, bill_to = $4, shipment_id = $5,
		    order_status = $6, order_date = $7, request_date = $8, reference = $9,
		    notes = $10, total_amount = $11, items = $12, is_archived = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.WarehouseID, o.ShipTo, o.BillTo, o.ShipmentID,
		o.OrderStatus, o.OrderDate, o.RequestDate, o.Reference,
		o.Notes, o.TotalAmount, o.Items, o.IsArchived, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", translateErr(err))
	}
	return nil
}

// List devuelve una página de pedidos ordenada por id.
func (r *OrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

// ListByShipment devuelve los pedidos empaquetados en un envío.
func (r *OrderRepo) ListByShipment(shipmentID int64) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE shipment_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("list orders by shipment: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

// ListByClient devuelve los pedidos donde el cliente es destinatario o pagador.
func (r *OrderRepo) ListByClient(clientID int64) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE ship_to = $1 OR bill_to = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list orders by client: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(
		&o.ID, &o.WarehouseID, &o.ShipTo, &o.BillTo, &o.ShipmentID, &o.OrderStatus,
		&o.OrderDate, &o.RequestDate, &o.Reference, &o.Notes, &o.TotalAmount, &o.Items,
		&o.IsArchived, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func scanOrders(rows pgx.Rows) ([]*entity.Order, error) {
	var out []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
