package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
	"github.com/jhoicas/cargohub-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación de TransferRepository sobre PostgreSQL. La lista
// de artículos se guarda como JSONB y no cambia después de la creación.
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

const transferColumns = `id, reference, transfer_from, transfer_to, transfer_status,
	items, is_archived, created_at, updated_at`

// Create persiste una transferencia.
func (r *TransferRepo) Create(t *entity.Transfer) error {
	query := `
		INSERT INTO transfers (reference, transfer_from, transfer_to, transfer_status,
			items, is_archived, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		t.Reference, t.TransferFrom, t.TransferTo, t.TransferStatus,
		t.Items, t.IsArchived, t.CreatedAt, t.UpdatedAt,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("create transfer: %w", translateErr(err))
	}
	return nil
}

// GetByID obtiene una transferencia por id; nil si no existe.
func (r *TransferRepo) GetByID(id int64) (*entity.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers WHERE id = $1`
	var t entity.Transfer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Reference, &t.TransferFrom, &t.TransferTo, &t.TransferStatus,
		&t.Items, &t.IsArchived, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	return &t, nil
}

// Update reemplaza la transferencia completa.
func (r *TransferRepo) Update(t *entity.Transfer) error {
	query := `
		UPDATE transfers
		SET reference = $2, transfer_from = $3, transfer_to = $4,
		    transfer_status = $5, items = $6, is_archived = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Reference, t.TransferFrom, t.TransferTo,
		t.TransferStatus, t.Items, t.IsArchived, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update transfer: %w", translateErr(err))
	}
	return nil
}

// List devuelve una página de transferencias ordenada por id.
func (r *TransferRepo) List(limit, offset int) ([]*entity.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	var out []*entity.Transfer
	for rows.Next() {
		var t entity.Transfer
		if err := rows.Scan(&t.ID, &t.Reference, &t.TransferFrom, &t.TransferTo, &t.TransferStatus,
			&t.Items, &t.IsArchived, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}
