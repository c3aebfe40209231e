package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
	"github.com/jhoicas/cargohub-api/internal/domain/repository"
)

var _ repository.ClassificationRepository = (*ClassificationRepo)(nil)

// ClassificationRepo implementación de ClassificationRepository sobre
// PostgreSQL. Los tres catálogos comparten tabla, discriminados por kind.
type ClassificationRepo struct {
	q Querier
}

// NewClassificationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClassificationRepository(q Querier) *ClassificationRepo {
	return &ClassificationRepo{q: q}
}

// Create persiste un registro de clasificación.
func (r *ClassificationRepo) Create(c *entity.Classification) error {
	query := `
		INSERT INTO classifications (kind, name, description, is_archived, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		c.Kind, c.Name, c.Description, c.IsArchived, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("create classification: %w", translateErr(err))
	}
	return nil
}

// GetByID obtiene un registro por kind e id; nil si no existe.
func (r *ClassificationRepo) GetByID(kind entity.Kind, id int64) (*entity.Classification, error) {
	query := `
		SELECT id, kind, name, description, is_archived, created_at, updated_at
		FROM classifications WHERE kind = $1 AND id = $2`
	var c entity.Classification
	err := r.q.QueryRow(context.Background(), query, kind, id).Scan(
		&c.ID, &c.Kind, &c.Name, &c.Description, &c.IsArchived, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get classification: %w", err)
	}
	return &c, nil
}

// Update reemplaza el registro completo.
func (r *ClassificationRepo) Update(c *entity.Classification) error {
	query := `
		UPDATE classifications
		SET name = $3, description = $4, is_archived = $5, updated_at = $6
		WHERE kind = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		c.Kind, c.ID, c.Name, c.Description, c.IsArchived, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update classification: %w", translateErr(err))
	}
	return nil
}

// List devuelve una página del catálogo indicado, ordenada por id.
func (r *ClassificationRepo) List(kind entity.Kind, limit, offset int) ([]*entity.Classification, error) {
	query := `
		SELECT id, kind, name, description, is_archived, created_at, updated_at
		FROM classifications WHERE kind = $1
		ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, kind, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list classifications: %w", err)
	}
	defer rows.Close()

	var out []*entity.Classification
	for rows.Next() {
		var c entity.Classification
		if err := rows.Scan(&c.ID, &c.Kind, &c.Name, &c.Description, &c.IsArchived, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan classification: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
