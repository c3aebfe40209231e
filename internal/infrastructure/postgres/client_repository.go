package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
	"github.com/jhoicas/cargohub-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un cliente.
func (r *ClientRepo) Create(c *entity.Client) error {
	query := `
		INSERT INTO clients (name, address, city, country, contact_name, contact_email, is_archived, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		c.Name, c.Address, c.City, c.Country, c.ContactName, c.ContactEmail,
		c.IsArchived, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("create client: %w", translateErr(err))
	}
	return nil
}

// GetByID obtiene un cliente por id; nil si no existe.
func (r *ClientRepo) GetByID(id int64) (*entity.Client, error) {
	query := `
		SELECT id, name, address, city, country, contact_name, contact_email, is_archived, created_at, updated_at
		FROM clients WHERE id = $1`
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Address, &c.City, &c.Country,
		&c.ContactName, &c.ContactEmail, &c.IsArchived, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// Update reemplaza el cliente completo.
func (r *ClientRepo) Update(c *entity.Client) error {
	query := `
		UPDATE clients
		SET name = $2, address = $3, city = $4, country = $5,
		    contact_name = $6, contact_email = $7, is_archived = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Address, c.City, c.Country,
		c.ContactName, c.ContactEmail, c.IsArchived, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", translateErr(err))
	}
	return nil
}

// List devuelve una página de clientes ordenada por id.
func (r *ClientRepo) List(limit, offset int) ([]*entity.Client, error) {
	query := `
		SELECT id, name, address, city, country, contact_name, contact_email, is_archived, created_at, updated_at
		FROM clients ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var out []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.City, &c.Country,
			&c.ContactName, &c.ContactEmail, &c.IsArchived, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
