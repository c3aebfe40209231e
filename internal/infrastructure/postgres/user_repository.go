package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
	"github.com/jhoicas/cargohub-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository sobre PostgreSQL. Los permisos se
// guardan como TEXT[].
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, app_name, key_hash, role, permissions, read_only,
	is_archived, created_at, updated_at`

// Create persiste una aplicación cliente.
func (r *UserRepo) Create(u *entity.User) error {
	query := `
		INSERT INTO users (app_name, key_hash, role, permissions, read_only, is_archived, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		u.AppName, u.KeyHash, u.Role, u.Permissions, u.ReadOnly,
		u.IsArchived, u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)
	if err != nil {
		return fmt.Errorf("create user: %w", translateErr(err))
	}
	return nil
}

// GetByID obtiene una aplicación por id; nil si no existe.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(query, id)
}

// GetByAppName obtiene una aplicación por nombre; nil si no existe.
func (r *UserRepo) GetByAppName(appName string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE app_name = $1`
	return r.getOne(query, appName)
}

func (r *UserRepo) getOne(query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.AppName, &u.KeyHash, &u.Role, &u.Permissions, &u.ReadOnly,
		&u.IsArchived, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Update reemplaza la aplicación completa.
func (r *UserRepo) Update(u *entity.User) error {
	query := `
		UPDATE users
		SET app_name = $2, key_hash = $3, role = $4, permissions = $5,
		    read_only = $6, is_archived = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.AppName, u.KeyHash, u.Role, u.Permissions,
		u.ReadOnly, u.IsArchived, u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", translateErr(err))
	}
	return nil
}

// List devuelve una página de aplicaciones ordenada por id.
func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.AppName, &u.KeyHash, &u.Role, &u.Permissions, &u.ReadOnly,
			&u.IsArchived, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}
