package repository

import "github.com/jhoicas/cargohub-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para las aplicaciones
// cliente de la API y sus claves.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByAppName(appName string) (*entity.User, error)
	Update(u *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
}
