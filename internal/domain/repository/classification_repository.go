package repository

import "github.com/jhoicas/cargohub-api/internal/domain/entity"

// ClassificationRepository define el puerto de persistencia para los tres
// catálogos de clasificación (grupos, líneas y tipos de artículo).
type ClassificationRepository interface {
	Create(c *entity.Classification) error
	GetByID(kind entity.Kind, id int64) (*entity.Classification, error)
	Update(c *entity.Classification) error
	List(kind entity.Kind, limit, offset int) ([]*entity.Classification, error)
}
