package repository

import "github.com/jhoicas/cargohub-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id int64) (*entity.Item, error)
	Update(item *entity.Item) error
	List(limit, offset int) ([]*entity.Item, error)
	ListBySupplier(supplierID int64) ([]*entity.Item, error)
	// CountActiveByClassification cuenta artículos no archivados que
	// referencian la clasificación dada (guard de dependientes).
	CountActiveByClassification(kind entity.Kind, id int64) (int, error)
}
