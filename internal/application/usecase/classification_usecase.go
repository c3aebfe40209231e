package usecase

import (
	"time"

	"github.com/jhoicas/cargohub-api/internal/application/dto"
	"github.com/jhoicas/cargohub-api/internal/application/engine"
	"github.com/jhoicas/cargohub-api/internal/domain"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
	"github.com/jhoicas/cargohub-api/internal/domain/repository"
)

// ClassificationUseCase administra los tres catálogos de clasificación
// (grupos, líneas y tipos de artículo). El archivado pasa por el guard de
// dependientes: un catálogo con artículos activos no se puede archivar.
type ClassificationUseCase struct {
	repo repository.ClassificationRepository
	eng  *engine.Engine
}

// NewClassificationUseCase construye el caso de uso.
func NewClassificationUseCase(repo repository.ClassificationRepository, eng *engine.Engine) *ClassificationUseCase {
	return &ClassificationUseCase{repo: repo, eng: eng}
}

// Create registra un catálogo nuevo del kind dado.
func (uc *ClassificationUseCase) Create(kind entity.Kind, in dto.CreateClassificationRequest) (*dto.ClassificationResponse, error) {
	if !entity.IsClassificationKind(kind) || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	c := &entity.Classification{
		Kind:        kind,
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return classificationToResponse(c), nil
}

// GetByID devuelve el catálogo o nil si no existe.
func (uc *ClassificationUseCase) GetByID(kind entity.Kind, id int64) (*dto.ClassificationResponse, error) {
	c, err := uc.repo.GetByID(kind, id)
	if err != nil || c == nil {
		return nil, err
	}
	return classificationToResponse(c), nil
}

// List devuelve una página de catálogos del kind dado.
func (uc *ClassificationUseCase) List(kind entity.Kind, p dto.PageRequest) (*dto.ClassificationListResponse, error) {
	list, err := uc.repo.List(kind, p.Limit, p.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ClassificationListResponse{Items: []dto.ClassificationResponse{}, Page: pageMeta(p)}
	for _, c := range list {
		out.Items = append(out.Items, *classificationToResponse(c))
	}
	return out, nil
}

// Update reemplaza nombre y descripción.
func (uc *ClassificationUseCase) Update(kind entity.Kind, id int64, in dto.CreateClassificationRequest) (*dto.ClassificationResponse, error) {
	c, err := uc.repo.GetByID(kind, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.Name = in.Name
	c.Description = in.Description
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return classificationToResponse(c), nil
}

// Archive marca el catálogo como archivado si no tiene artículos activos.
func (uc *ClassificationUseCase) Archive(kind entity.Kind, id int64) error {
	c, err := uc.repo.GetByID(kind, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	if err := uc.eng.CheckArchiveAllowed(entity.Ref{Kind: kind, ID: id}); err != nil {
		return err
	}
	c.IsArchived = true
	c.UpdatedAt = time.Now()
	return uc.repo.Update(c)
}

// Unarchive revierte el archivado.
func (uc *ClassificationUseCase) Unarchive(kind entity.Kind, id int64) error {
	c, err := uc.repo.GetByID(kind, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	c.IsArchived = false
	c.UpdatedAt = time.Now()
	return uc.repo.Update(c)
}

func classificationToResponse(c *entity.Classification) *dto.ClassificationResponse {
	return &dto.ClassificationResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsArchived:  c.IsArchived,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
