package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/cargohub-api/internal/application/dto"
	"github.com/jhoicas/cargohub-api/internal/application/engine"
	"github.com/jhoicas/cargohub-api/internal/domain"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
	"github.com/jhoicas/cargohub-api/internal/domain/repository"
)

// TransferUseCase administra transferencias entre ubicaciones. La lista de
// artículos queda fija al crear; el commit mueve el stock y es terminal.
type TransferUseCase struct {
	repo repository.TransferRepository
	eng  *engine.Engine
	tx   engine.TxRunner
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(repo repository.TransferRepository, eng *engine.Engine, tx engine.TxRunner) *TransferUseCase {
	return &TransferUseCase{repo: repo, eng: eng, tx: tx}
}

// Create registra una transferencia nueva en estado Scheduled.
func (uc *TransferUseCase) Create(in dto.CreateTransferRequest) (*dto.TransferResponse, error) {
	if in.TransferFrom <= 0 || in.TransferTo <= 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	tr := &entity.Transfer{
		Reference:      in.Reference,
		TransferFrom:   in.TransferFrom,
		TransferTo:     in.TransferTo,
		TransferStatus: entity.TransferStatusScheduled,
		Items:          toItemQuantities(in.Items),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.eng.CheckReferences(tr, nil); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(tr); err != nil {
		return nil, err
	}
	return transferToResponse(tr), nil
}

// GetByID devuelve la transferencia o nil si no existe.
func (uc *TransferUseCase) GetByID(id int64) (*dto.TransferResponse, error) {
	tr, err := uc.repo.GetByID(id)
	if err != nil || tr == nil {
		return nil, err
	}
	return transferToResponse(tr), nil
}

// List devuelve una página de transferencias.
func (uc *TransferUseCase) List(p dto.PageRequest) (*dto.TransferListResponse, error) {
	list, err := uc.repo.List(p.Limit, p.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.TransferListResponse{Items: []dto.TransferResponse{}, Page: pageMeta(p)}
	for _, tr := range list {
		out.Items = append(out.Items, *transferToResponse(tr))
	}
	return out, nil
}

// ListItems devuelve la lista de artículos de la transferencia.
func (uc *TransferUseCase) ListItems(id int64) ([]dto.ItemQuantityDTO, error) {
	tr, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tr == nil {
		return nil, domain.ErrNotFound
	}
	return toItemQuantityDTOs(tr.Items), nil
}

// Update reemplaza referencia y extremos de una transferencia todavía
// programada y no archivada. La lista de artículos no se toca: es inmutable
// tras la creación.
func (uc *TransferUseCase) Update(id int64, in dto.CreateTransferRequest) (*dto.TransferResponse, error) {
	prev, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if prev == nil {
		return nil, domain.ErrNotFound
	}
	if prev.IsArchived || prev.TransferStatus != entity.TransferStatusScheduled {
		return nil, domain.ErrInvalidTransition
	}
	next := *prev
	next.Reference = in.Reference
	next.TransferFrom = in.TransferFrom
	next.TransferTo = in.TransferTo
	next.UpdatedAt = time.Now()
	if err := uc.eng.CheckReferences(&next, prev); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(&next); err != nil {
		return nil, err
	}
	return transferToResponse(&next), nil
}

// Commit procesa la transferencia dentro de una transacción: mueve el stock
// entre las filas del libro que contienen cada extremo y la marca Processed.
func (uc *TransferUseCase) Commit(ctx context.Context, id int64) (*dto.TransferResponse, error) {
	var out *dto.TransferResponse
	err := uc.tx.Run(ctx, func(s engine.Stores) error {
		eng := engine.New(s)
		tr, err := s.Transfers.GetByID(id)
		if err != nil {
			return err
		}
		if tr == nil {
			return domain.ErrNotFound
		}
		committed, err := eng.CommitTransfer(tr)
		if err != nil {
			return err
		}
		out = transferToResponse(committed)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Archive marca la transferencia como archivada.
func (uc *TransferUseCase) Archive(id int64) error {
	return uc.setArchived(id, true)
}

// Unarchive revierte el archivado revalidando las referencias.
func (uc *TransferUseCase) Unarchive(id int64) error {
	tr, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if tr == nil {
		return domain.ErrNotFound
	}
	if err := uc.eng.CheckReferences(tr, nil); err != nil {
		return err
	}
	tr.IsArchived = false
	tr.UpdatedAt = time.Now()
	return uc.repo.Update(tr)
}

func (uc *TransferUseCase) setArchived(id int64, archived bool) error {
	tr, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if tr == nil {
		return domain.ErrNotFound
	}
	tr.IsArchived = archived
	tr.UpdatedAt = time.Now()
	return uc.repo.Update(tr)
}

func transferToResponse(tr *entity.Transfer) *dto.TransferResponse {
	return &dto.TransferResponse{
		ID:             tr.ID,
		Reference:      tr.Reference,
		TransferFrom:   tr.TransferFrom,
		TransferTo:     tr.TransferTo,
		TransferStatus: tr.TransferStatus,
		Items:          toItemQuantityDTOs(tr.Items),
		IsArchived:     tr.IsArchived,
		CreatedAt:      tr.CreatedAt,
		UpdatedAt:      tr.UpdatedAt,
	}
}
