package usecase

import (
	"time"

	"github.com/jhoicas/cargohub-api/internal/application/dto"
	"github.com/jhoicas/cargohub-api/internal/domain"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
	"github.com/jhoicas/cargohub-api/internal/domain/repository"
)

// ClientUseCase administra clientes destinatarios/pagadores de pedidos.
type ClientUseCase struct {
	repo   repository.ClientRepository
	orders repository.OrderRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository, orders repository.OrderRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo, orders: orders}
}

// Create registra un cliente.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	c := &entity.Client{
		Name:         in.Name,
		Address:      in.Address,
		City:         in.City,
		Country:      in.Country,
		ContactName:  in.ContactName,
		ContactEmail: in.ContactEmail,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return clientToResponse(c), nil
}

// GetByID devuelve el cliente o nil si no existe.
func (uc *ClientUseCase) GetByID(id int64) (*dto.ClientResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil || c == nil {
		return nil, err
	}
	return clientToResponse(c), nil
}

// List devuelve una página de clientes.
func (uc *ClientUseCase) List(p dto.PageRequest) (*dto.ClientListResponse, error) {
	list, err := uc.repo.List(p.Limit, p.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ClientListResponse{Items: []dto.ClientResponse{}, Page: pageMeta(p)}
	for _, c := range list {
		out.Items = append(out.Items, *clientToResponse(c))
	}
	return out, nil
}

// ListOrders devuelve los pedidos donde el cliente es destinatario o pagador.
func (uc *ClientUseCase) ListOrders(id int64) ([]dto.OrderResponse, error) {
	orders, err := uc.orders.ListByClient(id)
	if err != nil {
		return nil, err
	}
	out := []dto.OrderResponse{}
	for _, o := range orders {
		out = append(out, *orderToResponse(o))
	}
	return out, nil
}

// Update reemplaza los campos del cliente.
func (uc *ClientUseCase) Update(id int64, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.Name = in.Name
	c.Address = in.Address
	c.City = in.City
	c.Country = in.Country
	c.ContactName = in.ContactName
	c.ContactEmail = in.ContactEmail
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return clientToResponse(c), nil
}

// Archive marca el cliente como archivado.
func (uc *ClientUseCase) Archive(id int64) error {
	return uc.setArchived(id, true)
}

// Unarchive revierte el archivado.
func (uc *ClientUseCase) Unarchive(id int64) error {
	return uc.setArchived(id, false)
}

func (uc *ClientUseCase) setArchived(id int64, archived bool) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	c.IsArchived = archived
	c.UpdatedAt = time.Now()
	return uc.repo.Update(c)
}

func clientToResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:           c.ID,
		Name:         c.Name,
		Address:      c.Address,
		City:         c.City,
		Country:      c.Country,
		ContactName:  c.ContactName,
		ContactEmail: c.ContactEmail,
		IsArchived:   c.IsArchived,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
