package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cargohub-api/internal/domain"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
	"github.com/jhoicas/cargohub-api/internal/domain/repository"
)

// PackingSlipLine es una línea del albarán: cantidad más los datos de catálogo
// del artículo resueltos al momento de generar.
type PackingSlipLine struct {
	ItemCode     string
	Description  string
	Amount       int64
	UnitWeightKg decimal.Decimal
}

// PackingSlipData agrupa todo lo que el generador necesita para el albarán de
// un pedido.
type PackingSlipData struct {
	Order     *entity.Order
	Warehouse *entity.Warehouse
	ShipTo    *entity.Client
	Lines     []PackingSlipLine
}

// PackingSlipGenerator produce el documento del albarán (puerto de salida).
type PackingSlipGenerator interface {
	GeneratePackingSlip(ctx context.Context, data *PackingSlipData) ([]byte, error)
}

// PackingSlipUseCase arma los datos del albarán de un pedido y delega el
// render en el generador.
type PackingSlipUseCase struct {
	orders     repository.OrderRepository
	items      repository.ItemRepository
	warehouses repository.WarehouseRepository
	clients    repository.ClientRepository
	generator  PackingSlipGenerator
}

// NewPackingSlipUseCase construye el caso de uso.
func NewPackingSlipUseCase(
	orders repository.OrderRepository,
	items repository.ItemRepository,
	warehouses repository.WarehouseRepository,
	clients repository.ClientRepository,
	generator PackingSlipGenerator,
) *PackingSlipUseCase {
	return &PackingSlipUseCase{
		orders:     orders,
		items:      items,
		warehouses: warehouses,
		clients:    clients,
		generator:  generator,
	}
}

// Generate produce el PDF del albarán del pedido. Las líneas cuyo artículo ya
// no existe en el catálogo se renderizan solo con el id.
func (uc *PackingSlipUseCase) Generate(ctx context.Context, orderID int64) ([]byte, error) {
	order, err := uc.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	data := &PackingSlipData{Order: order}
	if order.WarehouseID > 0 {
		if data.Warehouse, err = uc.warehouses.GetByID(order.WarehouseID); err != nil {
			return nil, err
		}
	}
	if order.ShipTo > 0 {
		if data.ShipTo, err = uc.clients.GetByID(order.ShipTo); err != nil {
			return nil, err
		}
	}

	for _, line := range order.Items {
		psl := PackingSlipLine{Amount: line.Amount}
		item, err := uc.items.GetByID(line.ItemID)
		if err != nil {
			return nil, err
		}
		if item != nil {
			psl.ItemCode = item.Code
			psl.Description = item.Description
			psl.UnitWeightKg = item.UnitWeightKg
		}
		data.Lines = append(data.Lines, psl)
	}

	return uc.generator.GeneratePackingSlip(ctx, data)
}
