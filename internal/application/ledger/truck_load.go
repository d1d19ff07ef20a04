package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sathyaAB/DairyX/internal/domain"
	"github.com/sathyaAB/DairyX/internal/domain/entity"
	"github.com/sathyaAB/DairyX/internal/domain/repository"
)

// TruckLoadUseCase registra cargas de camión con débito verificado de stock.
// El lote es todo-o-nada: si una sola línea excede el stock disponible, la
// transacción completa se revierte y ninguna línea anterior queda aplicada.
type TruckLoadUseCase struct {
	txRunner TxRunner
	loads    repository.TruckLoadRepository
	products repository.ProductRepository
}

// NewTruckLoadUseCase construye el caso de uso.
func NewTruckLoadUseCase(
	txRunner TxRunner,
	loads repository.TruckLoadRepository,
	products repository.ProductRepository,
) *TruckLoadUseCase {
	return &TruckLoadUseCase{txRunner: txRunner, loads: loads, products: products}
}

// CreateTruckLoad registra un lote de salida. Cada línea, en el orden dado,
// bloquea la fila de stock de su producto (SELECT FOR UPDATE), verifica que la
// cantidad pedida no exceda la disponible y la descuenta. Dos despachos
// concurrentes del mismo producto se serializan sobre esa fila: la verificación
// nunca pasa contra una cantidad obsoleta.
//
// Si alguna línea no alcanza, devuelve *domain.InsufficientStockError con el
// detalle (producto, pedido, disponible) para que el caller reintente corregido.
func (uc *TruckLoadUseCase) CreateTruckLoad(ctx context.Context, driverID, truckID string, date time.Time, items []LineItem) (*entity.TruckLoad, error) {
	if driverID == "" || truckID == "" || date.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if err := validateLineItems(items); err != nil {
		return nil, err
	}
	for _, it := range items {
		product, err := uc.products.GetByID(it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	load := &entity.TruckLoad{
		ID:        uuid.New().String(),
		DriverID:  driverID,
		TruckID:   truckID,
		Date:      date,
		CreatedAt: now,
	}

	err := uc.txRunner.Run(ctx, func(r Repos) error {
		if err := r.TruckLoads.Create(load); err != nil {
			return err
		}
		for _, it := range items {
			stock, err := r.Stock.GetForUpdate(it.ProductID)
			if err != nil {
				return err
			}
			if it.Quantity > stock.Quantity {
				return &domain.InsufficientStockError{
					ProductID: it.ProductID,
					Requested: it.Quantity,
					Available: stock.Quantity,
				}
			}
			stock.Quantity -= it.Quantity
			stock.UpdatedAt = now
			if err := r.Stock.Upsert(stock); err != nil {
				return err
			}
			line := &entity.TruckLoadLine{
				TruckLoadID: load.ID,
				ProductID:   it.ProductID,
				Quantity:    it.Quantity,
			}
			if err := r.TruckLoads.CreateLine(line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return load, nil
}

// GetByID devuelve una carga por ID (nil si no existe).
func (uc *TruckLoadUseCase) GetByID(id string) (*entity.TruckLoad, error) {
	return uc.loads.GetByID(id)
}

// History devuelve todas las cargas registradas (más recientes primero).
func (uc *TruckLoadUseCase) History() ([]*entity.TruckLoad, error) {
	return uc.loads.List()
}

// Lines devuelve las líneas de una carga.
func (uc *TruckLoadUseCase) Lines(truckLoadID string) ([]*entity.TruckLoadLine, error) {
	return uc.loads.ListLines(truckLoadID)
}
