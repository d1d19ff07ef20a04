package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sathyaAB/DairyX/internal/domain"
	"github.com/sathyaAB/DairyX/internal/domain/entity"
	"github.com/sathyaAB/DairyX/internal/domain/repository"
)

// DeliveryUseCase registra entregas a bodega de forma transaccional:
// cabecera + líneas + crédito de stock se confirman juntos o no se confirman.
type DeliveryUseCase struct {
	txRunner   TxRunner
	deliveries repository.DeliveryRepository
	products   repository.ProductRepository
}

// NewDeliveryUseCase construye el caso de uso. deliveries y products van
// atados al pool (consultas fuera de transacción).
func NewDeliveryUseCase(
	txRunner TxRunner,
	deliveries repository.DeliveryRepository,
	products repository.ProductRepository,
) *DeliveryUseCase {
	return &DeliveryUseCase{txRunner: txRunner, deliveries: deliveries, products: products}
}

// CreateDelivery registra un lote de entrada. Cada línea acredita el stock de
// su producto; una entrega nunca falla por razones de stock.
// Valida antes de abrir la transacción: cantidades positivas y productos existentes.
func (uc *DeliveryUseCase) CreateDelivery(ctx context.Context, userID string, date time.Time, items []LineItem) (*entity.Delivery, error) {
	if userID == "" || date.IsZero() {
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
	delivery := &entity.Delivery{
		ID:        uuid.New().String(),
		UserID:    userID,
		Date:      date,
		CreatedAt: now,
	}

	err := uc.txRunner.Run(ctx, func(r Repos) error {
		if err := r.Deliveries.Create(delivery); err != nil {
			return err
		}
		for _, it := range items {
			line := &entity.DeliveryLine{
				DeliveryID: delivery.ID,
				ProductID:  it.ProductID,
				Quantity:   it.Quantity,
			}
			if err := r.Deliveries.CreateLine(line); err != nil {
				return err
			}
			if err := r.Stock.Add(it.ProductID, it.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return delivery, nil
}

// HistoryByUser devuelve las entregas registradas por un usuario (más recientes primero).
func (uc *DeliveryUseCase) HistoryByUser(userID string) ([]*entity.Delivery, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.deliveries.ListByUser(userID)
}

// Lines devuelve las líneas de una entrega.
func (uc *DeliveryUseCase) Lines(deliveryID string) ([]*entity.DeliveryLine, error) {
	return uc.deliveries.ListLines(deliveryID)
}

// validateLineItems rechaza lotes vacíos y cantidades no positivas.
func validateLineItems(items []LineItem) error {
	if len(items) == 0 {
		return domain.ErrInvalidInput
	}
	for _, it := range items {
		if it.ProductID == "" || it.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
	}
	return nil
}
