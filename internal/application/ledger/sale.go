package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sathyaAB/DairyX/internal/domain"
	"github.com/sathyaAB/DairyX/internal/domain/entity"
	"github.com/sathyaAB/DairyX/internal/domain/repository"
)

// SaleUseCase abre cuentas por cobrar: registra a qué tienda se vendió qué
// parte de una carga. No toca stock de bodega (eso ya lo descontó la carga);
// calcula el total con los precios vigentes al momento de la venta y ese
// snapshot nunca se recalcula, aunque el precio del producto cambie después.
type SaleUseCase struct {
	txRunner TxRunner
	sales    repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(txRunner TxRunner, sales repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, sales: sales}
}

// CreateSale registra la venta con total_amount calculado de precios × cantidades,
// paid_amount en 0 y estado pending. Los precios se leen dentro de la misma
// transacción que inserta la venta.
func (uc *SaleUseCase) CreateSale(ctx context.Context, truckLoadID, shopID string, date time.Time, items []LineItem) (*entity.Sale, error) {
	if truckLoadID == "" || shopID == "" || date.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if err := validateLineItems(items); err != nil {
		return nil, err
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:          uuid.New().String(),
		TruckLoadID: truckLoadID,
		ShopID:      shopID,
		Date:        date,
		Status:      entity.SaleStatusPending,
		PaidAmount:  decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := uc.txRunner.Run(ctx, func(r Repos) error {
		total := decimal.Zero
		for _, it := range items {
			product, err := r.Products.GetByID(it.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
		sale.TotalAmount = total

		if err := r.Sales.Create(sale); err != nil {
			return err
		}
		for _, it := range items {
			line := &entity.SaleLine{
				SaleID:    sale.ID,
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
			}
			if err := r.Sales.CreateLine(line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// GetByID devuelve una venta por ID (nil si no existe).
func (uc *SaleUseCase) GetByID(id string) (*entity.Sale, error) {
	return uc.sales.GetByID(id)
}

// ListByShop devuelve las ventas de una tienda (más recientes primero).
func (uc *SaleUseCase) ListByShop(shopID string) ([]*entity.Sale, error) {
	if shopID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.sales.ListByShop(shopID)
}

// Lines devuelve las líneas de una venta.
func (uc *SaleUseCase) Lines(saleID string) ([]*entity.SaleLine, error) {
	return uc.sales.ListLines(saleID)
}
