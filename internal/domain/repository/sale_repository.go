package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sathyaAB/DairyX/internal/domain/entity"
)

// SaleRepository puerto de persistencia para ventas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateLine(line *entity.SaleLine) error
	GetByID(id string) (*entity.Sale, error)
	// GetForUpdate bloquea la fila de la venta para serializar pagos concurrentes.
	GetForUpdate(id string) (*entity.Sale, error)
	// UpdatePayment escribe paid_amount y status tras registrar un pago.
	UpdatePayment(id string, paidAmount decimal.Decimal, status string, updatedAt time.Time) error
	ListByShop(shopID string) ([]*entity.Sale, error)
	ListLines(saleID string) ([]*entity.SaleLine, error)
}
