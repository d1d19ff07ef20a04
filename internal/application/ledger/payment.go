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

// PaymentUseCase registra abonos contra una venta y evoluciona su estado.
// La fila de la venta se bloquea (SELECT FOR UPDATE) durante el abono, así dos
// pagos concurrentes sobre la misma venta no pierden actualizaciones.
type PaymentUseCase struct {
	txRunner TxRunner
	payments repository.PaymentRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(txRunner TxRunner, payments repository.PaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{txRunner: txRunner, payments: payments}
}

// CreatePayment inserta el pago, acumula paid_amount y marca la venta como
// paid cuando lo abonado alcanza el total. El estado es monótono: una venta
// paid no vuelve a pending. El sobrepago se acepta tal cual (paid_amount puede
// superar total_amount); no existe operación de reverso ni de tope.
func (uc *PaymentUseCase) CreatePayment(ctx context.Context, saleID string, amount decimal.Decimal, method string, date time.Time) (*entity.Payment, error) {
	if saleID == "" || method == "" || date.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	payment := &entity.Payment{
		ID:        uuid.New().String(),
		SaleID:    saleID,
		Amount:    amount,
		Method:    method,
		Date:      date,
		CreatedAt: now,
	}

	err := uc.txRunner.Run(ctx, func(r Repos) error {
		sale, err := r.Sales.GetForUpdate(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		if err := r.Payments.Create(payment); err != nil {
			return err
		}
		newPaid := sale.PaidAmount.Add(amount)
		status := sale.Status
		if status != entity.SaleStatusPaid && newPaid.GreaterThanOrEqual(sale.TotalAmount) {
			status = entity.SaleStatusPaid
		}
		return r.Sales.UpdatePayment(saleID, newPaid, status, now)
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// ListBySale devuelve los pagos registrados contra una venta.
func (uc *PaymentUseCase) ListBySale(saleID string) ([]*entity.Payment, error) {
	if saleID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.payments.ListBySale(saleID)
}
