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

// AllowanceUseCase ledger de viáticos: inserciones append-only, sin invariantes
// cruzadas más allá de que el reparto por camión referencie un viático existente.
type AllowanceUseCase struct {
	txRunner   TxRunner
	allowances repository.AllowanceRepository
}

// NewAllowanceUseCase construye el caso de uso.
func NewAllowanceUseCase(txRunner TxRunner, allowances repository.AllowanceRepository) *AllowanceUseCase {
	return &AllowanceUseCase{txRunner: txRunner, allowances: allowances}
}

// CreateAllowance registra un viático fechado.
func (uc *AllowanceUseCase) CreateAllowance(ctx context.Context, date time.Time, amount decimal.Decimal, notes string) (*entity.Allowance, error) {
	if date.IsZero() || !amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	allowance := &entity.Allowance{
		ID:        uuid.New().String(),
		Date:      date,
		Amount:    amount,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := uc.txRunner.Run(ctx, func(r Repos) error {
		return r.Allowances.Create(allowance)
	})
	if err != nil {
		return nil, err
	}
	return allowance, nil
}

// CreateTruckAllowance reparte un viático existente a un camión con su propio monto.
func (uc *AllowanceUseCase) CreateTruckAllowance(ctx context.Context, allowanceID, truckID string, amount decimal.Decimal) (*entity.TruckAllowance, error) {
	if allowanceID == "" || truckID == "" || !amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	ta := &entity.TruckAllowance{
		ID:          uuid.New().String(),
		AllowanceID: allowanceID,
		TruckID:     truckID,
		Amount:      amount,
		CreatedAt:   time.Now(),
	}

	err := uc.txRunner.Run(ctx, func(r Repos) error {
		allowance, err := r.Allowances.GetByID(allowanceID)
		if err != nil {
			return err
		}
		if allowance == nil {
			return domain.ErrNotFound
		}
		return r.Allowances.CreateTruckAllowance(ta)
	})
	if err != nil {
		return nil, err
	}
	return ta, nil
}

// List devuelve todos los viáticos (más recientes primero).
func (uc *AllowanceUseCase) List() ([]*entity.Allowance, error) {
	return uc.allowances.List()
}

// TruckAllowances devuelve el reparto por camión de un viático.
func (uc *AllowanceUseCase) TruckAllowances(allowanceID string) ([]*entity.TruckAllowance, error) {
	if allowanceID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.allowances.ListTruckAllowances(allowanceID)
}
