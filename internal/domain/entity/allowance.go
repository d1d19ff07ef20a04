package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Allowance registro de caja fechado (viáticos del día). Ledger independiente,
// sin invariantes cruzadas con stock ni ventas.
type Allowance struct {
	ID        string
	Date      time.Time
	Amount    decimal.Decimal
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TruckAllowance reparto de un Allowance a un camión concreto, con su propio monto.
type TruckAllowance struct {
	ID          string
	AllowanceID string
	TruckID     string
	Amount      decimal.Decimal
	CreatedAt   time.Time
}
