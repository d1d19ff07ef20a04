package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Truck camión de reparto.
type Truck struct {
	ID           string
	TruckNumber  string // placa o número interno, único
	Model        string
	MaxAllowance decimal.Decimal // tope diario de viáticos
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
