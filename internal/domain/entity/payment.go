package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment abono contra una venta. Append-only: nunca se actualiza ni se borra.
type Payment struct {
	ID        string
	SaleID    string
	Amount    decimal.Decimal
	Method    string // cash, transfer, cheque...
	Date      time.Time
	CreatedAt time.Time
}
