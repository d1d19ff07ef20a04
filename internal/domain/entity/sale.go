package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta. El estado es monótono: una vez paid no vuelve a pending.
const (
	SaleStatusPending = "pending"
	SaleStatusPaid    = "paid"
)

// Sale venta de parte de una carga a una tienda. TotalAmount se calcula una
// sola vez al crearla (snapshot de precios); PaidAmount lo mueven los pagos.
type Sale struct {
	ID          string
	TruckLoadID string
	ShopID      string
	Date        time.Time
	Status      string
	TotalAmount decimal.Decimal
	PaidAmount  decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SaleLine línea (producto, cantidad) de una venta. Inmutable tras la creación.
type SaleLine struct {
	SaleID    string
	ProductID string
	Quantity  int
}
