package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto distribuido por la empresa.
// Price es el precio unitario vigente; las ventas guardan su propio total
// calculado al momento de vender, así que cambiar Price no afecta ventas pasadas.
type Product struct {
	ID         string
	Name       string
	Price      decimal.Decimal // precio de venta por unidad
	UnitType   string          // litro, caja, unidad...
	Commission decimal.Decimal // tasa de comisión del conductor
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
