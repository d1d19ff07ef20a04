package entity

import "time"

// WarehouseStock cantidad actual en bodega de un producto.
// Es la única fuente de verdad del stock disponible: se actualiza en la misma
// transacción que cada entrega o carga, nunca se recalcula sumando el historial.
type WarehouseStock struct {
	ProductID string
	Quantity  int // invariante: nunca negativo
	UpdatedAt time.Time
}
