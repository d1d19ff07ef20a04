package entity

import "time"

// Delivery lote de entrada a bodega, registrado por un operario. Inmutable una vez creado.
type Delivery struct {
	ID        string
	UserID    string
	Date      time.Time
	CreatedAt time.Time
}

// DeliveryLine línea (producto, cantidad) de una entrega.
type DeliveryLine struct {
	DeliveryID string
	ProductID  string
	Quantity   int
}
