package entity

import "time"

// TruckLoad lote de salida de bodega hacia un camión, atribuido a un conductor.
// Inmutable una vez creado; su creación descuenta stock de bodega.
type TruckLoad struct {
	ID        string
	DriverID  string
	TruckID   string
	Date      time.Time
	CreatedAt time.Time
}

// TruckLoadLine línea (producto, cantidad) de una carga de camión.
type TruckLoadLine struct {
	TruckLoadID string
	ProductID   string
	Quantity    int
}
