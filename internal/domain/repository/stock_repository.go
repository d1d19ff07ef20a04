package repository

import "github.com/sathyaAB/DairyX/internal/domain/entity"

// StockRepository puerto del libro de stock de bodega (cantidad vigente por producto).
// Las operaciones de débito deben usarse dentro de la misma transacción que la
// línea que protegen, con GetForUpdate para serializar escritores concurrentes.
type StockRepository interface {
	// Get devuelve el stock actual; si el producto nunca tuvo entregas devuelve cantidad 0.
	Get(productID string) (*entity.WarehouseStock, error)
	// GetForUpdate igual que Get pero bloquea la fila (SELECT FOR UPDATE).
	GetForUpdate(productID string) (*entity.WarehouseStock, error)
	// Add acredita qty unidades (upsert: crea la fila si no existe). Nunca falla por reglas de negocio.
	Add(productID string, qty int) error
	// Upsert escribe la cantidad tal cual. Usado tras un débito verificado.
	Upsert(stock *entity.WarehouseStock) error
}
