package ledger

import (
	"context"

	"github.com/sathyaAB/DairyX/internal/domain/repository"
)

// Repos agrupa los repositorios atados a una misma transacción de BD.
type Repos struct {
	Deliveries repository.DeliveryRepository
	TruckLoads repository.TruckLoadRepository
	Sales      repository.SaleRepository
	Payments   repository.PaymentRepository
	Allowances repository.AllowanceRepository
	Stock      repository.StockRepository
	Products   repository.ProductRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el núcleo contable:
// si fn devuelve error no sobrevive ningún efecto parcial.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}

// LineItem par (producto, cantidad) de un lote de entrega, carga o venta.
type LineItem struct {
	ProductID string
	Quantity  int
}
