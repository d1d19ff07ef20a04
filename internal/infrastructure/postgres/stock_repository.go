package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sathyaAB/DairyX/internal/domain/entity"
	"github.com/sathyaAB/DairyX/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo libro de stock de bodega sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock actual de un producto. Sin fila = cantidad 0.
func (r *StockRepo) Get(productID string) (*entity.WarehouseStock, error) {
	query := `
		SELECT product_id, quantity, updated_at
		FROM warehouse_stock WHERE product_id = $1`
	var s entity.WarehouseStock
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&s.ProductID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.WarehouseStock{ProductID: productID, Quantity: 0}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene el stock y bloquea la fila (SELECT FOR UPDATE). Dos
// transacciones que despachen el mismo producto se serializan aquí.
func (r *StockRepo) GetForUpdate(productID string) (*entity.WarehouseStock, error) {
	query := `
		SELECT product_id, quantity, updated_at
		FROM warehouse_stock WHERE product_id = $1
		FOR UPDATE`
	var s entity.WarehouseStock
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&s.ProductID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.WarehouseStock{ProductID: productID, Quantity: 0}, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Add acredita qty unidades al stock del producto (crea la fila si no existe).
func (r *StockRepo) Add(productID string, qty int) error {
	query := `
		INSERT INTO warehouse_stock (product_id, quantity, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (product_id)
		DO UPDATE SET quantity = warehouse_stock.quantity + EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, productID, qty)
	if err != nil {
		return fmt.Errorf("add stock: %w", err)
	}
	return nil
}

// Upsert escribe la cantidad tal cual (usado tras un débito verificado bajo FOR UPDATE).
func (r *StockRepo) Upsert(stock *entity.WarehouseStock) error {
	query := `
		INSERT INTO warehouse_stock (product_id, quantity, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, stock.ProductID, stock.Quantity)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}
