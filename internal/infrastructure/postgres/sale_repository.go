package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/sathyaAB/DairyX/internal/domain/entity"
	"github.com/sathyaAB/DairyX/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, truck_load_id, shop_id, date, status, total_amount, paid_amount, created_at, updated_at`

// Create persiste la cabecera de la venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	query := `
		INSERT INTO sales (id, truck_load_id, shop_id, date, status, total_amount, paid_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.TruckLoadID, sale.ShopID, sale.Date, sale.Status,
		sale.TotalAmount, sale.PaidAmount, sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("sale references missing truck load or shop: %w", err)
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de la venta.
func (r *SaleRepo) CreateLine(line *entity.SaleLine) error {
	query := `
		INSERT INTO sales_products (sale_id, product_id, quantity)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query,
		line.SaleID, line.ProductID, line.Quantity,
	)
	if err != nil {
		return fmt.Errorf("insert sale line: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID (nil si no existe).
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene la venta y bloquea la fila (SELECT FOR UPDATE). Dos
// pagos concurrentes contra la misma venta se serializan aquí.
func (r *SaleRepo) GetForUpdate(id string) (*entity.Sale, error) {
	return r.get(id, true)
}

func (r *SaleRepo) get(id string, forUpdate bool) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.TruckLoadID, &s.ShopID, &s.Date, &s.Status,
		&s.TotalAmount, &s.PaidAmount, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// UpdatePayment escribe paid_amount y status tras registrar un pago.
func (r *SaleRepo) UpdatePayment(id string, paidAmount decimal.Decimal, status string, updatedAt time.Time) error {
	query := `
		UPDATE sales
		SET paid_amount = $2, status = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, paidAmount, status, updatedAt)
	if err != nil {
		return fmt.Errorf("update sale payment: %w", err)
	}
	return nil
}

// ListByShop devuelve las ventas de una tienda, más recientes primero.
func (r *SaleRepo) ListByShop(shopID string) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE shop_id = $1 ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query, shopID)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var out []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(
			&s.ID, &s.TruckLoadID, &s.ShopID, &s.Date, &s.Status,
			&s.TotalAmount, &s.PaidAmount, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// ListLines devuelve las líneas de una venta.
func (r *SaleRepo) ListLines(saleID string) ([]*entity.SaleLine, error) {
	query := `
		SELECT sale_id, product_id, quantity
		FROM sales_products WHERE sale_id = $1`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale lines: %w", err)
	}
	defer rows.Close()

	var out []*entity.SaleLine
	for rows.Next() {
		var l entity.SaleLine
		if err := rows.Scan(&l.SaleID, &l.ProductID, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}
