package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sathyaAB/DairyX/internal/domain/entity"
	"github.com/sathyaAB/DairyX/internal/domain/repository"
)

var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

// DeliveryRepo implementación de DeliveryRepository sobre PostgreSQL (usable con pool o tx).
type DeliveryRepo struct {
	q Querier
}

// NewDeliveryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDeliveryRepository(q Querier) *DeliveryRepo {
	return &DeliveryRepo{q: q}
}

// Create persiste la cabecera de la entrega.
func (r *DeliveryRepo) Create(delivery *entity.Delivery) error {
	if delivery.ID == "" {
		delivery.ID = uuid.New().String()
	}
	query := `
		INSERT INTO deliveries (id, user_id, date, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		delivery.ID, delivery.UserID, delivery.Date, delivery.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert delivery: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de la entrega.
func (r *DeliveryRepo) CreateLine(line *entity.DeliveryLine) error {
	query := `
		INSERT INTO delivery_products (delivery_id, product_id, quantity)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query,
		line.DeliveryID, line.ProductID, line.Quantity,
	)
	if err != nil {
		return fmt.Errorf("insert delivery line: %w", err)
	}
	return nil
}

// ListByUser devuelve las entregas registradas por un usuario, más recientes primero.
func (r *DeliveryRepo) ListByUser(userID string) ([]*entity.Delivery, error) {
	query := `
		SELECT id, user_id, date, created_at
		FROM deliveries WHERE user_id = $1
		ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	defer rows.Close()

	var out []*entity.Delivery
	for rows.Next() {
		var d entity.Delivery
		if err := rows.Scan(&d.ID, &d.UserID, &d.Date, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan delivery: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

// ListLines devuelve las líneas de una entrega.
func (r *DeliveryRepo) ListLines(deliveryID string) ([]*entity.DeliveryLine, error) {
	query := `
		SELECT delivery_id, product_id, quantity
		FROM delivery_products WHERE delivery_id = $1`
	rows, err := r.q.Query(context.Background(), query, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("list delivery lines: %w", err)
	}
	defer rows.Close()

	var out []*entity.DeliveryLine
	for rows.Next() {
		var l entity.DeliveryLine
		if err := rows.Scan(&l.DeliveryID, &l.ProductID, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan delivery line: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}
