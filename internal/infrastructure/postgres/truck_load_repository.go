package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sathyaAB/DairyX/internal/domain/entity"
	"github.com/sathyaAB/DairyX/internal/domain/repository"
)

var _ repository.TruckLoadRepository = (*TruckLoadRepo)(nil)

// TruckLoadRepo implementación de TruckLoadRepository sobre PostgreSQL (usable con pool o tx).
type TruckLoadRepo struct {
	q Querier
}

// NewTruckLoadRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTruckLoadRepository(q Querier) *TruckLoadRepo {
	return &TruckLoadRepo{q: q}
}

// Create persiste la cabecera de la carga.
func (r *TruckLoadRepo) Create(load *entity.TruckLoad) error {
	if load.ID == "" {
		load.ID = uuid.New().String()
	}
	query := `
		INSERT INTO truck_loads (id, driver_id, truck_id, date, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		load.ID, load.DriverID, load.TruckID, load.Date, load.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("truck load references missing driver or truck: %w", err)
		}
		return fmt.Errorf("insert truck load: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de la carga.
func (r *TruckLoadRepo) CreateLine(line *entity.TruckLoadLine) error {
	query := `
		INSERT INTO truck_load_products (truck_load_id, product_id, quantity)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query,
		line.TruckLoadID, line.ProductID, line.Quantity,
	)
	if err != nil {
		return fmt.Errorf("insert truck load line: %w", err)
	}
	return nil
}

// GetByID obtiene una carga por ID (nil si no existe).
func (r *TruckLoadRepo) GetByID(id string) (*entity.TruckLoad, error) {
	query := `
		SELECT id, driver_id, truck_id, date, created_at
		FROM truck_loads WHERE id = $1`
	var l entity.TruckLoad
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.DriverID, &l.TruckID, &l.Date, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get truck load: %w", err)
	}
	return &l, nil
}

// List devuelve todas las cargas, más recientes primero.
func (r *TruckLoadRepo) List() ([]*entity.TruckLoad, error) {
	query := `
		SELECT id, driver_id, truck_id, date, created_at
		FROM truck_loads
		ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list truck loads: %w", err)
	}
	defer rows.Close()

	var out []*entity.TruckLoad
	for rows.Next() {
		var l entity.TruckLoad
		if err := rows.Scan(&l.ID, &l.DriverID, &l.TruckID, &l.Date, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan truck load: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}

// ListLines devuelve las líneas de una carga.
func (r *TruckLoadRepo) ListLines(truckLoadID string) ([]*entity.TruckLoadLine, error) {
	query := `
		SELECT truck_load_id, product_id, quantity
		FROM truck_load_products WHERE truck_load_id = $1`
	rows, err := r.q.Query(context.Background(), query, truckLoadID)
	if err != nil {
		return nil, fmt.Errorf("list truck load lines: %w", err)
	}
	defer rows.Close()

	var out []*entity.TruckLoadLine
	for rows.Next() {
		var l entity.TruckLoadLine
		if err := rows.Scan(&l.TruckLoadID, &l.ProductID, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan truck load line: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}
