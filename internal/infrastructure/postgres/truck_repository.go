package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/sathyaAB/DairyX/internal/domain/entity"
	"github.com/sathyaAB/DairyX/internal/domain/repository"
)

var _ repository.TruckRepository = (*TruckRepo)(nil)

// TruckRepo implementación de TruckRepository sobre PostgreSQL (usable con pool o tx).
type TruckRepo struct {
	q Querier
}

// NewTruckRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTruckRepository(q Querier) *TruckRepo {
	return &TruckRepo{q: q}
}

const truckColumns = `id, truck_number, model, max_allowance, created_at, updated_at`

// Create persiste un camión.
func (r *TruckRepo) Create(truck *entity.Truck) error {
	if truck.ID == "" {
		truck.ID = uuid.New().String()
	}
	query := `
		INSERT INTO trucks (id, truck_number, model, max_allowance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		truck.ID, truck.TruckNumber, truck.Model, truck.MaxAllowance,
		truck.CreatedAt, truck.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("truck number already exists: %w", err)
		}
		return fmt.Errorf("insert truck: %w", err)
	}
	return nil
}

// GetByID obtiene un camión por ID (nil si no existe).
func (r *TruckRepo) GetByID(id string) (*entity.Truck, error) {
	query := `SELECT ` + truckColumns + ` FROM trucks WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByNumber obtiene un camión por número (nil si no existe).
func (r *TruckRepo) GetByNumber(truckNumber string) (*entity.Truck, error) {
	query := `SELECT ` + truckColumns + ` FROM trucks WHERE truck_number = $1`
	return r.scanOne(query, truckNumber)
}

func (r *TruckRepo) scanOne(query string, arg any) (*entity.Truck, error) {
	var t entity.Truck
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&t.ID, &t.TruckNumber, &t.Model, &t.MaxAllowance, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get truck: %w", err)
	}
	return &t, nil
}

// List devuelve todos los camiones ordenados por número.
func (r *TruckRepo) List() ([]*entity.Truck, error) {
	query := `SELECT ` + truckColumns + ` FROM trucks ORDER BY truck_number ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list trucks: %w", err)
	}
	defer rows.Close()

	var out []*entity.Truck
	for rows.Next() {
		var t entity.Truck
		if err := rows.Scan(&t.ID, &t.TruckNumber, &t.Model, &t.MaxAllowance, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan truck: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

// UpdateMaxAllowance actualiza el tope de viáticos por número de camión y
// devuelve el camión actualizado (nil si el número no existe).
func (r *TruckRepo) UpdateMaxAllowance(truckNumber string, maxAllowance decimal.Decimal) (*entity.Truck, error) {
	query := `
		UPDATE trucks
		SET max_allowance = $2, updated_at = now()
		WHERE truck_number = $1
		RETURNING ` + truckColumns
	var t entity.Truck
	err := r.q.QueryRow(context.Background(), query, truckNumber, maxAllowance).Scan(
		&t.ID, &t.TruckNumber, &t.Model, &t.MaxAllowance, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update truck max allowance: %w", err)
	}
	return &t, nil
}
