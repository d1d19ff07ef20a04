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

var _ repository.AllowanceRepository = (*AllowanceRepo)(nil)

// AllowanceRepo implementación de AllowanceRepository sobre PostgreSQL (usable con pool o tx).
type AllowanceRepo struct {
	q Querier
}

// NewAllowanceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAllowanceRepository(q Querier) *AllowanceRepo {
	return &AllowanceRepo{q: q}
}

// Create persiste un viático.
func (r *AllowanceRepo) Create(allowance *entity.Allowance) error {
	if allowance.ID == "" {
		allowance.ID = uuid.New().String()
	}
	query := `
		INSERT INTO allowances (id, date, amount, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		allowance.ID, allowance.Date, allowance.Amount, nullIfEmpty(allowance.Notes),
		allowance.CreatedAt, allowance.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert allowance: %w", err)
	}
	return nil
}

// GetByID obtiene un viático por ID (nil si no existe).
func (r *AllowanceRepo) GetByID(id string) (*entity.Allowance, error) {
	query := `
		SELECT id, date, amount, notes, created_at, updated_at
		FROM allowances WHERE id = $1`
	var a entity.Allowance
	var notes *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Date, &a.Amount, &notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get allowance: %w", err)
	}
	if notes != nil {
		a.Notes = *notes
	}
	return &a, nil
}

// List devuelve todos los viáticos, más recientes primero.
func (r *AllowanceRepo) List() ([]*entity.Allowance, error) {
	query := `
		SELECT id, date, amount, notes, created_at, updated_at
		FROM allowances
		ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list allowances: %w", err)
	}
	defer rows.Close()

	var out []*entity.Allowance
	for rows.Next() {
		var a entity.Allowance
		var notes *string
		if err := rows.Scan(&a.ID, &a.Date, &a.Amount, &notes, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan allowance: %w", err)
		}
		if notes != nil {
			a.Notes = *notes
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

// CreateTruckAllowance persiste el reparto de un viático a un camión.
func (r *AllowanceRepo) CreateTruckAllowance(ta *entity.TruckAllowance) error {
	if ta.ID == "" {
		ta.ID = uuid.New().String()
	}
	query := `
		INSERT INTO truck_allowances (id, allowance_id, truck_id, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		ta.ID, ta.AllowanceID, ta.TruckID, ta.Amount, ta.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("truck allowance references missing allowance or truck: %w", err)
		}
		return fmt.Errorf("insert truck allowance: %w", err)
	}
	return nil
}

// ListTruckAllowances devuelve el reparto por camión de un viático.
func (r *AllowanceRepo) ListTruckAllowances(allowanceID string) ([]*entity.TruckAllowance, error) {
	query := `
		SELECT id, allowance_id, truck_id, amount, created_at
		FROM truck_allowances WHERE allowance_id = $1`
	rows, err := r.q.Query(context.Background(), query, allowanceID)
	if err != nil {
		return nil, fmt.Errorf("list truck allowances: %w", err)
	}
	defer rows.Close()

	var out []*entity.TruckAllowance
	for rows.Next() {
		var ta entity.TruckAllowance
		if err := rows.Scan(&ta.ID, &ta.AllowanceID, &ta.TruckID, &ta.Amount, &ta.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan truck allowance: %w", err)
		}
		out = append(out, &ta)
	}
	return out, rows.Err()
}
