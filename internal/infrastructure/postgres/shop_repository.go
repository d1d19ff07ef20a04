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

var _ repository.ShopRepository = (*ShopRepo)(nil)

// ShopRepo implementación de ShopRepository sobre PostgreSQL (usable con pool o tx).
type ShopRepo struct {
	q Querier
}

// NewShopRepository construye el adaptador. Pasar pool o tx (Querier).
func NewShopRepository(q Querier) *ShopRepo {
	return &ShopRepo{q: q}
}

// Create persiste una tienda.
func (r *ShopRepo) Create(shop *entity.Shop) error {
	if shop.ID == "" {
		shop.ID = uuid.New().String()
	}
	query := `
		INSERT INTO shops (id, name, address, city, district, contact_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		shop.ID, shop.Name, shop.Address, nullIfEmpty(shop.City),
		nullIfEmpty(shop.District), nullIfEmpty(shop.ContactNumber),
		shop.CreatedAt, shop.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert shop: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda por ID (nil si no existe).
func (r *ShopRepo) GetByID(id string) (*entity.Shop, error) {
	query := `
		SELECT id, name, address, city, district, contact_number, created_at, updated_at
		FROM shops WHERE id = $1`
	var s entity.Shop
	var city, district, contact *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Address, &city, &district, &contact, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shop: %w", err)
	}
	s.City = deref(city)
	s.District = deref(district)
	s.ContactNumber = deref(contact)
	return &s, nil
}

// List devuelve todas las tiendas ordenadas por nombre.
func (r *ShopRepo) List() ([]*entity.Shop, error) {
	query := `
		SELECT id, name, address, city, district, contact_number, created_at, updated_at
		FROM shops ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list shops: %w", err)
	}
	defer rows.Close()

	var out []*entity.Shop
	for rows.Next() {
		var s entity.Shop
		var city, district, contact *string
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &city, &district, &contact, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan shop: %w", err)
		}
		s.City = deref(city)
		s.District = deref(district)
		s.ContactNumber = deref(contact)
		out = append(out, &s)
	}
	return out, rows.Err()
}

// nullIfEmpty convierte "" a NULL para columnas opcionales.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
