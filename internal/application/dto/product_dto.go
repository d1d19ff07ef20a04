package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	UnitType   string          `json:"unit_type"`
	Commission decimal.Decimal `json:"commission"`
}

// UpdateProductRequest body para PUT /api/products/:id.
type UpdateProductRequest struct {
	Name       string           `json:"name"`
	Price      *decimal.Decimal `json:"price,omitempty"`
	UnitType   string           `json:"unit_type"`
	Commission *decimal.Decimal `json:"commission,omitempty"`
}

// ProductResponse producto.
type ProductResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	UnitType   string          `json:"unit_type"`
	Commission decimal.Decimal `json:"commission"`
}
