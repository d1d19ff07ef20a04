package dto

import "github.com/shopspring/decimal"

// CreateTruckRequest body para POST /api/trucks.
type CreateTruckRequest struct {
	TruckNumber  string          `json:"truck_number"`
	Model        string          `json:"model"`
	MaxAllowance decimal.Decimal `json:"max_allowance"`
}

// UpdateTruckMaxAllowanceRequest body para PUT /api/trucks/max-allowance.
type UpdateTruckMaxAllowanceRequest struct {
	TruckNumber  string          `json:"truck_number"`
	MaxAllowance decimal.Decimal `json:"max_allowance"`
}

// TruckResponse camión.
type TruckResponse struct {
	ID           string          `json:"id"`
	TruckNumber  string          `json:"truck_number"`
	Model        string          `json:"model"`
	MaxAllowance decimal.Decimal `json:"max_allowance"`
}

// CreateShopRequest body para POST /api/shops.
type CreateShopRequest struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	City          string `json:"city,omitempty"`
	District      string `json:"district,omitempty"`
	ContactNumber string `json:"contact_number,omitempty"`
}

// ShopResponse tienda.
type ShopResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	City          string `json:"city,omitempty"`
	District      string `json:"district,omitempty"`
	ContactNumber string `json:"contact_number,omitempty"`
}
