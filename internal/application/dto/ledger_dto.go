package dto

import "github.com/shopspring/decimal"

// LineItemRequest línea (producto, cantidad) de un lote.
type LineItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// LineItemResponse línea persistida de una entrega, carga o venta.
type LineItemResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateDeliveryRequest body para POST /api/delivery.
type CreateDeliveryRequest struct {
	UserID   string            `json:"user_id"`
	Date     string            `json:"date"` // YYYY-MM-DD
	Products []LineItemRequest `json:"products"`
}

// DeliveryResponse entrega registrada.
type DeliveryResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Date      string `json:"date"`
	CreatedAt string `json:"created_at"`
}

// CreateTruckLoadRequest body para POST /api/truck-load.
type CreateTruckLoadRequest struct {
	DriverID string            `json:"driver_id"`
	TruckID  string            `json:"truck_id"`
	Date     string            `json:"date"`
	Products []LineItemRequest `json:"products"`
}

// TruckLoadResponse carga registrada.
type TruckLoadResponse struct {
	ID        string `json:"id"`
	DriverID  string `json:"driver_id"`
	TruckID   string `json:"truck_id"`
	Date      string `json:"date"`
	CreatedAt string `json:"created_at"`
}

// CreateSaleRequest body para POST /api/sales.
type CreateSaleRequest struct {
	TruckLoadID string            `json:"truckload_id"`
	ShopID      string            `json:"shop_id"`
	Date        string            `json:"date"`
	Products    []LineItemRequest `json:"products"`
}

// SaleResponse venta registrada (cuenta por cobrar).
type SaleResponse struct {
	ID          string          `json:"id"`
	TruckLoadID string          `json:"truckload_id"`
	ShopID      string          `json:"shop_id"`
	Date        string          `json:"date"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`
}

// CreatePaymentRequest body para POST /api/payment.
type CreatePaymentRequest struct {
	SaleID string          `json:"sale_id"`
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
	Date   string          `json:"date"`
}

// PaymentResponse pago registrado.
type PaymentResponse struct {
	ID     string          `json:"id"`
	SaleID string          `json:"sale_id"`
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
	Date   string          `json:"date"`
}

// CreateAllowanceRequest body para POST /api/allowance.
type CreateAllowanceRequest struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Notes  string          `json:"notes,omitempty"`
}

// AllowanceResponse viático registrado.
type AllowanceResponse struct {
	ID     string          `json:"id"`
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Notes  string          `json:"notes,omitempty"`
}

// CreateTruckAllowanceRequest body para POST /api/allowance/truck.
type CreateTruckAllowanceRequest struct {
	AllowanceID string          `json:"allowance_id"`
	TruckID     string          `json:"truck_id"`
	Amount      decimal.Decimal `json:"amount"`
}

// TruckAllowanceResponse reparto de viático por camión.
type TruckAllowanceResponse struct {
	ID          string          `json:"id"`
	AllowanceID string          `json:"allowance_id"`
	TruckID     string          `json:"truck_id"`
	Amount      decimal.Decimal `json:"amount"`
}
