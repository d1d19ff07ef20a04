package repository

import "github.com/sathyaAB/DairyX/internal/domain/entity"

// PaymentRepository puerto de persistencia para pagos (append-only).
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	ListBySale(saleID string) ([]*entity.Payment, error)
}
