package repository

import "github.com/sathyaAB/DairyX/internal/domain/entity"

// DeliveryRepository puerto de persistencia para entregas a bodega.
type DeliveryRepository interface {
	Create(delivery *entity.Delivery) error
	CreateLine(line *entity.DeliveryLine) error
	ListByUser(userID string) ([]*entity.Delivery, error)
	ListLines(deliveryID string) ([]*entity.DeliveryLine, error)
}
