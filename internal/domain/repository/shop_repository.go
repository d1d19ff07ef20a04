package repository

import "github.com/sathyaAB/DairyX/internal/domain/entity"

// ShopRepository puerto de persistencia para tiendas.
type ShopRepository interface {
	Create(shop *entity.Shop) error
	GetByID(id string) (*entity.Shop, error)
	List() ([]*entity.Shop, error)
}
