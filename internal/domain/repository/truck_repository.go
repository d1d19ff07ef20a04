package repository

import (
	"github.com/shopspring/decimal"

	"github.com/sathyaAB/DairyX/internal/domain/entity"
)

// TruckRepository puerto de persistencia para camiones.
type TruckRepository interface {
	Create(truck *entity.Truck) error
	GetByID(id string) (*entity.Truck, error)
	GetByNumber(truckNumber string) (*entity.Truck, error)
	List() ([]*entity.Truck, error)
	UpdateMaxAllowance(truckNumber string, maxAllowance decimal.Decimal) (*entity.Truck, error)
}
