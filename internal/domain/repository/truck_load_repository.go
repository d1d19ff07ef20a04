package repository

import "github.com/sathyaAB/DairyX/internal/domain/entity"

// TruckLoadRepository puerto de persistencia para cargas de camión.
type TruckLoadRepository interface {
	Create(load *entity.TruckLoad) error
	CreateLine(line *entity.TruckLoadLine) error
	GetByID(id string) (*entity.TruckLoad, error)
	List() ([]*entity.TruckLoad, error)
	ListLines(truckLoadID string) ([]*entity.TruckLoadLine, error)
}
