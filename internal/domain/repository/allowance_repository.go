package repository

import "github.com/sathyaAB/DairyX/internal/domain/entity"

// AllowanceRepository puerto de persistencia para viáticos y su reparto por camión.
type AllowanceRepository interface {
	Create(allowance *entity.Allowance) error
	GetByID(id string) (*entity.Allowance, error)
	List() ([]*entity.Allowance, error)
	CreateTruckAllowance(ta *entity.TruckAllowance) error
	ListTruckAllowances(allowanceID string) ([]*entity.TruckAllowance, error)
}
