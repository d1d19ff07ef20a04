package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/sathyaAB/DairyX/internal/application/dto"
	"github.com/sathyaAB/DairyX/internal/domain"
	"github.com/sathyaAB/DairyX/internal/domain/entity"
	"github.com/sathyaAB/DairyX/internal/domain/repository"
)

// TruckUseCase casos de uso para camiones de reparto.
type TruckUseCase struct {
	repo repository.TruckRepository
}

// NewTruckUseCase construye el caso de uso.
func NewTruckUseCase(repo repository.TruckRepository) *TruckUseCase {
	return &TruckUseCase{repo: repo}
}

// Create registra un camión. El número de camión es único.
func (uc *TruckUseCase) Create(in dto.CreateTruckRequest) (*dto.TruckResponse, error) {
	if in.TruckNumber == "" || in.Model == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.MaxAllowance.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByNumber(in.TruckNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	truck := &entity.Truck{
		ID:           uuid.New().String(),
		TruckNumber:  in.TruckNumber,
		Model:        in.Model,
		MaxAllowance: in.MaxAllowance,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(truck); err != nil {
		return nil, err
	}
	return toTruckResponse(truck), nil
}

// GetByID obtiene un camión por ID.
func (uc *TruckUseCase) GetByID(id string) (*dto.TruckResponse, error) {
	truck, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if truck == nil {
		return nil, domain.ErrNotFound
	}
	return toTruckResponse(truck), nil
}

// List devuelve todos los camiones.
func (uc *TruckUseCase) List() ([]*dto.TruckResponse, error) {
	trucks, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TruckResponse, 0, len(trucks))
	for _, t := range trucks {
		out = append(out, toTruckResponse(t))
	}
	return out, nil
}

// UpdateMaxAllowance actualiza el tope de viáticos de un camión por su número.
func (uc *TruckUseCase) UpdateMaxAllowance(in dto.UpdateTruckMaxAllowanceRequest) (*dto.TruckResponse, error) {
	if in.TruckNumber == "" || in.MaxAllowance.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	truck, err := uc.repo.UpdateMaxAllowance(in.TruckNumber, in.MaxAllowance)
	if err != nil {
		return nil, err
	}
	if truck == nil {
		return nil, domain.ErrNotFound
	}
	return toTruckResponse(truck), nil
}

func toTruckResponse(t *entity.Truck) *dto.TruckResponse {
	return &dto.TruckResponse{
		ID:           t.ID,
		TruckNumber:  t.TruckNumber,
		Model:        t.Model,
		MaxAllowance: t.MaxAllowance,
	}
}
