package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/sathyaAB/DairyX/internal/application/dto"
	"github.com/sathyaAB/DairyX/internal/domain"
	"github.com/sathyaAB/DairyX/internal/domain/entity"
	"github.com/sathyaAB/DairyX/internal/domain/repository"
)

// ShopUseCase casos de uso para tiendas cliente.
type ShopUseCase struct {
	repo repository.ShopRepository
}

// NewShopUseCase construye el caso de uso.
func NewShopUseCase(repo repository.ShopRepository) *ShopUseCase {
	return &ShopUseCase{repo: repo}
}

// Create registra una tienda.
func (uc *ShopUseCase) Create(in dto.CreateShopRequest) (*dto.ShopResponse, error) {
	if in.Name == "" || in.Address == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	shop := &entity.Shop{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Address:       in.Address,
		City:          in.City,
		District:      in.District,
		ContactNumber: in.ContactNumber,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(shop); err != nil {
		return nil, err
	}
	return toShopResponse(shop), nil
}

// GetByID obtiene una tienda por ID.
func (uc *ShopUseCase) GetByID(id string) (*dto.ShopResponse, error) {
	shop, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrNotFound
	}
	return toShopResponse(shop), nil
}

// List devuelve todas las tiendas.
func (uc *ShopUseCase) List() ([]*dto.ShopResponse, error) {
	shops, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ShopResponse, 0, len(shops))
	for _, s := range shops {
		out = append(out, toShopResponse(s))
	}
	return out, nil
}

func toShopResponse(s *entity.Shop) *dto.ShopResponse {
	return &dto.ShopResponse{
		ID:            s.ID,
		Name:          s.Name,
		Address:       s.Address,
		City:          s.City,
		District:      s.District,
		ContactNumber: s.ContactNumber,
	}
}
