package repository

import "github.com/sathyaAB/DairyX/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios (operarios, gerentes, conductores).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
	Count() (int64, error)
}
