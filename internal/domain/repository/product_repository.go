package repository

import "github.com/sathyaAB/DairyX/internal/domain/entity"

// ProductRepository puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	// Update modifica nombre, precio, unidad y comisión. El precio solo cambia
	// por aquí; el núcleo transaccional nunca lo toca.
	Update(product *entity.Product) error
}
