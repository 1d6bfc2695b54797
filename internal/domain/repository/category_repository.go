package repository

import "github.com/jhoicas/ventas-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para ProductCategory (DIP).
type CategoryRepository interface {
	Create(category *entity.ProductCategory) error
	GetByID(id string) (*entity.ProductCategory, error)
	GetByCode(code string) (*entity.ProductCategory, error)
	List() ([]*entity.ProductCategory, error)
	Update(category *entity.ProductCategory) error
	// Delete retorna domain.ErrNotFound si no existe y domain.ErrConflict
	// si algún producto referencia la categoría.
	Delete(id string) error
}
