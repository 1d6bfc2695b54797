package repository

import "github.com/jhoicas/ventas-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	ListByCategory(categoryID string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	// DecrementStock descuenta stock solo si hay suficiente
	// (UPDATE condicional: stock = stock - qty WHERE stock >= qty).
	// Retorna false si la fila no se afectó (stock insuficiente o producto inexistente).
	DecrementStock(productID string, quantity int) (bool, error)
}
