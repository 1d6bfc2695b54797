package entity

import "time"

// ProductCategory representa una categoría de productos.
// No se puede eliminar mientras existan productos que la referencien (FK RESTRICT).
type ProductCategory struct {
	ID          string
	Code        string // código único
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
