package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría de producto.
type CreateCategoryRequest struct {
	Code        string `json:"code" validate:"required,min=1,max=100"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
}

// UpdateCategoryRequest entrada para actualizar una categoría (el código es inmutable).
type UpdateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
