package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrCategoryNotFound   = errors.New("categoría de producto no encontrada")
	ErrProductNotFound    = errors.New("producto no encontrado")
	ErrStatusNotFound     = errors.New("estado de venta no encontrado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrPendingNotSeeded   = errors.New("estado de venta PENDING no configurado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
)
