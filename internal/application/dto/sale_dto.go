package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleDetailRequest una línea de la venta a crear.
type SaleDetailRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"min=1"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CreateSaleRequest entrada para crear una venta con sus detalles.
type CreateSaleRequest struct {
	SaleDate string              `json:"sale_date" validate:"required"` // formato 2006-01-02
	Details  []SaleDetailRequest `json:"details" validate:"required,min=1"`
}

// UpdateSaleStatusRequest entrada para cambiar el estado de una venta por código.
type UpdateSaleStatusRequest struct {
	StatusCode string `json:"status_code" validate:"required"`
}

// SaleDetailResponse una línea de detalle en la respuesta.
type SaleDetailResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse salida de una venta con sus detalles.
type SaleResponse struct {
	ID          string               `json:"id"`
	SaleDate    string               `json:"sale_date"`
	TotalAmount decimal.Decimal      `json:"total_amount"`
	StatusCode  string               `json:"status_code"`
	Details     []SaleDetailResponse `json:"details"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}
