package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa la cabecera de una venta.
// TotalAmount se calcula al crear (suma de subtotales) y no se recalcula después.
type Sale struct {
	ID          string
	SaleDate    time.Time
	TotalAmount decimal.Decimal
	StatusID    string // referencia a SaleStatus; inicia en PENDING
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
