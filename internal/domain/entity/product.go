package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Stock vive en la misma fila y se descuenta de forma condicional al crear una venta.
type Product struct {
	ID          string
	Code        string // código único, inmutable después de crear
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, > 0
	Stock       int             // unidades disponibles, >= 0
	CategoryID  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
