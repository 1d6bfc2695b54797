package entity

import "github.com/shopspring/decimal"

// SaleDetail representa una línea de detalle de una venta.
// Inmutable una vez creada; se elimina en cascada con su venta.
type SaleDetail struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  int // >= 1
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}
