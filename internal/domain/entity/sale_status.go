package entity

// Códigos de estado de venta (dato maestro, sembrado en migraciones).
const (
	SaleStatusPending   = "PENDING"
	SaleStatusCompleted = "COMPLETED"
	SaleStatusCancelled = "CANCELLED"
	SaleStatusPaid      = "PAID"
)

// SaleStatus representa un estado de venta (dato maestro).
// Se siembra en el setup y no se modifica vía CRUD normal.
type SaleStatus struct {
	ID          string
	Code        string // único: PENDING, COMPLETED, CANCELLED, PAID
	Name        string
	Description string
}
